package repository

import (
	"health-directory-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClinicRepository interface {
	Create(db *gorm.DB, clinic *entity.Clinic) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Clinic, error)
	FindAll(db *gorm.DB) ([]entity.Clinic, error)
	FindActive(db *gorm.DB) ([]entity.Clinic, error)
	FindFeatured(db *gorm.DB, limit int) ([]entity.Clinic, error)
	FindBySlug(db *gorm.DB, slug string, activeOnly bool) (*entity.Clinic, error)
	Update(db *gorm.DB, clinic *entity.Clinic) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
