package repository

import (
	"health-directory-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfessionalRepository interface {
	Create(db *gorm.DB, professional *entity.Professional) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Professional, error)
	FindAll(db *gorm.DB) ([]entity.Professional, error)
	FindActive(db *gorm.DB) ([]entity.Professional, error)
	FindActiveBySpecialty(db *gorm.DB, specialtyID uuid.UUID) ([]entity.Professional, error)
	FindBySlug(db *gorm.DB, slug string, activeOnly bool) (*entity.Professional, error)
	CountBySpecialty(db *gorm.DB, specialtyID uuid.UUID) (int64, error)
	Update(db *gorm.DB, professional *entity.Professional) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
