package repository

import (
	"health-directory-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpecialtyRepository interface {
	Create(db *gorm.DB, specialty *entity.Specialty) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Specialty, error)
	FindAll(db *gorm.DB) ([]entity.Specialty, error)
	Update(db *gorm.DB, specialty *entity.Specialty) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
