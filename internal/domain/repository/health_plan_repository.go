package repository

import (
	"health-directory-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthPlanRepository interface {
	Create(db *gorm.DB, plan *entity.HealthPlan) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.HealthPlan, error)
	FindAll(db *gorm.DB) ([]entity.HealthPlan, error)
	FindActive(db *gorm.DB) ([]entity.HealthPlan, error)
	Update(db *gorm.DB, plan *entity.HealthPlan) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
