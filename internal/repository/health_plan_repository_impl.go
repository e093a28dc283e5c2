package repository

import (
	"errors"

	"health-directory-api/internal/domain/entity"
	domainRepo "health-directory-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type healthPlanRepository struct{}

func NewHealthPlanRepository() domainRepo.HealthPlanRepository {
	return &healthPlanRepository{}
}

func (r *healthPlanRepository) Create(db *gorm.DB, plan *entity.HealthPlan) error {
	return db.Create(plan).Error
}

func (r *healthPlanRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.HealthPlan, error) {
	var plan entity.HealthPlan
	err := db.Where("id = ?", id).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

// Plans are listed self-pay first, then alphabetically, matching the public
// pricing table layout.
func (r *healthPlanRepository) FindAll(db *gorm.DB) ([]entity.HealthPlan, error) {
	var plans []entity.HealthPlan
	err := db.Order("is_particular DESC").Order("name").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *healthPlanRepository) FindActive(db *gorm.DB) ([]entity.HealthPlan, error) {
	var plans []entity.HealthPlan
	err := db.Where("is_active = ?", true).
		Order("is_particular DESC").
		Order("name").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *healthPlanRepository) Update(db *gorm.DB, plan *entity.HealthPlan) error {
	return db.Save(plan).Error
}

func (r *healthPlanRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.HealthPlan{})
	return result.RowsAffected, result.Error
}
