package repository

import (
	"errors"

	"health-directory-api/internal/domain/entity"
	domainRepo "health-directory-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type specialtyRepository struct{}

func NewSpecialtyRepository() domainRepo.SpecialtyRepository {
	return &specialtyRepository{}
}

func (r *specialtyRepository) Create(db *gorm.DB, specialty *entity.Specialty) error {
	return db.Create(specialty).Error
}

func (r *specialtyRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Specialty, error) {
	var specialty entity.Specialty
	err := db.Where("id = ?", id).First(&specialty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialty, nil
}

func (r *specialtyRepository) FindAll(db *gorm.DB) ([]entity.Specialty, error) {
	var specialties []entity.Specialty
	err := db.Order("name").Find(&specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *specialtyRepository) Update(db *gorm.DB, specialty *entity.Specialty) error {
	return db.Save(specialty).Error
}

func (r *specialtyRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Specialty{})
	return result.RowsAffected, result.Error
}
