package repository

import (
	"errors"

	"health-directory-api/internal/domain/entity"
	domainRepo "health-directory-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clinicRepository struct{}

func NewClinicRepository() domainRepo.ClinicRepository {
	return &clinicRepository{}
}

func (r *clinicRepository) Create(db *gorm.DB, clinic *entity.Clinic) error {
	return db.Create(clinic).Error
}

func (r *clinicRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Clinic, error) {
	var clinic entity.Clinic
	err := db.Where("id = ?", id).First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}

func (r *clinicRepository) FindAll(db *gorm.DB) ([]entity.Clinic, error) {
	var clinics []entity.Clinic
	err := db.Order("name").Find(&clinics).Error
	if err != nil {
		return nil, err
	}
	return clinics, nil
}

func (r *clinicRepository) FindActive(db *gorm.DB) ([]entity.Clinic, error) {
	var clinics []entity.Clinic
	err := db.Where("is_active = ?", true).Order("name").Find(&clinics).Error
	if err != nil {
		return nil, err
	}
	return clinics, nil
}

func (r *clinicRepository) FindFeatured(db *gorm.DB, limit int) ([]entity.Clinic, error) {
	var clinics []entity.Clinic
	err := db.Where("is_active = ? AND is_featured = ?", true, true).
		Order("name").
		Limit(limit).
		Find(&clinics).Error
	if err != nil {
		return nil, err
	}
	return clinics, nil
}

func (r *clinicRepository) FindBySlug(db *gorm.DB, slug string, activeOnly bool) (*entity.Clinic, error) {
	query := db.Where("slug = ?", slug)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var clinic entity.Clinic
	err := query.First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}

func (r *clinicRepository) Update(db *gorm.DB, clinic *entity.Clinic) error {
	return db.Save(clinic).Error
}

func (r *clinicRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Clinic{})
	return result.RowsAffected, result.Error
}
