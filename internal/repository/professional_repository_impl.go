package repository

import (
	"errors"

	"health-directory-api/internal/domain/entity"
	domainRepo "health-directory-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type professionalRepository struct{}

func NewProfessionalRepository() domainRepo.ProfessionalRepository {
	return &professionalRepository{}
}

func (r *professionalRepository) Create(db *gorm.DB, professional *entity.Professional) error {
	return db.Create(professional).Error
}

func (r *professionalRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Professional, error) {
	var professional entity.Professional
	err := db.Preload("Specialty").Where("id = ?", id).First(&professional).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professional, nil
}

func (r *professionalRepository) FindAll(db *gorm.DB) ([]entity.Professional, error) {
	var professionals []entity.Professional
	err := db.Preload("Specialty").Order("name").Find(&professionals).Error
	if err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *professionalRepository) FindActive(db *gorm.DB) ([]entity.Professional, error) {
	var professionals []entity.Professional
	err := db.Preload("Specialty").
		Where("is_active = ?", true).
		Order("name").
		Find(&professionals).Error
	if err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *professionalRepository) FindActiveBySpecialty(db *gorm.DB, specialtyID uuid.UUID) ([]entity.Professional, error) {
	var professionals []entity.Professional
	err := db.Preload("Specialty").
		Where("is_active = ? AND specialty_id = ?", true, specialtyID).
		Order("name").
		Find(&professionals).Error
	if err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *professionalRepository) FindBySlug(db *gorm.DB, slug string, activeOnly bool) (*entity.Professional, error) {
	query := db.Preload("Specialty").Where("slug = ?", slug)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var professional entity.Professional
	err := query.First(&professional).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professional, nil
}

func (r *professionalRepository) CountBySpecialty(db *gorm.DB, specialtyID uuid.UUID) (int64, error) {
	var count int64
	err := db.Model(&entity.Professional{}).
		Where("specialty_id = ?", specialtyID).
		Count(&count).Error
	return count, err
}

func (r *professionalRepository) Update(db *gorm.DB, professional *entity.Professional) error {
	return db.Omit("Specialty").Save(professional).Error
}

func (r *professionalRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Professional{})
	return result.RowsAffected, result.Error
}
