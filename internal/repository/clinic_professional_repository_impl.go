package repository

import (
	"health-directory-api/internal/domain/entity"
	domainRepo "health-directory-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clinicProfessionalRepository struct{}

func NewClinicProfessionalRepository() domainRepo.ClinicProfessionalRepository {
	return &clinicProfessionalRepository{}
}

func (r *clinicProfessionalRepository) DeleteByClinic(db *gorm.DB, clinicID uuid.UUID) error {
	return db.Where("clinic_id = ?", clinicID).Delete(&entity.ClinicProfessional{}).Error
}

func (r *clinicProfessionalRepository) DeleteByProfessional(db *gorm.DB, professionalID uuid.UUID) error {
	return db.Where("professional_id = ?", professionalID).Delete(&entity.ClinicProfessional{}).Error
}

func (r *clinicProfessionalRepository) BulkInsert(db *gorm.DB, rows []entity.ClinicProfessional) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		if rows[i].ID == uuid.Nil {
			rows[i].ID = uuid.New()
		}
	}
	return db.Create(&rows).Error
}

func (r *clinicProfessionalRepository) FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.ClinicProfessional, error) {
	var rows []entity.ClinicProfessional
	err := db.Where("clinic_id = ?", clinicID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *clinicProfessionalRepository) FindByProfessional(db *gorm.DB, professionalID uuid.UUID) ([]entity.ClinicProfessional, error) {
	var rows []entity.ClinicProfessional
	err := db.Where("professional_id = ?", professionalID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
