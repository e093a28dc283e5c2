package repository

import (
	"health-directory-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClinicProfessionalRepository manages the clinic<->professional join rows.
// Staffing is saved as a full replace: delete every row for the owning side,
// then bulk-insert the currently selected set, inside the caller's
// transaction.
type ClinicProfessionalRepository interface {
	DeleteByClinic(db *gorm.DB, clinicID uuid.UUID) error
	DeleteByProfessional(db *gorm.DB, professionalID uuid.UUID) error
	BulkInsert(db *gorm.DB, rows []entity.ClinicProfessional) error
	FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.ClinicProfessional, error)
	FindByProfessional(db *gorm.DB, professionalID uuid.UUID) ([]entity.ClinicProfessional, error)
}
