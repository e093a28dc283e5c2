package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClinicProfessional is a pure association row between a clinic and a
// professional. Rows are rewritten wholesale when a clinic's staff set is
// saved, so IDs are assigned by the application rather than the database.
type ClinicProfessional struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClinicID       uuid.UUID `gorm:"type:uuid;not null;index" json:"clinic_id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;index" json:"professional_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ClinicProfessional) TableName() string {
	return "clinic_professionals"
}
