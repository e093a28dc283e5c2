package entity

import (
	"time"

	"github.com/google/uuid"
)

// Partner is a commercial partner shown on the public site. BusinessArea is
// restricted to a closed set that doubles as the frontend's icon lookup key.
type Partner struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyName  string    `gorm:"type:varchar(255);not null" json:"company_name"`
	Description  *string   `gorm:"type:varchar(200)" json:"description,omitempty"`
	BusinessArea string    `gorm:"type:varchar(60);not null" json:"business_area"`
	LogoURL      *string   `gorm:"type:text" json:"logo_url,omitempty"`
	WebsiteURL   *string   `gorm:"type:varchar(255)" json:"website_url,omitempty"`
	IsActive     bool      `gorm:"not null;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Partner) TableName() string {
	return "partners"
}

// PartnerDescriptionMaxLen caps the partner description.
const PartnerDescriptionMaxLen = 200

// BusinessAreas is the closed set of accepted partner business areas.
var BusinessAreas = []string{
	"Laboratório",
	"Clínica",
	"Telessaúde",
	"Distribuidora",
	"Farmácia",
	"Diagnóstico",
	"Hospital",
	"Tecnologia Médica",
	"Vacinas",
	"Outros",
}

// IsValidBusinessArea reports whether area belongs to the closed set.
func IsValidBusinessArea(area string) bool {
	for _, a := range BusinessAreas {
		if a == area {
			return true
		}
	}
	return false
}
