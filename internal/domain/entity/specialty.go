package entity

import (
	"time"

	"github.com/google/uuid"
)

type Specialty struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Icon        string    `gorm:"type:varchar(60);not null" json:"icon"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Specialty) TableName() string {
	return "specialties"
}

// DefaultSpecialtyIcon is used when an unrecognized icon name is submitted.
const DefaultSpecialtyIcon = "stethoscope"

// specialtyIcons is the closed set of icon identifiers the frontend can
// resolve. Lookups outside this set fall back to DefaultSpecialtyIcon.
var specialtyIcons = map[string]bool{
	"stethoscope": true,
	"heart":       true,
	"brain":       true,
	"bone":        true,
	"eye":         true,
	"ear":         true,
	"baby":        true,
	"activity":    true,
	"pill":        true,
	"syringe":     true,
	"microscope":  true,
	"scan":        true,
	"smile":       true,
	"flower":      true,
}

// NormalizeSpecialtyIcon maps an icon name onto the closed icon set,
// substituting the default for empty or unknown names.
func NormalizeSpecialtyIcon(icon string) string {
	if specialtyIcons[icon] {
		return icon
	}
	return DefaultSpecialtyIcon
}
