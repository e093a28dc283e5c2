package entity

import (
	"time"

	"github.com/google/uuid"
)

// Professional is the canonical practitioner record. A practitioner has at
// most one specialty.
type Professional struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string     `gorm:"type:varchar(255);not null;index" json:"slug"`
	Location    string     `gorm:"type:varchar(120);not null" json:"location"`
	SpecialtyID *uuid.UUID `gorm:"type:uuid;index" json:"specialty_id,omitempty"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	Phone       *string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Whatsapp    *string    `gorm:"type:varchar(30)" json:"whatsapp,omitempty"`
	Email       *string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Facebook    *string    `gorm:"type:varchar(255)" json:"facebook,omitempty"`
	Instagram   *string    `gorm:"type:varchar(255)" json:"instagram,omitempty"`
	Linkedin    *string    `gorm:"type:varchar(255)" json:"linkedin,omitempty"`
	Youtube     *string    `gorm:"type:varchar(255)" json:"youtube,omitempty"`
	PhotoURL    *string    `gorm:"type:text" json:"photo_url,omitempty"`
	Banners     []string   `gorm:"type:jsonb;serializer:json" json:"banners,omitempty"`
	IsActive    bool       `gorm:"not null;index" json:"is_active"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Specialty *Specialty `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
}

func (Professional) TableName() string {
	return "professionals"
}
