package entity

import (
	"time"

	"github.com/google/uuid"
)

// Clinic is a listed care facility. Slug is recomputed from Name on every
// save; IsActive and IsFeatured gate public visibility.
type Clinic struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string    `gorm:"type:varchar(255);not null;index" json:"slug"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Address     *string   `gorm:"type:varchar(255)" json:"address,omitempty"`
	City        string    `gorm:"type:varchar(120);not null" json:"city"`
	State       *string   `gorm:"type:varchar(60)" json:"state,omitempty"`
	Phone       *string   `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Email       *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	Schedule    *string   `gorm:"type:text" json:"schedule,omitempty"`
	Website     *string   `gorm:"type:varchar(255)" json:"website,omitempty"`
	Category    *string   `gorm:"type:varchar(120)" json:"category,omitempty"`
	Facebook    *string   `gorm:"type:varchar(255)" json:"facebook,omitempty"`
	Instagram   *string   `gorm:"type:varchar(255)" json:"instagram,omitempty"`
	Linkedin    *string   `gorm:"type:varchar(255)" json:"linkedin,omitempty"`
	Youtube     *string   `gorm:"type:varchar(255)" json:"youtube,omitempty"`
	ImageURL    *string   `gorm:"type:text" json:"image_url,omitempty"`
	Banners     []string  `gorm:"type:jsonb;serializer:json" json:"banners,omitempty"`
	IsActive    bool      `gorm:"not null;index" json:"is_active"`
	IsFeatured  bool      `gorm:"not null;index" json:"is_featured"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// MaxBanners caps the ordered banner list on every entity that carries one.
const MaxBanners = 5

func (Clinic) TableName() string {
	return "clinics"
}
