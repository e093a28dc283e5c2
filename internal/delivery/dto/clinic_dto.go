package dto

import (
	"github.com/google/uuid"
)

// ClinicRequest is the full editable draft of a clinic. The same shape is
// used for create and update; the slug is always derived server-side from
// Name. ProfessionalIDs is the complete selected staff set and replaces any
// previously saved associations.
type ClinicRequest struct {
	Name            string      `json:"name" validate:"required,min=2"`
	Description     string      `json:"description" validate:"omitempty"`
	Address         string      `json:"address" validate:"omitempty"`
	City            string      `json:"city" validate:"required"`
	State           string      `json:"state" validate:"omitempty"`
	Phone           string      `json:"phone" validate:"omitempty"`
	Email           string      `json:"email" validate:"omitempty,email"`
	Schedule        string      `json:"schedule" validate:"omitempty"`
	Website         string      `json:"website" validate:"omitempty,url"`
	Category        string      `json:"category" validate:"omitempty"`
	Facebook        string      `json:"facebook" validate:"omitempty"`
	Instagram       string      `json:"instagram" validate:"omitempty"`
	Linkedin        string      `json:"linkedin" validate:"omitempty"`
	Youtube         string      `json:"youtube" validate:"omitempty"`
	ImageURL        string      `json:"image_url" validate:"omitempty"`
	Banners         []string    `json:"banners" validate:"omitempty,max=5"`
	IsActive        *bool       `json:"is_active" validate:"omitempty"`
	IsFeatured      bool        `json:"is_featured"`
	ProfessionalIDs []uuid.UUID `json:"professional_ids" validate:"omitempty"`
}

type ClinicResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city"`
	State       string    `json:"state,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Schedule    string    `json:"schedule,omitempty"`
	Website     string    `json:"website,omitempty"`
	Category    string    `json:"category,omitempty"`
	Facebook    string    `json:"facebook,omitempty"`
	Instagram   string    `json:"instagram,omitempty"`
	Linkedin    string    `json:"linkedin,omitempty"`
	Youtube     string    `json:"youtube,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Banners     []string  `json:"banners"`
	IsActive    bool      `json:"is_active"`
	IsFeatured  bool      `json:"is_featured"`
}

type ClinicListResponse struct {
	Clinics []ClinicResponse `json:"clinics"`
	Total   int              `json:"total"`
}
