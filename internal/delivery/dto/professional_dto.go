package dto

import (
	"github.com/google/uuid"
)

// ProfessionalRequest is the full editable draft of a practitioner.
// ClinicIDs is the complete selected clinic set and replaces any previously
// saved associations.
type ProfessionalRequest struct {
	Name        string      `json:"name" validate:"required,min=2"`
	Location    string      `json:"location" validate:"required"`
	SpecialtyID *uuid.UUID  `json:"specialty_id" validate:"omitempty"`
	Description string      `json:"description" validate:"omitempty"`
	Phone       string      `json:"phone" validate:"omitempty"`
	Whatsapp    string      `json:"whatsapp" validate:"omitempty"`
	Email       string      `json:"email" validate:"omitempty,email"`
	Facebook    string      `json:"facebook" validate:"omitempty"`
	Instagram   string      `json:"instagram" validate:"omitempty"`
	Linkedin    string      `json:"linkedin" validate:"omitempty"`
	Youtube     string      `json:"youtube" validate:"omitempty"`
	PhotoURL    string      `json:"photo_url" validate:"omitempty"`
	Banners     []string    `json:"banners" validate:"omitempty,max=5"`
	IsActive    *bool       `json:"is_active" validate:"omitempty"`
	ClinicIDs   []uuid.UUID `json:"clinic_ids" validate:"omitempty"`
}

type ProfessionalResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	Location      string     `json:"location"`
	SpecialtyID   *uuid.UUID `json:"specialty_id,omitempty"`
	SpecialtyName string     `json:"specialty_name,omitempty"`
	Description   string     `json:"description,omitempty"`
	// Contact fields are filled for admin reads only; the public surface
	// exposes them solely through the privileged contact endpoint.
	Phone     string   `json:"phone,omitempty"`
	Whatsapp  string   `json:"whatsapp,omitempty"`
	Email     string   `json:"email,omitempty"`
	Facebook  string   `json:"facebook,omitempty"`
	Instagram string   `json:"instagram,omitempty"`
	Linkedin  string   `json:"linkedin,omitempty"`
	Youtube   string   `json:"youtube,omitempty"`
	PhotoURL  string   `json:"photo_url,omitempty"`
	Banners   []string `json:"banners"`
	IsActive  bool     `json:"is_active"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int                    `json:"total"`
}

// ProfessionalContactResponse is the privileged contact-fields slice,
// served only to authenticated callers.
type ProfessionalContactResponse struct {
	ID       uuid.UUID `json:"id"`
	Phone    string    `json:"phone,omitempty"`
	Whatsapp string    `json:"whatsapp,omitempty"`
	Email    string    `json:"email,omitempty"`
}
