package dto

import (
	"github.com/google/uuid"
)

type PartnerRequest struct {
	CompanyName  string `json:"company_name" validate:"required,min=2"`
	Description  string `json:"description" validate:"omitempty,max=200"`
	BusinessArea string `json:"business_area" validate:"required"`
	LogoURL      string `json:"logo_url" validate:"omitempty"`
	WebsiteURL   string `json:"website_url" validate:"omitempty,url"`
	IsActive     *bool  `json:"is_active" validate:"omitempty"`
}

type PartnerResponse struct {
	ID           uuid.UUID `json:"id"`
	CompanyName  string    `json:"company_name"`
	Description  string    `json:"description,omitempty"`
	BusinessArea string    `json:"business_area"`
	LogoURL      string    `json:"logo_url,omitempty"`
	WebsiteURL   string    `json:"website_url,omitempty"`
	IsActive     bool      `json:"is_active"`
}

type PartnerListResponse struct {
	Partners []PartnerResponse `json:"partners"`
	Total    int               `json:"total"`
}
