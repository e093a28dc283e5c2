package converter

import (
	"health-directory-api/internal/delivery/dto"
	"health-directory-api/internal/domain/entity"
)

func PartnerToResponse(partner *entity.Partner) *dto.PartnerResponse {
	if partner == nil {
		return nil
	}

	return &dto.PartnerResponse{
		ID:           partner.ID,
		CompanyName:  partner.CompanyName,
		Description:  strVal(partner.Description),
		BusinessArea: partner.BusinessArea,
		LogoURL:      strVal(partner.LogoURL),
		WebsiteURL:   strVal(partner.WebsiteURL),
		IsActive:     partner.IsActive,
	}
}

func PartnersToResponses(partners []entity.Partner) []dto.PartnerResponse {
	responses := make([]dto.PartnerResponse, len(partners))
	for i := range partners {
		responses[i] = *PartnerToResponse(&partners[i])
	}
	return responses
}
