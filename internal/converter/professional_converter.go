package converter

import (
	"health-directory-api/internal/delivery/dto"
	"health-directory-api/internal/domain/entity"
)

// ProfessionalToResponse converts a Professional entity to its response DTO.
// Contact fields (phone, whatsapp, email) are included only when
// includeContact is true; public reads obtain them solely through the
// privileged contact endpoint.
func ProfessionalToResponse(professional *entity.Professional, includeContact bool) *dto.ProfessionalResponse {
	if professional == nil {
		return nil
	}

	resp := &dto.ProfessionalResponse{
		ID:          professional.ID,
		Name:        professional.Name,
		Slug:        professional.Slug,
		Location:    professional.Location,
		SpecialtyID: professional.SpecialtyID,
		Description: strVal(professional.Description),
		Facebook:    strVal(professional.Facebook),
		Instagram:   strVal(professional.Instagram),
		Linkedin:    strVal(professional.Linkedin),
		Youtube:     strVal(professional.Youtube),
		PhotoURL:    strVal(professional.PhotoURL),
		Banners:     banners(professional.Banners),
		IsActive:    professional.IsActive,
	}

	if professional.Specialty != nil {
		resp.SpecialtyName = professional.Specialty.Name
	}

	if includeContact {
		resp.Phone = strVal(professional.Phone)
		resp.Whatsapp = strVal(professional.Whatsapp)
		resp.Email = strVal(professional.Email)
	}

	return resp
}

// ProfessionalsToResponses converts a slice of Professional entities to
// response DTOs.
func ProfessionalsToResponses(professionals []entity.Professional, includeContact bool) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(professionals))
	for i := range professionals {
		responses[i] = *ProfessionalToResponse(&professionals[i], includeContact)
	}
	return responses
}

// ProfessionalToContactResponse extracts just the privileged contact slice.
func ProfessionalToContactResponse(professional *entity.Professional) *dto.ProfessionalContactResponse {
	if professional == nil {
		return nil
	}

	return &dto.ProfessionalContactResponse{
		ID:       professional.ID,
		Phone:    strVal(professional.Phone),
		Whatsapp: strVal(professional.Whatsapp),
		Email:    strVal(professional.Email),
	}
}
