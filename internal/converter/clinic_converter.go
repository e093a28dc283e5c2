package converter

import (
	"health-directory-api/internal/delivery/dto"
	"health-directory-api/internal/domain/entity"
)

// ClinicToResponse converts a Clinic entity to its response DTO.
func ClinicToResponse(clinic *entity.Clinic) *dto.ClinicResponse {
	if clinic == nil {
		return nil
	}

	return &dto.ClinicResponse{
		ID:          clinic.ID,
		Name:        clinic.Name,
		Slug:        clinic.Slug,
		Description: strVal(clinic.Description),
		Address:     strVal(clinic.Address),
		City:        clinic.City,
		State:       strVal(clinic.State),
		Phone:       strVal(clinic.Phone),
		Email:       strVal(clinic.Email),
		Schedule:    strVal(clinic.Schedule),
		Website:     strVal(clinic.Website),
		Category:    strVal(clinic.Category),
		Facebook:    strVal(clinic.Facebook),
		Instagram:   strVal(clinic.Instagram),
		Linkedin:    strVal(clinic.Linkedin),
		Youtube:     strVal(clinic.Youtube),
		ImageURL:    strVal(clinic.ImageURL),
		Banners:     banners(clinic.Banners),
		IsActive:    clinic.IsActive,
		IsFeatured:  clinic.IsFeatured,
	}
}

// ClinicsToResponses converts a slice of Clinic entities to response DTOs.
func ClinicsToResponses(clinics []entity.Clinic) []dto.ClinicResponse {
	responses := make([]dto.ClinicResponse, len(clinics))
	for i := range clinics {
		responses[i] = *ClinicToResponse(&clinics[i])
	}
	return responses
}
