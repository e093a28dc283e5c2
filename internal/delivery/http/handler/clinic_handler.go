package handler

import (
	"encoding/json"
	"net/http"

	"health-directory-api/internal/delivery/dto"
	"health-directory-api/internal/usecase"
	"health-directory-api/pkg/response"
	"health-directory-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ClinicHandler struct {
	clinicUsecase usecase.ClinicUsecase
	validator     *validator.CustomValidator
}

func NewClinicHandler(clinicUsecase usecase.ClinicUsecase, validator *validator.CustomValidator) *ClinicHandler {
	return &ClinicHandler{
		clinicUsecase: clinicUsecase,
		validator:     validator,
	}
}

func (h *ClinicHandler) CreateClinic(w http.ResponseWriter, r *http.Request) {
	var req dto.ClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinic, err := h.clinicUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.Error(w, http.StatusBadRequest, "One or more professionals do not exist", nil)
		default:
			response.InternalServerError(w, "Failed to create clinic")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Clinic created successfully", clinic)
}

func (h *ClinicHandler) GetAllClinics(w http.ResponseWriter, r *http.Request) {
	clinics, err := h.clinicUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get clinics")
		return
	}

	response.Success(w, http.StatusOK, "Clinics retrieved successfully", clinics)
}

func (h *ClinicHandler) GetClinic(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clinicID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return
	}

	clinic, err := h.clinicUsecase.GetByID(r.Context(), clinicID)
	if err != nil {
		if err == usecase.ErrClinicNotFound {
			response.NotFound(w, "Clinic not found")
			return
		}
		response.InternalServerError(w, "Failed to get clinic")
		return
	}

	response.Success(w, http.StatusOK, "Clinic retrieved successfully", clinic)
}

func (h *ClinicHandler) UpdateClinic(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clinicID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return
	}

	var req dto.ClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	clinic, err := h.clinicUsecase.Update(r.Context(), clinicID, &req)
	if err != nil {
		switch err {
		case usecase.ErrClinicNotFound:
			response.NotFound(w, "Clinic not found")
		case usecase.ErrProfessionalNotFound:
			response.Error(w, http.StatusBadRequest, "One or more professionals do not exist", nil)
		default:
			response.InternalServerError(w, "Failed to update clinic")
		}
		return
	}

	response.Success(w, http.StatusOK, "Clinic updated successfully", clinic)
}

func (h *ClinicHandler) DeleteClinic(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clinicID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return
	}

	if err := h.clinicUsecase.Delete(r.Context(), clinicID); err != nil {
		if err == usecase.ErrClinicNotFound {
			response.NotFound(w, "Clinic not found")
			return
		}
		response.InternalServerError(w, "Failed to delete clinic")
		return
	}

	response.Success(w, http.StatusOK, "Clinic deleted successfully", nil)
}

func (h *ClinicHandler) GetClinicProfessionals(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clinicID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinic ID", nil)
		return
	}

	ids, err := h.clinicUsecase.GetProfessionalIDs(r.Context(), clinicID)
	if err != nil {
		if err == usecase.ErrClinicNotFound {
			response.NotFound(w, "Clinic not found")
			return
		}
		response.InternalServerError(w, "Failed to get clinic professionals")
		return
	}

	response.Success(w, http.StatusOK, "Clinic professionals retrieved successfully", ids)
}

func (h *ClinicHandler) GetActiveClinics(w http.ResponseWriter, r *http.Request) {
	clinics, err := h.clinicUsecase.GetActive(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get clinics")
		return
	}

	response.Success(w, http.StatusOK, "Clinics retrieved successfully", clinics)
}

func (h *ClinicHandler) GetFeaturedClinics(w http.ResponseWriter, r *http.Request) {
	clinics, err := h.clinicUsecase.GetFeatured(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get featured clinics")
		return
	}

	response.Success(w, http.StatusOK, "Featured clinics retrieved successfully", clinics)
}

func (h *ClinicHandler) GetClinicBySlug(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clinic, err := h.clinicUsecase.GetBySlug(r.Context(), vars["slug"])
	if err != nil {
		if err == usecase.ErrClinicNotFound {
			response.NotFound(w, "Clinic not found")
			return
		}
		response.InternalServerError(w, "Failed to get clinic")
		return
	}

	response.Success(w, http.StatusOK, "Clinic retrieved successfully", clinic)
}
