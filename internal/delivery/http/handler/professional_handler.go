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

type ProfessionalHandler struct {
	professionalUsecase usecase.ProfessionalUsecase
	validator           *validator.CustomValidator
}

func NewProfessionalHandler(professionalUsecase usecase.ProfessionalUsecase, validator *validator.CustomValidator) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalUsecase: professionalUsecase,
		validator:           validator,
	}
}

func (h *ProfessionalHandler) CreateProfessional(w http.ResponseWriter, r *http.Request) {
	var req dto.ProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.professionalUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrSpecialtyNotFound:
			response.Error(w, http.StatusBadRequest, "Specialty not found", nil)
		case usecase.ErrClinicNotFound:
			response.Error(w, http.StatusBadRequest, "One or more clinics do not exist", nil)
		default:
			response.InternalServerError(w, "Failed to create professional")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Professional created successfully", professional)
}

func (h *ProfessionalHandler) GetAllProfessionals(w http.ResponseWriter, r *http.Request) {
	professionals, err := h.professionalUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get professionals")
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", professionals)
}

func (h *ProfessionalHandler) GetProfessional(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	professional, err := h.professionalUsecase.GetByID(r.Context(), professionalID)
	if err != nil {
		if err == usecase.ErrProfessionalNotFound {
			response.NotFound(w, "Professional not found")
			return
		}
		response.InternalServerError(w, "Failed to get professional")
		return
	}

	response.Success(w, http.StatusOK, "Professional retrieved successfully", professional)
}

func (h *ProfessionalHandler) UpdateProfessional(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	var req dto.ProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.professionalUsecase.Update(r.Context(), professionalID, &req)
	if err != nil {
		switch err {
		case usecase.ErrProfessionalNotFound:
			response.NotFound(w, "Professional not found")
		case usecase.ErrSpecialtyNotFound:
			response.Error(w, http.StatusBadRequest, "Specialty not found", nil)
		case usecase.ErrClinicNotFound:
			response.Error(w, http.StatusBadRequest, "One or more clinics do not exist", nil)
		default:
			response.InternalServerError(w, "Failed to update professional")
		}
		return
	}

	response.Success(w, http.StatusOK, "Professional updated successfully", professional)
}

func (h *ProfessionalHandler) DeleteProfessional(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	if err := h.professionalUsecase.Delete(r.Context(), professionalID); err != nil {
		if err == usecase.ErrProfessionalNotFound {
			response.NotFound(w, "Professional not found")
			return
		}
		response.InternalServerError(w, "Failed to delete professional")
		return
	}

	response.Success(w, http.StatusOK, "Professional deleted successfully", nil)
}

func (h *ProfessionalHandler) GetProfessionalClinics(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	ids, err := h.professionalUsecase.GetClinicIDs(r.Context(), professionalID)
	if err != nil {
		if err == usecase.ErrProfessionalNotFound {
			response.NotFound(w, "Professional not found")
			return
		}
		response.InternalServerError(w, "Failed to get professional clinics")
		return
	}

	response.Success(w, http.StatusOK, "Professional clinics retrieved successfully", ids)
}

func (h *ProfessionalHandler) GetActiveProfessionals(w http.ResponseWriter, r *http.Request) {
	professionals, err := h.professionalUsecase.GetActive(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get professionals")
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", professionals)
}

func (h *ProfessionalHandler) GetProfessionalsBySpecialty(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	specialtyID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialty ID", nil)
		return
	}

	professionals, err := h.professionalUsecase.GetActiveBySpecialty(r.Context(), specialtyID)
	if err != nil {
		response.InternalServerError(w, "Failed to get professionals")
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", professionals)
}

func (h *ProfessionalHandler) GetProfessionalBySlug(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	professional, err := h.professionalUsecase.GetBySlug(r.Context(), vars["slug"])
	if err != nil {
		if err == usecase.ErrProfessionalNotFound {
			response.NotFound(w, "Professional not found")
			return
		}
		response.InternalServerError(w, "Failed to get professional")
		return
	}

	response.Success(w, http.StatusOK, "Professional retrieved successfully", professional)
}

// GetProfessionalContact serves contact details only behind authentication;
// the public professional payloads never carry them.
func (h *ProfessionalHandler) GetProfessionalContact(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	contact, err := h.professionalUsecase.GetContact(r.Context(), professionalID)
	if err != nil {
		if err == usecase.ErrProfessionalNotFound {
			response.NotFound(w, "Professional not found")
			return
		}
		response.InternalServerError(w, "Failed to get professional contact")
		return
	}

	response.Success(w, http.StatusOK, "Professional contact retrieved successfully", contact)
}
