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

type SpecialtyHandler struct {
	specialtyUsecase usecase.SpecialtyUsecase
	validator        *validator.CustomValidator
}

func NewSpecialtyHandler(specialtyUsecase usecase.SpecialtyUsecase, validator *validator.CustomValidator) *SpecialtyHandler {
	return &SpecialtyHandler{
		specialtyUsecase: specialtyUsecase,
		validator:        validator,
	}
}

func (h *SpecialtyHandler) CreateSpecialty(w http.ResponseWriter, r *http.Request) {
	var req dto.SpecialtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialty, err := h.specialtyUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create specialty")
		return
	}

	response.Success(w, http.StatusCreated, "Specialty created successfully", specialty)
}

func (h *SpecialtyHandler) GetAllSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.specialtyUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

func (h *SpecialtyHandler) GetSpecialty(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	specialtyID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialty ID", nil)
		return
	}

	specialty, err := h.specialtyUsecase.GetByID(r.Context(), specialtyID)
	if err != nil {
		if err == usecase.ErrSpecialtyNotFound {
			response.NotFound(w, "Specialty not found")
			return
		}
		response.InternalServerError(w, "Failed to get specialty")
		return
	}

	response.Success(w, http.StatusOK, "Specialty retrieved successfully", specialty)
}

func (h *SpecialtyHandler) UpdateSpecialty(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	specialtyID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialty ID", nil)
		return
	}

	var req dto.SpecialtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	specialty, err := h.specialtyUsecase.Update(r.Context(), specialtyID, &req)
	if err != nil {
		if err == usecase.ErrSpecialtyNotFound {
			response.NotFound(w, "Specialty not found")
			return
		}
		response.InternalServerError(w, "Failed to update specialty")
		return
	}

	response.Success(w, http.StatusOK, "Specialty updated successfully", specialty)
}

func (h *SpecialtyHandler) DeleteSpecialty(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	specialtyID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialty ID", nil)
		return
	}

	if err := h.specialtyUsecase.Delete(r.Context(), specialtyID); err != nil {
		switch err {
		case usecase.ErrSpecialtyNotFound:
			response.NotFound(w, "Specialty not found")
		case usecase.ErrSpecialtyInUse:
			response.Conflict(w, "Specialty has linked professionals; remove or reassign them first")
		default:
			response.InternalServerError(w, "Failed to delete specialty")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialty deleted successfully", nil)
}
