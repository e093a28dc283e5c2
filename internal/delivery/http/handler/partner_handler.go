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

type PartnerHandler struct {
	partnerUsecase usecase.PartnerUsecase
	validator      *validator.CustomValidator
}

func NewPartnerHandler(partnerUsecase usecase.PartnerUsecase, validator *validator.CustomValidator) *PartnerHandler {
	return &PartnerHandler{
		partnerUsecase: partnerUsecase,
		validator:      validator,
	}
}

func (h *PartnerHandler) CreatePartner(w http.ResponseWriter, r *http.Request) {
	var req dto.PartnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	partner, err := h.partnerUsecase.Create(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrInvalidBusinessArea {
			response.Error(w, http.StatusBadRequest, "Business area is not recognized", nil)
			return
		}
		response.InternalServerError(w, "Failed to create partner")
		return
	}

	response.Success(w, http.StatusCreated, "Partner created successfully", partner)
}

func (h *PartnerHandler) GetAllPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.partnerUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get partners")
		return
	}

	response.Success(w, http.StatusOK, "Partners retrieved successfully", partners)
}

func (h *PartnerHandler) GetPartner(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	partnerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid partner ID", nil)
		return
	}

	partner, err := h.partnerUsecase.GetByID(r.Context(), partnerID)
	if err != nil {
		if err == usecase.ErrPartnerNotFound {
			response.NotFound(w, "Partner not found")
			return
		}
		response.InternalServerError(w, "Failed to get partner")
		return
	}

	response.Success(w, http.StatusOK, "Partner retrieved successfully", partner)
}

func (h *PartnerHandler) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	partnerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid partner ID", nil)
		return
	}

	var req dto.PartnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	partner, err := h.partnerUsecase.Update(r.Context(), partnerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPartnerNotFound:
			response.NotFound(w, "Partner not found")
		case usecase.ErrInvalidBusinessArea:
			response.Error(w, http.StatusBadRequest, "Business area is not recognized", nil)
		default:
			response.InternalServerError(w, "Failed to update partner")
		}
		return
	}

	response.Success(w, http.StatusOK, "Partner updated successfully", partner)
}

func (h *PartnerHandler) DeletePartner(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	partnerID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid partner ID", nil)
		return
	}

	if err := h.partnerUsecase.Delete(r.Context(), partnerID); err != nil {
		if err == usecase.ErrPartnerNotFound {
			response.NotFound(w, "Partner not found")
			return
		}
		response.InternalServerError(w, "Failed to delete partner")
		return
	}

	response.Success(w, http.StatusOK, "Partner deleted successfully", nil)
}

func (h *PartnerHandler) GetActivePartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.partnerUsecase.GetActive(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get partners")
		return
	}

	response.Success(w, http.StatusOK, "Partners retrieved successfully", partners)
}
