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

type HealthPlanHandler struct {
	planUsecase usecase.HealthPlanUsecase
	validator   *validator.CustomValidator
}

func NewHealthPlanHandler(planUsecase usecase.HealthPlanUsecase, validator *validator.CustomValidator) *HealthPlanHandler {
	return &HealthPlanHandler{
		planUsecase: planUsecase,
		validator:   validator,
	}
}

func (h *HealthPlanHandler) CreateHealthPlan(w http.ResponseWriter, r *http.Request) {
	var req dto.HealthPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plan, err := h.planUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create health plan")
		return
	}

	response.Success(w, http.StatusCreated, "Health plan created successfully", plan)
}

func (h *HealthPlanHandler) GetAllHealthPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get health plans")
		return
	}

	response.Success(w, http.StatusOK, "Health plans retrieved successfully", plans)
}

func (h *HealthPlanHandler) GetHealthPlan(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	planID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid health plan ID", nil)
		return
	}

	plan, err := h.planUsecase.GetByID(r.Context(), planID)
	if err != nil {
		if err == usecase.ErrHealthPlanNotFound {
			response.NotFound(w, "Health plan not found")
			return
		}
		response.InternalServerError(w, "Failed to get health plan")
		return
	}

	response.Success(w, http.StatusOK, "Health plan retrieved successfully", plan)
}

func (h *HealthPlanHandler) UpdateHealthPlan(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	planID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid health plan ID", nil)
		return
	}

	var req dto.HealthPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	plan, err := h.planUsecase.Update(r.Context(), planID, &req)
	if err != nil {
		if err == usecase.ErrHealthPlanNotFound {
			response.NotFound(w, "Health plan not found")
			return
		}
		response.InternalServerError(w, "Failed to update health plan")
		return
	}

	response.Success(w, http.StatusOK, "Health plan updated successfully", plan)
}

func (h *HealthPlanHandler) DeleteHealthPlan(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	planID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid health plan ID", nil)
		return
	}

	if err := h.planUsecase.Delete(r.Context(), planID); err != nil {
		if err == usecase.ErrHealthPlanNotFound {
			response.NotFound(w, "Health plan not found")
			return
		}
		response.InternalServerError(w, "Failed to delete health plan")
		return
	}

	response.Success(w, http.StatusOK, "Health plan deleted successfully", nil)
}

func (h *HealthPlanHandler) GetActiveHealthPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planUsecase.GetActive(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get health plans")
		return
	}

	response.Success(w, http.StatusOK, "Health plans retrieved successfully", plans)
}
