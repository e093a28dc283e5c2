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

type NewsHandler struct {
	newsUsecase usecase.NewsUsecase
	validator   *validator.CustomValidator
}

func NewNewsHandler(newsUsecase usecase.NewsUsecase, validator *validator.CustomValidator) *NewsHandler {
	return &NewsHandler{
		newsUsecase: newsUsecase,
		validator:   validator,
	}
}

func (h *NewsHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var req dto.NewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	news, err := h.newsUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create news article")
		return
	}

	response.Success(w, http.StatusCreated, "News article created successfully", news)
}

func (h *NewsHandler) GetAllNews(w http.ResponseWriter, r *http.Request) {
	news, err := h.newsUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get news articles")
		return
	}

	response.Success(w, http.StatusOK, "News articles retrieved successfully", news)
}

func (h *NewsHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	newsID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid news ID", nil)
		return
	}

	news, err := h.newsUsecase.GetByID(r.Context(), newsID)
	if err != nil {
		if err == usecase.ErrNewsNotFound {
			response.NotFound(w, "News article not found")
			return
		}
		response.InternalServerError(w, "Failed to get news article")
		return
	}

	response.Success(w, http.StatusOK, "News article retrieved successfully", news)
}

func (h *NewsHandler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	newsID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid news ID", nil)
		return
	}

	var req dto.NewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	news, err := h.newsUsecase.Update(r.Context(), newsID, &req)
	if err != nil {
		if err == usecase.ErrNewsNotFound {
			response.NotFound(w, "News article not found")
			return
		}
		response.InternalServerError(w, "Failed to update news article")
		return
	}

	response.Success(w, http.StatusOK, "News article updated successfully", news)
}

func (h *NewsHandler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	newsID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid news ID", nil)
		return
	}

	if err := h.newsUsecase.Delete(r.Context(), newsID); err != nil {
		if err == usecase.ErrNewsNotFound {
			response.NotFound(w, "News article not found")
			return
		}
		response.InternalServerError(w, "Failed to delete news article")
		return
	}

	response.Success(w, http.StatusOK, "News article deleted successfully", nil)
}

func (h *NewsHandler) GetActiveNews(w http.ResponseWriter, r *http.Request) {
	news, err := h.newsUsecase.GetActive(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get news articles")
		return
	}

	response.Success(w, http.StatusOK, "News articles retrieved successfully", news)
}

func (h *NewsHandler) GetNewsBySlug(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	news, err := h.newsUsecase.GetBySlug(r.Context(), vars["slug"])
	if err != nil {
		if err == usecase.ErrNewsNotFound {
			response.NotFound(w, "News article not found")
			return
		}
		response.InternalServerError(w, "Failed to get news article")
		return
	}

	response.Success(w, http.StatusOK, "News article retrieved successfully", news)
}
