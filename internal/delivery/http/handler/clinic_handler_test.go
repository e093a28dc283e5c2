package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"health-directory-api/internal/delivery/dto"
	"health-directory-api/internal/usecase"
	"health-directory-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type fakeClinicUsecase struct {
	createFn    func(ctx context.Context, req *dto.ClinicRequest) (*dto.ClinicResponse, error)
	getBySlugFn func(ctx context.Context, s string) (*dto.ClinicResponse, error)
}

func (f *fakeClinicUsecase) Create(ctx context.Context, req *dto.ClinicRequest) (*dto.ClinicResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeClinicUsecase) GetAll(ctx context.Context) (*dto.ClinicListResponse, error) {
	return &dto.ClinicListResponse{Clinics: []dto.ClinicResponse{}}, nil
}

func (f *fakeClinicUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ClinicResponse, error) {
	return nil, usecase.ErrClinicNotFound
}

func (f *fakeClinicUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.ClinicRequest) (*dto.ClinicResponse, error) {
	return nil, usecase.ErrClinicNotFound
}

func (f *fakeClinicUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return usecase.ErrClinicNotFound
}

func (f *fakeClinicUsecase) GetProfessionalIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

func (f *fakeClinicUsecase) GetActive(ctx context.Context) (*dto.ClinicListResponse, error) {
	return &dto.ClinicListResponse{Clinics: []dto.ClinicResponse{}}, nil
}

func (f *fakeClinicUsecase) GetFeatured(ctx context.Context) (*dto.ClinicListResponse, error) {
	return &dto.ClinicListResponse{Clinics: []dto.ClinicResponse{}}, nil
}

func (f *fakeClinicUsecase) GetBySlug(ctx context.Context, s string) (*dto.ClinicResponse, error) {
	return f.getBySlugFn(ctx, s)
}

func TestGetClinicBySlug(t *testing.T) {
	uc := &fakeClinicUsecase{
		getBySlugFn: func(ctx context.Context, s string) (*dto.ClinicResponse, error) {
			assert.Equal(t, "clinica-central", s)
			return &dto.ClinicResponse{ID: uuid.New(), Name: "Clínica Central", Slug: s, City: "Campinas"}, nil
		},
	}
	h := NewClinicHandler(uc, validator.NewValidator())

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/clinics/clinica-central", nil), map[string]string{
		"slug": "clinica-central",
	})
	rec := httptest.NewRecorder()

	h.GetClinicBySlug(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "clinica-central", data["slug"])
}

func TestGetClinicBySlugNotFound(t *testing.T) {
	uc := &fakeClinicUsecase{
		getBySlugFn: func(ctx context.Context, s string) (*dto.ClinicResponse, error) {
			return nil, usecase.ErrClinicNotFound
		},
	}
	h := NewClinicHandler(uc, validator.NewValidator())

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/clinics/nope", nil), map[string]string{
		"slug": "nope",
	})
	rec := httptest.NewRecorder()

	h.GetClinicBySlug(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateClinicUnknownProfessional(t *testing.T) {
	uc := &fakeClinicUsecase{
		createFn: func(ctx context.Context, req *dto.ClinicRequest) (*dto.ClinicResponse, error) {
			return nil, usecase.ErrProfessionalNotFound
		},
	}
	h := NewClinicHandler(uc, validator.NewValidator())

	payload := []byte(`{"name": "Clínica Central", "city": "Campinas", "professional_ids": ["` + uuid.NewString() + `"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/clinics", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	h.CreateClinic(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "One or more professionals do not exist", body["message"])
}

func TestCreateClinicValidationFailure(t *testing.T) {
	h := NewClinicHandler(&fakeClinicUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/clinics", bytes.NewReader([]byte(`{"name": "X"}`)))
	rec := httptest.NewRecorder()

	h.CreateClinic(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
