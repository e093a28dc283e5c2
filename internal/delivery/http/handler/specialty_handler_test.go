package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"health-directory-api/internal/delivery/dto"
	"health-directory-api/internal/usecase"
	"health-directory-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpecialtyUsecase struct {
	createFn func(ctx context.Context, req *dto.SpecialtyRequest) (*dto.SpecialtyResponse, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*dto.SpecialtyResponse, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeSpecialtyUsecase) Create(ctx context.Context, req *dto.SpecialtyRequest) (*dto.SpecialtyResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeSpecialtyUsecase) GetAll(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	return &dto.SpecialtyListResponse{Specialties: []dto.SpecialtyResponse{}}, nil
}

func (f *fakeSpecialtyUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.SpecialtyResponse, error) {
	return f.getFn(ctx, id)
}

func (f *fakeSpecialtyUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.SpecialtyRequest) (*dto.SpecialtyResponse, error) {
	return nil, nil
}

func (f *fakeSpecialtyUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return f.deleteFn(ctx, id)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateSpecialty(t *testing.T) {
	uc := &fakeSpecialtyUsecase{
		createFn: func(ctx context.Context, req *dto.SpecialtyRequest) (*dto.SpecialtyResponse, error) {
			return &dto.SpecialtyResponse{ID: uuid.New(), Name: req.Name, Icon: "heart"}, nil
		},
	}
	h := NewSpecialtyHandler(uc, validator.NewValidator())

	payload := bytes.NewBufferString(`{"name":"Cardiologia","icon":"heart"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/specialties", payload)
	rec := httptest.NewRecorder()

	h.CreateSpecialty(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, true, body["success"])
}

func TestCreateSpecialtyValidationFailure(t *testing.T) {
	h := NewSpecialtyHandler(&fakeSpecialtyUsecase{}, validator.NewValidator())

	payload := bytes.NewBufferString(`{"icon":"heart"}`)
	req := httptest.NewRequest(http.MethodPost, "/admin/specialties", payload)
	rec := httptest.NewRecorder()

	h.CreateSpecialty(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestDeleteSpecialtyInUse(t *testing.T) {
	uc := &fakeSpecialtyUsecase{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			return usecase.ErrSpecialtyInUse
		},
	}
	h := NewSpecialtyHandler(uc, validator.NewValidator())

	req := httptest.NewRequest(http.MethodDelete, "/admin/specialties/x", nil)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.New().String()})
	rec := httptest.NewRecorder()

	h.DeleteSpecialty(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteSpecialtyNotFound(t *testing.T) {
	uc := &fakeSpecialtyUsecase{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			return usecase.ErrSpecialtyNotFound
		},
	}
	h := NewSpecialtyHandler(uc, validator.NewValidator())

	req := httptest.NewRequest(http.MethodDelete, "/admin/specialties/x", nil)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.New().String()})
	rec := httptest.NewRecorder()

	h.DeleteSpecialty(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSpecialtyInvalidID(t *testing.T) {
	h := NewSpecialtyHandler(&fakeSpecialtyUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodDelete, "/admin/specialties/not-a-uuid", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()

	h.DeleteSpecialty(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
