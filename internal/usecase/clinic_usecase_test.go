package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"health-directory-api/internal/delivery/dto"
	"health-directory-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens gorm over sqlmock so transaction boundaries are observable
// while repositories are faked out.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 mockDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type fakeClinicRepo struct {
	clinics map[uuid.UUID]*entity.Clinic
	created *entity.Clinic
	updated *entity.Clinic

	featuredLimit int
}

func newFakeClinicRepo() *fakeClinicRepo {
	return &fakeClinicRepo{clinics: map[uuid.UUID]*entity.Clinic{}}
}

func (r *fakeClinicRepo) Create(db *gorm.DB, clinic *entity.Clinic) error {
	if clinic.ID == uuid.Nil {
		clinic.ID = uuid.New()
	}
	r.created = clinic
	r.clinics[clinic.ID] = clinic
	return nil
}

func (r *fakeClinicRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Clinic, error) {
	return r.clinics[id], nil
}

func (r *fakeClinicRepo) FindAll(db *gorm.DB) ([]entity.Clinic, error) {
	var out []entity.Clinic
	for _, c := range r.clinics {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeClinicRepo) FindActive(db *gorm.DB) ([]entity.Clinic, error) {
	var out []entity.Clinic
	for _, c := range r.clinics {
		if c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeClinicRepo) FindFeatured(db *gorm.DB, limit int) ([]entity.Clinic, error) {
	r.featuredLimit = limit
	var out []entity.Clinic
	for _, c := range r.clinics {
		if c.IsActive && c.IsFeatured && len(out) < limit {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeClinicRepo) FindBySlug(db *gorm.DB, slug string, activeOnly bool) (*entity.Clinic, error) {
	for _, c := range r.clinics {
		if c.Slug == slug && (!activeOnly || c.IsActive) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeClinicRepo) Update(db *gorm.DB, clinic *entity.Clinic) error {
	r.updated = clinic
	r.clinics[clinic.ID] = clinic
	return nil
}

func (r *fakeClinicRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := r.clinics[id]; !ok {
		return 0, nil
	}
	delete(r.clinics, id)
	return 1, nil
}

type fakeStaffRepo struct {
	calls          []string
	deletedClinics []uuid.UUID
	inserted       []entity.ClinicProfessional
	insertErr      error
}

func (r *fakeStaffRepo) DeleteByClinic(db *gorm.DB, clinicID uuid.UUID) error {
	r.calls = append(r.calls, "delete")
	r.deletedClinics = append(r.deletedClinics, clinicID)
	return nil
}

func (r *fakeStaffRepo) DeleteByProfessional(db *gorm.DB, professionalID uuid.UUID) error {
	r.calls = append(r.calls, "delete")
	return nil
}

func (r *fakeStaffRepo) BulkInsert(db *gorm.DB, rows []entity.ClinicProfessional) error {
	r.calls = append(r.calls, "insert")
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, rows...)
	return nil
}

func (r *fakeStaffRepo) FindByClinic(db *gorm.DB, clinicID uuid.UUID) ([]entity.ClinicProfessional, error) {
	var out []entity.ClinicProfessional
	for _, row := range r.inserted {
		if row.ClinicID == clinicID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeStaffRepo) FindByProfessional(db *gorm.DB, professionalID uuid.UUID) ([]entity.ClinicProfessional, error) {
	return nil, nil
}

func TestClinicCreateReconcilesStaff(t *testing.T) {
	db, mock := newTestDB(t)
	clinicRepo := newFakeClinicRepo()
	staffRepo := &fakeStaffRepo{}
	uc := NewClinicUsecase(db, testLogger(), clinicRepo, staffRepo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	professionalIDs := []uuid.UUID{uuid.New(), uuid.New()}
	resp, err := uc.Create(context.Background(), &dto.ClinicRequest{
		Name:            "Clínica São Lucas",
		City:            "Curitiba",
		ProfessionalIDs: professionalIDs,
	})
	require.NoError(t, err)

	assert.Equal(t, "clinica-sao-lucas", resp.Slug)
	assert.True(t, resp.IsActive)

	// the staff set is replaced wholesale: delete first, then insert
	assert.Equal(t, []string{"delete", "insert"}, staffRepo.calls)
	assert.Equal(t, []uuid.UUID{resp.ID}, staffRepo.deletedClinics)
	require.Len(t, staffRepo.inserted, 2)
	for i, row := range staffRepo.inserted {
		assert.Equal(t, resp.ID, row.ClinicID)
		assert.Equal(t, professionalIDs[i], row.ProfessionalID)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClinicCreateEmptyStaffSkipsInsert(t *testing.T) {
	db, mock := newTestDB(t)
	clinicRepo := newFakeClinicRepo()
	staffRepo := &fakeStaffRepo{}
	uc := NewClinicUsecase(db, testLogger(), clinicRepo, staffRepo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	_, err := uc.Create(context.Background(), &dto.ClinicRequest{
		Name: "Vida Plena",
		City: "Maringá",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"delete"}, staffRepo.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClinicCreateRollsBackOnStaffError(t *testing.T) {
	db, mock := newTestDB(t)
	clinicRepo := newFakeClinicRepo()
	staffRepo := &fakeStaffRepo{insertErr: errors.New("insert failed")}
	uc := NewClinicUsecase(db, testLogger(), clinicRepo, staffRepo)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := uc.Create(context.Background(), &dto.ClinicRequest{
		Name:            "Clínica Norte",
		City:            "Londrina",
		ProfessionalIDs: []uuid.UUID{uuid.New()},
	})
	require.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClinicUpdateRecomputesSlugAndKeepsCreatedAt(t *testing.T) {
	db, mock := newTestDB(t)
	clinicRepo := newFakeClinicRepo()
	staffRepo := &fakeStaffRepo{}
	uc := NewClinicUsecase(db, testLogger(), clinicRepo, staffRepo)

	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	existing := &entity.Clinic{
		ID:        uuid.New(),
		Name:      "Clínica Antiga",
		Slug:      "clinica-antiga",
		City:      "Cascavel",
		IsActive:  true,
		CreatedAt: createdAt,
	}
	clinicRepo.clinics[existing.ID] = existing

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := uc.Update(context.Background(), existing.ID, &dto.ClinicRequest{
		Name: "Clínica Renovada",
		City: "Cascavel",
	})
	require.NoError(t, err)

	assert.Equal(t, "clinica-renovada", resp.Slug)
	assert.Equal(t, existing.ID, resp.ID)
	assert.Equal(t, createdAt, clinicRepo.updated.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClinicUpdateNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	uc := NewClinicUsecase(db, testLogger(), newFakeClinicRepo(), &fakeStaffRepo{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := uc.Update(context.Background(), uuid.New(), &dto.ClinicRequest{
		Name: "Qualquer",
		City: "Qualquer",
	})
	assert.ErrorIs(t, err, ErrClinicNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClinicDeleteNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	uc := NewClinicUsecase(db, testLogger(), newFakeClinicRepo(), &fakeStaffRepo{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := uc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrClinicNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClinicGetFeaturedLimit(t *testing.T) {
	db, _ := newTestDB(t)
	clinicRepo := newFakeClinicRepo()
	uc := NewClinicUsecase(db, testLogger(), clinicRepo, &fakeStaffRepo{})

	for i := 0; i < 5; i++ {
		c := &entity.Clinic{ID: uuid.New(), Name: "Clínica", IsActive: true, IsFeatured: true}
		clinicRepo.clinics[c.ID] = c
	}

	resp, err := uc.GetFeatured(context.Background())
	require.NoError(t, err)

	assert.Equal(t, FeaturedClinicsLimit, clinicRepo.featuredLimit)
	assert.Len(t, resp.Clinics, FeaturedClinicsLimit)
}
