package usecase

import (
	"context"
	"testing"

	"health-directory-api/internal/delivery/dto"
	"health-directory-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSpecialtyRepo struct {
	specialties map[uuid.UUID]*entity.Specialty
	created     *entity.Specialty
	updated     *entity.Specialty
	deleted     []uuid.UUID
}

func newFakeSpecialtyRepo() *fakeSpecialtyRepo {
	return &fakeSpecialtyRepo{specialties: map[uuid.UUID]*entity.Specialty{}}
}

func (r *fakeSpecialtyRepo) Create(db *gorm.DB, specialty *entity.Specialty) error {
	if specialty.ID == uuid.Nil {
		specialty.ID = uuid.New()
	}
	r.created = specialty
	r.specialties[specialty.ID] = specialty
	return nil
}

func (r *fakeSpecialtyRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Specialty, error) {
	return r.specialties[id], nil
}

func (r *fakeSpecialtyRepo) FindAll(db *gorm.DB) ([]entity.Specialty, error) {
	var out []entity.Specialty
	for _, s := range r.specialties {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSpecialtyRepo) Update(db *gorm.DB, specialty *entity.Specialty) error {
	r.updated = specialty
	r.specialties[specialty.ID] = specialty
	return nil
}

func (r *fakeSpecialtyRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := r.specialties[id]; !ok {
		return 0, nil
	}
	delete(r.specialties, id)
	r.deleted = append(r.deleted, id)
	return 1, nil
}

// fakeProfessionalCounter only serves CountBySpecialty; the other methods
// are unused by the specialty usecase.
type fakeProfessionalCounter struct {
	counts map[uuid.UUID]int64
}

func (r *fakeProfessionalCounter) Create(db *gorm.DB, p *entity.Professional) error { return nil }
func (r *fakeProfessionalCounter) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Professional, error) {
	return nil, nil
}
func (r *fakeProfessionalCounter) FindAll(db *gorm.DB) ([]entity.Professional, error) {
	return nil, nil
}
func (r *fakeProfessionalCounter) FindActive(db *gorm.DB) ([]entity.Professional, error) {
	return nil, nil
}
func (r *fakeProfessionalCounter) FindActiveBySpecialty(db *gorm.DB, specialtyID uuid.UUID) ([]entity.Professional, error) {
	return nil, nil
}
func (r *fakeProfessionalCounter) FindBySlug(db *gorm.DB, slug string, activeOnly bool) (*entity.Professional, error) {
	return nil, nil
}
func (r *fakeProfessionalCounter) CountBySpecialty(db *gorm.DB, specialtyID uuid.UUID) (int64, error) {
	return r.counts[specialtyID], nil
}
func (r *fakeProfessionalCounter) Update(db *gorm.DB, p *entity.Professional) error { return nil }
func (r *fakeProfessionalCounter) Delete(db *gorm.DB, id uuid.UUID) (int64, error)  { return 0, nil }

func TestSpecialtyCreateNormalizesIcon(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newFakeSpecialtyRepo()
	uc := NewSpecialtyUsecase(db, testLogger(), repo, &fakeProfessionalCounter{})

	resp, err := uc.Create(context.Background(), &dto.SpecialtyRequest{
		Name: "Cardiologia",
		Icon: "heart",
	})
	require.NoError(t, err)
	assert.Equal(t, "heart", resp.Icon)

	resp, err = uc.Create(context.Background(), &dto.SpecialtyRequest{
		Name: "Dermatologia",
		Icon: "no-such-icon",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSpecialtyIcon, resp.Icon)

	resp, err = uc.Create(context.Background(), &dto.SpecialtyRequest{
		Name: "Pediatria",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSpecialtyIcon, resp.Icon)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpecialtyDeleteRefusedWhileInUse(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newFakeSpecialtyRepo()
	specialty := &entity.Specialty{ID: uuid.New(), Name: "Ortopedia", Icon: "bone"}
	repo.specialties[specialty.ID] = specialty

	counter := &fakeProfessionalCounter{counts: map[uuid.UUID]int64{specialty.ID: 2}}
	uc := NewSpecialtyUsecase(db, testLogger(), repo, counter)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := uc.Delete(context.Background(), specialty.ID)
	assert.ErrorIs(t, err, ErrSpecialtyInUse)

	// the specialty must survive a refused delete
	assert.Contains(t, repo.specialties, specialty.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpecialtyDeleteUnlinked(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newFakeSpecialtyRepo()
	specialty := &entity.Specialty{ID: uuid.New(), Name: "Nutrição", Icon: "flower"}
	repo.specialties[specialty.ID] = specialty

	uc := NewSpecialtyUsecase(db, testLogger(), repo, &fakeProfessionalCounter{counts: map[uuid.UUID]int64{}})

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uc.Delete(context.Background(), specialty.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{specialty.ID}, repo.deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpecialtyDeleteNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	uc := NewSpecialtyUsecase(db, testLogger(), newFakeSpecialtyRepo(), &fakeProfessionalCounter{counts: map[uuid.UUID]int64{}})

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := uc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSpecialtyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
