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

type fakePartnerRepo struct {
	partners map[uuid.UUID]*entity.Partner
	created  *entity.Partner
	updated  *entity.Partner
}

func newFakePartnerRepo() *fakePartnerRepo {
	return &fakePartnerRepo{partners: map[uuid.UUID]*entity.Partner{}}
}

func (r *fakePartnerRepo) Create(db *gorm.DB, partner *entity.Partner) error {
	if partner.ID == uuid.Nil {
		partner.ID = uuid.New()
	}
	r.created = partner
	r.partners[partner.ID] = partner
	return nil
}

func (r *fakePartnerRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Partner, error) {
	return r.partners[id], nil
}

func (r *fakePartnerRepo) FindAll(db *gorm.DB) ([]entity.Partner, error) {
	var out []entity.Partner
	for _, p := range r.partners {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePartnerRepo) FindActive(db *gorm.DB) ([]entity.Partner, error) {
	var out []entity.Partner
	for _, p := range r.partners {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePartnerRepo) Update(db *gorm.DB, partner *entity.Partner) error {
	r.updated = partner
	r.partners[partner.ID] = partner
	return nil
}

func (r *fakePartnerRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := r.partners[id]; !ok {
		return 0, nil
	}
	delete(r.partners, id)
	return 1, nil
}

func TestPartnerCreate(t *testing.T) {
	db, _ := newTestDB(t)
	repo := newFakePartnerRepo()
	uc := NewPartnerUsecase(db, testLogger(), repo)

	resp, err := uc.Create(context.Background(), &dto.PartnerRequest{
		CompanyName:  "Laboratório Central",
		Description:  "Análises clínicas",
		BusinessArea: "Laboratório",
	})
	require.NoError(t, err)

	assert.Equal(t, "Laboratório Central", resp.CompanyName)
	assert.Equal(t, "Laboratório", resp.BusinessArea)
	assert.True(t, resp.IsActive)
}

func TestPartnerCreateRejectsUnknownBusinessArea(t *testing.T) {
	db, _ := newTestDB(t)
	repo := newFakePartnerRepo()
	uc := NewPartnerUsecase(db, testLogger(), repo)

	_, err := uc.Create(context.Background(), &dto.PartnerRequest{
		CompanyName:  "Empresa X",
		BusinessArea: "Consultoria",
	})
	assert.ErrorIs(t, err, ErrInvalidBusinessArea)

	// nothing is persisted when the business area check fails
	assert.Nil(t, repo.created)
}

func TestPartnerUpdateRejectsUnknownBusinessArea(t *testing.T) {
	db, _ := newTestDB(t)
	repo := newFakePartnerRepo()
	partner := &entity.Partner{ID: uuid.New(), CompanyName: "Farmácia Boa Saúde", BusinessArea: "Farmácia", IsActive: true}
	repo.partners[partner.ID] = partner

	uc := NewPartnerUsecase(db, testLogger(), repo)

	_, err := uc.Update(context.Background(), partner.ID, &dto.PartnerRequest{
		CompanyName:  "Farmácia Boa Saúde",
		BusinessArea: "Varejo",
	})
	assert.ErrorIs(t, err, ErrInvalidBusinessArea)
	assert.Nil(t, repo.updated)
}

func TestPartnerDeleteNotFound(t *testing.T) {
	db, _ := newTestDB(t)
	uc := NewPartnerUsecase(db, testLogger(), newFakePartnerRepo())

	err := uc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPartnerNotFound)
}

func TestPartnerGetActiveFiltersInactive(t *testing.T) {
	db, _ := newTestDB(t)
	repo := newFakePartnerRepo()
	active := &entity.Partner{ID: uuid.New(), CompanyName: "Telemed", BusinessArea: "Telessaúde", IsActive: true}
	inactive := &entity.Partner{ID: uuid.New(), CompanyName: "Antiga", BusinessArea: "Outros", IsActive: false}
	repo.partners[active.ID] = active
	repo.partners[inactive.ID] = inactive

	uc := NewPartnerUsecase(db, testLogger(), repo)

	resp, err := uc.GetActive(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Partners, 1)
	assert.Equal(t, "Telemed", resp.Partners[0].CompanyName)
}
