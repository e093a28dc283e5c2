package usecase

import (
	"context"
	"testing"
	"time"

	"health-directory-api/internal/delivery/dto"
	"health-directory-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNewsRepo struct {
	articles map[uuid.UUID]*entity.News
	updated  *entity.News
}

func newFakeNewsRepo() *fakeNewsRepo {
	return &fakeNewsRepo{articles: map[uuid.UUID]*entity.News{}}
}

func (r *fakeNewsRepo) Create(db *gorm.DB, article *entity.News) error {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	r.articles[article.ID] = article
	return nil
}

func (r *fakeNewsRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.News, error) {
	return r.articles[id], nil
}

func (r *fakeNewsRepo) FindAll(db *gorm.DB) ([]entity.News, error) {
	var out []entity.News
	for _, a := range r.articles {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeNewsRepo) FindActive(db *gorm.DB) ([]entity.News, error) {
	var out []entity.News
	for _, a := range r.articles {
		if a.IsActive {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeNewsRepo) FindBySlug(db *gorm.DB, s string, activeOnly bool) (*entity.News, error) {
	for _, a := range r.articles {
		if a.Slug == s && (!activeOnly || a.IsActive) {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeNewsRepo) Update(db *gorm.DB, article *entity.News) error {
	r.updated = article
	r.articles[article.ID] = article
	return nil
}

func (r *fakeNewsRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := r.articles[id]; !ok {
		return 0, nil
	}
	delete(r.articles, id)
	return 1, nil
}

func TestNewsCreateDerivesSlugFromTitle(t *testing.T) {
	db, _ := newTestDB(t)
	repo := newFakeNewsRepo()
	uc := NewNewsUsecase(db, testLogger(), repo)

	published := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	resp, err := uc.Create(context.Background(), &dto.NewsRequest{
		Title:       "Campanha de Vacinação começa em Julho!",
		Summary:     "Postos abrem no sábado.",
		PublishedAt: &published,
	})
	require.NoError(t, err)

	assert.Equal(t, "campanha-de-vacinacao-comeca-em-julho", resp.Slug)
	assert.True(t, resp.IsActive)
	require.NotNil(t, resp.PublishedAt)
	assert.True(t, resp.PublishedAt.Equal(published))
}

func TestNewsGetBySlugSkipsInactive(t *testing.T) {
	db, _ := newTestDB(t)
	repo := newFakeNewsRepo()
	article := &entity.News{
		ID:       uuid.New(),
		Title:    "Notícia Arquivada",
		Slug:     "noticia-arquivada",
		IsActive: false,
	}
	repo.articles[article.ID] = article

	uc := NewNewsUsecase(db, testLogger(), repo)

	_, err := uc.GetBySlug(context.Background(), "noticia-arquivada")
	assert.ErrorIs(t, err, ErrNewsNotFound)
}

func TestNewsUpdateRecomputesSlug(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newFakeNewsRepo()
	createdAt := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	existing := &entity.News{
		ID:        uuid.New(),
		Title:     "Título Antigo",
		Slug:      "titulo-antigo",
		IsActive:  true,
		CreatedAt: createdAt,
	}
	repo.articles[existing.ID] = existing

	uc := NewNewsUsecase(db, testLogger(), repo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := uc.Update(context.Background(), existing.ID, &dto.NewsRequest{
		Title: "Título Novo",
	})
	require.NoError(t, err)

	assert.Equal(t, "titulo-novo", resp.Slug)
	assert.Equal(t, createdAt, repo.updated.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
