package usecase

import (
	"context"
	"errors"

	"health-directory-api/internal/converter"
	"health-directory-api/internal/delivery/dto"
	"health-directory-api/internal/domain/entity"
	"health-directory-api/internal/domain/repository"
	"health-directory-api/pkg/slug"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNewsNotFound = errors.New("news article not found")
)

type NewsUsecase interface {
	Create(ctx context.Context, req *dto.NewsRequest) (*dto.NewsResponse, error)
	GetAll(ctx context.Context) (*dto.NewsListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.NewsResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.NewsRequest) (*dto.NewsResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetActive(ctx context.Context) (*dto.NewsListResponse, error)
	GetBySlug(ctx context.Context, s string) (*dto.NewsResponse, error)
}

type newsUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	newsRepo repository.NewsRepository
}

func NewNewsUsecase(db *gorm.DB, log *logrus.Logger, newsRepo repository.NewsRepository) NewsUsecase {
	return &newsUsecase{db: db, log: log, newsRepo: newsRepo}
}

func (u *newsUsecase) Create(ctx context.Context, req *dto.NewsRequest) (*dto.NewsResponse, error) {
	article := newsFromRequest(req)

	if err := u.newsRepo.Create(u.db.WithContext(ctx), article); err != nil {
		u.log.Warnf("Failed to create news article: %+v", err)
		return nil, err
	}

	return converter.NewsToResponse(article), nil
}

func (u *newsUsecase) GetAll(ctx context.Context) (*dto.NewsListResponse, error) {
	articles, err := u.newsRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all news articles: %+v", err)
		return nil, err
	}

	responses := converter.NewsListToResponses(articles)
	return &dto.NewsListResponse{News: responses, Total: len(responses)}, nil
}

func (u *newsUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.NewsResponse, error) {
	article, err := u.newsRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find news article: %+v", err)
		return nil, err
	}
	if article == nil {
		return nil, ErrNewsNotFound
	}

	return converter.NewsToResponse(article), nil
}

func (u *newsUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.NewsRequest) (*dto.NewsResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.newsRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find news article: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrNewsNotFound
	}

	article := newsFromRequest(req)
	article.ID = existing.ID
	article.CreatedAt = existing.CreatedAt

	if err := u.newsRepo.Update(tx, article); err != nil {
		u.log.Warnf("Failed to update news article: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.NewsToResponse(article), nil
}

func (u *newsUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.newsRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete news article: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrNewsNotFound
	}
	return nil
}

func (u *newsUsecase) GetActive(ctx context.Context) (*dto.NewsListResponse, error) {
	articles, err := u.newsRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find active news articles: %+v", err)
		return nil, err
	}

	responses := converter.NewsListToResponses(articles)
	return &dto.NewsListResponse{News: responses, Total: len(responses)}, nil
}

func (u *newsUsecase) GetBySlug(ctx context.Context, s string) (*dto.NewsResponse, error) {
	article, err := u.newsRepo.FindBySlug(u.db.WithContext(ctx), s, true)
	if err != nil {
		u.log.Warnf("Failed to find news article by slug: %+v", err)
		return nil, err
	}
	if article == nil {
		return nil, ErrNewsNotFound
	}

	return converter.NewsToResponse(article), nil
}

// newsFromRequest builds the entity from a full draft, deriving the slug
// from the title on every save.
func newsFromRequest(req *dto.NewsRequest) *entity.News {
	return &entity.News{
		Title:       req.Title,
		Slug:        slug.Make(req.Title),
		Summary:     optional(req.Summary),
		Content:     optional(req.Content),
		ImageURL:    optional(req.ImageURL),
		Author:      optional(req.Author),
		IsActive:    activeOrDefault(req.IsActive),
		PublishedAt: req.PublishedAt,
	}
}
