package repository

import (
	"errors"

	"health-directory-api/internal/domain/entity"
	domainRepo "health-directory-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type newsRepository struct{}

func NewNewsRepository() domainRepo.NewsRepository {
	return &newsRepository{}
}

func (r *newsRepository) Create(db *gorm.DB, article *entity.News) error {
	return db.Create(article).Error
}

func (r *newsRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.News, error) {
	var article entity.News
	err := db.Where("id = ?", id).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (r *newsRepository) FindAll(db *gorm.DB) ([]entity.News, error) {
	var articles []entity.News
	err := db.Order("created_at DESC").Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *newsRepository) FindActive(db *gorm.DB) ([]entity.News, error) {
	var articles []entity.News
	err := db.Where("is_active = ?", true).
		Order("published_at DESC NULLS LAST").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *newsRepository) FindBySlug(db *gorm.DB, slug string, activeOnly bool) (*entity.News, error) {
	query := db.Where("slug = ?", slug)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var article entity.News
	err := query.First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (r *newsRepository) Update(db *gorm.DB, article *entity.News) error {
	return db.Save(article).Error
}

func (r *newsRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.News{})
	return result.RowsAffected, result.Error
}
