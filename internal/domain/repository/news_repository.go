package repository

import (
	"health-directory-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsRepository interface {
	Create(db *gorm.DB, article *entity.News) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.News, error)
	FindAll(db *gorm.DB) ([]entity.News, error)
	FindActive(db *gorm.DB) ([]entity.News, error)
	FindBySlug(db *gorm.DB, slug string, activeOnly bool) (*entity.News, error)
	Update(db *gorm.DB, article *entity.News) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
