package entity

import (
	"time"

	"github.com/google/uuid"
)

// News is an article. PublishedAt is nullable and drives the public sort
// order; Content is plain text rendered as paragraphs split on newlines.
type News struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug        string     `gorm:"type:varchar(255);not null;index" json:"slug"`
	Summary     *string    `gorm:"type:text" json:"summary,omitempty"`
	Content     *string    `gorm:"type:text" json:"content,omitempty"`
	ImageURL    *string    `gorm:"type:text" json:"image_url,omitempty"`
	Author      *string    `gorm:"type:varchar(255)" json:"author,omitempty"`
	IsActive    bool       `gorm:"not null;index" json:"is_active"`
	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (News) TableName() string {
	return "news"
}
