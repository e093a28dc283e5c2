package dto

import (
	"time"

	"github.com/google/uuid"
)

// NewsRequest is the full editable draft of an article; the slug is derived
// server-side from Title. PublishedAt empty means the article is not dated
// for public ordering.
type NewsRequest struct {
	Title       string     `json:"title" validate:"required,min=2"`
	Summary     string     `json:"summary" validate:"omitempty"`
	Content     string     `json:"content" validate:"omitempty"`
	ImageURL    string     `json:"image_url" validate:"omitempty"`
	Author      string     `json:"author" validate:"omitempty"`
	IsActive    *bool      `json:"is_active" validate:"omitempty"`
	PublishedAt *time.Time `json:"published_at" validate:"omitempty"`
}

type NewsResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Summary     string     `json:"summary,omitempty"`
	Content     string     `json:"content,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Author      string     `json:"author,omitempty"`
	IsActive    bool       `json:"is_active"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type NewsListResponse struct {
	News  []NewsResponse `json:"news"`
	Total int            `json:"total"`
}
