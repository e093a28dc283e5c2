package converter

import (
	"health-directory-api/internal/delivery/dto"
	"health-directory-api/internal/domain/entity"
)

func NewsToResponse(article *entity.News) *dto.NewsResponse {
	if article == nil {
		return nil
	}

	return &dto.NewsResponse{
		ID:          article.ID,
		Title:       article.Title,
		Slug:        article.Slug,
		Summary:     strVal(article.Summary),
		Content:     strVal(article.Content),
		ImageURL:    strVal(article.ImageURL),
		Author:      strVal(article.Author),
		IsActive:    article.IsActive,
		PublishedAt: article.PublishedAt,
	}
}

func NewsListToResponses(articles []entity.News) []dto.NewsResponse {
	responses := make([]dto.NewsResponse, len(articles))
	for i := range articles {
		responses[i] = *NewsToResponse(&articles[i])
	}
	return responses
}
