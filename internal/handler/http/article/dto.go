// Package article provides the HTTP handlers for the /articles routes.
package article

import (
	"time"

	"article-hub/internal/domain/entity"
)

// DTO is the wire representation of an article.
type DTO struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	PhotoURL  *string   `json:"photoUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		PhotoURL:  a.PhotoURL,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toDTOs(as []*entity.Article) []DTO {
	out := make([]DTO, 0, len(as))
	for _, a := range as {
		out = append(out, toDTO(a))
	}
	return out
}
