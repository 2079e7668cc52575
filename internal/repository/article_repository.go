package repository

import (
	"context"
	"time"

	"article-hub/internal/common/pagination"
	"article-hub/internal/domain/entity"
)

// NewArticle carries the fields supplied on creation. ID and timestamps are assigned by the store.
type NewArticle struct {
	Title    string
	Content  string
	PhotoURL *string
}

// DateFilter restricts a listing to articles created within [From, To]. Nil bounds are open.
type DateFilter struct {
	From *time.Time // Optional: created_at >= From
	To   *time.Time // Optional: created_at <= To
}

// IsZero reports whether the filter has no bound at all.
func (f DateFilter) IsZero() bool {
	return f.From == nil && f.To == nil
}

// PageQuery selects one page of articles ordered by created_at.
type PageQuery struct {
	Limit  int
	Offset int
	Sort   pagination.SortDirection
	Filter DateFilter
}

// ArticleRepository is the only component allowed to execute persistence operations on articles.
type ArticleRepository interface {
	// Create inserts a new article and returns the full generated row.
	Create(ctx context.Context, in NewArticle) (*entity.Article, error)
	// Get returns the article with the given ID.
	// Returns (nil, nil) if the article is not found.
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// ListPage returns one page of articles ordered by created_at in the requested direction.
	ListPage(ctx context.Context, q PageQuery) ([]*entity.Article, error)
	// Count returns the number of articles matching the filter.
	Count(ctx context.Context, filter DateFilter) (int64, error)
	// Update applies the supplied fields and refreshes updated_at.
	// Returns (nil, nil) if no row matches. Must not be called with an empty patch.
	Update(ctx context.Context, id int64, patch entity.ArticlePatch) (*entity.Article, error)
	// Delete removes the article and reports whether a row was actually deleted.
	Delete(ctx context.Context, id int64) (bool, error)
}
