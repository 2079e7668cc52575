// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"article-hub/internal/domain/entity"
	"article-hub/internal/repository"
)

// ArticleQueryBuilder assembles the dynamic SQL fragments used by ArticleRepo.
// It performs no I/O; every fragment uses numbered placeholders ($1, $2, ...)
// starting from the index supplied by the caller.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildSetClause builds the assignment list of an UPDATE from the fields present in patch.
// Columns are emitted in a fixed order (title, content, photo_url) with sequential
// placeholders starting at startIndex. It returns the clause without the SET keyword,
// the matching arguments, and the next free placeholder index.
// An empty patch yields an empty clause and startIndex unchanged.
func (qb *ArticleQueryBuilder) BuildSetClause(patch entity.ArticlePatch, startIndex int) (clause string, args []any, nextIndex int) {
	var assignments []string
	idx := startIndex

	add := func(column string, value any) {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Content != nil {
		add("content", *patch.Content)
	}
	if patch.PhotoURL.Set {
		add("photo_url", nullableArg(patch.PhotoURL.Value))
	}

	return strings.Join(assignments, ", "), args, idx
}

// BuildWhereClause builds the created_at range condition for listings and counts.
// Both bounds are inclusive. Returns an empty clause when the filter has no bound.
func (qb *ArticleQueryBuilder) BuildWhereClause(filter repository.DateFilter, startIndex int) (clause string, args []any, nextIndex int) {
	var conditions []string
	idx := startIndex

	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", idx))
		args = append(args, filter.From.UTC())
		idx++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", idx))
		args = append(args, filter.To.UTC())
		idx++
	}

	if len(conditions) == 0 {
		return "", nil, idx
	}
	return "WHERE " + strings.Join(conditions, " AND "), args, idx
}
