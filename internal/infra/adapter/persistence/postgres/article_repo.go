package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"article-hub/internal/domain/entity"
	"article-hub/internal/observability/metrics"
	"article-hub/internal/repository"
)

type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

func (repo *ArticleRepo) Create(ctx context.Context, in repository.NewArticle) (*entity.Article, error) {
	defer observe("create", time.Now())

	const query = `
INSERT INTO articles (title, content, photo_url)
VALUES ($1, $2, $3)
RETURNING ` + articleColumns

	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, in.Title, in.Content, nullableArg(in.PhotoURL)))
	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	defer observe("get", time.Now())

	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`

	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

// ListPage retrieves one page of articles ordered by created_at, with id as tie-breaker.
func (repo *ArticleRepo) ListPage(ctx context.Context, q repository.PageQuery) ([]*entity.Article, error) {
	defer observe("list_page", time.Now())

	whereClause, args, idx := repo.queryBuilder.BuildWhereClause(q.Filter, 1)
	dir := q.Sort.SQL()

	query := fmt.Sprintf(`
SELECT %s
FROM articles
%s
ORDER BY created_at %s, id %s
LIMIT $%d OFFSET $%d`, articleColumns, whereClause, dir, dir, idx, idx+1)
	args = append(args, q.Limit, q.Offset)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPage: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, q.Limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPage: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPage: rows.Err: %w", err)
	}
	return articles, nil
}

// Count returns the number of articles matching the filter.
// Uses the same WHERE clause as ListPage so totals and pages stay consistent.
func (repo *ArticleRepo) Count(ctx context.Context, filter repository.DateFilter) (int64, error) {
	defer observe("count", time.Now())

	whereClause, args, _ := repo.queryBuilder.BuildWhereClause(filter, 1)
	query := "SELECT COUNT(*) FROM articles " + whereClause

	var c count
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&c); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return c.Value, nil
}

// Update applies only the fields present in patch and refreshes updated_at.
func (repo *ArticleRepo) Update(ctx context.Context, id int64, patch entity.ArticlePatch) (*entity.Article, error) {
	defer observe("update", time.Now())

	setClause, args, idx := repo.queryBuilder.BuildSetClause(patch, 1)
	if setClause == "" {
		return nil, fmt.Errorf("Update: %w", entity.NewValidationError("body", "at least one field must be provided"))
	}

	query := fmt.Sprintf(`
UPDATE articles
SET %s, updated_at = now()
WHERE id = $%d
RETURNING %s`, setClause, idx, articleColumns)
	args = append(args, id)

	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	defer observe("delete", time.Now())

	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("Delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	return n > 0, nil
}

func nullableArg(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func observe(operation string, start time.Time) {
	metrics.RecordOperationDuration(operation, time.Since(start))
}
