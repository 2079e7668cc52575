package db

import (
	"context"
	"database/sql"
	"fmt"
)

var upStatements = []string{
	`
CREATE TABLE IF NOT EXISTS articles (
    id          BIGSERIAL PRIMARY KEY,
    title       TEXT NOT NULL,
    content     TEXT NOT NULL,
    photo_url   TEXT,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT chk_articles_title_not_blank CHECK (btrim(title) <> ''),
    CONSTRAINT chk_articles_content_not_blank CHECK (btrim(content) <> ''),
    CONSTRAINT chk_articles_updated_after_created CHECK (updated_at >= created_at)
)`,
	// listing and date-range search both order and filter on created_at
	`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC, id DESC)`,
}

var downStatements = []string{
	`DROP INDEX IF EXISTS idx_articles_created_at`,
	`DROP TABLE IF EXISTS articles`,
}

// MigrateUp creates the articles table and its indexes. It is idempotent.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	return execAll(ctx, db, upStatements)
}

// MigrateDown drops everything MigrateUp created.
// Use with caution: this deletes all articles.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	return execAll(ctx, db, downStatements)
}

func execAll(ctx context.Context, db *sql.DB, stmts []string) error {
	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}
	return nil
}
