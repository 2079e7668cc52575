package postgres

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"article-hub/internal/domain/entity"
)

// articleColumns is the column list every SELECT/RETURNING in this package scans with scanArticle.
const articleColumns = "id, title, content, photo_url, created_at, updated_at"

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// articleRow mirrors one row of the articles table.
type articleRow struct {
	ID        int64
	Title     string
	Content   string
	PhotoURL  sql.NullString
	CreatedAt timestamp
	UpdatedAt timestamp
}

// scanArticle maps a row selected with articleColumns onto an entity.
func scanArticle(s rowScanner) (*entity.Article, error) {
	var row articleRow
	if err := s.Scan(&row.ID, &row.Title, &row.Content, &row.PhotoURL, &row.CreatedAt, &row.UpdatedAt); err != nil {
		return nil, err
	}
	return row.toEntity(), nil
}

func (r articleRow) toEntity() *entity.Article {
	a := &entity.Article{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: r.CreatedAt.Time,
		UpdatedAt: r.UpdatedAt.Time,
	}
	if r.PhotoURL.Valid {
		photo := r.PhotoURL.String
		a.PhotoURL = &photo
	}
	return a
}

// timestamp accepts the representations drivers use for timestamptz columns
// (time.Time, or text in RFC 3339 / Postgres layout) and normalizes them to UTC.
type timestamp struct {
	Time time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Scan implements sql.Scanner.
func (t *timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v.UTC()
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case nil:
		return fmt.Errorf("timestamp: unexpected NULL")
	default:
		return fmt.Errorf("timestamp: unsupported type %T", src)
	}
}

func (t *timestamp) parse(s string) error {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("timestamp: cannot parse %q", s)
}

// count accepts COUNT(*) results delivered as integers or numeric strings.
type count struct {
	Value int64
}

// Scan implements sql.Scanner.
func (c *count) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		c.Value = v
	case int32:
		c.Value = int64(v)
	case int:
		c.Value = int64(v)
	case float64:
		c.Value = int64(v)
	case string:
		return c.parse(v)
	case []byte:
		return c.parse(string(v))
	default:
		return fmt.Errorf("count: unsupported type %T", src)
	}
	return nil
}

func (c *count) parse(s string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	c.Value = n
	return nil
}
