package pagination

import (
	"fmt"
	"strings"
)

// SortDirection orders a page by creation time.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection parses a case-insensitive direction.
// An empty string yields SortDesc (most recent first).
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return SortDesc, nil
	case "asc":
		return SortAsc, nil
	case "desc":
		return SortDesc, nil
	default:
		return "", fmt.Errorf("sortDirection must be one of asc, desc")
	}
}

// SQL returns the ORDER BY keyword. Anything but SortAsc maps to DESC.
func (d SortDirection) SQL() string {
	if d == SortAsc {
		return "ASC"
	}
	return "DESC"
}

// Params represents normalized pagination parameters.
type Params struct {
	Page     int           // 1-based page number
	PageSize int           // Items per page
	Sort     SortDirection // Order by created_at
}

// Offset returns the row offset for the page.
func (p Params) Offset() int {
	return CalculateOffset(p.Page, p.PageSize)
}

// Normalize applies defaults and clamping from config.
//
// Rules:
//   - page < 1 becomes 1
//   - pageSize < 1 becomes config.DefaultPageSize
//   - pageSize > config.MaxPageSize is capped to config.MaxPageSize
//   - empty sort becomes SortDesc
func (p Params) Normalize(cfg Config) Params {
	if p.Page < 1 {
		p.Page = cfg.DefaultPage
		if p.Page < 1 {
			p.Page = 1
		}
	}
	if p.PageSize < 1 {
		p.PageSize = cfg.DefaultPageSize
	}
	if cfg.MaxPageSize > 0 && p.PageSize > cfg.MaxPageSize {
		p.PageSize = cfg.MaxPageSize
	}
	if p.Sort != SortAsc {
		p.Sort = SortDesc
	}
	return p
}
