package validation

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"article-hub/internal/common/pagination"
	"article-hub/internal/domain/entity"
	"article-hub/internal/repository"
)

const dateLayout = "2006-01-02"

// ListQuery is the parsed query string of a list or search request.
type ListQuery struct {
	Params pagination.Params
	From   *time.Time
	To     *time.Time
}

// Filter returns the date bounds as a repository filter.
func (q ListQuery) Filter() repository.DateFilter {
	return repository.DateFilter{From: q.From, To: q.To}
}

// ParseID reads the {id} path value as a positive integer.
func ParseID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("id"))
	if raw == "" {
		return 0, entity.NewValidationError("id", "is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, entity.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

// ParseListQuery reads page, pageSize, sortDirection and the optional from/to
// bounds. A from after to is reported against "from".
func ParseListQuery(r *http.Request, cfg pagination.Config) (ListQuery, error) {
	verr := &violations{}
	q := parseCommon(r, cfg, verr)

	if q.From != nil && q.To != nil && q.From.After(*q.To) {
		verr.add("from", "must be earlier than or equal to to")
	}
	if err := verr.err(); err != nil {
		return ListQuery{}, err
	}
	return q, nil
}

// ParseSearchQuery is ParseListQuery with both from and to required.
// Ordering of the bounds is left to the service, which owns that error.
func ParseSearchQuery(r *http.Request, cfg pagination.Config) (ListQuery, error) {
	verr := &violations{}
	q := parseCommon(r, cfg, verr)

	values := r.URL.Query()
	if strings.TrimSpace(values.Get("from")) == "" {
		verr.add("from", "is required")
	}
	if strings.TrimSpace(values.Get("to")) == "" {
		verr.add("to", "is required")
	}
	if err := verr.err(); err != nil {
		return ListQuery{}, err
	}
	return q, nil
}

func parseCommon(r *http.Request, cfg pagination.Config, verr *violations) ListQuery {
	values := r.URL.Query()
	var q ListQuery

	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			verr.add("page", "must be an integer")
		} else {
			q.Params.Page = max(page, 1)
		}
	}

	if raw := strings.TrimSpace(values.Get("pageSize")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			verr.add("pageSize", "must be an integer")
		} else {
			q.Params.PageSize = max(size, 1)
		}
	}

	sort, err := pagination.ParseSortDirection(values.Get("sortDirection"))
	if err != nil {
		verr.add("sortDirection", "must be one of: asc, desc")
	}
	q.Params.Sort = sort
	q.Params = q.Params.Normalize(cfg)

	if raw := strings.TrimSpace(values.Get("from")); raw != "" {
		if from, ok := parseDate(raw, false); ok {
			q.From = &from
		} else {
			verr.add("from", "must be a date (YYYY-MM-DD) or RFC3339 timestamp")
		}
	}
	if raw := strings.TrimSpace(values.Get("to")); raw != "" {
		if to, ok := parseDate(raw, true); ok {
			q.To = &to
		} else {
			verr.add("to", "must be a date (YYYY-MM-DD) or RFC3339 timestamp")
		}
	}
	return q
}

// parseDate accepts YYYY-MM-DD or RFC3339. A bare date used as an upper
// bound covers the whole day.
func parseDate(raw string, endOfDay bool) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), true
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, true
}
