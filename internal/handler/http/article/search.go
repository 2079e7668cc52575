package article

import (
	"net/http"
	"time"

	"article-hub/internal/common/pagination"
	"article-hub/internal/handler/http/respond"
	"article-hub/internal/handler/http/validation"
	"article-hub/internal/observability/logging"
	artUC "article-hub/internal/usecase/article"
)

// SearchHandler serves GET /articles/search?from=&to=. Both bounds are
// required; a reversed range is answered with 400.
type SearchHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP searches articles by creation date.
// @Summary      Search articles by date range
// @Description  Returns one page of articles created between from and to, both inclusive.
// @Tags         articles
// @Produce      json
// @Param        from query string true "Range start (YYYY-MM-DD or RFC3339)"
// @Param        to query string true "Range end; a bare date covers the whole day"
// @Param        page query int false "Page number (1-based)" default(1)
// @Param        pageSize query int false "Items per page" default(10)
// @Param        sortDirection query string false "Sort by createdAt" Enums(asc, desc) default(desc)
// @Success      200 {object} pagination.Response[DTO] "Page of articles"
// @Failure      400 {object} map[string]any "Missing bounds or start after end"
// @Failure      500 {object} map[string]string "Internal server error"
// @Router       /articles/search [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.FromContext(ctx)

	q, err := validation.ParseSearchQuery(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid search query", "error", err.Error())
		pagination.RecordError(pagination.EndpointSearch, "validation")
		pagination.RecordRequest(pagination.EndpointSearch, http.StatusBadRequest, 0)
		respond.Err(ctx, w, err)
		return
	}
	pagination.LogRequest(logger, q.Params)

	result, err := h.Svc.ListByDateRange(ctx, *q.From, *q.To, q.Params)
	writePage(w, r, pagination.EndpointSearch, q.Params, result, err, start)
}
