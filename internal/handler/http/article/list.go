package article

import (
	"errors"
	"net/http"
	"time"

	"article-hub/internal/common/pagination"
	"article-hub/internal/domain/entity"
	"article-hub/internal/handler/http/respond"
	"article-hub/internal/handler/http/validation"
	"article-hub/internal/observability/logging"
	artUC "article-hub/internal/usecase/article"
)

// ListHandler serves GET /articles.
type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP lists articles page by page.
// @Summary      List articles
// @Description  Returns one page of articles ordered by creation time, optionally limited to a date range.
// @Tags         articles
// @Produce      json
// @Param        page query int false "Page number (1-based)" default(1)
// @Param        pageSize query int false "Items per page, capped at the configured maximum" default(10)
// @Param        sortDirection query string false "Sort by createdAt" Enums(asc, desc) default(desc)
// @Param        from query string false "Earliest createdAt (YYYY-MM-DD or RFC3339)"
// @Param        to query string false "Latest createdAt; a bare date covers the whole day"
// @Success      200 {object} pagination.Response[DTO] "Page of articles"
// @Failure      400 {object} map[string]any "Invalid query parameters"
// @Failure      500 {object} map[string]string "Internal server error"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.FromContext(ctx)

	q, err := validation.ParseListQuery(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid list query", "error", err.Error())
		pagination.RecordError(pagination.EndpointList, "validation")
		pagination.RecordRequest(pagination.EndpointList, http.StatusBadRequest, 0)
		respond.Err(ctx, w, err)
		return
	}
	pagination.LogRequest(logger, q.Params)

	result, err := h.Svc.List(ctx, q.Params, q.Filter())
	writePage(w, r, pagination.EndpointList, q.Params, result, err, start)
}

// writePage writes a page payload, or the error, and records pagination metrics under endpoint.
func writePage(w http.ResponseWriter, r *http.Request, endpoint string, params pagination.Params, result *artUC.PaginatedResult, err error, start time.Time) {
	ctx := r.Context()

	if err != nil {
		errType, status := "database", http.StatusInternalServerError
		if errors.Is(err, entity.ErrInvalidDateRange) || errors.Is(err, entity.ErrValidationFailed) {
			errType, status = "validation", http.StatusBadRequest
		} else {
			pagination.LogError(logging.FromContext(ctx), params, err, errType)
		}
		pagination.RecordError(endpoint, errType)
		pagination.RecordRequest(endpoint, status, params.Page)
		respond.Err(ctx, w, err)
		return
	}

	pagination.RecordRequest(endpoint, http.StatusOK, result.Pagination.Page)
	pagination.RecordPageSize(result.Pagination.PageSize)
	pagination.RecordDuration("handler", time.Since(start).Seconds())
	respond.JSON(w, http.StatusOK, pagination.NewResponse(toDTOs(result.Data), result.Pagination))
}
