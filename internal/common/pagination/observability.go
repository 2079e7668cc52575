package pagination

import (
	"log/slog"
	"time"
)

// LogRequest logs a pagination request with structured fields.
func LogRequest(logger *slog.Logger, params Params) {
	logger.Info("paginated request",
		slog.Int("page", params.Page),
		slog.Int("page_size", params.PageSize),
		slog.String("sort", string(params.Sort)))
}

// LogResponse logs a pagination response with duration and result size.
func LogResponse(logger *slog.Logger, params Params, meta Metadata, returned int, duration time.Duration) {
	logger.Info("paginated response",
		slog.Int("page", params.Page),
		slog.Int("page_size", params.PageSize),
		slog.Int("returned_count", returned),
		slog.Int64("total_items", meta.TotalItems),
		slog.Int("total_pages", meta.TotalPages),
		slog.Int64("duration_ms", duration.Milliseconds()))
}

// LogError logs a pagination error with structured fields.
func LogError(logger *slog.Logger, params Params, err error, errorType string) {
	logger.Error("pagination error",
		slog.Int("page", params.Page),
		slog.Int("page_size", params.PageSize),
		slog.String("error", err.Error()),
		slog.String("error_type", errorType))
}
