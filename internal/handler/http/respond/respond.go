// Package respond provides utilities for sending HTTP responses in JSON format.
// It maps domain errors to status codes and sanitizes anything that would
// otherwise leak internal details.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"article-hub/internal/domain/entity"
	"article-hub/internal/observability/logging"
)

const internalErrorMessage = "internal server error"

// ErrorBody is the uniform error payload.
type ErrorBody struct {
	Error   string                  `json:"error"`
	Details []entity.FieldViolation `json:"details,omitempty"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes an error body with the given status code and message.
func Error(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, ErrorBody{Error: msg})
}

// Err maps err to a status code and writes the uniform error body.
//
//	*entity.ValidationError        400 with field details
//	entity.ErrInvalidDateRange     400
//	entity.ErrNotFound             404
//	*http.MaxBytesError            413
//	*entity.ProviderError          502, or 503 when the provider is not configured
//	anything else                  500 with a generic message
//
// 5xx causes are logged with secrets masked and never reach the client.
func Err(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	var (
		verr     *entity.ValidationError
		maxErr   *http.MaxBytesError
		provErr  *entity.ProviderError
		notFound *entity.NotFoundError
	)

	switch {
	case errors.As(err, &verr):
		JSON(w, http.StatusBadRequest, ErrorBody{Error: "validation failed", Details: verr.Violations})
	case errors.Is(err, entity.ErrInvalidDateRange):
		Error(w, http.StatusBadRequest, entity.ErrInvalidDateRange.Error())
	case errors.As(err, &notFound):
		Error(w, http.StatusNotFound, notFound.Error())
	case errors.Is(err, entity.ErrNotFound):
		Error(w, http.StatusNotFound, "not found")
	case errors.As(err, &maxErr):
		Error(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.As(err, &provErr):
		code := http.StatusBadGateway
		msg := "draft provider failed"
		if errors.Is(err, entity.ErrProviderNotConfigured) {
			code = http.StatusServiceUnavailable
			msg = "draft provider not configured"
		}
		logFailure(ctx, code, err)
		Error(w, code, msg)
	default:
		logFailure(ctx, http.StatusInternalServerError, err)
		Error(w, http.StatusInternalServerError, internalErrorMessage)
	}
}

func logFailure(ctx context.Context, code int, err error) {
	logging.FromContext(ctx).Error("request failed",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
}
