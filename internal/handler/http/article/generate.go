package article

import (
	"fmt"
	"log/slog"
	"net/http"

	"article-hub/internal/handler/http/respond"
	"article-hub/internal/handler/http/validation"
	"article-hub/internal/observability/logging"
	artUC "article-hub/internal/usecase/article"
)

// GenerateHandler serves POST /articles/generate: the configured draft
// provider writes an article, which is then stored like a created one.
type GenerateHandler struct{ Svc *artUC.Service }

// ServeHTTP drafts an article with the configured provider and stores it.
// @Summary      Generate article
// @Description  Sends the model id and messages to the draft provider and persists the result.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        request body object true "{model, messages[{role, content?, name?}], tone?, keywords?}"
// @Success      201 {object} DTO "Generated article" headers(Location=string)
// @Failure      400 {object} map[string]any "Validation failed"
// @Failure      413 {object} map[string]string "Request body too large"
// @Failure      429 {object} map[string]string "Too many requests" headers(Retry-After=integer)
// @Failure      502 {object} map[string]string "Draft provider failed"
// @Failure      503 {object} map[string]string "Draft provider not configured"
// @Router       /articles/generate [post]
func (h GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := validation.DecodeGenerate(r)
	if err != nil {
		respond.Err(r.Context(), w, err)
		return
	}

	logging.FromContext(r.Context()).Info("generate request",
		slog.String("model", req.Model),
		slog.Int("messages", len(req.Messages)))

	art, err := h.Svc.Generate(r.Context(), req)
	if err != nil {
		respond.Err(r.Context(), w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/articles/%d", art.ID))
	respond.JSON(w, http.StatusCreated, toDTO(art))
}
