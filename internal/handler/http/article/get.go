package article

import (
	"net/http"

	"article-hub/internal/handler/http/respond"
	"article-hub/internal/handler/http/validation"
	artUC "article-hub/internal/usecase/article"
)

// GetHandler serves GET /articles/{id}.
type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP returns one article.
// @Summary      Get article
// @Description  Returns the article with the given ID.
// @Tags         articles
// @Produce      json
// @Param        id path int true "Article ID"
// @Success      200 {object} DTO "Article"
// @Failure      400 {object} map[string]any "Invalid article ID"
// @Failure      404 {object} map[string]string "Article not found"
// @Failure      500 {object} map[string]string "Internal server error"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(r)
	if err != nil {
		respond.Err(r.Context(), w, err)
		return
	}

	art, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Err(r.Context(), w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(art))
}
