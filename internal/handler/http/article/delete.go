package article

import (
	"net/http"

	"article-hub/internal/handler/http/respond"
	"article-hub/internal/handler/http/validation"
	artUC "article-hub/internal/usecase/article"
)

// DeleteHandler serves DELETE /articles/{id}.
type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP deletes an article.
// @Summary      Delete article
// @Description  Removes the article. Deleting a missing article answers 404 every time.
// @Tags         articles
// @Param        id path int true "Article ID"
// @Success      204 "Deleted"
// @Failure      400 {object} map[string]any "Invalid article ID"
// @Failure      404 {object} map[string]string "Article not found"
// @Failure      500 {object} map[string]string "Internal server error"
// @Router       /articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(r)
	if err != nil {
		respond.Err(r.Context(), w, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.Err(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
