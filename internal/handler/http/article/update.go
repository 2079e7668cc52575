package article

import (
	"net/http"

	"article-hub/internal/handler/http/respond"
	"article-hub/internal/handler/http/validation"
	artUC "article-hub/internal/usecase/article"
)

// UpdateHandler serves PATCH /articles/{id}. Only fields present in the body
// change; "photoUrl": null clears the photo.
type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP applies a partial update.
// @Summary      Update article
// @Description  Changes only the fields present in the body. A null photoUrl clears the photo.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id path int true "Article ID"
// @Param        patch body object true "Any of {title, content, photoUrl}"
// @Success      200 {object} DTO "Updated article"
// @Failure      400 {object} map[string]any "Invalid ID or body"
// @Failure      404 {object} map[string]string "Article not found"
// @Failure      413 {object} map[string]string "Request body too large"
// @Failure      500 {object} map[string]string "Internal server error"
// @Router       /articles/{id} [patch]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := validation.ParseID(r)
	if err != nil {
		respond.Err(r.Context(), w, err)
		return
	}

	patch, err := validation.DecodeUpdate(r)
	if err != nil {
		respond.Err(r.Context(), w, err)
		return
	}

	art, err := h.Svc.Update(r.Context(), id, patch)
	if err != nil {
		respond.Err(r.Context(), w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(art))
}
