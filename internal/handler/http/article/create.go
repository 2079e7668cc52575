package article

import (
	"fmt"
	"net/http"

	"article-hub/internal/handler/http/respond"
	"article-hub/internal/handler/http/validation"
	artUC "article-hub/internal/usecase/article"
)

// CreateHandler serves POST /articles.
type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates an article.
// @Summary      Create article
// @Description  Stores a new article. title and content are required, photoUrl is optional.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body object true "{title, content, photoUrl?}"
// @Success      201 {object} DTO "Created article" headers(Location=string)
// @Failure      400 {object} map[string]any "Validation failed"
// @Failure      413 {object} map[string]string "Request body too large"
// @Failure      500 {object} map[string]string "Internal server error"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	in, err := validation.DecodeCreate(r)
	if err != nil {
		respond.Err(r.Context(), w, err)
		return
	}

	art, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		respond.Err(r.Context(), w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/articles/%d", art.ID))
	respond.JSON(w, http.StatusCreated, toDTO(art))
}
