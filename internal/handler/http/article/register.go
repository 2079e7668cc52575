package article

import (
	"net/http"

	"article-hub/internal/common/pagination"
	artUC "article-hub/internal/usecase/article"
)

// Register mounts the article routes on mux. generateGuard wraps the
// generate route (rate limiting); nil leaves it unguarded.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, generateGuard func(http.Handler) http.Handler) {
	var generate http.Handler = GenerateHandler{Svc: svc}
	if generateGuard != nil {
		generate = generateGuard(generate)
	}

	mux.Handle("GET    /articles", ListHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET    /articles/search", SearchHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET    /articles/{id}", GetHandler{Svc: svc})

	mux.Handle("POST   /articles", CreateHandler{Svc: svc})
	mux.Handle("POST   /articles/generate", generate)
	mux.Handle("PATCH  /articles/{id}", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /articles/{id}", DeleteHandler{Svc: svc})
}
