package http

import (
	"net/http"

	"article-hub/internal/handler/http/respond"
	artUC "article-hub/internal/usecase/article"
)

// DrafterHealthResponse is the body of GET /health/drafter.
type DrafterHealthResponse struct {
	Status      string `json:"status"`
	Provider    string `json:"provider"`
	Configured  bool   `json:"configured"`
	CircuitOpen bool   `json:"circuit_open,omitempty"`
	Message     string `json:"message,omitempty"`
}

// DrafterHealthHandler reports whether generate requests can currently be
// served: 200 when the provider is configured and its circuit is closed,
// 503 otherwise. It never calls the remote provider.
type DrafterHealthHandler struct {
	Reporter artUC.HealthReporter
}

func (h *DrafterHealthHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if h.Reporter == nil {
		respond.JSON(w, http.StatusServiceUnavailable, DrafterHealthResponse{
			Status:  statusUnhealthy,
			Message: "draft provider does not report health",
		})
		return
	}

	ph := h.Reporter.Health()
	resp := DrafterHealthResponse{
		Status:      statusHealthy,
		Provider:    ph.Provider,
		Configured:  ph.Configured,
		CircuitOpen: ph.CircuitOpen,
		Message:     ph.Message,
	}
	code := http.StatusOK
	if !ph.Available() {
		resp.Status = statusUnhealthy
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, resp)
}
