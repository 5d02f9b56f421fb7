package handlers

import (
	"context"
	"net/http"
	"time"

	"interviewedge/internal/llm"
	"interviewedge/internal/utils"
)

// HealthHandler reports liveness and readiness. Readiness checks the
// database; the AI provider is only named, never pinged, to avoid burning
// quota on probes.
type HealthHandler struct {
	provider llm.Provider
	ready    func(ctx context.Context) error
}

func NewHealthHandler(provider llm.Provider, ready func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{provider: provider, ready: ready}
}

type healthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider,omitempty"`
}

func (h *HealthHandler) HealthzHandler(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Provider: h.provider.GetProviderName(),
	})
}

func (h *HealthHandler) ReadyzHandler(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := h.ready(ctx); err != nil {
			utils.JSON(w, http.StatusServiceUnavailable, healthResponse{Status: "not ready"})
			return
		}
	}
	utils.JSON(w, http.StatusOK, healthResponse{Status: "ready"})
}
