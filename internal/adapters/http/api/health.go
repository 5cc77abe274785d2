// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/grapplerank/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LoadState reports whether datasets are still loading.
type LoadState interface {
	Loading() bool
}

// HealthHandler handles health and metrics requests.
type HealthHandler struct {
	state   LoadState
	metrics http.Handler
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(state LoadState) *HealthHandler {
	return &HealthHandler{
		state:   state,
		metrics: promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}),
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Loading bool   `json:"loading"`
}

// HandleHealth handles GET /healthz. The process is healthy while loading;
// the flag lets the client show its loading state.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	loading := h.state != nil && h.state.Loading()
	writeJSON(w, r, http.StatusOK, healthResponse{Status: "ok", Loading: loading})
}

// HandleMetrics handles GET /metrics from the service registry.
func (h *HealthHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	h.metrics.ServeHTTP(w, r)
}
