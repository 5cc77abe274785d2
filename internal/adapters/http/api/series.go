package api

import (
	"context"
	"net/http"

	"github.com/okian/grapplerank/internal/domain/series"
)

// SeriesDependencies defines the chart series operations.
type SeriesDependencies interface {
	AverageSeries(ctx context.Context) (series.Average, error)
	RankTrends(ctx context.Context) ([]series.Trend, error)
}

// SeriesHandler serves chart data.
type SeriesHandler struct {
	deps SeriesDependencies
}

// NewSeriesHandler creates a new series handler.
func NewSeriesHandler(deps SeriesDependencies) *SeriesHandler {
	return &SeriesHandler{deps: deps}
}

// HandleAverage handles GET /series/average.
func (h *SeriesHandler) HandleAverage(w http.ResponseWriter, r *http.Request) {
	avg, err := h.deps.AverageSeries(r.Context())
	if err != nil {
		writeServiceError(w, r, "api.average_series", err)
		return
	}
	writeJSON(w, r, http.StatusOK, avg)
}

// HandleRanks handles GET /series/ranks.
func (h *SeriesHandler) HandleRanks(w http.ResponseWriter, r *http.Request) {
	trends, err := h.deps.RankTrends(r.Context())
	if err != nil {
		writeServiceError(w, r, "api.rank_trends", err)
		return
	}
	writeJSON(w, r, http.StatusOK, trends)
}
