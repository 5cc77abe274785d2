package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/grapplerank/internal/domain/types"
)

// LeaderboardDependencies defines the interface for leaderboard operations.
type LeaderboardDependencies interface {
	DefaultYear() int
	Years(ctx context.Context) ([]int, error)
	Leaderboard(ctx context.Context, year int) ([]types.LeaderboardCard, error)
}

// LeaderboardHandler handles leaderboard requests.
type LeaderboardHandler struct {
	deps LeaderboardDependencies
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(deps LeaderboardDependencies) *LeaderboardHandler {
	return &LeaderboardHandler{deps: deps}
}

type yearsResponse struct {
	Years    []int `json:"years"`
	Selected int   `json:"selected"`
}

type leaderboardResponse struct {
	Year    int                     `json:"year"`
	Entries []types.LeaderboardCard `json:"entries"`
}

// HandleYears handles GET /years, newest first.
func (h *LeaderboardHandler) HandleYears(w http.ResponseWriter, r *http.Request) {
	years, err := h.deps.Years(r.Context())
	if err != nil {
		writeServiceError(w, r, "api.years", err)
		return
	}
	writeJSON(w, r, http.StatusOK, yearsResponse{Years: years, Selected: h.deps.DefaultYear()})
}

// HandleGetLeaderboard handles GET /leaderboard?year=YYYY. A missing year
// selects the default year.
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_leaderboard"
	year := h.deps.DefaultYear()
	if s := r.URL.Query().Get("year"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest, "year must be an integer"))
			return
		}
		year = n
	}
	cards, err := h.deps.Leaderboard(r.Context(), year)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	writeJSON(w, r, http.StatusOK, leaderboardResponse{Year: year, Entries: cards})
}
