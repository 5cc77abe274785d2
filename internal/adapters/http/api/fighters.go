package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/okian/grapplerank/internal/domain/model"
	"github.com/okian/grapplerank/internal/domain/roster"
	"github.com/okian/grapplerank/internal/domain/types"
)

// FighterDependencies defines the roster operations.
type FighterDependencies interface {
	TopFighters(ctx context.Context) ([]model.RosterRecord, error)
	SearchFighters(ctx context.Context, term string, limit int) ([]model.RosterRecord, error)
	Summary(ctx context.Context) (roster.Summary, error)
	Portrait(ctx context.Context, name string) types.Portrait
}

// FighterHandler handles roster requests.
type FighterHandler struct {
	deps     FighterDependencies
	validate *validator.Validate
}

// NewFighterHandler creates a new fighter handler.
func NewFighterHandler(deps FighterDependencies, v *validator.Validate) *FighterHandler {
	if v == nil {
		v = validator.New()
	}
	return &FighterHandler{deps: deps, validate: v}
}

type searchQuery struct {
	Search string `validate:"max=100"`
	Limit  int    `validate:"min=0,max=1000"`
}

// HandleSearch handles GET /fighters?search=term&limit=N.
func (h *FighterHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	const op = "api.search_fighters"
	q := searchQuery{Search: r.URL.Query().Get("search")}
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest, "limit must be an integer"))
			return
		}
		q.Limit = n
	}
	if err := h.validate.Struct(q); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest, err.Error()))
		return
	}
	found, err := h.deps.SearchFighters(r.Context(), q.Search, q.Limit)
	if err != nil {
		writeServiceError(w, r, op, err)
		return
	}
	writeJSON(w, r, http.StatusOK, found)
}

// HandleTop handles GET /fighters/top.
func (h *FighterHandler) HandleTop(w http.ResponseWriter, r *http.Request) {
	top, err := h.deps.TopFighters(r.Context())
	if err != nil {
		writeServiceError(w, r, "api.top_fighters", err)
		return
	}
	writeJSON(w, r, http.StatusOK, top)
}

// HandleSummary handles GET /fighters/summary.
func (h *FighterHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.deps.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, "api.summary", err)
		return
	}
	writeJSON(w, r, http.StatusOK, sum)
}

// HandlePortrait handles GET /fighters/{name}/portrait.
func (h *FighterHandler) HandlePortrait(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	writeJSON(w, r, http.StatusOK, h.deps.Portrait(r.Context(), name))
}
