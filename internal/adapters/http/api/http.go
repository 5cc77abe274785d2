// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	repository "github.com/okian/grapplerank/internal/adapters/repository"
	"github.com/okian/grapplerank/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	FighterDependencies
	LeaderboardDependencies
	SeriesDependencies
	ExportDependencies

	// Loading reports whether the initial dataset load is still running.
	Loading() bool
}

// Server wires HTTP routes for the dashboard API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	fighterHandler     *FighterHandler
	leaderboardHandler *LeaderboardHandler
	seriesHandler      *SeriesHandler
	exportHandler      *ExportHandler

	allowedOrigins []string
	logger         logger.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithAllowedOrigins sets the CORS allow list.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.allowedOrigins = append([]string(nil), origins...)
	}
}

// WithLogger sets the logger used for request logs.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	v := validator.New()
	s := &Server{
		healthHandler:      NewHealthHandler(deps),
		statsHandler:       NewStatsHandler(statsProvider),
		fighterHandler:     NewFighterHandler(deps, v),
		leaderboardHandler: NewLeaderboardHandler(deps),
		seriesHandler:      NewSeriesHandler(deps),
		exportHandler:      NewExportHandler(deps),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Handler builds the router with middleware and every route attached.
func (s *Server) Handler() http.Handler {
	return s.Router()
}

// Router is Handler with the concrete router returned so callers can mount
// extra routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.logger))
	r.Use(middleware.Recoverer)
	if len(s.allowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}
	r.Use(MetricsMiddleware)

	s.Register(r)
	return r
}

// Register attaches all HTTP routes to r.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", s.healthHandler.HandleHealth)
	r.Get("/metrics", s.healthHandler.HandleMetrics)
	r.Get("/stats", s.statsHandler.HandleStats)

	r.Route("/fighters", func(r chi.Router) {
		r.Get("/", s.fighterHandler.HandleSearch)
		r.Get("/top", s.fighterHandler.HandleTop)
		r.Get("/summary", s.fighterHandler.HandleSummary)
		r.Get("/{name}/portrait", s.fighterHandler.HandlePortrait)
	})

	r.Get("/years", s.leaderboardHandler.HandleYears)
	r.Get("/leaderboard", s.leaderboardHandler.HandleGetLeaderboard)

	r.Route("/series", func(r chi.Router) {
		r.Get("/average", s.seriesHandler.HandleAverage)
		r.Get("/ranks", s.seriesHandler.HandleRanks)
	})

	r.Get("/export.xlsx", s.exportHandler.HandleExport)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not_found", nil)
	})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, r, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError maps a service failure to a response. Views read before
// the first load completes answer 503 so the client can show its loading
// state.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotLoaded):
		writeError(w, r, http.StatusServiceUnavailable, "loading", Wrap(op, err))
	case errors.Is(err, context.Canceled):
		writeError(w, r, http.StatusServiceUnavailable, "canceled", Wrap(op, err))
	default:
		writeError(w, r, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
