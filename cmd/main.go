package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/okian/grapplerank/internal/adapters/http/api"
	"github.com/okian/grapplerank/internal/adapters/http/site"
	"github.com/okian/grapplerank/internal/adapters/http/swagger"
	"github.com/okian/grapplerank/internal/adapters/source"
	app "github.com/okian/grapplerank/internal/app"
	"github.com/okian/grapplerank/internal/config"
	"github.com/okian/grapplerank/pkg/logger"
	"github.com/okian/grapplerank/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if err := logger.InitWithFormat(cfg.LogFormat); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	metrics.RegisterRuntimeCollectors()

	svc := newService(cfg, log)

	// Both datasets load once in the background; views answer 503 until then.
	go func() {
		if err := svc.Load(ctx); err != nil {
			log.Warn(ctx, "initial load finished with errors", logger.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(cfg, svc, log),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
	return nil
}

func newService(cfg *config.Config, log logger.Logger) *app.Service {
	opts := []app.Option{
		app.WithLogger(log.Named("service")),
		app.WithRosterSource(source.New(cfg.RosterSource)),
		app.WithYearlySource(source.New(cfg.YearlySource)),
		app.WithTopLimit(cfg.TopRosterLimit),
		app.WithSearchLimit(cfg.SearchLimit),
		app.WithLeaderboardSize(cfg.LeaderboardSize),
		app.WithTrendRanks(cfg.TrendRanks...),
		app.WithDefaultYear(cfg.DefaultYear),
	}
	if cfg.PortraitDir != "" {
		opts = append(opts, app.WithPortraits(os.DirFS(cfg.PortraitDir)))
	}
	return app.New(opts...)
}

func newHandler(cfg *config.Config, svc *app.Service, log logger.Logger) http.Handler {
	apiServer := api.NewServer(svc, svc,
		api.WithAllowedOrigins(cfg.AllowedOrigins...),
		api.WithLogger(log.Named("http")),
	)
	r := apiServer.Router()
	swagger.Register(r)
	if cfg.PortraitDir != "" {
		site.Register(r, site.DefaultPrefix, os.DirFS(cfg.PortraitDir))
	}
	return r
}
