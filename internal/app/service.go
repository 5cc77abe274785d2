// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/grapplerank/internal/adapters/export"
	repository "github.com/okian/grapplerank/internal/adapters/repository"
	"github.com/okian/grapplerank/internal/adapters/source"
	"github.com/okian/grapplerank/internal/domain/dedupe"
	"github.com/okian/grapplerank/internal/domain/model"
	"github.com/okian/grapplerank/internal/domain/portrait"
	"github.com/okian/grapplerank/internal/domain/roster"
	"github.com/okian/grapplerank/internal/domain/series"
	"github.com/okian/grapplerank/internal/domain/table"
	"github.com/okian/grapplerank/internal/domain/types"
	"github.com/okian/grapplerank/pkg/logger"
	"github.com/okian/grapplerank/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// Dataset names used in logs, stats and metrics.
const (
	DatasetRoster = "roster"
	DatasetYearly = "yearly"
)

// DefaultLeaderboardYear is the year selected when none is configured.
const DefaultLeaderboardYear = 2025

// Service loads both datasets once and serves views derived from them.
type Service struct {
	store     repository.Store
	roster    source.Fetcher
	yearly    source.Fetcher
	portraits *portrait.Resolver

	// Configuration
	topLimit        int
	searchLimit     int
	leaderboardSize int
	trendRanks      []int
	defaultYear     int

	// State
	loading  atomic.Bool
	mu       sync.RWMutex
	loadErrs map[string]error

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRosterSource sets where the roster text comes from.
func WithRosterSource(f source.Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.roster = f
		}
	}
}

// WithYearlySource sets where the yearly leaderboard text comes from.
func WithYearlySource(f source.Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.yearly = f
		}
	}
}

// WithStore sets the snapshot store.
func WithStore(st repository.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// WithPortraits enables image lookups in fsys.
func WithPortraits(fsys fs.FS) Option {
	return func(s *Service) {
		s.portraits = portrait.NewResolver(fsys)
	}
}

// WithTopLimit sets the size of the top-fighters view.
func WithTopLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topLimit = n
		}
	}
}

// WithSearchLimit caps search results.
func WithSearchLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.searchLimit = n
		}
	}
}

// WithLeaderboardSize sets the per-year leaderboard length.
func WithLeaderboardSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.leaderboardSize = n
		}
	}
}

// WithTrendRanks sets which ranks get a trend series.
func WithTrendRanks(ranks ...int) Option {
	return func(s *Service) {
		if len(ranks) > 0 {
			s.trendRanks = append([]int(nil), ranks...)
		}
	}
}

// WithDefaultYear sets the year selected when none is requested.
func WithDefaultYear(year int) Option {
	return func(s *Service) {
		s.defaultYear = year
	}
}

// New constructs a new Service with default configuration. The service
// reports Loading until Load returns.
func New(opts ...Option) *Service {
	s := &Service{
		store:           repository.NewMemoryStore(),
		roster:          source.Static{Name: "empty"},
		yearly:          source.Static{Name: "empty"},
		portraits:       portrait.NewResolver(nil),
		topLimit:        roster.DefaultTop,
		searchLimit:     roster.DefaultTop,
		leaderboardSize: dedupe.DefaultLimit,
		trendRanks:      []int{1, 2, 3},
		defaultYear:     DefaultLeaderboardYear,
		loadErrs:        make(map[string]error),
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.loading.Store(true)

	return s
}

// Load fetches both datasets concurrently, parses them and stores a new
// snapshot. A failed fetch is logged and leaves that dataset empty; there is
// no retry. The returned error joins the fetch failures for the caller's
// information only, the snapshot is stored either way.
func (s *Service) Load(ctx context.Context) error {
	defer s.loading.Store(false)
	start := time.Now()

	var (
		rosterText, yearlyText string
		rosterErr, yearlyErr   error
		g                      errgroup.Group
	)
	g.Go(func() error {
		rosterText, rosterErr = s.fetch(ctx, DatasetRoster, s.roster)
		return rosterErr
	})
	g.Go(func() error {
		yearlyText, yearlyErr = s.fetch(ctx, DatasetYearly, s.yearly)
		return yearlyErr
	})
	_ = g.Wait() // per-dataset errors are kept below

	rules := table.DefaultRules()
	rosterRecords := model.RosterFromRecords(s.parse(ctx, DatasetRoster, rosterText, rules))
	yearlyEntries := model.YearlyFromRecords(s.parse(ctx, DatasetYearly, yearlyText, rules))

	snap := s.store.Put(ctx, rosterRecords, yearlyEntries)

	s.mu.Lock()
	s.loadErrs = map[string]error{DatasetRoster: rosterErr, DatasetYearly: yearlyErr}
	s.mu.Unlock()

	elapsed := time.Since(start)
	metrics.RecordLoad(elapsed, snap.LoadedAt)
	s.logger.Info(ctx, "datasets loaded",
		logger.String("snapshot", snap.ID),
		logger.Int("roster", len(snap.Roster)),
		logger.Int("yearly", len(snap.Yearly)),
		logger.Int("durationMs", int(elapsed.Milliseconds())),
	)

	return errors.Join(rosterErr, yearlyErr)
}

func (s *Service) fetch(ctx context.Context, dataset string, f source.Fetcher) (string, error) {
	text, err := f.Fetch(ctx)
	if err != nil {
		metrics.RecordDatasetLoad(dataset, "failed")
		s.logger.Error(ctx, "dataset fetch failed",
			logger.String("dataset", dataset),
			logger.String("location", f.Location()),
			logger.Error(err),
		)
		return "", fmt.Errorf("%s: %w", dataset, err)
	}
	metrics.RecordDatasetLoad(dataset, "ok")
	return text, nil
}

func (s *Service) parse(ctx context.Context, dataset, text string, rules table.Rules) []table.Record {
	if text == "" {
		return nil
	}
	records, st := table.ParseWithStats(text, rules)
	metrics.RecordRows(dataset, st.Kept, st.Dropped)
	s.logger.Debug(ctx, "dataset parsed",
		logger.String("dataset", dataset),
		logger.Int("lines", st.Lines),
		logger.Int("kept", st.Kept),
		logger.Int("dropped", st.Dropped),
	)
	return records
}

// Loading reports whether the initial load is still in progress.
func (s *Service) Loading() bool {
	return s.loading.Load()
}

// DefaultYear returns the year selected when none is requested.
func (s *Service) DefaultYear() int {
	return s.defaultYear
}

func (s *Service) snapshot(ctx context.Context, view string) (repository.Snapshot, error) {
	snap, err := s.store.Get(ctx)
	if err != nil {
		return repository.Snapshot{}, err
	}
	metrics.RecordDerivation(view)
	return snap, nil
}

// TopFighters returns the first roster records by input order.
func (s *Service) TopFighters(ctx context.Context) ([]model.RosterRecord, error) {
	snap, err := s.snapshot(ctx, "top_fighters")
	if err != nil {
		return nil, err
	}
	return roster.Top(snap.Roster, s.topLimit), nil
}

// SearchFighters filters the roster by a case-insensitive name substring.
// limit <= 0 or above the configured cap uses the cap.
func (s *Service) SearchFighters(ctx context.Context, term string, limit int) ([]model.RosterRecord, error) {
	snap, err := s.snapshot(ctx, "search")
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > s.searchLimit {
		limit = s.searchLimit
	}
	return roster.Top(roster.Search(snap.Roster, term), limit), nil
}

// Summary returns the roster headline numbers.
func (s *Service) Summary(ctx context.Context) (roster.Summary, error) {
	snap, err := s.snapshot(ctx, "summary")
	if err != nil {
		return roster.Summary{}, err
	}
	return roster.Summarize(snap.Roster), nil
}

// Years returns the distinct years, newest first, for the year selector.
func (s *Service) Years(ctx context.Context) ([]int, error) {
	snap, err := s.snapshot(ctx, "years")
	if err != nil {
		return nil, err
	}
	return series.Years(snap.Yearly, series.Descending), nil
}

// Leaderboard returns the deduplicated leaderboard for year.
func (s *Service) Leaderboard(ctx context.Context, year int) ([]types.LeaderboardCard, error) {
	snap, err := s.snapshot(ctx, "leaderboard")
	if err != nil {
		return nil, err
	}
	entries := dedupe.Leaderboard(snap.Yearly, year, dedupe.WithLimit(s.leaderboardSize))
	cards := make([]types.LeaderboardCard, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, types.LeaderboardCard{
			Rank:     e.Rank,
			Year:     e.Year,
			Fighter:  e.Name,
			Rating:   e.Rating,
			Portrait: s.portraits.Resolve(e.Name),
		})
	}
	return cards, nil
}

// AverageSeries returns the mean rating per year, oldest first.
func (s *Service) AverageSeries(ctx context.Context) (series.Average, error) {
	snap, err := s.snapshot(ctx, "average_series")
	if err != nil {
		return series.Average{}, err
	}
	return series.AverageRatings(snap.Yearly), nil
}

// RankTrends returns one trend per configured rank, oldest first. Each year
// looks at its first three entries by rank whatever the leaderboard size.
func (s *Service) RankTrends(ctx context.Context) ([]series.Trend, error) {
	snap, err := s.snapshot(ctx, "rank_trends")
	if err != nil {
		return nil, err
	}
	return series.RankTrends(snap.Yearly, series.DefaultWindow, s.trendRanks...), nil
}

// Portrait resolves the image for a fighter name.
func (s *Service) Portrait(_ context.Context, name string) types.Portrait {
	return s.portraits.Resolve(name)
}

// Export gathers every view needed for a workbook export.
func (s *Service) Export(ctx context.Context) (export.View, error) {
	snap, err := s.snapshot(ctx, "export")
	if err != nil {
		return export.View{}, err
	}
	years := series.Years(snap.Yearly, series.Ascending)
	boards := make(map[int][]model.YearlyEntry, len(years))
	for _, y := range years {
		boards[y] = dedupe.Leaderboard(snap.Yearly, y, dedupe.WithLimit(s.leaderboardSize))
	}
	return export.View{
		Roster:       snap.Roster,
		Years:        years,
		Leaderboards: boards,
		Average:      series.AverageRatings(snap.Yearly),
		Trends:       series.RankTrends(snap.Yearly, series.DefaultWindow, s.trendRanks...),
	}, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	stats := map[string]interface{}{
		"loading":         s.Loading(),
		"topLimit":        s.topLimit,
		"leaderboardSize": s.leaderboardSize,
		"trendRanks":      s.trendRanks,
		"defaultYear":     s.defaultYear,
	}

	snap, err := s.store.Get(context.Background())
	if err != nil {
		return stats
	}
	stats["snapshot"] = snap.ID
	stats["loadedAt"] = snap.LoadedAt.Format(time.RFC3339)
	stats["rosterCount"] = len(snap.Roster)
	stats["yearlyCount"] = len(snap.Yearly)
	stats["yearCount"] = len(series.Years(snap.Yearly, series.Ascending))

	s.mu.RLock()
	defer s.mu.RUnlock()
	failures := make(map[string]string)
	for name, e := range s.loadErrs {
		if e != nil {
			failures[name] = e.Error()
		}
	}
	stats["fetchErrors"] = failures

	return stats
}
