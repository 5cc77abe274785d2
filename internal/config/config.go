// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New() builds a Config holding every default.
// - Load layers defaults, an optional YAML file and environment variables.
// - Validation runs once after layering; failures wrap ErrInvalidConfig.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=debug info warn warning error"`

	// LogFormat selects the slog handler: text or json.
	LogFormat string `koanf:"log_format" validate:"omitempty,oneof=text json"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr" validate:"required"`

	// RosterSource is a file path or http(s) URL for the roster CSV.
	RosterSource string `koanf:"roster_source" validate:"required"`

	// YearlySource is a file path or http(s) URL for the yearly leaderboard CSV.
	YearlySource string `koanf:"yearly_source" validate:"required"`

	// PortraitDir holds <key>.png fighter images. Empty disables lookups.
	PortraitDir string `koanf:"portrait_dir"`

	// TopRosterLimit is the size of the top-fighters view.
	TopRosterLimit int `koanf:"top_roster_limit" validate:"min=1"`

	// SearchLimit caps GET /fighters?search results.
	SearchLimit int `koanf:"search_limit" validate:"min=1"`

	// LeaderboardSize is the per-year leaderboard length.
	LeaderboardSize int `koanf:"leaderboard_size" validate:"min=1"`

	// TrendRanks lists the ranks that get a trend series.
	TrendRanks []int `koanf:"trend_ranks" validate:"min=1,dive,min=1"`

	// DefaultYear is used by /leaderboard when no year is given.
	DefaultYear int `koanf:"default_year"`

	// AllowedOrigins configures CORS for the chart frontend.
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		Addr:            ":9080",
		RosterSource:    "data/elo_ratings.csv",
		YearlySource:    "data/top3_by_year.csv",
		TopRosterLimit:  20,
		SearchLimit:     20,
		LeaderboardSize: 3,
		TrendRanks:      []int{1, 2, 3},
		DefaultYear:     2025, // matches service.DefaultLeaderboardYear
		AllowedOrigins:  []string{"http://localhost:3000", "http://localhost:5173"},
	}
}
