package dedupe

// DefaultLimit is the leaderboard length when no limit is configured.
const DefaultLimit = 3

type config struct {
	limit int
}

// Option configures Leaderboard.
type Option func(*config)

// WithLimit sets the maximum leaderboard length. Non-positive values are ignored.
func WithLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.limit = n
		}
	}
}
