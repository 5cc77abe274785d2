// Package dedupe collapses duplicate leaderboard entrants within a year.
package dedupe

import (
	"regexp"
	"sort"
	"strings"

	"github.com/okian/grapplerank/internal/domain/model"
)

// trailingMarker matches a trailing '|' marker and the whitespace around it.
var trailingMarker = regexp.MustCompile(`\s*\|\s*$`)

// IdentityName is the comparison key for duplicate detection. Unlike
// table.CleanName it only removes a trailing marker, so "A|" and "A" collide
// while "A|B" stays distinct.
func IdentityName(raw string) string {
	return strings.TrimSpace(trailingMarker.ReplaceAllString(raw, ""))
}

// Leaderboard returns the canonical top entries for year: one entry per
// identity name (the strictly lowest rank wins, first seen on ties), sorted
// by ascending rank and truncated to the configured limit. It never pads and
// holds no state between calls.
func Leaderboard(entries []model.YearlyEntry, year int, opts ...Option) []model.YearlyEntry {
	cfg := config{limit: DefaultLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	var acc []model.YearlyEntry
	index := make(map[string]int)
	for _, e := range entries {
		if e.Year != year {
			continue
		}
		key := IdentityName(e.Name)
		i, ok := index[key]
		if !ok {
			index[key] = len(acc)
			acc = append(acc, e)
			continue
		}
		if e.Rank < acc[i].Rank {
			acc[i] = e
		}
	}

	sort.SliceStable(acc, func(i, j int) bool { return acc[i].Rank < acc[j].Rank })

	if len(acc) > cfg.limit {
		acc = acc[:cfg.limit]
	}
	if acc == nil {
		return []model.YearlyEntry{}
	}
	return acc
}
