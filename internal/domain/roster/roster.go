// Package roster derives read-only views over roster records.
package roster

import (
	"math"
	"strings"

	"github.com/okian/grapplerank/internal/domain/model"
	"github.com/okian/grapplerank/internal/domain/types"
)

// DefaultTop is the size of the top-fighters view.
const DefaultTop = 20

// Summary holds the headline numbers shown above the charts.
type Summary struct {
	TotalFighters  int         `json:"total_fighters"`
	HighestRating  types.Point `json:"highest_rating"`
	AverageMatches types.Point `json:"average_matches"`
	AverageRating  types.Point `json:"average_rating"`
}

// Top returns the first n records in input order.
func Top(records []model.RosterRecord, n int) []model.RosterRecord {
	if n < 0 {
		n = 0
	}
	if len(records) < n {
		n = len(records)
	}
	return append([]model.RosterRecord{}, records[:n]...)
}

// Search returns records whose name contains term, ignoring case, in input
// order. An empty term matches every record.
func Search(records []model.RosterRecord, term string) []model.RosterRecord {
	needle := strings.ToLower(term)
	out := make([]model.RosterRecord, 0)
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			out = append(out, r)
		}
	}
	return out
}

// Summarize computes the headline numbers. Averages are rounded to whole
// numbers; an empty roster yields absent values.
func Summarize(records []model.RosterRecord) Summary {
	s := Summary{TotalFighters: len(records)}
	if len(records) == 0 {
		return s
	}

	highest := math.Inf(-1)
	var matches, rating float64
	for _, r := range records {
		highest = math.Max(highest, r.CurrentRating)
		matches += float64(r.Matches)
		rating += r.CurrentRating
	}
	n := float64(len(records))
	s.HighestRating = types.Some(highest)
	s.AverageMatches = types.Some(math.Floor(matches/n + 0.5))
	s.AverageRating = types.Some(math.Floor(rating/n + 0.5))
	return s
}
