// Package series derives cross-year chart series from yearly entries.
//
// Every series is aligned to the ascending set of distinct years. Positions
// without data hold types.None rather than a fabricated number.
package series

import (
	"math"
	"sort"

	"github.com/okian/grapplerank/internal/domain/model"
	"github.com/okian/grapplerank/internal/domain/types"
)

// DefaultWindow is how many ranked entries per year a trend looks at.
const DefaultWindow = 3

// Order selects year ordering.
type Order int

const (
	// Ascending is oldest first, used by chart axes.
	Ascending Order = iota
	// Descending is newest first, used by the year selector.
	Descending
)

// Average is the mean rating per year.
type Average struct {
	Years  []int         `json:"years"`
	Values []types.Point `json:"values"`
}

// Trend follows one rank across years. Names[i] is the fighter behind
// Values[i], or "" where the value is absent.
type Trend struct {
	Rank   int           `json:"rank"`
	Years  []int         `json:"years"`
	Values []types.Point `json:"values"`
	Names  []string      `json:"names"`
}

// Years returns the distinct years present in entries.
func Years(entries []model.YearlyEntry, order Order) []int {
	seen := make(map[int]struct{}, len(entries))
	years := make([]int, 0)
	for _, e := range entries {
		if _, ok := seen[e.Year]; ok {
			continue
		}
		seen[e.Year] = struct{}{}
		years = append(years, e.Year)
	}
	if order == Descending {
		sort.Sort(sort.Reverse(sort.IntSlice(years)))
	} else {
		sort.Ints(years)
	}
	return years
}

// AverageRatings computes the arithmetic mean of every entry's rating per
// year, without deduplication, rounded to one decimal place.
func AverageRatings(entries []model.YearlyEntry) Average {
	years := Years(entries, Ascending)
	byYear := groupByYear(entries)

	values := make([]types.Point, len(years))
	for i, y := range years {
		values[i] = mean(byYear[y])
	}
	return Average{Years: years, Values: values}
}

// AverageFor computes the average series over an explicit year axis, so a
// year with no entries yields an absent value.
func AverageFor(entries []model.YearlyEntry, years []int) Average {
	byYear := groupByYear(entries)
	values := make([]types.Point, len(years))
	for i, y := range years {
		values[i] = mean(byYear[y])
	}
	return Average{Years: append([]int(nil), years...), Values: values}
}

// RankTrend selects, for each year, the entry holding rank among the year's
// first window entries by ascending rank.
func RankTrend(entries []model.YearlyEntry, rank, window int) Trend {
	return rankTrend(groupByYear(entries), Years(entries, Ascending), rank, window)
}

// RankTrends builds one trend per rank over a shared year axis.
func RankTrends(entries []model.YearlyEntry, window int, ranks ...int) []Trend {
	byYear := groupByYear(entries)
	years := Years(entries, Ascending)
	out := make([]Trend, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, rankTrend(byYear, years, r, window))
	}
	return out
}

func rankTrend(byYear map[int][]model.YearlyEntry, years []int, rank, window int) Trend {
	if window <= 0 {
		window = DefaultWindow
	}
	t := Trend{
		Rank:   rank,
		Years:  append([]int(nil), years...),
		Values: make([]types.Point, len(years)),
		Names:  make([]string, len(years)),
	}
	for i, y := range years {
		top := topByRank(byYear[y], window)
		for _, e := range top {
			if e.Rank == rank {
				t.Values[i] = types.Some(e.Rating)
				t.Names[i] = e.Name
				break
			}
		}
	}
	return t
}

// topByRank returns a sorted copy of the first n entries by ascending rank.
func topByRank(entries []model.YearlyEntry, n int) []model.YearlyEntry {
	sorted := append([]model.YearlyEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rank < sorted[j].Rank })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func groupByYear(entries []model.YearlyEntry) map[int][]model.YearlyEntry {
	out := make(map[int][]model.YearlyEntry)
	for _, e := range entries {
		out[e.Year] = append(out[e.Year], e)
	}
	return out
}

func mean(entries []model.YearlyEntry) types.Point {
	if len(entries) == 0 {
		return types.None()
	}
	var sum float64
	for _, e := range entries {
		sum += e.Rating
	}
	return types.Some(Round1(sum / float64(len(entries))))
}

// Round1 rounds to one decimal place; halves round up.
func Round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
