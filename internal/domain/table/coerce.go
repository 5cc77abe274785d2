package table

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericPrefix matches the leading decimal number of a string, the same
// prefix a lenient float parser would consume.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Value is a coerced field. Str is always the trimmed (and for the name
// field, cleaned) string; Num is set for numeric columns.
type Value struct {
	Str     string
	Num     float64
	Numeric bool
}

// Record is one parsed row keyed by header name.
type Record map[string]Value

// String returns the string form of key, or "" when absent.
func (r Record) String(key string) string {
	return r[key].Str
}

// Float returns the numeric form of key, or 0 when absent.
func (r Record) Float(key string) float64 {
	return r[key].Num
}

// Int returns the numeric form of key truncated toward zero. Values outside
// the int range yield 0.
func (r Record) Int(key string) int {
	f := math.Trunc(r[key].Num)
	if f < math.MinInt || f >= math.MaxInt {
		return 0
	}
	return int(f)
}

// Rules is the per-column coercion policy, keyed by header name so column
// order in the input does not matter.
type Rules struct {
	// Numeric lists headers parsed as floats.
	Numeric map[string]bool
	// NameField receives CleanName.
	NameField string
	// IdentityField must be non-empty for a row to be kept.
	IdentityField string
}

// Column names shared by both datasets.
const (
	ColFighter     = "Fighter"
	ColPeakElo     = "Peak_Elo"
	ColPeakEloYear = "Peak_Elo_Year"
	ColCurrentElo  = "Current_Elo"
	ColMatches     = "Matches"
	ColYear        = "Year"
	ColRank        = "Rank"
	ColElo         = "Elo"
)

// DefaultRules covers both the roster and the yearly dataset.
func DefaultRules() Rules {
	return Rules{
		Numeric: map[string]bool{
			ColPeakElo:     true,
			ColPeakEloYear: true,
			ColCurrentElo:  true,
			ColMatches:     true,
			ColYear:        true,
			ColRank:        true,
			ColElo:         true,
		},
		NameField:     ColFighter,
		IdentityField: ColFighter,
	}
}

// Coerce applies the policy for header to raw.
func (r Rules) Coerce(header, raw string) Value {
	s := strings.TrimSpace(raw)
	if header == r.NameField {
		s = CleanName(s)
	}
	if r.Numeric[header] {
		return Value{Str: s, Num: ParseNumber(s), Numeric: true}
	}
	return Value{Str: s}
}

// ParseNumber parses the leading number in s. Anything unparseable,
// including NaN and infinities, yields 0.
func ParseNumber(s string) float64 {
	m := numericPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// CleanName strips every '|' marker and '"' then trims. Idempotent.
func CleanName(s string) string {
	s = strings.ReplaceAll(s, "|", "")
	s = strings.ReplaceAll(s, `"`, "")
	return strings.TrimSpace(s)
}
