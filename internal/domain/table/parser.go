// Package table turns delimited text into typed records.
//
// The format is a narrow subset of CSV: the header row is split on commas
// without quote handling, and data rows use a quote-toggle tokenizer where a
// double quote only switches "inside quotes" mode and is never emitted.
// Doubled quotes are not treated as escapes.
package table

import "strings"

const (
	delimiter = ','
	quote     = '"'
)

// Parse consumes text once and returns one record per data line, in input
// order, keyed by header name. Rows whose identity field is empty after
// coercion are dropped. Row-level problems never abort the pass.
func Parse(text string, rules Rules) []Record {
	records, _ := ParseWithStats(text, rules)
	return records
}

// Stats summarizes a parse pass.
type Stats struct {
	Lines   int // data lines seen, excluding the header
	Kept    int
	Dropped int
}

// ParseWithStats is Parse plus counts of kept and dropped rows.
func ParseWithStats(text string, rules Rules) ([]Record, Stats) {
	var st Stats
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return nil, st
	}

	headers := splitHeader(lines[0])
	records := make([]Record, 0, len(lines)-1)

	for _, line := range lines[1:] {
		st.Lines++
		rec := buildRecord(headers, SplitLine(line), rules)
		if rules.IdentityField != "" && rec.String(rules.IdentityField) == "" {
			st.Dropped++
			continue
		}
		records = append(records, rec)
	}
	st.Kept = len(records)
	return records, st
}

// SplitLine tokenizes one data line. Delimiters inside quotes do not split,
// quote characters are consumed, and every field is trimmed.
func SplitLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)
	for _, r := range line {
		switch {
		case r == quote:
			inQuotes = !inQuotes
		case r == delimiter && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(fields, strings.TrimSpace(current.String()))
}

func splitHeader(line string) []string {
	headers := strings.Split(line, string(delimiter))
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}
	return headers
}

// buildRecord maps values onto headers. Missing values become "" before
// coercion and values beyond the header count are ignored.
func buildRecord(headers, values []string, rules Rules) Record {
	rec := make(Record, len(headers))
	for i, h := range headers {
		raw := ""
		if i < len(values) {
			raw = values[i]
		}
		rec[h] = rules.Coerce(h, raw)
	}
	return rec
}
