// Package model contains domain models passed between layers.
package model

import "github.com/okian/grapplerank/internal/domain/table"

// RosterRecord is one fighter's rating summary. Name is cleaned and never empty.
type RosterRecord struct {
	Name          string  `json:"name"`
	PeakRating    float64 `json:"peak_rating"`
	PeakYear      int     `json:"peak_year"`
	CurrentRating float64 `json:"current_rating"`
	Matches       int     `json:"matches"`
}

// YearlyEntry is one (year, rank, fighter) observation. Rank 1 is best.
type YearlyEntry struct {
	Year   int     `json:"year"`
	Rank   int     `json:"rank"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// RosterFromRecords converts parsed roster rows, preserving input order.
func RosterFromRecords(records []table.Record) []RosterRecord {
	out := make([]RosterRecord, 0, len(records))
	for _, r := range records {
		out = append(out, RosterRecord{
			Name:          r.String(table.ColFighter),
			PeakRating:    r.Float(table.ColPeakElo),
			PeakYear:      r.Int(table.ColPeakEloYear),
			CurrentRating: r.Float(table.ColCurrentElo),
			Matches:       r.Int(table.ColMatches),
		})
	}
	return out
}

// YearlyFromRecords converts parsed yearly rows, preserving input order.
func YearlyFromRecords(records []table.Record) []YearlyEntry {
	out := make([]YearlyEntry, 0, len(records))
	for _, r := range records {
		out = append(out, YearlyEntry{
			Year:   r.Int(table.ColYear),
			Rank:   r.Int(table.ColRank),
			Name:   r.String(table.ColFighter),
			Rating: r.Float(table.ColElo),
		})
	}
	return out
}
