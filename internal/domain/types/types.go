// Package types contains read shapes shared by the domain and the API.
package types

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Point is a series value that may be absent. An absent Point marshals to
// JSON null so charts leave a gap instead of plotting zero.
type Point struct {
	Value float64
	Valid bool
}

// Some returns a present Point.
func Some(v float64) Point { return Point{Value: v, Valid: true} }

// None returns the absent marker.
func None() Point { return Point{} }

// MarshalJSON implements json.Marshaler.
func (p Point) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, p.Value, 'f', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Point) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*p = None()
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*p = Some(v)
	return nil
}

// LeaderboardCard is one row of a year's leaderboard as shown to users.
type LeaderboardCard struct {
	Rank     int      `json:"rank"`
	Year     int      `json:"year"`
	Fighter  string   `json:"fighter"`
	Rating   float64  `json:"rating"`
	Portrait Portrait `json:"portrait"`
}

// Portrait tells the renderer which image to show, or which initial to
// draw when no image resolved.
type Portrait struct {
	Src         string `json:"src,omitempty"`
	Placeholder string `json:"placeholder"`
}
