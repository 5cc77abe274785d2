// Package export writes derived dashboard views to an XLSX workbook.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/okian/grapplerank/internal/domain/model"
	"github.com/okian/grapplerank/internal/domain/series"
	"github.com/okian/grapplerank/internal/domain/types"
	"github.com/xuri/excelize/v2"
)

// Sheet names.
const (
	SheetRoster       = "Roster"
	SheetLeaderboards = "Leaderboards"
	SheetAverages     = "Averages"
	SheetTrends       = "Trends"
)

// ErrWrite wraps workbook failures.
var ErrWrite = errors.New("workbook write failed")

// View is the data written to a workbook.
type View struct {
	Roster       []model.RosterRecord
	Years        []int // ascending
	Leaderboards map[int][]model.YearlyEntry
	Average      series.Average
	Trends       []series.Trend
}

// Write renders v as an XLSX workbook to w. Absent series values are left
// as empty cells.
func Write(w io.Writer, v View) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetRoster); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	for _, name := range []string{SheetLeaderboards, SheetAverages, SheetTrends} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}

	steps := []func(*excelize.File, View) error{writeRoster, writeLeaderboards, writeAverages, writeTrends}
	for _, step := range steps {
		if err := step(f, v); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

func writeRoster(f *excelize.File, v View) error {
	if err := setRow(f, SheetRoster, 1, "Fighter", "Peak Rating", "Peak Year", "Current Rating", "Matches"); err != nil {
		return err
	}
	for i, r := range v.Roster {
		if err := setRow(f, SheetRoster, i+2, r.Name, r.PeakRating, r.PeakYear, r.CurrentRating, r.Matches); err != nil {
			return err
		}
	}
	return nil
}

func writeLeaderboards(f *excelize.File, v View) error {
	if err := setRow(f, SheetLeaderboards, 1, "Year", "Rank", "Fighter", "Rating"); err != nil {
		return err
	}
	row := 2
	for _, y := range v.Years {
		for _, e := range v.Leaderboards[y] {
			if err := setRow(f, SheetLeaderboards, row, e.Year, e.Rank, e.Name, e.Rating); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func writeAverages(f *excelize.File, v View) error {
	if err := setRow(f, SheetAverages, 1, "Year", "Average Rating"); err != nil {
		return err
	}
	for i, y := range v.Average.Years {
		if err := setRow(f, SheetAverages, i+2, y, cell(v.Average.Values[i])); err != nil {
			return err
		}
	}
	return nil
}

func writeTrends(f *excelize.File, v View) error {
	header := []interface{}{"Year"}
	for _, t := range v.Trends {
		header = append(header, fmt.Sprintf("Rank %d Rating", t.Rank), fmt.Sprintf("Rank %d Fighter", t.Rank))
	}
	if err := setRow(f, SheetTrends, 1, header...); err != nil {
		return err
	}
	if len(v.Trends) == 0 {
		return nil
	}
	for i, y := range v.Trends[0].Years {
		values := []interface{}{y}
		for _, t := range v.Trends {
			values = append(values, cell(t.Values[i]), t.Names[i])
		}
		if err := setRow(f, SheetTrends, i+2, values...); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, start, &values)
}

// cell maps an absent point to nil so the cell stays empty.
func cell(p types.Point) interface{} {
	if !p.Valid {
		return nil
	}
	return p.Value
}
