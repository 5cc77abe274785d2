package export_test

import (
	"bytes"
	"testing"

	"github.com/okian/grapplerank/internal/adapters/export"
	"github.com/okian/grapplerank/internal/domain/model"
	"github.com/okian/grapplerank/internal/domain/series"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/xuri/excelize/v2"
)

func TestWrite(t *testing.T) {
	Convey("Given derived views", t, func() {
		yearly := []model.YearlyEntry{
			{Year: 2019, Rank: 1, Name: "Ana", Rating: 1800},
			{Year: 2020, Rank: 1, Name: "Bia", Rating: 1900},
			{Year: 2020, Rank: 2, Name: "Ana", Rating: 1850},
		}
		v := export.View{
			Roster: []model.RosterRecord{{Name: "Ana", PeakRating: 1850, PeakYear: 2020, CurrentRating: 1840, Matches: 12}},
			Years:  []int{2019, 2020},
			Leaderboards: map[int][]model.YearlyEntry{
				2019: yearly[:1],
				2020: yearly[1:],
			},
			Average: series.AverageRatings(yearly),
			Trends:  series.RankTrends(yearly, 3, 1, 2),
		}

		Convey("When writing the workbook", func() {
			var buf bytes.Buffer
			err := export.Write(&buf, v)
			So(err, ShouldBeNil)

			f, err := excelize.OpenReader(&buf)
			So(err, ShouldBeNil)
			defer func() { _ = f.Close() }()

			Convey("Then every sheet is present", func() {
				So(f.GetSheetList(), ShouldResemble, []string{
					export.SheetRoster, export.SheetLeaderboards, export.SheetAverages, export.SheetTrends,
				})
			})

			Convey("Then the roster sheet has a header and one row", func() {
				rows, err := f.GetRows(export.SheetRoster)
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 2)
				So(rows[1][0], ShouldEqual, "Ana")
				So(rows[1][4], ShouldEqual, "12")
			})

			Convey("Then leaderboards are listed per year", func() {
				rows, _ := f.GetRows(export.SheetLeaderboards)
				So(rows, ShouldHaveLength, 4)
				So(rows[3], ShouldResemble, []string{"2020", "2", "Ana", "1850"})
			})

			Convey("Then averages follow the year axis", func() {
				rows, _ := f.GetRows(export.SheetAverages)
				So(rows[1], ShouldResemble, []string{"2019", "1800"})
				So(rows[2], ShouldResemble, []string{"2020", "1875"})
			})

			Convey("Then absent trend values stay empty", func() {
				rows, _ := f.GetRows(export.SheetTrends)
				So(rows[0], ShouldResemble, []string{"Year", "Rank 1 Rating", "Rank 1 Fighter", "Rank 2 Rating", "Rank 2 Fighter"})
				So(rows[1], ShouldResemble, []string{"2019", "1800", "Ana"})
				So(rows[2], ShouldResemble, []string{"2020", "1900", "Bia", "1850", "Ana"})
			})
		})
	})

	Convey("Given an empty view", t, func() {
		var buf bytes.Buffer
		So(export.Write(&buf, export.View{}), ShouldBeNil)
		So(buf.Len(), ShouldBeGreaterThan, 0)
	})
}
