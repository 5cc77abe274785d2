package model_test

import (
	"testing"

	"github.com/okian/grapplerank/internal/domain/model"
	"github.com/okian/grapplerank/internal/domain/table"
	"github.com/smartystreets/goconvey/convey"
)

func TestRosterFromRecords(t *testing.T) {
	convey.Convey("Given parsed roster rows", t, func() {
		text := "Fighter,Peak_Elo,Peak_Elo_Year,Current_Elo,Matches\n" +
			"Ana,1810.4,2021,1790.2,33\n" +
			"Bia |,1700,2019.0,1650,x\n"
		roster := model.RosterFromRecords(table.Parse(text, table.DefaultRules()))

		convey.Convey("Then records are typed and ordered", func() {
			convey.So(roster, convey.ShouldResemble, []model.RosterRecord{
				{Name: "Ana", PeakRating: 1810.4, PeakYear: 2021, CurrentRating: 1790.2, Matches: 33},
				{Name: "Bia", PeakRating: 1700, PeakYear: 2019, CurrentRating: 1650, Matches: 0},
			})
		})
	})

	convey.Convey("Given no rows", t, func() {
		convey.So(model.RosterFromRecords(nil), convey.ShouldBeEmpty)
	})
}

func TestYearlyFromRecords(t *testing.T) {
	convey.Convey("Given parsed yearly rows", t, func() {
		text := "Year,Rank,Fighter,Elo\n2020,1,Ana,1900\n2020,2,\"Pena, Felipe\",1850.5\n"
		yearly := model.YearlyFromRecords(table.Parse(text, table.DefaultRules()))

		convey.Convey("Then entries carry year, rank, name and rating", func() {
			convey.So(yearly, convey.ShouldResemble, []model.YearlyEntry{
				{Year: 2020, Rank: 1, Name: "Ana", Rating: 1900},
				{Year: 2020, Rank: 2, Name: "Pena, Felipe", Rating: 1850.5},
			})
		})
	})
}
