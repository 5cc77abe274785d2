package dedupe_test

import (
	"testing"

	dedupe "github.com/okian/grapplerank/internal/domain/dedupe"
	"github.com/okian/grapplerank/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func entry(year, rank int, name string, rating float64) model.YearlyEntry {
	return model.YearlyEntry{Year: year, Rank: rank, Name: name, Rating: rating}
}

func TestIdentityName(t *testing.T) {
	Convey("Given raw names with marker artifacts", t, func() {
		So(dedupe.IdentityName("A|"), ShouldEqual, "A")
		So(dedupe.IdentityName("  Ana Silva  |  "), ShouldEqual, "Ana Silva")
		So(dedupe.IdentityName("A|B"), ShouldEqual, "A|B")
		So(dedupe.IdentityName("|A"), ShouldEqual, "|A")
		So(dedupe.IdentityName("A||"), ShouldEqual, "A|")
		So(dedupe.IdentityName(""), ShouldEqual, "")
	})
}

func TestLeaderboard(t *testing.T) {
	Convey("Given entries for one year with a marked duplicate", t, func() {
		entries := []model.YearlyEntry{
			entry(2020, 1, "A", 1900),
			entry(2020, 5, "A|", 1700),
			entry(2020, 2, "B", 1850),
		}

		Convey("When computing the leaderboard", func() {
			got := dedupe.Leaderboard(entries, 2020)

			Convey("Then the worse-ranked duplicate is dropped", func() {
				So(got, ShouldResemble, []model.YearlyEntry{
					entry(2020, 1, "A", 1900),
					entry(2020, 2, "B", 1850),
				})
			})
		})
	})

	Convey("Given a duplicate that appears first at a worse rank", t, func() {
		entries := []model.YearlyEntry{
			entry(2021, 4, "C |", 1600),
			entry(2021, 2, "C", 1800),
			entry(2021, 1, "D", 1900),
		}
		got := dedupe.Leaderboard(entries, 2021)

		Convey("Then the strictly better rank replaces it", func() {
			So(got, ShouldResemble, []model.YearlyEntry{
				entry(2021, 1, "D", 1900),
				entry(2021, 2, "C", 1800),
			})
		})
	})

	Convey("Given duplicates tied on rank", t, func() {
		entries := []model.YearlyEntry{
			entry(2022, 1, "E|", 1901),
			entry(2022, 1, "E", 1902),
		}
		got := dedupe.Leaderboard(entries, 2022)

		Convey("Then the first encountered is kept", func() {
			So(got, ShouldResemble, []model.YearlyEntry{entry(2022, 1, "E|", 1901)})
		})
	})

	Convey("Given five distinct fighters", t, func() {
		entries := []model.YearlyEntry{
			entry(2019, 4, "D", 1500),
			entry(2019, 2, "B", 1700),
			entry(2019, 5, "E", 1400),
			entry(2019, 1, "A", 1800),
			entry(2019, 3, "C", 1600),
		}

		Convey("Then only ranks 1 to 3 remain in order", func() {
			got := dedupe.Leaderboard(entries, 2019)
			So(got, ShouldHaveLength, 3)
			So(got[0].Rank, ShouldEqual, 1)
			So(got[1].Rank, ShouldEqual, 2)
			So(got[2].Rank, ShouldEqual, 3)
		})

		Convey("Then a custom limit is honored", func() {
			So(dedupe.Leaderboard(entries, 2019, dedupe.WithLimit(4)), ShouldHaveLength, 4)
			So(dedupe.Leaderboard(entries, 2019, dedupe.WithLimit(0)), ShouldHaveLength, 3)
		})
	})

	Convey("Given entries from several years", t, func() {
		entries := []model.YearlyEntry{
			entry(2018, 1, "A", 1800),
			entry(2019, 1, "B", 1810),
			entry(2019, 2, "A", 1790),
		}

		Convey("Then only the selected year contributes", func() {
			got := dedupe.Leaderboard(entries, 2018)
			So(got, ShouldResemble, []model.YearlyEntry{entry(2018, 1, "A", 1800)})
		})

		Convey("Then a year with fewer fighters is not padded", func() {
			So(dedupe.Leaderboard(entries, 2019), ShouldHaveLength, 2)
		})

		Convey("Then a year with no entries yields an empty leaderboard", func() {
			got := dedupe.Leaderboard(entries, 1999)
			So(got, ShouldNotBeNil)
			So(got, ShouldBeEmpty)
		})
	})

	Convey("Given the same input twice", t, func() {
		entries := []model.YearlyEntry{entry(2020, 2, "B", 1), entry(2020, 1, "A", 2)}

		Convey("Then the result is identical and the input is untouched", func() {
			first := dedupe.Leaderboard(entries, 2020)
			second := dedupe.Leaderboard(entries, 2020)
			So(first, ShouldResemble, second)
			So(entries[0].Name, ShouldEqual, "B")
		})
	})
}
