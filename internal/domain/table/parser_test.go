package table_test

import (
	"testing"

	"github.com/okian/grapplerank/internal/domain/table"
	. "github.com/smartystreets/goconvey/convey"
)

const rosterCSV = `Fighter,Peak_Elo,Peak_Elo_Year,Current_Elo,Matches
Gordon Ryan,2150.5,2022,2101.3,120
"Pena, Felipe",1990,2017,1950,88
Marcus Almeida |,1800,2019,1700,60
`

func TestParse(t *testing.T) {
	Convey("Given a roster text with a header and three data rows", t, func() {
		records := table.Parse(rosterCSV, table.DefaultRules())

		Convey("Then the trailing blank line is dropped", func() {
			So(records, ShouldHaveLength, 3)
		})

		Convey("Then every header key is populated with a typed value", func() {
			rec := records[0]
			So(rec, ShouldHaveLength, 5)
			So(rec.String(table.ColFighter), ShouldEqual, "Gordon Ryan")
			So(rec.Float(table.ColPeakElo), ShouldEqual, 2150.5)
			So(rec.Int(table.ColPeakEloYear), ShouldEqual, 2022)
			So(rec.Float(table.ColCurrentElo), ShouldEqual, 2101.3)
			So(rec.Int(table.ColMatches), ShouldEqual, 120)
			So(rec[table.ColMatches].Numeric, ShouldBeTrue)
			So(rec[table.ColFighter].Numeric, ShouldBeFalse)
		})

		Convey("Then a quoted field containing the delimiter stays one field", func() {
			So(records[1].String(table.ColFighter), ShouldEqual, "Pena, Felipe")
			So(records[1].Float(table.ColPeakElo), ShouldEqual, 1990)
		})

		Convey("Then marker artifacts are stripped from names", func() {
			So(records[2].String(table.ColFighter), ShouldEqual, "Marcus Almeida")
		})
	})

	Convey("Given rows with reordered columns", t, func() {
		text := "Elo,Fighter,Rank,Year\n1500,Ana,2,2020"
		records := table.Parse(text, table.DefaultRules())

		Convey("Then coercion follows header names, not positions", func() {
			So(records, ShouldHaveLength, 1)
			So(records[0].Float(table.ColElo), ShouldEqual, 1500)
			So(records[0].String(table.ColFighter), ShouldEqual, "Ana")
			So(records[0].Int(table.ColRank), ShouldEqual, 2)
			So(records[0].Int(table.ColYear), ShouldEqual, 2020)
		})
	})

	Convey("Given malformed rows", t, func() {
		text := "Year,Rank,Fighter,Elo\n" +
			"2020,1\n" + // missing name, dropped
			"2021,2,Bia,abc\n" + // non-numeric rating
			"2022,3,Cris,1400,extra,fields\n" + // extra values ignored
			",,\"|\",\n" + // name cleans to empty, dropped
			"2023,x,Dani\n" // short row, numeric default; trailing blank line dropped

		records, st := table.ParseWithStats(text, table.DefaultRules())

		Convey("Then no row aborts the pass", func() {
			So(records, ShouldHaveLength, 3)
			So(st.Lines, ShouldEqual, 6)
			So(st.Kept, ShouldEqual, 3)
			So(st.Dropped, ShouldEqual, 3)
		})

		Convey("Then non-numeric values coerce to zero", func() {
			So(records[0].Float(table.ColElo), ShouldEqual, 0)
			So(records[2].Int(table.ColRank), ShouldEqual, 0)
			So(records[2].Float(table.ColElo), ShouldEqual, 0)
		})

		Convey("Then extra values beyond the header are ignored", func() {
			So(records[1], ShouldHaveLength, 4)
			So(records[1].Float(table.ColElo), ShouldEqual, 1400)
		})
	})

	Convey("Given CRLF line endings", t, func() {
		records := table.Parse("Fighter,Matches\r\nAna,4\r\n", table.DefaultRules())

		Convey("Then carriage returns are trimmed away", func() {
			So(records, ShouldHaveLength, 1)
			So(records[0].Int(table.ColMatches), ShouldEqual, 4)
		})
	})

	Convey("Given empty input", t, func() {
		So(table.Parse("", table.DefaultRules()), ShouldBeEmpty)
		So(table.Parse("Fighter,Elo", table.DefaultRules()), ShouldBeEmpty)
	})

	Convey("Given rules without an identity field", t, func() {
		rules := table.DefaultRules()
		rules.IdentityField = ""
		records := table.Parse("Fighter,Elo\n,1", rules)

		Convey("Then rows are kept even with an empty name", func() {
			So(records, ShouldHaveLength, 1)
		})
	})
}

func TestSplitLine(t *testing.T) {
	Convey("Given the quote-toggle tokenizer", t, func() {
		Convey("Then delimiters inside quotes do not split", func() {
			So(table.SplitLine(`a,"b,c",d`), ShouldResemble, []string{"a", "b,c", "d"})
		})

		Convey("Then doubled quotes only toggle and are never emitted", func() {
			So(table.SplitLine(`"say ""hi"", ok",x`), ShouldResemble, []string{"say hi, ok", "x"})
		})

		Convey("Then fields are trimmed", func() {
			So(table.SplitLine("  a , b  ,c "), ShouldResemble, []string{"a", "b", "c"})
		})

		Convey("Then an empty line yields a single empty field", func() {
			So(table.SplitLine(""), ShouldResemble, []string{""})
		})

		Convey("Then an unterminated quote swallows the rest of the line", func() {
			So(table.SplitLine(`a,"b,c`), ShouldResemble, []string{"a", "b,c"})
		})
	})
}
