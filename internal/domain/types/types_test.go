package types_test

import (
	"encoding/json"
	"testing"

	types "github.com/okian/grapplerank/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPoint(t *testing.T) {
	Convey("Given series points", t, func() {
		Convey("When marshaling a mixed slice", func() {
			b, err := json.Marshal([]types.Point{types.Some(1200), types.None(), types.Some(0), types.Some(1833.3)})

			Convey("Then absent values are null and zero stays zero", func() {
				So(err, ShouldBeNil)
				So(string(b), ShouldEqual, `[1200,null,0,1833.3]`)
			})
		})

		Convey("When unmarshaling", func() {
			var pts []types.Point
			err := json.Unmarshal([]byte(`[null, 5.5]`), &pts)

			Convey("Then null becomes the absent marker", func() {
				So(err, ShouldBeNil)
				So(pts, ShouldResemble, []types.Point{types.None(), types.Some(5.5)})
			})
		})

		Convey("When unmarshaling a non-number", func() {
			var p types.Point
			So(json.Unmarshal([]byte(`"x"`), &p), ShouldNotBeNil)
		})

		Convey("Then an absent point differs from a zero point", func() {
			So(types.None(), ShouldNotResemble, types.Some(0))
		})
	})
}

func TestLeaderboardCard(t *testing.T) {
	Convey("Given a card without a resolved image", t, func() {
		card := types.LeaderboardCard{Rank: 1, Year: 2020, Fighter: "Ana", Rating: 1900.5, Portrait: types.Portrait{Placeholder: "A"}}
		b, err := json.Marshal(card)

		Convey("Then src is omitted", func() {
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"rank":1,"year":2020,"fighter":"Ana","rating":1900.5,"portrait":{"placeholder":"A"}}`)
		})
	})
}
