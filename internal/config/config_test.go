package config_test

import (
	"testing"

	"github.com/okian/grapplerank/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.TopRosterLimit, convey.ShouldEqual, 20)
			convey.So(cfg.SearchLimit, convey.ShouldEqual, 20)
			convey.So(cfg.LeaderboardSize, convey.ShouldEqual, 3)
			convey.So(cfg.TrendRanks, convey.ShouldResemble, []int{1, 2, 3})
			convey.So(cfg.DefaultYear, convey.ShouldEqual, 2025)
		})

		convey.Convey("Then the defaults validate", func() {
			convey.So(config.Validate(cfg), convey.ShouldBeNil)
		})
	})
}
