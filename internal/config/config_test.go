package config_test

import (
	"errors"
	"testing"

	"github.com/okian/eventsheet/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.DatabasePath, convey.ShouldEqual, "events.db")
			convey.So(cfg.OutputDir, convey.ShouldEqual, ".")
			convey.So(cfg.Compress, convey.ShouldBeTrue)
			convey.So(cfg.MetricsFile, convey.ShouldBeEmpty)
		})

		convey.Convey("Then the defaults should validate", func() {
			convey.So(config.Validate(cfg), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given invalid configs", t, func() {
		convey.Convey("When the database path is empty", func() {
			cfg := config.New()
			cfg.DatabasePath = ""
			err := config.Validate(cfg)

			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, "DatabasePath")
		})

		convey.Convey("When the log level is unknown", func() {
			cfg := config.New()
			cfg.LogLevel = "chatty"

			convey.So(errors.Is(config.Validate(cfg), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}
