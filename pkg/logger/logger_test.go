package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	convey.Convey("Given an initialized logger", t, func() {
		err := Init()
		convey.So(err, convey.ShouldBeNil)
		defer func() {
			convey.So(Sync(), convey.ShouldBeNil)
		}()

		convey.Convey("Then Get should return it", func() {
			convey.So(Get(), convey.ShouldNotBeNil)
			convey.So(Named("test"), convey.ShouldNotBeNil)
		})
	})
}

func TestLoggerWritesFields(t *testing.T) {
	convey.Convey("Given a JSON logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		convey.So(Init(WithWriter(&buf), WithJSON(true)), convey.ShouldBeNil)

		ctx := context.Background()

		convey.Convey("When logging with fields", func() {
			Get().With(String("run_id", "abc")).Info(ctx, "sheet written",
				Int64("event_id", 7),
				Duration("took", 2*time.Second),
				Error(errors.New("boom")),
			)

			var entry map[string]any
			convey.So(json.Unmarshal(buf.Bytes(), &entry), convey.ShouldBeNil)

			convey.Convey("Then the entry should carry them", func() {
				convey.So(entry["msg"], convey.ShouldEqual, "sheet written")
				convey.So(entry["run_id"], convey.ShouldEqual, "abc")
				convey.So(entry["event_id"], convey.ShouldEqual, float64(7))
				convey.So(entry["source"], convey.ShouldContainSubstring, "logger_test.go")
			})
		})

		convey.Convey("When the level filters an entry", func() {
			convey.So(SetLevelString("warn"), convey.ShouldBeNil)
			defer func() { _ = SetLevelString("info") }()
			Get().Info(ctx, "hidden")

			convey.Convey("Then nothing is written", func() {
				convey.So(buf.Len(), convey.ShouldEqual, 0)
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	convey.Convey("Given level strings", t, func() {
		for _, lvl := range []string{"debug", "info", "", "WARN", "warning", "error"} {
			convey.So(SetLevelString(lvl), convey.ShouldBeNil)
		}
		convey.So(SetLevelString("loud"), convey.ShouldNotBeNil)
		_ = SetLevelString("info")
	})
}

func TestNop(t *testing.T) {
	convey.Convey("Given a nop logger", t, func() {
		l := Nop()

		convey.Convey("Then every method is safe to call", func() {
			convey.So(func() {
				l.Error(context.Background(), "dropped", Error(errors.New("x")))
				l.Named("child").With(String("k", "v")).Info(context.Background(), "dropped")
			}, convey.ShouldNotPanic)
		})
	})
}
