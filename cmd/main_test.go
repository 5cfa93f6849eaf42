package main

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/smartystreets/goconvey/convey"
)

// venueDB creates a database from the repository fixtures.
func venueDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "venue.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	for _, name := range []string{"schema.sql", "fixture.sql"} {
		script, err := os.ReadFile(filepath.Join("..", "internal", "adapters", "repository", "testdata", name))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := db.Exec(string(script)); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	return path
}

func TestRunUsage(t *testing.T) {
	convey.Convey("Given the command line", t, func() {
		ctx := context.Background()
		var stdout, stderr bytes.Buffer

		convey.Convey("When asked for help", func() {
			code := run(ctx, []string{"-help"}, &stdout, &stderr)

			convey.Convey("Then usage is printed and it succeeds", func() {
				convey.So(code, convey.ShouldEqual, exitOK)
				convey.So(stderr.String(), convey.ShouldContainSubstring, "usage: eventsheet")
				convey.So(stdout.String(), convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When no document is chosen", func() {
			code := run(ctx, nil, &stdout, &stderr)

			convey.Convey("Then it is a usage error", func() {
				convey.So(code, convey.ShouldEqual, exitUsage)
			})
		})

		convey.Convey("When both documents are chosen", func() {
			code := run(ctx, []string{"-event", "1", "-upcoming"}, &stdout, &stderr)

			convey.Convey("Then it is a usage error", func() {
				convey.So(code, convey.ShouldEqual, exitUsage)
			})
		})

		convey.Convey("When a flag is unknown", func() {
			code := run(ctx, []string{"-bogus"}, &stdout, &stderr)

			convey.Convey("Then it is a usage error", func() {
				convey.So(code, convey.ShouldEqual, exitUsage)
			})
		})
	})
}

func TestRunGenerates(t *testing.T) {
	convey.Convey("Given a venue database and an output directory", t, func() {
		ctx := context.Background()
		dbPath := venueDB(t)
		outDir := t.TempDir()
		metricsFile := filepath.Join(t.TempDir(), "eventsheet.prom")
		t.Setenv("EVENTSHEET_DATABASE_PATH", dbPath)
		t.Setenv("EVENTSHEET_OUTPUT_DIR", outDir)
		t.Setenv("EVENTSHEET_METRICS_FILE", metricsFile)
		t.Setenv("EVENTSHEET_LOG_LEVEL", "error")

		var stdout, stderr bytes.Buffer

		convey.Convey("When an event sheet is requested", func() {
			code := run(ctx, []string{"-event", "1"}, &stdout, &stderr)

			convey.Convey("Then the path is printed and the file exists", func() {
				convey.So(code, convey.ShouldEqual, exitOK)
				path := strings.TrimSpace(stdout.String())
				convey.So(path, convey.ShouldEqual, filepath.Join(outDir, "event_sheet_Friday_Night_20250314.pdf"))
				data, err := os.ReadFile(path)
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(data[:5]), convey.ShouldEqual, "%PDF-")
			})

			convey.Convey("Then metrics are written as a textfile", func() {
				data, err := os.ReadFile(metricsFile)
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(data), convey.ShouldContainSubstring, "eventsheet_generator_documents_generated_total")
			})
		})

		convey.Convey("When the upcoming list is requested to an explicit path", func() {
			target := filepath.Join(outDir, "digest.pdf")
			code := run(ctx, []string{"-upcoming", "-out", target}, &stdout, &stderr)

			convey.Convey("Then that path is printed", func() {
				convey.So(code, convey.ShouldEqual, exitOK)
				convey.So(strings.TrimSpace(stdout.String()), convey.ShouldEqual, target)
			})
		})

		convey.Convey("When the event does not exist", func() {
			code := run(ctx, []string{"-event", "404"}, &stdout, &stderr)

			convey.Convey("Then it fails without printing a path", func() {
				convey.So(code, convey.ShouldEqual, exitFailure)
				convey.So(stdout.String(), convey.ShouldBeEmpty)
				convey.So(stderr.String(), convey.ShouldContainSubstring, "event not found")
			})
		})
	})

	convey.Convey("Given a database path that does not exist", t, func() {
		t.Setenv("EVENTSHEET_DATABASE_PATH", filepath.Join(t.TempDir(), "missing.db"))
		t.Setenv("EVENTSHEET_OUTPUT_DIR", t.TempDir())
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), []string{"-upcoming"}, &stdout, &stderr)

		convey.Convey("Then it fails", func() {
			convey.So(code, convey.ShouldEqual, exitFailure)
		})
	})
}
