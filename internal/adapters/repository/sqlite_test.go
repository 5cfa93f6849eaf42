package repository

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/eventsheet/internal/domain/model"
)

// createFixture builds a venue database from testdata and returns its path.
func createFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "venue.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	for _, name := range []string{"schema.sql", "fixture.sql"} {
		script, err := os.ReadFile(filepath.Join("testdata", name))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := db.Exec(string(script)); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	return path
}

func TestSQLiteReader(t *testing.T) {
	ctx := context.Background()
	path := createFixture(t)

	Convey("Given a read-only venue database", t, func() {
		db, err := Open(ctx, path)
		So(err, ShouldBeNil)
		Reset(func() { _ = db.Close() })
		r := NewSQLReader(db)

		Convey("When reading an event", func() {
			view, err := r.ReadEvent(ctx, 1)
			So(err, ShouldBeNil)

			Convey("Then reference names are joined and the date stays text", func() {
				So(view.Name, ShouldEqual, "Friday Night")
				So(view.Date, ShouldEqual, "2025-03-14")
				So(view.StartTime, ShouldEqual, "19:00:00")
				So(view.Description, ShouldEqual, "Bring a deck\nSleeves required")
				So(view.EventType, ShouldEqual, "Constructed")
				So(view.PlayingFormat, ShouldEqual, "Modern")
				So(view.PairingMethod, ShouldEqual, "Swiss")
				So(view.PairingApp, ShouldEqual, "Companion")
				So(view.Capacity(), ShouldEqual, 5)
				So(view.IncludeAttendees, ShouldBeTrue)
			})

			Convey("Then ticket tiers are ordered by price", func() {
				So(view.Tiers, ShouldHaveLength, 2)
				So(view.Tiers[0].Name, ShouldEqual, "Standard")
				So(view.Tiers[1].Name, ShouldEqual, "VIP")
			})

			Convey("Then prizes keep creation order with ties broken by id", func() {
				So(view.Prizes, ShouldHaveLength, 2)
				So(view.Prizes[0].Description, ShouldEqual, "Booster box")
				So(view.Prizes[1].Quantity, ShouldBeNil)
				So(view.Prizes[1].Recipients, ShouldEqual, 8)
			})

			Convey("Then only printable checklist items are read, with canonical categories", func() {
				var got []string
				for _, item := range view.Checklist {
					got = append(got, item.Category+"/"+item.Description)
				}
				So(got, ShouldResemble, []string{
					model.CategoryOther + "/Count the float",
					model.CategoryBefore + "/Set out tables",
					model.CategoryBefore + "/Print pairings",
					model.CategoryAfter + "/Pack away tables",
					model.CategoryOther + "/Water the plants",
				})
			})

			Convey("Then only printable notes are read", func() {
				So(view.Notes, ShouldHaveLength, 1)
				So(view.Notes[0].Text, ShouldEqual, "Judge arrives at 18:30")
			})

			Convey("Then attendees are ordered by sort order and name", func() {
				So(view.Attendees, ShouldHaveLength, 3)
				So(view.Attendees[0].Name, ShouldEqual, "Ada")
				So(view.Attendees[1].Name, ShouldEqual, "Ben")
				So(view.Attendees[2].Name, ShouldEqual, "Cy")
			})
		})

		Convey("When reading an unknown event", func() {
			_, err := r.ReadEvent(ctx, 404)

			Convey("Then it is reported as not found", func() {
				So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When reading upcoming events", func() {
			views, err := r.ReadUpcoming(ctx)
			So(err, ShouldBeNil)

			Convey("Then completed and deleted events are left out, soonest first", func() {
				So(views, ShouldHaveLength, 2)
				So(views[0].Name, ShouldEqual, "Prerelease")
				So(views[1].Name, ShouldEqual, "Friday Night")
			})
		})
	})

	Convey("Given a path with no database", t, func() {
		_, err := Open(ctx, filepath.Join(t.TempDir(), "missing.db"))

		Convey("Then opening fails with a storage error", func() {
			So(errors.Is(err, ErrStorage), ShouldBeTrue)
		})
	})
}
