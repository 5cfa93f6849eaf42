package sheet

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"

	doc "github.com/okian/eventsheet/internal/adapters/document"
	"github.com/okian/eventsheet/internal/domain/model"
)

const statusSeparator = " • "

var digestTable = doc.TableStyle{
	PadLeft:    6,
	PadRight:   6,
	PadTop:     3,
	PadBottom:  3,
	Background: &doc.ColorCard,
}

// UpcomingEvents keeps the events that are neither completed nor deleted,
// soonest first with ties broken by id.
func UpcomingEvents(events []model.EventView) []model.EventView {
	var out []model.EventView
	for _, ev := range events {
		if ev.Upcoming() {
			out = append(out, ev)
		}
	}
	slices.SortStableFunc(out, func(a, b model.EventView) int {
		return cmp.Or(strings.Compare(a.Date, b.Date), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// Status joins the event's progress flags, or returns "" when none is set.
func Status(ev model.Event) string {
	var parts []string
	if ev.Organised {
		parts = append(parts, "Organised")
	}
	if ev.TicketsLive {
		parts = append(parts, "Tickets Live")
	}
	if ev.Advertised {
		parts = append(parts, "Advertised")
	}
	return strings.Join(parts, statusSeparator)
}

// Digest builds the upcoming events story. It returns nil when no event is
// upcoming.
func Digest(events []model.EventView, now time.Time) []doc.Flowable {
	upcoming := UpcomingEvents(events)
	if len(upcoming) == 0 {
		return nil
	}

	story := []doc.Flowable{
		doc.NewParagraph(digestTitle, doc.Title),
		doc.NewParagraph("Generated: "+GeneratedAt(now), doc.Italic),
		doc.NewParagraph("Total Events: "+strconv.Itoa(len(upcoming)), doc.Italic),
		gap(),
	}
	for i, v := range upcoming {
		if i > 0 {
			story = append(story, doc.Divider())
		}
		story = appendDigestEntry(story, v.Event)
	}
	return story
}

func appendDigestEntry(story []doc.Flowable, ev model.Event) []doc.Flowable {
	story = append(story, heading(ev.Name))

	var rows [][]doc.Flowable
	add := func(label, value string) {
		if value != "" {
			rows = append(rows, labelled(label, value))
		}
	}
	add("Date", LongDate(ev.Date))
	add("Time", TimeRange(ev.StartTime, ev.EndTime))
	add("Event Type", ev.EventType)
	add("Playing Format", ev.PlayingFormat)
	add("Pairing Method", ev.PairingMethod)
	if ev.TablesBooked != nil {
		add("Tables Booked", strconv.Itoa(*ev.TablesBooked))
	}
	if c := ev.Capacity(); c > 0 {
		add("Maximum Capacity", Players(c))
	}
	if len(rows) > 0 {
		story = append(story, doc.NewTable([]float64{40, 130}, rows, digestTable), gap())
	}

	if s := Status(ev); s != "" {
		story = append(story, body("<b>Status:</b> "+s))
	}
	if strings.TrimSpace(ev.Description) != "" {
		story = append(story, body("<b>Description:</b><br/>"+doc.HardBreaks(ev.Description)))
	}
	return append(story, gap())
}
