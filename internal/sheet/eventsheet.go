// Package sheet turns event data into document stories: the printable sheet
// for a single event and the digest of upcoming events. Builders are pure
// functions of their input so a story can be rebuilt for every layout pass.
package sheet

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	doc "github.com/okian/eventsheet/internal/adapters/document"
	"github.com/okian/eventsheet/internal/domain/model"
)

const (
	sectionGap       = 5.0 // mm
	handwritingLines = 5
	bullet           = "• "
)

var (
	detailsTable = doc.TableStyle{PadTop: 2, PadBottom: 2}

	gridTable = doc.TableStyle{
		PadLeft:          6,
		PadRight:         6,
		PadTop:           3,
		PadBottom:        3,
		Grid:             0.5,
		GridColor:        doc.ColorGrey,
		HeaderRows:       1,
		HeaderBackground: &doc.ColorAccent,
	}

	checklistTable = doc.TableStyle{PadRight: 3, PadTop: 2, PadBottom: 2}
)

// EventSheet builds the story for one event's printable sheet.
func EventSheet(view model.EventView) []doc.Flowable {
	ev := view.Event
	story := []doc.Flowable{doc.NewParagraph(ev.Name, doc.Title)}

	if ev.Date != "" {
		story = append(story, doc.NewParagraph(LongDate(ev.Date), doc.Body))
	}
	if tr := TimeRange(ev.StartTime, ev.EndTime); tr != "" {
		story = append(story, doc.NewParagraph(tr, doc.Body))
	}
	story = append(story, gap())

	story = appendDetails(story, ev)
	story = appendDescription(story, ev.Description)
	story = appendTiers(story, view.Tiers)
	story = appendPrizes(story, view.Prizes)
	story = appendChecklist(story, view.Checklist)
	story = appendNotes(story, view.Notes)
	story = appendAttendees(story, ev, view.Attendees)
	return appendHandwriting(story)
}

func gap() doc.Flowable { return &doc.Spacer{Height: sectionGap} }

func heading(text string) doc.Flowable { return doc.NewParagraph(text, doc.Heading) }

func bold(text string) doc.Flowable { return doc.NewParagraph("<b>"+text+"</b>", doc.Body) }

func body(text string) doc.Flowable { return doc.NewParagraph(text, doc.Body) }

func labelled(label, value string) []doc.Flowable {
	return []doc.Flowable{bold(label + ":"), body(value)}
}

func appendDetails(story []doc.Flowable, ev model.Event) []doc.Flowable {
	var rows [][]doc.Flowable
	for _, ref := range []struct{ label, value string }{
		{"Event Type", ev.EventType},
		{"Playing Format", ev.PlayingFormat},
		{"Pairing Method", ev.PairingMethod},
		{"Pairing App", ev.PairingApp},
	} {
		if ref.value != "" {
			rows = append(rows, labelled(ref.label, ref.value))
		}
	}
	if c := ev.Capacity(); c > 0 {
		rows = append(rows, labelled("Maximum Capacity", Players(c)))
	}
	if ev.TicketsAvailable != nil {
		rows = append(rows, labelled("Tickets Available", strconv.Itoa(*ev.TicketsAvailable)))
	}
	if len(rows) == 0 {
		return story
	}
	return append(story, doc.NewTable([]float64{45, 125}, rows, detailsTable), gap())
}

func appendDescription(story []doc.Flowable, text string) []doc.Flowable {
	if strings.TrimSpace(text) == "" {
		return story
	}
	return append(story, heading("Description:"), body(doc.HardBreaks(text)), gap())
}

func appendTiers(story []doc.Flowable, tiers []model.TicketTier) []doc.Flowable {
	if len(tiers) == 0 {
		return story
	}
	sorted := slices.Clone(tiers)
	slices.SortStableFunc(sorted, func(a, b model.TicketTier) int {
		return cmp.Or(cmp.Compare(a.Price, b.Price), cmp.Compare(a.ID, b.ID))
	})

	right := doc.Body.WithAlign(doc.AlignRight)
	rows := [][]doc.Flowable{{
		bold("Tier"),
		doc.NewParagraph("<b>Price</b>", right),
		doc.NewParagraph("<b>Available</b>", right),
		doc.NewParagraph("<b>Attendance</b>", doc.Body.WithAlign(doc.AlignCenter)),
	}}
	for _, t := range sorted {
		rows = append(rows, []doc.Flowable{
			body(t.Name),
			doc.NewParagraph(Money(t.Price), right),
			doc.NewParagraph(strconv.Itoa(t.QuantityAvailable), right),
			nil,
		})
	}
	style := gridTable
	style.ColAlign = []doc.Align{doc.AlignLeft, doc.AlignRight, doc.AlignRight, doc.AlignCenter}
	return append(story, heading("Ticket Pricing"), doc.NewTable([]float64{50, 30, 30, 30}, rows, style), gap())
}

func appendPrizes(story []doc.Flowable, prizes []model.PrizeItem) []doc.Flowable {
	if len(prizes) == 0 {
		return story
	}
	rows := [][]doc.Flowable{{bold("Prize"), bold("Qty"), bold("Received")}}
	for _, p := range prizes {
		qty := "-"
		if p.Quantity != nil {
			qty = strconv.Itoa(*p.Quantity)
		}
		rows = append(rows, []doc.Flowable{
			body(p.Description),
			body(qty),
			doc.NewCheckboxRow(p.RecipientCount()),
		})
	}
	return append(story, heading("Prize Support"), doc.NewTable([]float64{95, 20, 40}, rows, gridTable), gap())
}

// ChecklistGroups returns the printable checklist items grouped by
// category in print order. Empty groups are omitted.
func ChecklistGroups(items []model.ChecklistItem) [][]model.ChecklistItem {
	groups := make([][]model.ChecklistItem, len(model.CategoryOrder))
	for _, it := range items {
		if !it.IncludeInPDF {
			continue
		}
		r := model.CategoryRank(it.Category)
		groups[r] = append(groups[r], it)
	}

	out := groups[:0]
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		slices.SortStableFunc(g, func(a, b model.ChecklistItem) int {
			return cmp.Or(cmp.Compare(a.SortOrder, b.SortOrder), cmp.Compare(a.ID, b.ID))
		})
		out = append(out, g)
	}
	return out
}

func appendChecklist(story []doc.Flowable, items []model.ChecklistItem) []doc.Flowable {
	groups := ChecklistGroups(items)
	if len(groups) == 0 {
		return story
	}
	story = append(story, heading("Event Day Checklist"))
	for _, g := range groups {
		rows := make([][]doc.Flowable, len(g))
		for i, it := range g {
			rows[i] = []doc.Flowable{&doc.Checkbox{}, body(it.Description)}
		}
		story = append(story,
			doc.NewParagraph(model.CanonicalCategory(g[0].Category), doc.Italic),
			doc.NewTable([]float64{8, 162}, rows, checklistTable),
		)
	}
	return append(story, gap())
}

func appendNotes(story []doc.Flowable, notes []model.Note) []doc.Flowable {
	var lines []doc.Flowable
	for _, n := range notes {
		if !n.IncludeInPrintout || strings.TrimSpace(n.Text) == "" {
			continue
		}
		lines = append(lines, body(bullet+doc.HardBreaks(n.Text)))
	}
	if len(lines) == 0 {
		return story
	}
	story = append(story, heading("Important Notes"))
	story = append(story, lines...)
	return append(story, gap())
}

// AttendeeRows is the number of register rows printed, or zero when the
// register is left off the sheet.
func AttendeeRows(ev model.Event, attendees int) int {
	if !ev.IncludeAttendees || (attendees == 0 && ev.Capacity() == 0) {
		return 0
	}
	return max(ev.Capacity(), attendees)
}

func appendAttendees(story []doc.Flowable, ev model.Event, attendees []model.Attendee) []doc.Flowable {
	n := AttendeeRows(ev, len(attendees))
	if n == 0 {
		return story
	}
	sorted := slices.Clone(attendees)
	slices.SortStableFunc(sorted, func(a, b model.Attendee) int {
		return cmp.Or(cmp.Compare(a.SortOrder, b.SortOrder), strings.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})

	rows := [][]doc.Flowable{{bold("Attendee"), bold("Here"), nil}}
	for i := 0; i < n; i++ {
		var name doc.Flowable
		if i < len(sorted) {
			name = body(sorted[i].Name)
		}
		rows = append(rows, []doc.Flowable{name, nil, nil})
	}
	style := gridTable
	style.RepeatHeader = true
	style.MinRowHeight = 8
	return append(story, heading("Attendees"), doc.NewTable([]float64{80, 20, 70}, rows, style), gap())
}

func appendHandwriting(story []doc.Flowable) []doc.Flowable {
	story = append(story, heading("Additional Notes:"), gap())
	for i := 0; i < handwritingLines; i++ {
		story = append(story, doc.HandwritingRule())
	}
	return story
}
