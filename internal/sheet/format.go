package sheet

import (
	"fmt"
	"strings"
	"time"

	"github.com/okian/eventsheet/internal/adapters/document"
	"github.com/okian/eventsheet/internal/domain/model"
)

const (
	isoDate       = "2006-01-02"
	longDate      = "Monday, 2 January 2006"
	shortDate     = "02/01/2006"
	stampDate     = "20060102"
	generatedTime = "Monday, 2 January 2006 at 15:04"

	footerNameLimit = 50
	digestTitle     = "Upcoming Events"
)

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(isoDate, strings.TrimSpace(s))
	return t, err == nil
}

// LongDate renders an ISO date as "Friday, 14 March 2025". Anything else is
// returned unchanged.
func LongDate(s string) string {
	if t, ok := parseDate(s); ok {
		return t.Format(longDate)
	}
	return s
}

// ShortDate renders an ISO date as DD/MM/YYYY, or returns s unchanged.
func ShortDate(s string) string {
	if t, ok := parseDate(s); ok {
		return t.Format(shortDate)
	}
	return s
}

// ClockTime drops the seconds from HH:MM:SS. Shorter values are unchanged.
func ClockTime(s string) string {
	if strings.Count(s, ":") >= 2 {
		return s[:strings.LastIndex(s, ":")]
	}
	return s
}

// TimeRange returns "HH:MM - HH:MM", or "" unless both ends are set.
func TimeRange(start, end string) string {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return ""
	}
	return ClockTime(start) + " - " + ClockTime(end)
}

// Money formats a price in dollars with two decimals.
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Players formats a capacity.
func Players(n int) string {
	return fmt.Sprintf("%d players", n)
}

// SafeName makes an event name usable in a file name.
func SafeName(name string) string {
	return strings.NewReplacer(" ", "_", "/", "-").Replace(name)
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// GeneratedAt is the human timestamp printed on the digest.
func GeneratedAt(now time.Time) string {
	return now.Format(generatedTime)
}

// SheetDate is the date stamped into an event sheet's metadata: the event
// date, or the Unix epoch when it does not parse.
func SheetDate(ev model.Event) time.Time {
	if t, ok := parseDate(ev.Date); ok {
		return t
	}
	return time.Unix(0, 0).UTC()
}

// DefaultSheetFilename is event_sheet_<safe name>_<YYYYMMDD>.pdf, dated by
// the event or by today when the event date does not parse.
func DefaultSheetFilename(ev model.Event, today time.Time) string {
	d := today
	if t, ok := parseDate(ev.Date); ok {
		d = t
	}
	return fmt.Sprintf("event_sheet_%s_%s.pdf", SafeName(ev.Name), d.Format(stampDate))
}

// DefaultDigestFilename is upcoming_events_<YYYYMMDD>.pdf.
func DefaultDigestFilename(today time.Time) string {
	return fmt.Sprintf("upcoming_events_%s.pdf", today.Format(stampDate))
}

// SheetFooter carries the event name and date.
func SheetFooter(ev model.Event) document.Footer {
	return document.Footer{
		Left:   Truncate(ev.Name, footerNameLimit),
		Centre: ShortDate(ev.Date),
	}
}

// DigestFooter carries the document title and generation date.
func DigestFooter(now time.Time) document.Footer {
	return document.Footer{
		Left:   digestTitle,
		Centre: "Generated: " + now.Format(shortDate),
	}
}
