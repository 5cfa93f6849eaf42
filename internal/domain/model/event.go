// Package model contains domain models passed between layers.
package model

import "strings"

// Event is a single tabletop event as stored by the venue, with its
// reference entities already resolved to display names.
type Event struct {
	ID          int64
	Name        string
	Date        string // ISO YYYY-MM-DD
	StartTime   string // HH:MM[:SS]
	EndTime     string // HH:MM[:SS]
	Description string

	EventType     string
	PlayingFormat string
	PairingMethod string
	PairingApp    string

	MaxCapacity      *int
	TicketsAvailable *int
	TablesBooked     *int

	Organised   bool
	TicketsLive bool
	Advertised  bool
	Completed   bool
	Cancelled   bool
	Deleted     bool

	IncludeAttendees bool
}

// Upcoming reports whether the event belongs in the upcoming digest.
func (e Event) Upcoming() bool {
	return !e.Completed && !e.Deleted
}

// Capacity returns the maximum capacity, zero when unset.
func (e Event) Capacity() int {
	if e.MaxCapacity == nil || *e.MaxCapacity < 0 {
		return 0
	}
	return *e.MaxCapacity
}

// TicketTier is one price band for an event.
type TicketTier struct {
	ID                int64
	Name              string
	Price             float64
	QuantityAvailable int
	QuantitySold      int
}

// PrizeItem is one line of prize support.
type PrizeItem struct {
	ID          int64
	Description string
	Quantity    *int
	Recipients  int
	Received    bool
}

// RecipientCount is the number of handover boxes printed for the prize.
func (p PrizeItem) RecipientCount() int {
	if p.Recipients <= 0 {
		return 1
	}
	return p.Recipients
}

// ChecklistItem is one operational task for an event.
type ChecklistItem struct {
	ID            int64
	Description   string
	CategoryID    *int64
	Category      string
	CategoryOrder int
	SortOrder     int
	IncludeInPDF  bool
}

// Note is a free-text note attached to an event.
type Note struct {
	ID                int64
	Text              string
	IncludeInPrintout bool
}

// Attendee is a registered player.
type Attendee struct {
	ID        int64
	Name      string
	SortOrder int
}

// EventView is an event joined with everything the printable sheet needs.
type EventView struct {
	Event
	Tiers     []TicketTier
	Prizes    []PrizeItem
	Checklist []ChecklistItem
	Notes     []Note
	Attendees []Attendee
}

// Checklist categories in print order.
const (
	CategoryBefore = "Before the Event"
	CategoryDuring = "During the Event"
	CategoryAfter  = "After the Event"
	CategoryOther  = "Other"
)

// CategoryOrder is the fixed sequence checklist groups are printed in.
var CategoryOrder = []string{CategoryBefore, CategoryDuring, CategoryAfter, CategoryOther}

// CanonicalCategory maps a stored category name onto one of CategoryOrder.
// Missing, blank and unrecognised names become CategoryOther.
func CanonicalCategory(name string) string {
	name = strings.TrimSpace(name)
	for _, c := range CategoryOrder[:3] {
		if strings.EqualFold(name, c) {
			return c
		}
	}
	return CategoryOther
}

// CategoryRank returns the position of a category name in CategoryOrder.
func CategoryRank(name string) int {
	switch CanonicalCategory(name) {
	case CategoryBefore:
		return 0
	case CategoryDuring:
		return 1
	case CategoryAfter:
		return 2
	default:
		return 3
	}
}
