package service

import (
	"errors"

	"github.com/okian/eventsheet/internal/adapters/document"
	"github.com/okian/eventsheet/internal/adapters/repository"
)

// Sentinel kinds surfaced to the invoker. Match with errors.Is.
var (
	ErrEventMissing     = errors.New("event not found")
	ErrNoUpcomingEvents = errors.New("no upcoming events")
	ErrStorage          = repository.ErrStorage
	ErrLayout           = document.ErrLayout
	ErrOutput           = document.ErrOutput
)

// errorKind labels an error for metrics.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrEventMissing):
		return "event_missing"
	case errors.Is(err, ErrNoUpcomingEvents):
		return "no_upcoming_events"
	case errors.Is(err, ErrStorage):
		return "storage"
	case errors.Is(err, ErrLayout):
		return "layout"
	case errors.Is(err, ErrOutput):
		return "output"
	default:
		return "other"
	}
}
