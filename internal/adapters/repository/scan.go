package repository

import (
	"database/sql"

	"github.com/okian/eventsheet/internal/domain/model"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (model.Event, error) {
	var (
		ev                                     model.Event
		name, date, start, end, desc           sql.NullString
		eventType, format, pairing, app        sql.NullString
		capacity, tickets, tables              sql.NullInt64
		organised, live, advertised, completed sql.NullBool
		cancelled, deleted, attendees          sql.NullBool
	)
	err := s.Scan(
		&ev.ID, &name, &date, &start, &end, &desc,
		&eventType, &format, &pairing, &app,
		&capacity, &tickets, &tables,
		&organised, &live, &advertised, &completed, &cancelled, &deleted,
		&attendees,
	)
	if err != nil {
		return model.Event{}, err
	}

	ev.Name = name.String
	ev.Date = date.String
	ev.StartTime = start.String
	ev.EndTime = end.String
	ev.Description = desc.String
	ev.EventType = eventType.String
	ev.PlayingFormat = format.String
	ev.PairingMethod = pairing.String
	ev.PairingApp = app.String
	ev.MaxCapacity = intPtr(capacity)
	ev.TicketsAvailable = intPtr(tickets)
	ev.TablesBooked = intPtr(tables)
	ev.Organised = organised.Bool
	ev.TicketsLive = live.Bool
	ev.Advertised = advertised.Bool
	ev.Completed = completed.Bool
	ev.Cancelled = cancelled.Bool
	ev.Deleted = deleted.Bool
	ev.IncludeAttendees = attendees.Bool
	return ev, nil
}

func scanTier(s scanner) (model.TicketTier, error) {
	var (
		t               model.TicketTier
		name            sql.NullString
		price           sql.NullFloat64
		available, sold sql.NullInt64
	)
	if err := s.Scan(&t.ID, &name, &price, &available, &sold); err != nil {
		return model.TicketTier{}, err
	}
	t.Name = name.String
	t.Price = price.Float64
	t.QuantityAvailable = int(available.Int64)
	t.QuantitySold = int(sold.Int64)
	return t, nil
}

func scanPrize(s scanner) (model.PrizeItem, error) {
	var (
		p                    model.PrizeItem
		desc                 sql.NullString
		quantity, recipients sql.NullInt64
		received             sql.NullBool
	)
	if err := s.Scan(&p.ID, &desc, &quantity, &recipients, &received); err != nil {
		return model.PrizeItem{}, err
	}
	p.Description = desc.String
	p.Quantity = intPtr(quantity)
	p.Recipients = int(recipients.Int64)
	p.Received = received.Bool
	return p, nil
}

// scanChecklistItem resolves the category name here so later stages only
// ever see the four canonical groups.
func scanChecklistItem(s scanner) (model.ChecklistItem, error) {
	var (
		c                        model.ChecklistItem
		desc, category           sql.NullString
		categoryID               sql.NullInt64
		categoryOrder, sortOrder sql.NullInt64
		include                  sql.NullBool
	)
	if err := s.Scan(&c.ID, &desc, &categoryID, &category, &categoryOrder, &sortOrder, &include); err != nil {
		return model.ChecklistItem{}, err
	}
	c.Description = desc.String
	if categoryID.Valid {
		id := categoryID.Int64
		c.CategoryID = &id
	}
	c.Category = model.CanonicalCategory(category.String)
	c.CategoryOrder = int(categoryOrder.Int64)
	c.SortOrder = int(sortOrder.Int64)
	c.IncludeInPDF = include.Bool
	return c, nil
}

func scanNote(s scanner) (model.Note, error) {
	var (
		n       model.Note
		text    sql.NullString
		include sql.NullBool
	)
	if err := s.Scan(&n.ID, &text, &include); err != nil {
		return model.Note{}, err
	}
	n.Text = text.String
	n.IncludeInPrintout = include.Bool
	return n, nil
}

func scanAttendee(s scanner) (model.Attendee, error) {
	var (
		a         model.Attendee
		name      sql.NullString
		sortOrder sql.NullInt64
	)
	if err := s.Scan(&a.ID, &name, &sortOrder); err != nil {
		return model.Attendee{}, err
	}
	a.Name = name.String
	a.SortOrder = int(sortOrder.Int64)
	return a, nil
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
