package repository

// Query names double as metric labels.
const (
	queryEvent     = "event"
	queryTiers     = "ticket_tiers"
	queryPrizes    = "prize_items"
	queryChecklist = "checklist_items"
	queryNotes     = "event_notes"
	queryAttendees = "event_attendees"
	queryUpcoming  = "upcoming_events"
)

// eventColumns selects an event row with its reference names resolved.
// Keep in step with scanEvent. The date is cast so the driver never turns a
// DATE column into a time.Time.
const eventColumns = `
	e.id, e.name, CAST(e.date AS TEXT), e.start_time, e.end_time, e.description,
	et.name, pf.name, pm.name, pa.name,
	e.max_capacity, e.tickets_available, e.tables_booked,
	e.organised, e.tickets_live, e.advertised, e.completed, e.cancelled, e.deleted,
	e.include_attendees
FROM events e
LEFT JOIN event_types et ON et.id = e.event_type_id
LEFT JOIN playing_formats pf ON pf.id = e.playing_format_id
LEFT JOIN pairing_methods pm ON pm.id = e.pairing_method_id
LEFT JOIN pairing_apps pa ON pa.id = e.pairing_app_id`

const (
	selectEvent = `SELECT` + eventColumns + `
WHERE e.id = ?`

	selectTiers = `SELECT id, name, price, quantity_available, quantity_sold
FROM ticket_tiers
WHERE event_id = ?
ORDER BY price ASC, id ASC`

	selectPrizes = `SELECT id, description, quantity, recipients, received
FROM prize_items
WHERE event_id = ?
ORDER BY created_at ASC, id ASC`

	selectChecklist = `SELECT ci.id, ci.description, ci.category_id, cc.name,
	COALESCE(cc.sort_order, 0), ci.sort_order, ci.include_in_pdf
FROM checklist_items ci
LEFT JOIN checklist_categories cc ON cc.id = ci.category_id
WHERE ci.event_id = ? AND ci.include_in_pdf = 1
ORDER BY COALESCE(cc.sort_order, 0) ASC, ci.sort_order ASC, ci.id ASC`

	selectNotes = `SELECT id, note, include_in_printout
FROM event_notes
WHERE event_id = ? AND include_in_printout = 1
ORDER BY created_at ASC, id ASC`

	selectAttendees = `SELECT id, name, sort_order
FROM event_attendees
WHERE event_id = ?
ORDER BY sort_order ASC, name ASC, id ASC`

	selectUpcoming = `SELECT` + eventColumns + `
WHERE e.completed = 0 AND e.deleted = 0
ORDER BY e.date ASC, e.id ASC`
)
