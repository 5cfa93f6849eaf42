// Package repository reads events and their printable details from the
// venue's SQLite store.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/okian/eventsheet/internal/domain/model"
	"github.com/okian/eventsheet/pkg/logger"
	"github.com/okian/eventsheet/pkg/metrics"
)

// Reader loads the data printed on event sheets and digests.
type Reader interface {
	// ReadEvent returns an event with all of its printable child records.
	// Returns ErrNotFound if no event has the id.
	ReadEvent(ctx context.Context, id int64) (*model.EventView, error)

	// ReadUpcoming returns events that are neither completed nor deleted,
	// by date ascending. Child collections are left empty.
	ReadUpcoming(ctx context.Context) ([]model.EventView, error)
}

// SQLReader implements Reader over database/sql. Each call runs inside a
// single read-only transaction so all of its queries see one snapshot.
type SQLReader struct {
	db     *sql.DB
	logger logger.Logger
}

var _ Reader = (*SQLReader)(nil)

// NewSQLReader creates a reader over db.
func NewSQLReader(db *sql.DB, opts ...Option) *SQLReader {
	r := &SQLReader{db: db, logger: logger.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *SQLReader) ReadEvent(ctx context.Context, id int64) (view *model.EventView, err error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { err = r.finish(tx, err) }()

	start := time.Now()
	row := tx.QueryRowContext(ctx, selectEvent, id)
	ev, err := scanEvent(row)
	metrics.RecordStorageRead(queryEvent, time.Since(start).Seconds())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, r.fail(ctx, queryEvent, err)
	}

	view = &model.EventView{Event: ev}
	if view.Tiers, err = readAll(ctx, r, tx, queryTiers, selectTiers, scanTier, id); err != nil {
		return nil, err
	}
	if view.Prizes, err = readAll(ctx, r, tx, queryPrizes, selectPrizes, scanPrize, id); err != nil {
		return nil, err
	}
	if view.Checklist, err = readAll(ctx, r, tx, queryChecklist, selectChecklist, scanChecklistItem, id); err != nil {
		return nil, err
	}
	if view.Notes, err = readAll(ctx, r, tx, queryNotes, selectNotes, scanNote, id); err != nil {
		return nil, err
	}
	if view.Attendees, err = readAll(ctx, r, tx, queryAttendees, selectAttendees, scanAttendee, id); err != nil {
		return nil, err
	}

	r.logger.Debug(ctx, "event read",
		logger.Int64("event_id", id),
		logger.Int("tiers", len(view.Tiers)),
		logger.Int("prizes", len(view.Prizes)),
		logger.Int("checklist_items", len(view.Checklist)),
		logger.Int("notes", len(view.Notes)),
		logger.Int("attendees", len(view.Attendees)))
	return view, nil
}

func (r *SQLReader) ReadUpcoming(ctx context.Context) (views []model.EventView, err error) {
	tx, err := r.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { err = r.finish(tx, err) }()

	events, err := readAll(ctx, r, tx, queryUpcoming, selectUpcoming, scanEvent)
	if err != nil {
		return nil, err
	}
	views = make([]model.EventView, len(events))
	for i, ev := range events {
		views[i] = model.EventView{Event: ev}
	}
	r.logger.Debug(ctx, "upcoming events read", logger.Int("events", len(views)))
	return views, nil
}

func (r *SQLReader) begin(ctx context.Context) (*sql.Tx, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, r.fail(ctx, "begin", err)
	}
	return tx, nil
}

// finish commits after a successful read and rolls back otherwise.
func (r *SQLReader) finish(tx *sql.Tx, err error) error {
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if cerr := tx.Commit(); cerr != nil {
		metrics.RecordStorageError()
		return fmt.Errorf("%w: commit: %w", ErrStorage, cerr)
	}
	return nil
}

func (r *SQLReader) fail(ctx context.Context, query string, err error) error {
	metrics.RecordStorageError()
	r.logger.Error(ctx, "storage read failed", logger.String("query", query), logger.Error(err))
	return fmt.Errorf("%w: %s: %w", ErrStorage, query, err)
}

// readAll runs a query and scans every row.
func readAll[T any](ctx context.Context, r *SQLReader, tx *sql.Tx, name, query string,
	scan func(scanner) (T, error), args ...any,
) ([]T, error) {
	start := time.Now()
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.fail(ctx, name, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, r.fail(ctx, name, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, r.fail(ctx, name, err)
	}
	metrics.RecordStorageRead(name, time.Since(start).Seconds())
	return out, nil
}
