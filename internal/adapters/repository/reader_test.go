package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okian/eventsheet/internal/domain/model"
)

var eventCols = []string{
	"id", "name", "date", "start_time", "end_time", "description",
	"event_type", "playing_format", "pairing_method", "pairing_app",
	"max_capacity", "tickets_available", "tables_booked",
	"organised", "tickets_live", "advertised", "completed", "cancelled", "deleted",
	"include_attendees",
}

func newMockReader(t *testing.T) (*SQLReader, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLReader(db), mock
}

func q(query string) string { return regexp.QuoteMeta(query) }

func expectEmptyChildren(mock sqlmock.Sqlmock, id int64) {
	mock.ExpectQuery(q(selectTiers)).WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "quantity_available", "quantity_sold"}))
	mock.ExpectQuery(q(selectPrizes)).WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description", "quantity", "recipients", "received"}))
	mock.ExpectQuery(q(selectChecklist)).WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description", "category_id", "name", "category_order", "sort_order", "include_in_pdf"}))
	mock.ExpectQuery(q(selectNotes)).WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "note", "include_in_printout"}))
	mock.ExpectQuery(q(selectAttendees)).WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "sort_order"}))
}

func TestReadEventScansJoinedRow(t *testing.T) {
	r, mock := newMockReader(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q(selectEvent)).WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(eventCols).AddRow(
			7, "Friday Night", "2025-03-14", "19:00:00", nil, "Bring a deck",
			"Constructed", nil, "Swiss", nil,
			16, nil, 4,
			true, false, true, false, false, false,
			true,
		))
	expectEmptyChildren(mock, 7)
	mock.ExpectCommit()

	view, err := r.ReadEvent(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), view.ID)
	assert.Equal(t, "Friday Night", view.Name)
	assert.Equal(t, "2025-03-14", view.Date)
	assert.Equal(t, "", view.EndTime)
	assert.Equal(t, "Constructed", view.EventType)
	assert.Equal(t, "", view.PlayingFormat)
	require.NotNil(t, view.MaxCapacity)
	assert.Equal(t, 16, *view.MaxCapacity)
	assert.Nil(t, view.TicketsAvailable)
	assert.True(t, view.Organised)
	assert.False(t, view.TicketsLive)
	assert.True(t, view.IncludeAttendees)
	assert.Empty(t, view.Tiers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadEventCanonicalisesCategories(t *testing.T) {
	r, mock := newMockReader(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q(selectEvent)).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(eventCols).AddRow(
			1, "Night", "2025-03-14", nil, nil, nil, nil, nil, nil, nil, nil, nil, nil,
			false, false, false, false, false, false, false,
		))
	mock.ExpectQuery(q(selectTiers)).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "quantity_available", "quantity_sold"}).
			AddRow(2, "Standard", 15.0, 30, 0).
			AddRow(1, "VIP", 25.0, 10, 0))
	mock.ExpectQuery(q(selectPrizes)).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description", "quantity", "recipients", "received"}).
			AddRow(1, "Promo cards", nil, 8, false))
	mock.ExpectQuery(q(selectChecklist)).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description", "category_id", "name", "category_order", "sort_order", "include_in_pdf"}).
			AddRow(1, "Count the float", nil, nil, 0, 1, true).
			AddRow(2, "Set out tables", 1, "before the event", 1, 1, true).
			AddRow(3, "Water the plants", 4, "Misc", 4, 1, true))
	mock.ExpectQuery(q(selectNotes)).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "note", "include_in_printout"}))
	mock.ExpectQuery(q(selectAttendees)).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "sort_order"}))
	mock.ExpectCommit()

	view, err := r.ReadEvent(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, view.Tiers, 2)
	assert.Equal(t, "Standard", view.Tiers[0].Name)
	require.Len(t, view.Prizes, 1)
	assert.Nil(t, view.Prizes[0].Quantity)
	assert.Equal(t, 8, view.Prizes[0].RecipientCount())
	require.Len(t, view.Checklist, 3)
	assert.Equal(t, model.CategoryOther, view.Checklist[0].Category)
	assert.Nil(t, view.Checklist[0].CategoryID)
	assert.Equal(t, model.CategoryBefore, view.Checklist[1].Category)
	assert.Equal(t, model.CategoryOther, view.Checklist[2].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadEventNotFound(t *testing.T) {
	r, mock := newMockReader(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q(selectEvent)).WithArgs(int64(99)).WillReturnRows(sqlmock.NewRows(eventCols))
	mock.ExpectRollback()

	view, err := r.ReadEvent(context.Background(), 99)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadEventStorageFailures(t *testing.T) {
	boom := errors.New("disk I/O error")

	t.Run("begin", func(t *testing.T) {
		r, mock := newMockReader(t)
		mock.ExpectBegin().WillReturnError(boom)

		_, err := r.ReadEvent(context.Background(), 1)
		assert.ErrorIs(t, err, ErrStorage)
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("child query", func(t *testing.T) {
		r, mock := newMockReader(t)
		mock.ExpectBegin()
		mock.ExpectQuery(q(selectEvent)).WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(eventCols).AddRow(
				1, "Night", "2025-03-14", nil, nil, nil, nil, nil, nil, nil, nil, nil, nil,
				false, false, false, false, false, false, false,
			))
		mock.ExpectQuery(q(selectTiers)).WithArgs(int64(1)).WillReturnError(boom)
		mock.ExpectRollback()

		view, err := r.ReadEvent(context.Background(), 1)
		assert.Nil(t, view)
		assert.ErrorIs(t, err, ErrStorage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit", func(t *testing.T) {
		r, mock := newMockReader(t)
		mock.ExpectBegin()
		mock.ExpectQuery(q(selectEvent)).WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(eventCols).AddRow(
				1, "Night", "2025-03-14", nil, nil, nil, nil, nil, nil, nil, nil, nil, nil,
				false, false, false, false, false, false, false,
			))
		expectEmptyChildren(mock, 1)
		mock.ExpectCommit().WillReturnError(boom)

		_, err := r.ReadEvent(context.Background(), 1)
		assert.ErrorIs(t, err, ErrStorage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReadUpcoming(t *testing.T) {
	r, mock := newMockReader(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q(selectUpcoming)).
		WillReturnRows(sqlmock.NewRows(eventCols).
			AddRow(4, "Prerelease", "2025-01-10", "10:00", "18:00", nil, nil, nil, nil, nil, nil, nil, 4,
				false, false, true, false, false, false, false).
			AddRow(1, "Friday Night", "2025-03-14", nil, nil, nil, nil, nil, nil, nil, nil, nil, nil,
				true, true, false, false, false, false, true))
	mock.ExpectCommit()

	views, err := r.ReadUpcoming(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Prerelease", views[0].Name)
	require.NotNil(t, views[0].TablesBooked)
	assert.Equal(t, 4, *views[0].TablesBooked)
	assert.True(t, views[0].Advertised)
	assert.Equal(t, "Friday Night", views[1].Name)
	assert.Nil(t, views[1].Tiers)
	assert.NoError(t, mock.ExpectationsWereMet())
}
