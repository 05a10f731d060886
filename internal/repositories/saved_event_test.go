package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavedEventRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN events e ON e.id = s.event_id WHERE s.user_id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(addEventRow(sqlmock.NewRows(eventColumns), sampleEvent(1, 10)))

	events, err := NewSavedEventRepository(db, nilTx).ListByUser(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(1), events[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedEventRepository_ListByUser_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM saved_events")).WillReturnRows(sqlmock.NewRows(eventColumns))

	events, err := NewSavedEventRepository(db, nilTx).ListByUser(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestSavedEventRepository_AddIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSavedEventRepository(db, nilTx)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id, event_id) DO NOTHING")).
		WithArgs(int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id, event_id) DO NOTHING")).
		WithArgs(int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Add(context.Background(), 3, 1))
	assert.NoError(t, repo.Add(context.Background(), 3, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavedEventRepository_Remove(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM saved_events WHERE user_id = $1 AND event_id = $2")).
		WithArgs(int64(3), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, NewSavedEventRepository(db, nilTx).Remove(context.Background(), 3, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
