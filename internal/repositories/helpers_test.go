package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-event-listing/internal/models"
)

var eventColumns = []string{
	"id", "title", "location", "image_url", "start_date_time", "end_date_time", "price", "url", "host_id",
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func sampleEvent(id, hostID int64) models.Event {
	return models.Event{
		ID:            id,
		Title:         "Conf",
		Location:      "NYC",
		StartDateTime: time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC),
		EndDateTime:   time.Date(2024, 6, 15, 17, 0, 0, 0, time.UTC),
		Price:         299.99,
		HostID:        hostID,
	}
}

func addEventRow(rows *sqlmock.Rows, e models.Event) *sqlmock.Rows {
	return rows.AddRow(e.ID, e.Title, e.Location, e.ImageURL, e.StartDateTime, e.EndDateTime, e.Price, e.URL, e.HostID)
}

func nilTx(context.Context) *sqlx.Tx { return nil }
