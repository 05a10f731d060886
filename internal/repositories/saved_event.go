package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-event-listing/internal/models"
)

// SavedEventRepository manages the user/event bookmark relation.
type SavedEventRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSavedEventRepository(db *sqlx.DB, txGetter TxGetter) *SavedEventRepository {
	return &SavedEventRepository{db: db, txGetter: txGetter}
}

// ListByUser returns the events the user saved, oldest bookmark first.
func (r *SavedEventRepository) ListByUser(ctx context.Context, userID int64) ([]models.Event, error) {
	const query = `
		SELECT e.id, e.title, e.location, e.image_url, e.start_date_time, e.end_date_time,
		       e.price, e.url, e.host_id
		FROM saved_events s
		JOIN events e ON e.id = s.event_id
		WHERE s.user_id = $1
		ORDER BY s.saved_at, e.id
	`

	events := make([]models.Event, 0)
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &events, query, userID)
	logQuery(ctx, "list saved events", query, []any{userID}, len(events), err)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Add records the bookmark. Saving an already saved event changes nothing.
func (r *SavedEventRepository) Add(ctx context.Context, userID, eventID int64) error {
	const query = `
		INSERT INTO saved_events (user_id, event_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, event_id) DO NOTHING
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, eventID)
	logQuery(ctx, "save event", query, []any{userID, eventID}, rowsAffected(res), err)
	return err
}

// Remove deletes the bookmark if present.
func (r *SavedEventRepository) Remove(ctx context.Context, userID, eventID int64) error {
	const query = `DELETE FROM saved_events WHERE user_id = $1 AND event_id = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, eventID)
	logQuery(ctx, "remove saved event", query, []any{userID, eventID}, rowsAffected(res), err)
	return err
}
