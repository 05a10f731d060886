package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-event-listing/internal/models"
)

const selectEvents = `
	SELECT id, title, location, image_url, start_date_time, end_date_time, price, url, host_id
	FROM events
`

// EventReadRepository handles event read operations
type EventReadRepository struct {
	db *sqlx.DB
}

func NewEventReadRepository(db *sqlx.DB) *EventReadRepository {
	return &EventReadRepository{db: db}
}

// GetAll returns every event.
func (r *EventReadRepository) GetAll(ctx context.Context) ([]models.Event, error) {
	query := selectEvents + ` ORDER BY id`

	events := make([]models.Event, 0)
	err := r.db.SelectContext(ctx, &events, query)
	logQuery(ctx, "get all events", query, nil, len(events), err)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetByID returns the event, or nil when no row has the id.
func (r *EventReadRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := selectEvents + ` WHERE id = $1`

	var event models.Event
	err := r.db.GetContext(ctx, &event, query, id)
	logQuery(ctx, "get event by id", query, []any{id}, event.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Search returns the events matching every filter that is set.
func (r *EventReadRepository) Search(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	query, args := buildSearchQuery(filter)

	events := make([]models.Event, 0)
	err := r.db.SelectContext(ctx, &events, query, args...)
	logQuery(ctx, "search events", query, args, len(events), err)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func buildSearchQuery(f models.EventFilter) (string, []any) {
	var (
		where []string
		args  []any
	)

	add := func(condFmt string, val any) {
		args = append(args, val)
		where = append(where, fmt.Sprintf(condFmt, len(args)))
	}

	if f.HasQuery() {
		add("(strpos(title, $%[1]d) > 0 OR strpos(location, $%[1]d) > 0)", f.Query)
	}
	if f.From != nil {
		add("start_date_time >= $%d", *f.From)
	}
	if f.To != nil {
		add("start_date_time <= $%d", *f.To)
	}
	if f.MinPrice != nil {
		add("price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("price <= $%d", *f.MaxPrice)
	}

	query := selectEvents
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	return query + " ORDER BY id", args
}

// EventWriteRepository handles event write operations
type EventWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewEventWriteRepository(db *sqlx.DB, txGetter TxGetter) *EventWriteRepository {
	return &EventWriteRepository{db: db, txGetter: txGetter}
}

// Add inserts the event and sets its store-assigned ID.
func (r *EventWriteRepository) Add(ctx context.Context, e *models.Event) error {
	const query = `
		INSERT INTO events (title, location, image_url, start_date_time, end_date_time, price, url, host_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	args := []any{e.Title, e.Location, e.ImageURL, e.StartDateTime, e.EndDateTime, e.Price, e.URL, e.HostID}

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)
	logQuery(ctx, "add event", query, args, id, err)
	if err != nil {
		return err
	}

	e.ID = id
	return nil
}

// Update overwrites every scalar field except the owner. A missing row is not an error.
func (r *EventWriteRepository) Update(ctx context.Context, e *models.Event) error {
	const query = `
		UPDATE events
		SET title = $2, location = $3, image_url = $4, start_date_time = $5,
		    end_date_time = $6, price = $7, url = $8
		WHERE id = $1
	`
	args := []any{e.ID, e.Title, e.Location, e.ImageURL, e.StartDateTime, e.EndDateTime, e.Price, e.URL}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(ctx, "update event", query, args, rowsAffected(res), err)
	return err
}

// Delete removes the event and its saved-event rows. A missing row is not an error.
func (r *EventWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM events WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	logQuery(ctx, "delete event", query, []any{id}, rowsAffected(res), err)
	return err
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
