package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-event-listing/internal/models"
)

// HostReadRepository handles host read operations
type HostReadRepository struct {
	db *sqlx.DB
}

func NewHostReadRepository(db *sqlx.DB) *HostReadRepository {
	return &HostReadRepository{db: db}
}

// GetByID returns the host with its events loaded, or nil when absent.
func (r *HostReadRepository) GetByID(ctx context.Context, id int64) (*models.Host, error) {
	const hostQuery = `SELECT id, agency_name, bio FROM hosts WHERE id = $1`

	var host models.Host
	err := r.db.GetContext(ctx, &host, hostQuery, id)
	logQuery(ctx, "get host by id", hostQuery, []any{id}, host.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	eventsQuery := selectEvents + ` WHERE host_id = $1 ORDER BY start_date_time, id`

	host.Events = make([]models.Event, 0)
	err = r.db.SelectContext(ctx, &host.Events, eventsQuery, id)
	logQuery(ctx, "get host events", eventsQuery, []any{id}, len(host.Events), err)
	if err != nil {
		return nil, err
	}

	return &host, nil
}

// HostWriteRepository handles host write operations
type HostWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewHostWriteRepository(db *sqlx.DB, txGetter TxGetter) *HostWriteRepository {
	return &HostWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts the host row keyed by the user id.
// It reports false when the row already existed.
func (r *HostWriteRepository) Create(ctx context.Context, host *models.Host) (bool, error) {
	const query = `
		INSERT INTO hosts (id, agency_name, bio)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING
	`
	args := []any{host.ID, host.AgencyName, host.Bio}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	n := rowsAffected(res)
	logQuery(ctx, "create host", query, args, n, err)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateInfo overwrites agency name and bio. It reports false when no host row matched.
func (r *HostWriteRepository) UpdateInfo(ctx context.Context, id int64, info models.HostInfo) (bool, error) {
	const query = `UPDATE hosts SET agency_name = $2, bio = $3 WHERE id = $1`
	args := []any{id, info.AgencyName, info.Bio}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	n := rowsAffected(res)
	logQuery(ctx, "update host info", query, args, n, err)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
