package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-event-listing/internal/logger"
)

// ErrDuplicateKey is returned when an insert violates a unique constraint.
var ErrDuplicateKey = errors.New("duplicate key")

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor picks the request transaction when one is bound to ctx.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs a statement on a single line, plus an error entry for store faults.
func logQuery(ctx context.Context, op, query string, args []any, result any, err error) {
	log := logger.FromContext(ctx)
	flat := strings.Join(strings.Fields(query), " ")

	log.Infow(
		"query", flat,
		"args", args,
		"result", result,
		"error", err,
	)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Errorw("database error", "op", op, "query", flat, "error", err)
	}
}

// translateError maps unique violations to ErrDuplicateKey and leaves everything else untouched.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateKey
	}
	return err
}
