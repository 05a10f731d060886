package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-event-listing/internal/models"
)

const selectUsers = `
	SELECT id, first_name, last_name, email, password_hash, role, created_at
	FROM users
`

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

// NewUserWriteRepository creates a new UserWriteRepository
func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new user and fills in the generated ID and creation time.
// A taken email yields ErrDuplicateKey.
func (r *UserWriteRepository) Create(ctx context.Context, u *models.User) error {
	const query = `
		INSERT INTO users (first_name, last_name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	args := []any{u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Role}

	var row struct {
		ID        int64        `db:"id"`
		CreatedAt sql.NullTime `db:"created_at"`
	}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, args...)
	logQuery(ctx, "create user", query, []any{u.FirstName, u.LastName, u.Email, "***", u.Role}, row.ID, err)
	if err != nil {
		return translateError(err)
	}

	u.ID = row.ID
	u.CreatedAt = row.CreatedAt.Time
	return nil
}

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

// NewUserReadRepository creates a new UserReadRepository
func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, "get user by id", selectUsers+` WHERE id = $1`, id)
}

// GetByEmail returns the user with the given email, or nil when absent.
// Emails match case-insensitively.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, "get user by email", selectUsers+` WHERE lower(email) = lower($1)`, email)
}

func (r *UserReadRepository) getOne(ctx context.Context, op, query string, arg any) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, query, arg)
	logQuery(ctx, op, query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
