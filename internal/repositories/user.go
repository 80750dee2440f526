package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
	"github.com/sbilibin2017/gw-finance-ledger/internal/services"
)

const userColumns = `id, username, email, password_hash, is_admin, created_at, updated_at, reset_token, reset_token_expiry`

// UserReadRepository handles user read operations.
// Reads run on the request transaction when ctx carries one.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email)
	logQuery(query, []any{email}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsernameOrEmail returns every user whose username or email matches.
func (r *UserReadRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $2 ORDER BY id`

	users := []models.User{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, username, email)
	logQuery(query, []any{username, email}, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetByResetToken returns the user holding an unexpired reset token, or nil.
func (r *UserReadRepository) GetByResetToken(ctx context.Context, token string, now time.Time) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE reset_token = $1 AND reset_token_expiry > $2`

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, token, now)
	logQuery(query, []any{"<redacted>", now}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new user. Unique violations on username or email are
// reported as services.ErrDuplicateUsername / services.ErrDuplicateEmail.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + userColumns

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, username, email, passwordHash)
	logQuery(query, []any{username, email, "<redacted>"}, user.ID, err)

	if constraint, ok := uniqueViolation(err); ok {
		switch constraint {
		case "users_username_key":
			return nil, services.ErrDuplicateUsername
		default:
			return nil, services.ErrDuplicateEmail
		}
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SetResetToken stores a password reset token and its expiry.
func (r *UserWriteRepository) SetResetToken(ctx context.Context, userID int64, token string, expiry time.Time) error {
	query := `
		UPDATE users
		SET reset_token = $2, reset_token_expiry = $3, updated_at = NOW()
		WHERE id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, token, expiry)
	logQuery(query, []any{userID, "<redacted>", expiry}, rowsAffected(res), err)
	return err
}

// UpdatePassword replaces the password hash and clears any reset token.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2, reset_token = NULL, reset_token_expiry = NULL, updated_at = NOW()
		WHERE id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, passwordHash)
	logQuery(query, []any{userID, "<redacted>"}, rowsAffected(res), err)
	return err
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
