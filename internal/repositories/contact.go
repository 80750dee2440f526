package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
	"github.com/sbilibin2017/gw-finance-ledger/internal/services"
)

// ContactWriteRepository stores contact form messages
type ContactWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewContactWriteRepository(db *sqlx.DB, txGetter TxGetter) *ContactWriteRepository {
	return &ContactWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a contact message. A repeated email yields services.ErrDuplicateContact.
func (r *ContactWriteRepository) Save(ctx context.Context, name, email, message string) (*models.Contact, error) {
	query := `
		INSERT INTO contact (name, email, message, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, name, email, message, created_at
	`
	args := []any{name, email, message}

	var contact models.Contact
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &contact, query, args...)
	logQuery(query, args, contact.ID, err)

	if _, ok := uniqueViolation(err); ok {
		return nil, services.ErrDuplicateContact
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// ContactReadRepository reads contact form messages
type ContactReadRepository struct {
	db *sqlx.DB
}

func NewContactReadRepository(db *sqlx.DB) *ContactReadRepository {
	return &ContactReadRepository{db: db}
}

// List returns all contact messages, newest first.
func (r *ContactReadRepository) List(ctx context.Context) ([]models.Contact, error) {
	query := `SELECT id, name, email, message, created_at FROM contact ORDER BY created_at DESC, id DESC`

	contacts := []models.Contact{}
	err := r.db.SelectContext(ctx, &contacts, query)
	logQuery(query, nil, len(contacts), err)

	if err != nil {
		return nil, err
	}
	return contacts, nil
}
