package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
)

const transactionColumns = `id, user_id, amount, description, category, date, type::text AS type`

// TransactionWriteRepository handles ledger write operations
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter TxGetter) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a transaction and returns the stored row.
func (r *TransactionWriteRepository) Save(ctx context.Context, t models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, amount, description, category, date, type)
		VALUES ($1, $2, $3, $4, $5, $6::transaction_type_enum)
		RETURNING ` + transactionColumns
	args := []any{t.UserID, t.Amount, t.Description, t.Category, t.Date, string(t.Type)}

	var saved models.Transaction
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query, args...)
	logQuery(query, args, saved.ID, err)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete removes the transaction only when it belongs to userID.
// It reports whether a row was deleted.
func (r *TransactionWriteRepository) Delete(ctx context.Context, userID, transactionID int64) (bool, error) {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	args := []any{transactionID, userID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	n := rowsAffected(res)
	logQuery(query, args, n, err)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// TransactionReadRepository handles ledger read operations
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// ListByUserID returns the user's transactions, newest date first.
// Transactions sharing a date are ordered by id descending.
func (r *TransactionReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`

	transactions := []models.Transaction{}
	err := r.db.SelectContext(ctx, &transactions, query, userID)
	logQuery(query, []any{userID}, len(transactions), err)

	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// SummaryByUserID totals the user's income and expense.
func (r *TransactionReadRepository) SummaryByUserID(ctx context.Context, userID int64) (models.LedgerSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0)::BIGINT AS total_income,
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)::BIGINT AS total_expense,
			COUNT(*) AS count
		FROM transactions
		WHERE user_id = $1
	`

	var summary models.LedgerSummary
	err := r.db.GetContext(ctx, &summary, query, userID)
	summary.Balance = summary.TotalIncome - summary.TotalExpense
	logQuery(query, []any{userID}, summary, err)

	return summary, err
}
