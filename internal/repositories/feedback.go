package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
)

// FeedbackWriteRepository stores feedback entries
type FeedbackWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFeedbackWriteRepository(db *sqlx.DB, txGetter TxGetter) *FeedbackWriteRepository {
	return &FeedbackWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a feedback entry. userID and rating may be nil.
func (r *FeedbackWriteRepository) Save(ctx context.Context, userID *int64, content string, rating *int) (*models.Feedback, error) {
	query := `
		INSERT INTO feedback (user_id, content, rating, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, user_id, content, rating, created_at, updated_at
	`
	args := []any{userID, content, rating}

	var feedback models.Feedback
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &feedback, query, args...)
	logQuery(query, args, feedback.ID, err)

	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

// FeedbackReadRepository reads feedback entries
type FeedbackReadRepository struct {
	db *sqlx.DB
}

func NewFeedbackReadRepository(db *sqlx.DB) *FeedbackReadRepository {
	return &FeedbackReadRepository{db: db}
}

// ListByUserID returns the user's feedback, newest first.
func (r *FeedbackReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Feedback, error) {
	query := `
		SELECT id, user_id, content, rating, created_at, updated_at
		FROM feedback
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	items := []models.Feedback{}
	err := r.db.SelectContext(ctx, &items, query, userID)
	logQuery(query, []any{userID}, len(items), err)

	if err != nil {
		return nil, err
	}
	return items, nil
}
