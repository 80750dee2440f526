package services

//go:generate mockgen -source=ledger.go -destination=ledger_mock.go -package=services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-finance-ledger/internal/logger"
	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
)

// MaxAmount bounds the absolute value of a single transaction so per-user
// BIGINT totals stay far from overflow.
const MaxAmount int64 = 1_000_000_000_000

const maxCategoryLength = 100

// TransactionWriter defines ledger write operations.
type TransactionWriter interface {
	Save(ctx context.Context, t models.Transaction) (*models.Transaction, error) // Inserts a transaction
	Delete(ctx context.Context, userID, transactionID int64) (bool, error)       // Deletes an owned transaction
}

// TransactionReader defines ledger read operations.
type TransactionReader interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.Transaction, error)     // Date desc, id desc
	SummaryByUserID(ctx context.Context, userID int64) (models.LedgerSummary, error) // Income/expense totals
}

// LedgerService manages per-user transactions.
type LedgerService struct {
	writer TransactionWriter
	reader TransactionReader
	events KafkaWriter
}

// NewLedgerService creates a new LedgerService. events may be nil.
func NewLedgerService(writer TransactionWriter, reader TransactionReader, events KafkaWriter) *LedgerService {
	return &LedgerService{
		writer: writer,
		reader: reader,
		events: events,
	}
}

// AddTransaction validates raw form input and records a transaction for ownerID.
// Nothing is written unless every field is valid.
func (s *LedgerService) AddTransaction(
	ctx context.Context,
	ownerID int64,
	date, description, amount, txType, category string,
) (*models.Transaction, error) {
	t, err := parseTransaction(ownerID, date, description, amount, txType, category)
	if err != nil {
		logger.Log.Warnw("invalid transaction input", "user_id", ownerID, "error", err)
		return nil, err
	}

	saved, err := s.writer.Save(ctx, t)
	if err != nil {
		logger.Log.Errorw("failed to save transaction", "user_id", ownerID, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.events, EventTransactionCreated, ownerID, transactionPayload(saved))
	logger.Log.Infow("transaction added", "user_id", ownerID, "transaction_id", saved.ID, "type", saved.Type)
	return saved, nil
}

// ListTransactions returns the owner's transactions, newest date first.
func (s *LedgerService) ListTransactions(ctx context.Context, ownerID int64) ([]models.Transaction, error) {
	transactions, err := s.reader.ListByUserID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "user_id", ownerID, "error", err)
		return nil, err
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, nil
}

// DeleteTransaction removes the transaction if it exists and belongs to ownerID.
// It returns false when there was nothing to delete.
func (s *LedgerService) DeleteTransaction(ctx context.Context, ownerID, transactionID int64) (bool, error) {
	deleted, err := s.writer.Delete(ctx, ownerID, transactionID)
	if err != nil {
		logger.Log.Errorw("failed to delete transaction", "user_id", ownerID, "transaction_id", transactionID, "error", err)
		return false, err
	}
	if !deleted {
		logger.Log.Warnw("transaction not found", "user_id", ownerID, "transaction_id", transactionID)
		return false, nil
	}

	publishEvent(ctx, s.events, EventTransactionDeleted, ownerID, map[string]any{"id": transactionID})
	return true, nil
}

// Summary returns income and expense totals for the owner's ledger.
func (s *LedgerService) Summary(ctx context.Context, ownerID int64) (models.LedgerSummary, error) {
	summary, err := s.reader.SummaryByUserID(ctx, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to summarize ledger", "user_id", ownerID, "error", err)
		return models.LedgerSummary{}, err
	}
	return summary, nil
}

func parseTransaction(ownerID int64, date, description, amount, txType, category string) (models.Transaction, error) {
	day, err := time.Parse(models.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return models.Transaction{}, invalid("date", "must be in YYYY-MM-DD format")
	}

	value, err := strconv.ParseInt(strings.TrimSpace(amount), 10, 64)
	if err != nil {
		return models.Transaction{}, invalid("amount", "must be an integer")
	}
	if value > MaxAmount || value < -MaxAmount {
		return models.Transaction{}, invalid("amount", fmt.Sprintf("must be between %d and %d", -MaxAmount, MaxAmount))
	}

	kind, ok := models.ParseTransactionType(txType)
	if !ok {
		return models.Transaction{}, invalid("type", "must be income or expense")
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return models.Transaction{}, invalid("description", "is required")
	}

	t := models.Transaction{
		UserID:      ownerID,
		Amount:      value,
		Description: description,
		Date:        day,
		Type:        kind,
	}
	if c := strings.TrimSpace(category); c != "" {
		if err := checkLength("category", c, maxCategoryLength); err != nil {
			return models.Transaction{}, err
		}
		t.Category = &c
	}
	return t, nil
}

func transactionPayload(t *models.Transaction) map[string]any {
	return map[string]any{
		"id":          t.ID,
		"date":        t.Date.Format(models.DateLayout),
		"description": t.Description,
		"amount":      t.Amount,
		"type":        t.Type,
		"category":    t.CategoryOrEmpty(),
	}
}
