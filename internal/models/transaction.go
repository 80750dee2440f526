package models

import (
	"strings"
	"time"
)

// DateLayout is the textual calendar date format used on the wire.
const DateLayout = "2006-01-02"

// TransactionType tells income from expense.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// ParseTransactionType resolves s case-insensitively.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(TransactionTypeIncome):
		return TransactionTypeIncome, true
	case string(TransactionTypeExpense):
		return TransactionTypeExpense, true
	}
	return "", false
}

// Transaction represents a ledger entry owned by exactly one user.
type Transaction struct {
	ID          int64           `json:"id" db:"id"`                   // Primary key
	UserID      int64           `json:"user_id" db:"user_id"`         // Owner
	Amount      int64           `json:"amount" db:"amount"`           // Whole amount, sign not tied to type
	Description string          `json:"description" db:"description"` // Free text
	Category    *string         `json:"category" db:"category"`       // Optional category
	Date        time.Time       `json:"date" db:"date"`               // Calendar date
	Type        TransactionType `json:"type" db:"type"`               // income or expense
}

// CategoryOrEmpty returns the category, or "" when none was given.
func (t Transaction) CategoryOrEmpty() string {
	if t.Category == nil {
		return ""
	}
	return *t.Category
}

// LedgerSummary aggregates a user's ledger.
type LedgerSummary struct {
	TotalIncome  int64 `json:"total_income" db:"total_income"`
	TotalExpense int64 `json:"total_expense" db:"total_expense"`
	Balance      int64 `json:"balance" db:"-"`
	Count        int64 `json:"count" db:"count"`
}

// LedgerEvent is published to Kafka after ledger and account changes.
type LedgerEvent struct {
	EventID    string    `json:"event_id"`    // Unique event identifier
	Type       string    `json:"type"`        // e.g. transaction_created
	UserID     int64     `json:"user_id"`     // Affected user
	OccurredAt time.Time `json:"occurred_at"` // Event time (UTC)
	Payload    any       `json:"payload"`     // Event specific body
}
