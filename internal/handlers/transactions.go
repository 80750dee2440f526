package handlers

//go:generate mockgen -source=transactions.go -destination=transactions_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
)

// TransactionAdder records a transaction from raw form values.
type TransactionAdder interface {
	AddTransaction(ctx context.Context, ownerID int64, date, description, amount, txType, category string) (*models.Transaction, error)
}

// TransactionDeleter removes one of the caller's transactions.
type TransactionDeleter interface {
	DeleteTransaction(ctx context.Context, ownerID, transactionID int64) (bool, error)
}

// TransactionView is the wire shape of a transaction
// swagger:model TransactionView
type TransactionView struct {
	// Transaction id
	// default: 1
	ID int64 `json:"id"`

	// Calendar date
	// default: 2024-03-01
	Date string `json:"date"`

	// Description
	// default: Lunch
	Description string `json:"description"`

	// Amount
	// default: 250
	Amount int64 `json:"amount"`

	// income or expense
	// default: expense
	Type string `json:"type"`

	// Category, empty when not set
	// default: food
	Category string `json:"category"`
}

// TransactionsResponse represents the caller's transactions
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	Transactions []TransactionView `json:"transactions"`
}

// DeleteTransactionResponse represents the outcome of a delete
// swagger:model DeleteTransactionResponse
type DeleteTransactionResponse struct {
	// default: true
	Success bool `json:"success"`

	// default: Transaction deleted
	Message string `json:"message"`
}

func toTransactionViews(transactions []models.Transaction) []TransactionView {
	views := make([]TransactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, TransactionView{
			ID:          t.ID,
			Date:        t.Date.Format(models.DateLayout),
			Description: t.Description,
			Amount:      t.Amount,
			Type:        string(t.Type),
			Category:    t.CategoryOrEmpty(),
		})
	}
	return views
}

// NewAddTransactionHandler returns an HTTP handler that records a transaction.
// @Summary Add transaction
// @Description Records an income or expense for the caller
// @Tags ledger
// @Accept x-www-form-urlencoded
// @Produce json
// @Param date formData string true "Date, YYYY-MM-DD"
// @Param description formData string true "Description"
// @Param amount formData integer true "Amount"
// @Param type formData string true "income or expense"
// @Param category formData string false "Category"
// @Success 303 "Redirect to /dashboard"
// @Failure 400 {object} handlers.ErrorResponse "Invalid form field"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /add_transaction [post]
// @Security CookieAuth
func NewAddTransactionHandler(ledger TransactionAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity(w, r)
		if !ok {
			return
		}
		if !parseForm(w, r) {
			return
		}

		_, err := ledger.AddTransaction(
			r.Context(),
			id.UserID,
			r.PostForm.Get("date"),
			r.PostForm.Get("description"),
			r.PostForm.Get("amount"),
			r.PostForm.Get("type"),
			r.PostForm.Get("category"),
		)
		if err != nil {
			writeServiceError(w, r, err, "add transaction")
			return
		}

		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// NewGetTransactionsHandler returns an HTTP handler listing the caller's transactions.
// @Summary List transactions
// @Description Returns the caller's transactions ordered by date, newest first
// @Tags ledger
// @Produce json
// @Success 200 {object} handlers.TransactionsResponse "Transactions"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /get_transactions [get]
// @Security CookieAuth
func NewGetTransactionsHandler(ledger LedgerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity(w, r)
		if !ok {
			return
		}

		transactions, err := ledger.ListTransactions(r.Context(), id.UserID)
		if err != nil {
			writeServiceError(w, r, err, "get transactions")
			return
		}

		writeJSON(w, http.StatusOK, TransactionsResponse{Transactions: toTransactionViews(transactions)})
	}
}

// NewDeleteTransactionHandler returns an HTTP handler that deletes one of the caller's transactions.
// @Summary Delete transaction
// @Description Deletes the transaction when it exists and belongs to the caller
// @Tags ledger
// @Produce json
// @Param id path integer true "Transaction id"
// @Success 200 {object} handlers.DeleteTransactionResponse "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.DeleteTransactionResponse "Transaction not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /delete_transaction/{id} [post]
// @Security CookieAuth
func NewDeleteTransactionHandler(ledger TransactionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity(w, r)
		if !ok {
			return
		}

		transactionID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, DeleteTransactionResponse{Message: "Transaction not found"})
			return
		}

		deleted, err := ledger.DeleteTransaction(r.Context(), id.UserID, transactionID)
		if err != nil {
			writeServiceError(w, r, err, "delete transaction")
			return
		}
		if !deleted {
			writeJSON(w, http.StatusNotFound, DeleteTransactionResponse{Message: "Transaction not found"})
			return
		}

		writeJSON(w, http.StatusOK, DeleteTransactionResponse{Success: true, Message: "Transaction deleted"})
	}
}
