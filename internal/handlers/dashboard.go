package handlers

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
)

// LedgerReader defines read access to the caller's ledger.
type LedgerReader interface {
	ListTransactions(ctx context.Context, ownerID int64) ([]models.Transaction, error)
	Summary(ctx context.Context, ownerID int64) (models.LedgerSummary, error)
}

// DashboardResponse represents the caller's ledger overview
// swagger:model DashboardResponse
type DashboardResponse struct {
	// Username of the caller
	// default: john_doe
	Username string `json:"username"`

	// Totals over all transactions
	Summary models.LedgerSummary `json:"summary"`

	// Transactions, newest date first
	Transactions []TransactionView `json:"transactions"`
}

// NewDashboardHandler returns an HTTP handler for the caller's dashboard.
// @Summary Dashboard
// @Description Returns the caller's username, ledger totals and transactions
// @Tags ledger
// @Produce json
// @Success 200 {object} handlers.DashboardResponse "Dashboard"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /dashboard [get]
// @Security CookieAuth
func NewDashboardHandler(ledger LedgerReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity(w, r)
		if !ok {
			return
		}

		summary, err := ledger.Summary(r.Context(), id.UserID)
		if err != nil {
			writeServiceError(w, r, err, "dashboard")
			return
		}

		transactions, err := ledger.ListTransactions(r.Context(), id.UserID)
		if err != nil {
			writeServiceError(w, r, err, "dashboard")
			return
		}

		writeJSON(w, http.StatusOK, DashboardResponse{
			Username:     id.Username,
			Summary:      summary,
			Transactions: toTransactionViews(transactions),
		})
	}
}
