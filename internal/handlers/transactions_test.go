package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
	"github.com/sbilibin2017/gw-finance-ledger/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, _ := time.Parse(models.DateLayout, s)
	return d
}

func TestAddTransactionHandler(t *testing.T) {
	form := url.Values{
		"date":        {"2024-03-01"},
		"description": {"Lunch"},
		"amount":      {"250"},
		"type":        {"expense"},
	}

	tests := []struct {
		name         string
		identity     bool
		mockSetup    func(m *MockTransactionAdder)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:     "success",
			identity: true,
			mockSetup: func(m *MockTransactionAdder) {
				m.EXPECT().
					AddTransaction(gomock.Any(), int64(42), "2024-03-01", "Lunch", "250", "expense", "").
					Return(&models.Transaction{ID: 1}, nil)
			},
			expectedCode: http.StatusSeeOther,
		},
		{
			name:     "invalid amount",
			identity: true,
			mockSetup: func(m *MockTransactionAdder) {
				m.EXPECT().
					AddTransaction(gomock.Any(), int64(42), "2024-03-01", "Lunch", "250", "expense", "").
					Return(nil, &services.ValidationError{Field: "amount", Reason: "must be an integer"})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "invalid amount: must be an integer", "field": "amount"},
		},
		{
			name:     "storage failure",
			identity: true,
			mockSetup: func(m *MockTransactionAdder) {
				m.EXPECT().
					AddTransaction(gomock.Any(), int64(42), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
		{
			name:         "no identity",
			mockSetup:    func(m *MockTransactionAdder) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]any{"error": "Unauthorized"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockTransactionAdder(ctrl)
			tt.mockSetup(mockSvc)

			req := newFormRequest(http.MethodPost, "/add_transaction", form)
			if tt.identity {
				req = withIdentity(req, testIdentity)
			}
			rr := httptest.NewRecorder()

			NewAddTransactionHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody == nil {
				assert.Equal(t, "/dashboard", rr.Header().Get("Location"))
				return
			}
			assert.Equal(t, tt.expectedBody, decodeBody(t, rr))
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	food := "food"
	mockSvc := NewMockLedgerReader(ctrl)
	mockSvc.EXPECT().ListTransactions(gomock.Any(), int64(42)).Return([]models.Transaction{
		{ID: 2, UserID: 42, Amount: 1000, Description: "Salary", Date: day("2024-03-05"), Type: models.TransactionTypeIncome},
		{ID: 1, UserID: 42, Amount: 250, Description: "Lunch", Category: &food, Date: day("2024-03-01"), Type: models.TransactionTypeExpense},
	}, nil)

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/get_transactions", nil), testIdentity)
	rr := httptest.NewRecorder()

	NewGetTransactionsHandler(mockSvc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"transactions":[
		{"id":2,"date":"2024-03-05","description":"Salary","amount":1000,"type":"income","category":""},
		{"id":1,"date":"2024-03-01","description":"Lunch","amount":250,"type":"expense","category":"food"}
	]}`, rr.Body.String())
}

func TestGetTransactionsHandler_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLedgerReader(ctrl)
	mockSvc.EXPECT().ListTransactions(gomock.Any(), int64(42)).Return([]models.Transaction{}, nil)

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/get_transactions", nil), testIdentity)
	rr := httptest.NewRecorder()

	NewGetTransactionsHandler(mockSvc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"transactions":[]}`, rr.Body.String())
}

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLedgerReader(ctrl)
	mockSvc.EXPECT().Summary(gomock.Any(), int64(42)).Return(models.LedgerSummary{
		TotalIncome: 1000, TotalExpense: 250, Balance: 750, Count: 2,
	}, nil)
	mockSvc.EXPECT().ListTransactions(gomock.Any(), int64(42)).Return([]models.Transaction{
		{ID: 1, Amount: 250, Description: "Lunch", Date: day("2024-03-01"), Type: models.TransactionTypeExpense},
	}, nil)

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/dashboard", nil), testIdentity)
	rr := httptest.NewRecorder()

	NewDashboardHandler(mockSvc).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"username":"alice",
		"summary":{"total_income":1000,"total_expense":250,"balance":750,"count":2},
		"transactions":[{"id":1,"date":"2024-03-01","description":"Lunch","amount":250,"type":"expense","category":""}]
	}`, rr.Body.String())
}

func TestDashboardHandler_SummaryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLedgerReader(ctrl)
	mockSvc.EXPECT().Summary(gomock.Any(), int64(42)).Return(models.LedgerSummary{}, errors.New("db down"))

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/dashboard", nil), testIdentity)
	rr := httptest.NewRecorder()

	NewDashboardHandler(mockSvc).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestDeleteTransactionHandler(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		mockSetup    func(m *MockTransactionDeleter)
		expectedCode int
		expectedBody string
	}{
		{
			name: "deleted",
			id:   "5",
			mockSetup: func(m *MockTransactionDeleter) {
				m.EXPECT().DeleteTransaction(gomock.Any(), int64(42), int64(5)).Return(true, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"success":true,"message":"Transaction deleted"}`,
		},
		{
			name: "not found or not owned",
			id:   "5",
			mockSetup: func(m *MockTransactionDeleter) {
				m.EXPECT().DeleteTransaction(gomock.Any(), int64(42), int64(5)).Return(false, nil)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"success":false,"message":"Transaction not found"}`,
		},
		{
			name:         "non integer id",
			id:           "abc",
			mockSetup:    func(m *MockTransactionDeleter) {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"success":false,"message":"Transaction not found"}`,
		},
		{
			name: "storage failure",
			id:   "5",
			mockSetup: func(m *MockTransactionDeleter) {
				m.EXPECT().DeleteTransaction(gomock.Any(), int64(42), int64(5)).Return(false, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockTransactionDeleter(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/delete_transaction/"+tt.id, nil)
			req = withURLParam(withIdentity(req, testIdentity), "id", tt.id)
			rr := httptest.NewRecorder()

			NewDeleteTransactionHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
