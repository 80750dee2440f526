package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, _ := time.Parse(models.DateLayout, s)
	return d
}

func TestLedgerService_AddTransaction_RoundTrip(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockTransactionWriter(ctrl)
	reader := NewMockTransactionReader(ctrl)
	events := NewMockKafkaWriter(ctrl)

	var stored []models.Transaction
	writer.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tx models.Transaction) (*models.Transaction, error) {
		tx.ID = int64(len(stored) + 1)
		stored = append(stored, tx)
		return &tx, nil
	})
	reader.EXPECT().ListByUserID(ctx, int64(1)).DoAndReturn(func(context.Context, int64) ([]models.Transaction, error) {
		return stored, nil
	})
	events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
		require.Len(t, msgs, 1)
		assert.Equal(t, "1", string(msgs[0].Key))

		var event models.LedgerEvent
		require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
		assert.Equal(t, EventTransactionCreated, event.Type)
		assert.Equal(t, int64(1), event.UserID)
		return nil
	})

	svc := NewLedgerService(writer, reader, events)

	saved, err := svc.AddTransaction(ctx, 1, "2024-03-01", "Lunch", "250", "expense", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	list, err := svc.ListTransactions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.TransactionTypeExpense, list[0].Type)
	assert.Equal(t, int64(250), list[0].Amount)
	assert.Equal(t, "Lunch", list[0].Description)
	assert.Equal(t, date("2024-03-01"), list[0].Date)
	assert.Nil(t, list[0].Category)
	assert.Equal(t, "", list[0].CategoryOrEmpty())
}

func TestLedgerService_AddTransaction_Parsing(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		date        string
		description string
		amount      string
		txType      string
		category    string
		wantField   string
		want        models.Transaction
	}{
		{
			name:        "income case insensitive with category",
			date:        "2024-01-15",
			description: "Salary",
			amount:      "5000",
			txType:      "INCOME",
			category:    " work ",
			want: models.Transaction{
				UserID: 9, Amount: 5000, Description: "Salary", Date: date("2024-01-15"),
				Type: models.TransactionTypeIncome, Category: strPtr("work"),
			},
		},
		{
			name:        "negative amount is kept as given",
			date:        "2024-01-16",
			description: "Refund",
			amount:      "-20",
			txType:      "Expense",
			want: models.Transaction{
				UserID: 9, Amount: -20, Description: "Refund", Date: date("2024-01-16"),
				Type: models.TransactionTypeExpense,
			},
		},
		{name: "amount not a number", date: "2024-03-01", description: "Lunch", amount: "abc", txType: "expense", wantField: "amount"},
		{name: "fractional amount", date: "2024-03-01", description: "Lunch", amount: "12.5", txType: "expense", wantField: "amount"},
		{name: "bad date format", date: "01/03/2024", description: "Lunch", amount: "1", txType: "expense", wantField: "date"},
		{name: "impossible date", date: "2024-02-30", description: "Lunch", amount: "1", txType: "expense", wantField: "date"},
		{name: "unknown type", date: "2024-03-01", description: "Lunch", amount: "1", txType: "transfer", wantField: "type"},
		{name: "blank description", date: "2024-03-01", description: "  ", amount: "1", txType: "income", wantField: "description"},
		{
			name:        "amount at upper bound",
			date:        "2024-03-02",
			description: "Bonus",
			amount:      "1000000000000",
			txType:      "income",
			want: models.Transaction{
				UserID: 9, Amount: MaxAmount, Description: "Bonus", Date: date("2024-03-02"),
				Type: models.TransactionTypeIncome,
			},
		},
		{name: "amount above bound", date: "2024-03-01", description: "Lunch", amount: "1000000000001", txType: "income", wantField: "amount"},
		{name: "amount below bound", date: "2024-03-01", description: "Lunch", amount: "-1000000000001", txType: "expense", wantField: "amount"},
		{name: "max int64 amount", date: "2024-03-01", description: "Lunch", amount: "9223372036854775807", txType: "income", wantField: "amount"},
		{name: "min int64 amount", date: "2024-03-01", description: "Lunch", amount: "-9223372036854775808", txType: "expense", wantField: "amount"},
		{
			name:        "category at column limit",
			date:        "2024-03-03",
			description: "Tea",
			amount:      "3",
			txType:      "expense",
			category:    strings.Repeat("é", 100),
			want: models.Transaction{
				UserID: 9, Amount: 3, Description: "Tea", Date: date("2024-03-03"),
				Type: models.TransactionTypeExpense, Category: strPtr(strings.Repeat("é", 100)),
			},
		},
		{name: "category too long", date: "2024-03-01", description: "Lunch", amount: "1", txType: "expense", category: strings.Repeat("c", 101), wantField: "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			writer := NewMockTransactionWriter(ctrl)
			svc := NewLedgerService(writer, NewMockTransactionReader(ctrl), nil)

			if tt.wantField == "" {
				writer.EXPECT().Save(ctx, tt.want).DoAndReturn(func(_ context.Context, tx models.Transaction) (*models.Transaction, error) {
					tx.ID = 100
					return &tx, nil
				})
			}

			saved, err := svc.AddTransaction(ctx, 9, tt.date, tt.description, tt.amount, tt.txType, tt.category)
			if tt.wantField != "" {
				ve, ok := IsValidationError(err)
				require.True(t, ok, "expected validation error, got %v", err)
				assert.Equal(t, tt.wantField, ve.Field)
				assert.Nil(t, saved)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(100), saved.ID)
		})
	}
}

func TestLedgerService_AddTransaction_SaveError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockTransactionWriter(ctrl)
	writer.EXPECT().Save(ctx, gomock.Any()).Return(nil, errors.New("db down"))

	svc := NewLedgerService(writer, NewMockTransactionReader(ctrl), NewMockKafkaWriter(ctrl))

	_, err := svc.AddTransaction(ctx, 1, "2024-03-01", "Lunch", "250", "expense", "")
	assert.EqualError(t, err, "db down")
}

func TestLedgerService_AddTransaction_PublishFailureIsIgnored(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockTransactionWriter(ctrl)
	events := NewMockKafkaWriter(ctrl)
	writer.EXPECT().Save(ctx, gomock.Any()).Return(&models.Transaction{ID: 5, UserID: 1}, nil)
	events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

	svc := NewLedgerService(writer, NewMockTransactionReader(ctrl), events)

	saved, err := svc.AddTransaction(ctx, 1, "2024-03-01", "Lunch", "250", "expense", "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), saved.ID)
}

func TestLedgerService_ListTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("passes repository order through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := NewMockTransactionReader(ctrl)
		rows := []models.Transaction{
			{ID: 3, Date: date("2024-03-02")},
			{ID: 2, Date: date("2024-03-01")},
			{ID: 1, Date: date("2024-03-01")},
		}
		reader.EXPECT().ListByUserID(ctx, int64(1)).Return(rows, nil)

		svc := NewLedgerService(NewMockTransactionWriter(ctrl), reader, nil)
		list, err := svc.ListTransactions(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, rows, list)
	})

	t.Run("empty ledger is an empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := NewMockTransactionReader(ctrl)
		reader.EXPECT().ListByUserID(ctx, int64(2)).Return(nil, nil)

		svc := NewLedgerService(NewMockTransactionWriter(ctrl), reader, nil)
		list, err := svc.ListTransactions(ctx, 2)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("reader error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		reader := NewMockTransactionReader(ctrl)
		reader.EXPECT().ListByUserID(ctx, int64(3)).Return(nil, errors.New("db error"))

		svc := NewLedgerService(NewMockTransactionWriter(ctrl), reader, nil)
		_, err := svc.ListTransactions(ctx, 3)
		assert.Error(t, err)
	})
}

func TestLedgerService_DeleteTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes, second delete reports not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := NewMockTransactionWriter(ctrl)
		events := NewMockKafkaWriter(ctrl)
		gomock.InOrder(
			writer.EXPECT().Delete(ctx, int64(1), int64(10)).Return(true, nil),
			writer.EXPECT().Delete(ctx, int64(1), int64(10)).Return(false, nil),
		)
		events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		svc := NewLedgerService(writer, NewMockTransactionReader(ctrl), events)

		ok, err := svc.DeleteTransaction(ctx, 1, 10)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = svc.DeleteTransaction(ctx, 1, 10)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("non-owner gets not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := NewMockTransactionWriter(ctrl)
		writer.EXPECT().Delete(ctx, int64(2), int64(10)).Return(false, nil)

		svc := NewLedgerService(writer, NewMockTransactionReader(ctrl), NewMockKafkaWriter(ctrl))

		ok, err := svc.DeleteTransaction(ctx, 2, 10)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("writer error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writer := NewMockTransactionWriter(ctrl)
		writer.EXPECT().Delete(ctx, int64(1), int64(10)).Return(false, errors.New("db error"))

		svc := NewLedgerService(writer, NewMockTransactionReader(ctrl), nil)

		ok, err := svc.DeleteTransaction(ctx, 1, 10)
		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestLedgerService_Summary(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockTransactionReader(ctrl)
	want := models.LedgerSummary{TotalIncome: 1000, TotalExpense: 250, Balance: 750, Count: 3}
	reader.EXPECT().SummaryByUserID(ctx, int64(1)).Return(want, nil)

	svc := NewLedgerService(NewMockTransactionWriter(ctrl), reader, nil)
	got, err := svc.Summary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func strPtr(s string) *string { return &s }
