package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishEvent_WritesImmediatelyWithoutPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := NewMockKafkaWriter(ctrl)
	events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
		require.Len(t, msgs, 1)
		assert.Equal(t, "3", string(msgs[0].Key))
		return nil
	})

	publishEvent(context.Background(), events, EventTransactionDeleted, 3, map[string]int64{"id": 9})
}

func TestPublishEvent_QueuedUntilFlush(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockTransactionWriter(ctrl)
	writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&models.Transaction{ID: 5, UserID: 7}, nil)

	var written []kafka.Message
	events := NewMockKafkaWriter(ctrl)
	events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
		written = append(written, msgs...)
		return nil
	})

	ctx, pending := WithPendingEvents(context.Background())
	svc := NewLedgerService(writer, NewMockTransactionReader(ctrl), events)

	_, err := svc.AddTransaction(ctx, 7, "2024-03-01", "Lunch", "250", "expense", "")
	require.NoError(t, err)
	assert.Empty(t, written)
	assert.Equal(t, 1, pending.Len())

	pending.Flush(ctx)
	require.Len(t, written, 1)
	assert.Equal(t, "7", string(written[0].Key))
	assert.Equal(t, 0, pending.Len())

	pending.Flush(ctx)
	assert.Len(t, written, 1)
}

func TestPendingEvents_Discard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockTransactionWriter(ctrl)
	writer.EXPECT().Delete(gomock.Any(), int64(7), int64(9)).Return(true, nil)

	events := NewMockKafkaWriter(ctrl)
	events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Times(0)

	ctx, pending := WithPendingEvents(context.Background())
	svc := NewLedgerService(writer, NewMockTransactionReader(ctrl), events)

	ok, err := svc.DeleteTransaction(ctx, 7, 9)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, pending.Len())

	pending.Discard()
	pending.Flush(ctx)
	assert.Equal(t, 0, pending.Len())
}

func TestPendingEvents_FlushIgnoresCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := NewMockKafkaWriter(ctrl)
	events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ ...kafka.Message) error {
		assert.NoError(t, ctx.Err())
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	ctx, pending := WithPendingEvents(ctx)
	publishEvent(ctx, events, EventTransactionCreated, 1, nil)
	cancel()

	pending.Flush(ctx)
	assert.Equal(t, 0, pending.Len())
}

func TestPendingEvents_FlushFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := NewMockKafkaWriter(ctrl)
	events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable")).Times(2)

	ctx, pending := WithPendingEvents(context.Background())
	publishEvent(ctx, events, EventTransactionCreated, 1, nil)
	publishEvent(ctx, events, EventTransactionDeleted, 1, nil)

	assert.NotPanics(t, func() { pending.Flush(ctx) })
}
