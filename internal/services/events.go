package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-finance-ledger/internal/logger"
	"github.com/sbilibin2017/gw-finance-ledger/internal/models"
	"github.com/segmentio/kafka-go"
)

// Event types published to the ledger events topic.
const (
	EventTransactionCreated     = "transaction_created"
	EventTransactionDeleted     = "transaction_deleted"
	EventPasswordResetRequested = "password_reset_requested"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

const flushTimeout = 5 * time.Second

// PendingEvents holds events raised inside a database transaction until the
// transaction outcome is known.
type PendingEvents struct {
	mu    sync.Mutex
	sends []func(ctx context.Context)
}

type pendingEventsKey struct{}

// WithPendingEvents returns a context on which publishEvent queues instead of
// writing.
func WithPendingEvents(ctx context.Context) (context.Context, *PendingEvents) {
	p := &PendingEvents{}
	return context.WithValue(ctx, pendingEventsKey{}, p), p
}

func pendingEventsFromContext(ctx context.Context) *PendingEvents {
	p, _ := ctx.Value(pendingEventsKey{}).(*PendingEvents)
	return p
}

func (p *PendingEvents) add(send func(ctx context.Context)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sends = append(p.sends, send)
}

// Flush writes the queued events in order. It must only be called once the
// transaction has committed. Cancellation of ctx is ignored so a client
// disconnect cannot drop committed events.
func (p *PendingEvents) Flush(ctx context.Context) {
	p.mu.Lock()
	sends := p.sends
	p.sends = nil
	p.mu.Unlock()

	if len(sends) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
	defer cancel()
	for _, send := range sends {
		send(ctx)
	}
}

// Discard drops the queued events.
func (p *PendingEvents) Discard() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sends = nil
}

// Len returns the number of queued events.
func (p *PendingEvents) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sends)
}

// publishEvent writes the event to Kafka keyed by user id. Publishing is
// best-effort: failures are logged and never returned to the caller.
// When ctx carries PendingEvents the write waits for Flush.
func publishEvent(ctx context.Context, w KafkaWriter, eventType string, userID int64, payload any) {
	event := models.LedgerEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}

	if w == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(userID, 10)),
		Value: data,
	}

	send := func(ctx context.Context) {
		if err := w.WriteMessages(ctx, msg); err != nil {
			logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
			return
		}
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", eventType, "user_id", userID)
	}

	if pending := pendingEventsFromContext(ctx); pending != nil {
		pending.add(send)
		logger.Log.Debugw("Event queued until commit", "event_id", event.EventID, "type", eventType)
		return
	}
	send(ctx)
}
