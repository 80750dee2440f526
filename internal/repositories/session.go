package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-finance-ledger/internal/logger"
)

const revokedSessionPrefix = "session:revoked:"

// SessionRepository tracks revoked session tokens in Redis.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

// Revoke marks the token id as revoked for ttl. A non-positive ttl is a no-op
// since the token has already expired.
func (r *SessionRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := revokedSessionPrefix + tokenID
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow("redis",
		"op", "set",
		"key", key,
		"ttl", ttl,
		"error", err,
	)
	return err
}

// IsRevoked reports whether the token id has been revoked.
func (r *SessionRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedSessionPrefix + tokenID
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Debugw("redis",
		"op", "exists",
		"key", key,
		"result", n,
		"error", err,
	)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
