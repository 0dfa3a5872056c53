package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"inventory-hub/internal/user"
	"inventory-hub/pkg/log"
)

const revokedKeyPrefix = "session:revoked:"

type implSessionStore struct {
	client *redis.Client
	l      log.Logger
}

// NewSessionStore creates a Redis-backed revocation list for session tokens.
// Revoked token IDs are kept only until the token itself would expire.
func NewSessionStore(client *redis.Client, l log.Logger) user.SessionStore {
	if client == nil {
		panic("user/repository/redis: client is required")
	}
	return &implSessionStore{client: client, l: l}
}

func (s *implSessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // token already expired, nothing to track
	}
	if err := s.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		s.l.Errorf(ctx, "user/repository/redis.Revoke: %v", err)
		return err
	}
	return nil
}

func (s *implSessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		s.l.Errorf(ctx, "user/repository/redis.IsRevoked: %v", err)
		return false, err
	}
	return n > 0, nil
}
