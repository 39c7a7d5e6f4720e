package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"floodwatch/internal/cache"
)

const (
	// AdminSessionKeyPrefix namespaces admin sessions in Redis.
	AdminSessionKeyPrefix = "admin_session:"
	// RefreshTokenKeyPrefix namespaces user refresh tokens in Redis.
	RefreshTokenKeyPrefix = "refresh_token:"
)

// RedisSessionStore keeps sessions in Redis as JSON with a TTL matching their
// expiry, so they survive restarts and Redis evicts them on its own.
type RedisSessionStore struct {
	cache  *cache.Client
	prefix string
	now    func() time.Time
}

// Ensure RedisSessionStore implements SessionStore
var _ SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore creates a store whose keys start with prefix.
func NewRedisSessionStore(cache *cache.Client, prefix string) *RedisSessionStore {
	return &RedisSessionStore{cache: cache, prefix: prefix, now: time.Now}
}

func (s *RedisSessionStore) Create(ctx context.Context, session *Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return errors.New("store session: already expired")
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.cache.Set(ctx, s.prefix+session.Token, payload, ttl)
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.cache.Get(ctx, s.prefix+token)
	if err != nil || data == nil {
		return nil, ErrSessionNotFound
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Revoke(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, s.prefix+token)
}

// SweepExpired is a no-op: Redis expires keys itself.
func (s *RedisSessionStore) SweepExpired(context.Context, time.Time) (int, error) {
	return 0, nil
}

// Close does not close the Redis client; its owner does.
func (s *RedisSessionStore) Close() error {
	return nil
}
