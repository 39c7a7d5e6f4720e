package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"
)

const sessionTokenBytes = 32

// ErrSessionNotFound is returned when no session is stored under a token.
var ErrSessionNotFound = errors.New("session not found")

// Session maps an opaque bearer token to an identity and an expiry.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now. A session is
// invalid from its ExpiresAt instant on.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionStore holds sessions between requests. Get returns stored sessions
// even when they are expired; callers decide and revoke.
type SessionStore interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Revoke(ctx context.Context, token string) error
	// SweepExpired removes sessions expired at now and returns how many it removed.
	SweepExpired(ctx context.Context, now time.Time) (int, error)
	Close() error
}

// NewSessionToken returns 32 random bytes, base64url encoded.
func NewSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
