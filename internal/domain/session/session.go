// Package session models a signed-in browser session. Expiry is decided by
// IsExpired on every request instead of by a background timer.
package session

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func New(userID uuid.UUID, now time.Time, maxLifetime time.Duration) Session {
	return Session{
		ID:           uuid.New(),
		UserID:       userID,
		CreatedAt:    now,
		LastActivity: now,
		ExpiresAt:    now.Add(maxLifetime),
	}
}

// IsExpired reports whether s is past its absolute lifetime or has been idle
// longer than idleTimeout. A zero idleTimeout disables the idle check.
func IsExpired(s Session, now time.Time, idleTimeout time.Duration) bool {
	if !now.Before(s.ExpiresAt) {
		return true
	}
	if idleTimeout > 0 && now.Sub(s.LastActivity) > idleTimeout {
		return true
	}
	return false
}

// Touch returns s with LastActivity moved to now.
func Touch(s Session, now time.Time) Session {
	if now.After(s.LastActivity) {
		s.LastActivity = now
	}
	return s
}

// TTL is how long the store should keep s around.
func TTL(s Session, now time.Time) time.Duration {
	return s.ExpiresAt.Sub(now)
}
