package domain

import (
	"errors"
	"time"
)

// DefaultSessionTimeout matches the 15-minute window the web client enforced.
const DefaultSessionTimeout = 15 * time.Minute

var ErrSessionNotFound = errors.New("session not found")

// Session wraps an Identity with its creation instant. A session is valid
// while now - CreatedAt <= timeout; past that it is logically deleted even if
// the storage entry still exists until the next read.
type Session struct {
	Identity  Identity  `json:"identity"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the session has outlived timeout as of now.
func (s *Session) Expired(timeout time.Duration, now time.Time) bool {
	return now.Sub(s.CreatedAt) > timeout
}

// Remaining returns the time left before expiry, clamped at zero.
func (s *Session) Remaining(timeout time.Duration, now time.Time) time.Duration {
	left := timeout - now.Sub(s.CreatedAt)
	if left < 0 {
		return 0
	}
	return left
}
