package ports

import (
	"context"
	"time"

	"github.com/credora/creator-platform/internal/core/domain"
)

// SessionStore is the single source of truth for "who is logged in, since
// when". Implementations must fail safe: a missing, expired, or unreadable
// record is reported as (nil, nil), and an unavailable backend degrades to
// "no session" rather than an error the caller has to distinguish.
type SessionStore interface {
	// Get returns the session stored under id, or nil when absent. Reads are
	// expiry-triggering: an expired record is cleared before nil is returned.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Set stores the session under id, overwriting any prior value.
	Set(ctx context.Context, id string, session *domain.Session) error

	// Clear removes the session under id. Clearing an absent session is not
	// an error.
	Clear(ctx context.Context, id string) error

	// Refresh resets the session's CreatedAt to now, extending its life by a
	// full timeout. Returns the refreshed session, or nil when absent.
	Refresh(ctx context.Context, id string) (*domain.Session, error)

	// TimeRemaining returns max(0, timeout - elapsed) for the session under
	// id, or zero when no session exists.
	TimeRemaining(ctx context.Context, id string) (time.Duration, error)
}
