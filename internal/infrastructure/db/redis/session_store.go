package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/credora/creator-platform/internal/core/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps sessions in Redis, one key per session ID, TTL equal to
// the session timeout. The payload carries CreatedAt so remaining lifetime
// can be computed without trusting key TTLs.
//
// The store fails safe: an unreachable backend or an unreadable payload reads
// as "no session" rather than an error, matching the port contract.
type SessionStore struct {
	client  *redis.Client
	timeout time.Duration
	log     zerolog.Logger
}

func NewSessionStore(client *redis.Client, timeout time.Duration, log zerolog.Logger) *SessionStore {
	if timeout <= 0 {
		timeout = domain.DefaultSessionTimeout
	}
	return &SessionStore{client: client, timeout: timeout, log: log}
}

// Get reads the session under id. Reads are expiry-triggering: a record past
// its timeout is cleared before nil is returned.
func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	if s.client == nil {
		return nil, nil
	}

	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("session read failed, treating as logged out")
		return nil, nil
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// Stored shape mismatch reads as no session, never a crash.
		s.log.Warn().Err(err).Str("session_id", id).Msg("malformed session payload, clearing")
		_ = s.Clear(ctx, id)
		return nil, nil
	}

	if session.Expired(s.timeout, time.Now().UTC()) {
		_ = s.Clear(ctx, id)
		return nil, nil
	}

	return &session, nil
}

// Set stores the session under id, overwriting any prior value. The key TTL
// mirrors the logical timeout so abandoned sessions age out of Redis.
func (s *SessionStore) Set(ctx context.Context, id string, session *domain.Session) error {
	if s.client == nil {
		return nil
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(id), payload, s.timeout).Err()
}

// Clear removes the session under id. Clearing an absent session is not an
// error.
func (s *SessionStore) Clear(ctx context.Context, id string) error {
	if s.client == nil {
		return nil
	}
	return s.client.Del(ctx, s.key(id)).Err()
}

// Refresh resets CreatedAt to now and re-extends the key TTL.
func (s *SessionStore) Refresh(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil || session == nil {
		return nil, err
	}
	session.CreatedAt = time.Now().UTC()
	if err := s.Set(ctx, id, session); err != nil {
		return nil, err
	}
	return session, nil
}

// TimeRemaining returns max(0, timeout - elapsed), or zero when no session
// exists.
func (s *SessionStore) TimeRemaining(ctx context.Context, id string) (time.Duration, error) {
	session, err := s.Get(ctx, id)
	if err != nil || session == nil {
		return 0, err
	}
	return session.Remaining(s.timeout, time.Now().UTC()), nil
}

func (s *SessionStore) key(id string) string {
	return sessionKeyPrefix + id
}
