// Package memory provides an in-process session store with the same
// semantics as the Redis-backed one. It backs demo mode (single binary, no
// Redis) and the test suite.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/credora/creator-platform/internal/core/domain"
)

// SessionStore keeps sessions in a mutex-guarded map. Expiry is enforced on
// read: Get clears and hides any record past its timeout.
type SessionStore struct {
	timeout time.Duration

	mu       sync.Mutex
	sessions map[string]domain.Session
}

func NewSessionStore(timeout time.Duration) *SessionStore {
	if timeout <= 0 {
		timeout = domain.DefaultSessionTimeout
	}
	return &SessionStore{
		timeout:  timeout,
		sessions: make(map[string]domain.Session),
	}
}

func (s *SessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	if session.Expired(s.timeout, time.Now().UTC()) {
		delete(s.sessions, id)
		return nil, nil
	}
	copy := session
	return &copy, nil
}

func (s *SessionStore) Set(_ context.Context, id string, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = *session
	return nil
}

func (s *SessionStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *SessionStore) Refresh(ctx context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok || session.Expired(s.timeout, time.Now().UTC()) {
		delete(s.sessions, id)
		return nil, nil
	}
	session.CreatedAt = time.Now().UTC()
	s.sessions[id] = session
	copy := session
	return &copy, nil
}

func (s *SessionStore) TimeRemaining(_ context.Context, id string) (time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return 0, nil
	}
	// Evict under the same predicate Get uses, so the two reads never
	// disagree about whether a record still exists.
	now := time.Now().UTC()
	if session.Expired(s.timeout, now) {
		delete(s.sessions, id)
		return 0, nil
	}
	return session.Remaining(s.timeout, now), nil
}
