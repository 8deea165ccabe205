package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/credora/creator-platform/internal/core/domain"
)

// stubSessionStore is a minimal in-memory ports.SessionStore for watcher tests.
type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id], nil
}

func (s *stubSessionStore) Set(_ context.Context, id string, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = session
	return nil
}

func (s *stubSessionStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *stubSessionStore) Refresh(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	session.CreatedAt = time.Now().UTC()
	return session, nil
}

func (s *stubSessionStore) TimeRemaining(_ context.Context, id string) (time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return 0, nil
	}
	return time.Minute, nil
}

func (s *stubSessionStore) has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	return ok
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v", timeout)
}

func seedSession(store *stubSessionStore, id string) {
	_ = store.Set(context.Background(), id, &domain.Session{
		Identity:  domain.Identity{ID: "user-1", Role: domain.RoleBrand},
		CreatedAt: time.Now().UTC(),
	})
}

func TestExpiryWatcher_DeadlineFires(t *testing.T) {
	store := newStubSessionStore()
	seedSession(store, "sid-1")

	w := NewExpiryWatcher(store, time.Hour, zerolog.Nop())
	defer w.Stop()

	var mu sync.Mutex
	var gotCause string
	w.OnExpire = func(_, cause string) {
		mu.Lock()
		gotCause = cause
		mu.Unlock()
	}

	w.Watch("sid-1", 20*time.Millisecond)

	waitFor(t, time.Second, func() bool { return !store.has("sid-1") })
	waitFor(t, time.Second, func() bool { return w.Active() == 0 })

	mu.Lock()
	defer mu.Unlock()
	if gotCause != "deadline" {
		t.Fatalf("expected cause deadline, got %q", gotCause)
	}
}

func TestExpiryWatcher_PollCatchesVanishedSession(t *testing.T) {
	store := newStubSessionStore()
	seedSession(store, "sid-1")

	w := NewExpiryWatcher(store, 10*time.Millisecond, zerolog.Nop())
	defer w.Stop()

	var mu sync.Mutex
	var gotCause string
	w.OnExpire = func(_, cause string) {
		mu.Lock()
		gotCause = cause
		mu.Unlock()
	}

	// Deadline far away; the poll must notice the out-of-band removal.
	w.Watch("sid-1", time.Hour)
	_ = store.Clear(context.Background(), "sid-1")

	waitFor(t, time.Second, func() bool { return w.Active() == 0 })

	mu.Lock()
	defer mu.Unlock()
	if gotCause != "poll" {
		t.Fatalf("expected cause poll, got %q", gotCause)
	}
}

func TestExpiryWatcher_CancelStopsEnforcement(t *testing.T) {
	store := newStubSessionStore()
	seedSession(store, "sid-1")

	w := NewExpiryWatcher(store, 5*time.Millisecond, zerolog.Nop())
	defer w.Stop()

	fired := make(chan struct{}, 1)
	w.OnExpire = func(_, _ string) { fired <- struct{}{} }

	w.Watch("sid-1", 30*time.Millisecond)
	w.Cancel("sid-1")

	if w.Active() != 0 {
		t.Fatalf("expected no active watches after cancel, got %d", w.Active())
	}

	select {
	case <-fired:
		t.Fatalf("expiry fired after cancel")
	case <-time.After(80 * time.Millisecond):
	}
	if !store.has("sid-1") {
		t.Fatalf("cancel must not clear the session")
	}
}

func TestExpiryWatcher_RewatchReplacesTimers(t *testing.T) {
	store := newStubSessionStore()
	seedSession(store, "sid-1")

	w := NewExpiryWatcher(store, time.Hour, zerolog.Nop())
	defer w.Stop()

	fired := make(chan struct{}, 2)
	w.OnExpire = func(_, _ string) { fired <- struct{}{} }

	// Short deadline immediately superseded by a long one, as a refresh does.
	w.Watch("sid-1", 20*time.Millisecond)
	w.Watch("sid-1", time.Hour)

	if w.Active() != 1 {
		t.Fatalf("expected exactly one active watch, got %d", w.Active())
	}

	select {
	case <-fired:
		t.Fatalf("superseded deadline still fired")
	case <-time.After(80 * time.Millisecond):
	}
	if !store.has("sid-1") {
		t.Fatalf("session cleared by a superseded timer")
	}
}

func TestExpiryWatcher_StopDrainsAllWatches(t *testing.T) {
	store := newStubSessionStore()
	for _, id := range []string{"a", "b", "c"} {
		seedSession(store, id)
	}

	w := NewExpiryWatcher(store, time.Hour, zerolog.Nop())
	w.Watch("a", time.Hour)
	w.Watch("b", time.Hour)
	w.Watch("c", time.Hour)

	if w.Active() != 3 {
		t.Fatalf("expected 3 active watches, got %d", w.Active())
	}

	w.Stop()
	if w.Active() != 0 {
		t.Fatalf("expected 0 active watches after stop, got %d", w.Active())
	}
}
