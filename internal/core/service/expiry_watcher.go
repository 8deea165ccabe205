package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/credora/creator-platform/internal/core/ports"
)

const defaultPollInterval = time.Minute

// ExpiryWatcher enforces session expiry with two redundant mechanisms per
// session: a one-shot timer armed for the exact expiry instant, and a
// recurring poll that re-reads the store and catches sessions that vanished
// out of band. Either firing clears the session. Watching a session that is
// already watched cancels the previous timers first, so login and refresh can
// re-arm safely.
type ExpiryWatcher struct {
	store ports.SessionStore
	poll  time.Duration
	log   zerolog.Logger

	// OnExpire, when set, is invoked after a session is cleared. cause is
	// "deadline" for the one-shot timer or "poll" for the recurring check.
	OnExpire func(sessionID, cause string)

	mu      sync.Mutex
	watches map[string]*sessionWatch
}

type sessionWatch struct {
	deadline *time.Timer
	done     chan struct{}
}

func NewExpiryWatcher(store ports.SessionStore, poll time.Duration, log zerolog.Logger) *ExpiryWatcher {
	if poll <= 0 {
		poll = defaultPollInterval
	}
	return &ExpiryWatcher{
		store:   store,
		poll:    poll,
		log:     log,
		watches: make(map[string]*sessionWatch),
	}
}

// Watch arms expiry enforcement for sessionID. Any previous watch on the same
// session is cancelled before the new timers are scheduled.
func (w *ExpiryWatcher) Watch(sessionID string, expiresIn time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if prev, ok := w.watches[sessionID]; ok {
		prev.stop()
	}

	watch := &sessionWatch{done: make(chan struct{})}
	watch.deadline = time.AfterFunc(expiresIn, func() {
		w.expire(sessionID, "deadline")
	})
	w.watches[sessionID] = watch

	go w.pollLoop(sessionID, watch.done)
}

// Cancel stops both timers for sessionID without touching the store.
// Cancelling an unwatched session is a no-op.
func (w *ExpiryWatcher) Cancel(sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if watch, ok := w.watches[sessionID]; ok {
		watch.stop()
		delete(w.watches, sessionID)
	}
}

// Stop cancels every active watch. Used at shutdown.
func (w *ExpiryWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id, watch := range w.watches {
		watch.stop()
		delete(w.watches, id)
	}
}

// Active returns the number of sessions currently being watched.
func (w *ExpiryWatcher) Active() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.watches)
}

// pollLoop re-reads the store every poll interval. The store's reads are
// expiry-triggering, so a nil result means the session is gone: drop the
// watch and report the expiry.
func (w *ExpiryWatcher) pollLoop(sessionID string, done <-chan struct{}) {
	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			session, err := w.store.Get(context.Background(), sessionID)
			if err != nil {
				w.log.Warn().Err(err).Str("session_id", sessionID).Msg("session poll failed")
				continue
			}
			if session == nil {
				w.expire(sessionID, "poll")
				return
			}
		}
	}
}

// expire clears the session, removes the watch, and fires the hook. Safe to
// reach from both timers: the second caller finds the watch already gone.
func (w *ExpiryWatcher) expire(sessionID, cause string) {
	w.mu.Lock()
	watch, ok := w.watches[sessionID]
	if ok {
		watch.stop()
		delete(w.watches, sessionID)
	}
	w.mu.Unlock()
	if !ok {
		return
	}

	if err := w.store.Clear(context.Background(), sessionID); err != nil {
		w.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to clear expired session")
	}
	w.log.Info().Str("session_id", sessionID).Str("cause", cause).Msg("session expired")

	if w.OnExpire != nil {
		w.OnExpire(sessionID, cause)
	}
}

// stop halts both timers. Closing done is guarded by the deadline timer state
// being owned by the watcher mutex in all call sites.
func (sw *sessionWatch) stop() {
	sw.deadline.Stop()
	select {
	case <-sw.done:
	default:
		close(sw.done)
	}
}
