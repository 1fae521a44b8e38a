// Package retention schedules deferred deletion of generated artifacts.
//
// A handler registers an artifact after producing it; ownership of the
// file transfers to the scheduler at that point. The scheduler deletes
// the file once the retention window elapses, off the request path, so
// the caller can still stream the download in the meantime.
package retention

import (
	"log"
	"os"
	"sync"
	"time"
)

// Timer is a one-shot timer handle.
type Timer interface {
	Stop() bool
}

// Clock creates timers. Production code uses the wall clock; tests plug
// in a virtual clock and advance it instead of sleeping.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

type Scheduler struct {
	clock   Clock
	mu      sync.Mutex
	pending map[string]Timer
}

func NewScheduler() *Scheduler {
	return NewSchedulerWithClock(realClock{})
}

func NewSchedulerWithClock(clock Clock) *Scheduler {
	return &Scheduler{
		clock:   clock,
		pending: make(map[string]Timer),
	}
}

// Register schedules a one-shot deletion of path after delay, measured
// from now. It returns immediately; the deletion runs on its own timer
// goroutine. Registering a path that already has a pending deletion is a
// no-op, so an artifact is never deleted twice.
func (s *Scheduler) Register(path string, delay time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[path]; ok {
		return
	}
	s.pending[path] = s.clock.AfterFunc(delay, func() {
		s.expire(path)
	})
}

func (s *Scheduler) expire(path string) {
	s.mu.Lock()
	delete(s.pending, path)
	s.mu.Unlock()

	// The file may already be gone if someone removed it before expiry.
	// Lost cleanup on any other error is acceptable; never retry.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("retention: failed to remove %s: %v", path, err)
	}
}

// Cancel stops a pending deletion and reports whether one was pending.
// The file itself is left in place.
func (s *Scheduler) Cancel(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer, ok := s.pending[path]
	if !ok {
		return false
	}
	delete(s.pending, path)
	timer.Stop()
	return true
}

// Pending reports the number of deletions not yet fired.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Stop cancels every pending deletion. Used on shutdown, where the store
// sweep removes the files instead.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for path, timer := range s.pending {
		timer.Stop()
		delete(s.pending, path)
	}
}
