package retention

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// fakeClock is a virtual clock: timers fire when the test advances time,
// never by sleeping.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	when    time.Time
	fn      func()
	stopped bool
	fired   bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Now()}
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, when: c.now.Add(d), fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.when.After(c.now) {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	for _, t := range due {
		t.fn()
	}
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func tempArtifact(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "artifact.pdf")
	if err := os.WriteFile(path, []byte("%PDF-"), 0644); err != nil {
		t.Fatalf("Failed to write artifact: %v", err)
	}
	return path
}

func TestRegisterDeletesAfterDelay(t *testing.T) {
	clock := newFakeClock()
	s := NewSchedulerWithClock(clock)
	path := tempArtifact(t)

	s.Register(path, 300*time.Second)

	// Not yet expired: the artifact must still be downloadable.
	clock.Advance(299 * time.Second)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Artifact removed before retention window elapsed: %v", err)
	}

	clock.Advance(2 * time.Second)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("Expected artifact to be deleted after window, stat err: %v", err)
	}
	if s.Pending() != 0 {
		t.Errorf("Expected no pending deletions, got %d", s.Pending())
	}
}

func TestExpiryNoOpsWhenFileAlreadyRemoved(t *testing.T) {
	clock := newFakeClock()
	s := NewSchedulerWithClock(clock)
	path := tempArtifact(t)

	s.Register(path, time.Minute)
	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to remove artifact early: %v", err)
	}

	// Scheduled deletion fires against a missing file and must not
	// panic or error.
	clock.Advance(2 * time.Minute)
	if s.Pending() != 0 {
		t.Errorf("Expected deletion to have fired, %d pending", s.Pending())
	}
}

func TestDuplicateRegisterIsNoOp(t *testing.T) {
	clock := newFakeClock()
	s := NewSchedulerWithClock(clock)
	path := tempArtifact(t)

	s.Register(path, time.Minute)
	s.Register(path, time.Hour)
	if s.Pending() != 1 {
		t.Fatalf("Expected a single pending deletion, got %d", s.Pending())
	}

	// The first registration wins: the file is gone after one minute.
	clock.Advance(time.Minute)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected artifact deleted on first registration's delay")
	}
}

func TestCancelStopsPendingDeletion(t *testing.T) {
	clock := newFakeClock()
	s := NewSchedulerWithClock(clock)
	path := tempArtifact(t)

	s.Register(path, time.Minute)
	if !s.Cancel(path) {
		t.Fatal("Expected Cancel to report a pending deletion")
	}
	if s.Cancel(path) {
		t.Error("Second Cancel should report nothing pending")
	}

	clock.Advance(time.Hour)
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Cancelled deletion still removed the file: %v", err)
	}
}

func TestStopCancelsAllPending(t *testing.T) {
	clock := newFakeClock()
	s := NewSchedulerWithClock(clock)

	paths := []string{tempArtifact(t), tempArtifact(t), tempArtifact(t)}
	for _, p := range paths {
		s.Register(p, time.Minute)
	}
	s.Stop()
	if s.Pending() != 0 {
		t.Fatalf("Expected no pending deletions after Stop, got %d", s.Pending())
	}

	clock.Advance(time.Hour)
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("Stop did not cancel deletion of %s: %v", p, err)
		}
	}
}

func TestRealClockFiresTimer(t *testing.T) {
	s := NewScheduler()
	path := tempArtifact(t)

	s.Register(path, 10*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Artifact not deleted by real clock within deadline")
}
