package clock

import (
	"sort"
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	// AfterFunc runs f on its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellable scheduled callback. Stop reports whether the call
// prevented the callback from firing.
type Timer interface {
	Stop() bool
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Repeat calls f every d until the returned Timer is stopped. Each run is
// scheduled after the previous one returns; missed ticks are not replayed.
func Repeat(c Clock, d time.Duration, f func()) Timer {
	r := &repeater{clock: c, every: d, fn: f}
	r.mu.Lock()
	r.next = c.AfterFunc(d, r.fire)
	r.mu.Unlock()
	return r
}

type repeater struct {
	clock   Clock
	every   time.Duration
	fn      func()
	mu      sync.Mutex
	next    Timer
	stopped bool
}

func (r *repeater) fire() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	r.fn()

	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.stopped {
		r.next = r.clock.AfterFunc(r.every, r.fire)
	}
}

func (r *repeater) Stop() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return false
	}
	r.stopped = true
	return r.next.Stop()
}

// MockClock only moves when told to. Callbacks due within an Add or Set run
// synchronously on the caller's goroutine, in deadline order.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	timers      []*mockTimer
	seq         int
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

// Set jumps to t. Moving backwards fires nothing; pending timers keep their
// absolute deadlines.
func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	if t.Before(c.currentTime) {
		c.currentTime = t
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	c.advanceTo(t)
}

func (c *MockClock) Add(d time.Duration) {
	c.advanceTo(c.Now().Add(d))
}

func (c *MockClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &mockTimer{clock: c, at: c.currentTime.Add(d), fn: f, seq: c.seq}
	c.timers = append(c.timers, t)
	return t
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (c *MockClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (c *MockClock) advanceTo(target time.Time) {
	for {
		c.mu.Lock()
		t := c.popDue(target)
		if t == nil {
			if target.After(c.currentTime) {
				c.currentTime = target
			}
			c.mu.Unlock()
			return
		}
		if t.at.After(c.currentTime) {
			c.currentTime = t.at
		}
		c.mu.Unlock()

		t.fn()
	}
}

// popDue must be called with c.mu held.
func (c *MockClock) popDue(target time.Time) *mockTimer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].at.Equal(c.timers[j].at) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].at.Before(c.timers[j].at)
	})
	next := c.timers[0]
	if next.at.After(target) {
		return nil
	}
	c.timers = c.timers[1:]
	return next
}

func (c *MockClock) remove(t *mockTimer) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, candidate := range c.timers {
		if candidate == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}

type mockTimer struct {
	clock *MockClock
	at    time.Time
	fn    func()
	seq   int
}

func (t *mockTimer) Stop() bool {
	return t.clock.remove(t)
}
