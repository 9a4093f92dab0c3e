// Package countdown decomposes the time left until an offer's target instant.
package countdown

import (
	"fmt"
	"time"
)

const (
	msPerSecond = int64(time.Second / time.Millisecond)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Breakdown is the remaining time split into calendar-free units. Every field
// is zero once the target has passed.
type Breakdown struct {
	Diff    time.Duration
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Compute clamps target-now at zero and decomposes it at millisecond precision.
func Compute(target, now time.Time) Breakdown {
	diff := target.Sub(now)
	if diff < 0 {
		diff = 0
	}
	ms := diff.Milliseconds()

	return Breakdown{
		Diff:    diff,
		Days:    ms / msPerDay,
		Hours:   (ms / msPerHour) % 24,
		Minutes: (ms / msPerMinute) % 60,
		Seconds: (ms / msPerSecond) % 60,
	}
}

func (b Breakdown) Expired() bool {
	return b.Diff == 0
}

// TotalSeconds recombines the fields; it equals floor(Diff / 1s).
func (b Breakdown) TotalSeconds() int64 {
	return b.Days*86400 + b.Hours*3600 + b.Minutes*60 + b.Seconds
}

func (b Breakdown) String() string {
	return fmt.Sprintf("%dd %dh %dm %ds", b.Days, b.Hours, b.Minutes, b.Seconds)
}
