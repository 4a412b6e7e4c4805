package kernel

import (
	"sync"
	"time"
)

// Clock returns the current instant. Handlers take a Clock so that tests can pin time.
type Clock func() time.Time

// SystemClock reports UTC wall time truncated to microseconds, the precision PostgreSQL
// keeps for timestamp columns, so that values survive a round trip unchanged.
func SystemClock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SteppingClock starts at t and moves forward by step on every call.
func SteppingClock(t time.Time, step time.Duration) Clock {
	var mu sync.Mutex
	current := t
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := current
		current = current.Add(step)
		return now
	}
}
