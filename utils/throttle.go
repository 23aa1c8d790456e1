package utils

import (
	"math/rand"
	"sync"
	"time"
)

// Throttle enforces a randomized pause between successive requests so the
// pipeline never hits the site at full speed. The first call never waits; each
// later call sleeps until a random interval in [min, max] has elapsed since
// the previous one.
type Throttle struct {
	min time.Duration
	max time.Duration

	mu   sync.Mutex
	rng  *rand.Rand
	last time.Time
}

// NewThrottle creates a Throttle with the given interval bounds in
// milliseconds. A max below min is raised to min.
func NewThrottle(minMs, maxMs int) *Throttle {
	if minMs < 0 {
		minMs = 0
	}
	if maxMs < minMs {
		maxMs = minMs
	}
	return &Throttle{
		min: time.Duration(minMs) * time.Millisecond,
		max: time.Duration(maxMs) * time.Millisecond,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Wait blocks until the randomized interval since the previous Wait has
// passed, then records the current time.
func (t *Throttle) Wait() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.last.IsZero() {
		interval := t.min
		if t.max > t.min {
			interval += time.Duration(t.rng.Int63n(int64(t.max - t.min)))
		}
		elapsed := time.Since(t.last)
		if elapsed < interval {
			time.Sleep(interval - elapsed)
		}
	}
	t.last = time.Now()
}
