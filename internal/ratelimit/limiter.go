// Package ratelimit implements the sliding-window burst limiter gating
// engine operations.
package ratelimit

import (
	"sync"
	"time"
)

const (
	// DefaultCapacity is the number of operations admitted per window.
	DefaultCapacity = 15
	// DefaultWindow is the width of the sliding window.
	DefaultWindow = 3 * time.Second
)

// Limiter admits at most capacity operations per sliding window. A rejected
// call has no side effects. Safe for concurrent use.
type Limiter struct {
	mu       sync.Mutex
	capacity int
	window   time.Duration
	stamps   []time.Time

	// now is the clock; replaced in tests.
	now func() time.Time
}

// New creates a limiter admitting capacity operations per window.
// Non-positive arguments fall back to the defaults.
func New(capacity int, window time.Duration) *Limiter {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{
		capacity: capacity,
		window:   window,
		stamps:   make([]time.Time, 0, capacity),
		now:      time.Now,
	}
}

// Allow reports whether one operation may proceed now, recording its
// timestamp if so. Timestamps strictly older than the window are pruned
// first; a timestamp exactly one window old still counts against the
// capacity.
func (l *Limiter) Allow() bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	i := 0
	for i < len(l.stamps) && now.Sub(l.stamps[i]) > l.window {
		i++
	}
	if i > 0 {
		l.stamps = append(l.stamps[:0], l.stamps[i:]...)
	}

	if len(l.stamps) >= l.capacity {
		return false
	}

	l.stamps = append(l.stamps, now)
	return true
}
