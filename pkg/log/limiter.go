package log

import (
	"sync"
	"time"
)

// DefaultFlushInterval is the minimum spacing between automatic
// error-triggered dumps.
const DefaultFlushInterval = 600 * time.Second

// FlushLimiter spaces out automatic dumps so that a sustained error storm
// cannot thrash the disk. Operator-triggered dumps never consult it.
type FlushLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

// NewFlushLimiter creates a limiter with the given minimum interval.
// Non-positive intervals fall back to DefaultFlushInterval.
func NewFlushLimiter(interval time.Duration) *FlushLimiter {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}
	return &FlushLimiter{interval: interval}
}

// Allow reports whether an automatic dump may run at now, and records now
// as the last flush time when it answers yes. Check and update are one
// atomic step, so two near-simultaneous error records cannot both pass.
// The first call always allows.
func (l *FlushLimiter) Allow(now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.last.IsZero() && now.Sub(l.last) < l.interval {
		return false
	}
	l.last = now
	return true
}

// Interval returns the configured minimum interval.
func (l *FlushLimiter) Interval() time.Duration {
	return l.interval
}
