package log

import (
	"testing"
	"time"
)

func TestFlushLimiterFirstAlwaysAllowed(t *testing.T) {
	l := NewFlushLimiter(DefaultFlushInterval)
	if !l.Allow(time.Now()) {
		t.Error("first Allow() = false, want true")
	}
}

func TestFlushLimiterSpacing(t *testing.T) {
	base := time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)

	l := NewFlushLimiter(DefaultFlushInterval)
	if !l.Allow(base) {
		t.Fatal("Allow(base) = false, want true")
	}

	// Half the interval later the flush is still suppressed.
	if l.Allow(base.Add(300 * time.Second)) {
		t.Error("Allow(base+300s) = true, want false")
	}

	// Past the interval the flush is allowed again, measured from the
	// last allowed flush, not the last attempt.
	if !l.Allow(base.Add(601 * time.Second)) {
		t.Error("Allow(base+601s) = false, want true")
	}
}

func TestFlushLimiterExactBoundary(t *testing.T) {
	base := time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)

	l := NewFlushLimiter(10 * time.Second)
	if !l.Allow(base) {
		t.Fatal("Allow(base) = false, want true")
	}
	if l.Allow(base.Add(9 * time.Second)) {
		t.Error("Allow(base+9s) = true, want false")
	}
	if !l.Allow(base.Add(10 * time.Second)) {
		t.Error("Allow(base+10s) = false: elapsed equal to the interval must be allowed")
	}
}

func TestFlushLimiterDeniedAttemptsDoNotReset(t *testing.T) {
	base := time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC)

	l := NewFlushLimiter(10 * time.Second)
	l.Allow(base)

	// A burst of denied attempts must not push the window forward.
	for i := 1; i < 10; i++ {
		if l.Allow(base.Add(time.Duration(i) * time.Second)) {
			t.Fatalf("Allow(base+%ds) = true, want false", i)
		}
	}
	if !l.Allow(base.Add(11 * time.Second)) {
		t.Error("Allow(base+11s) = false after denied burst, want true")
	}
}

func TestNewFlushLimiterDefault(t *testing.T) {
	if got := NewFlushLimiter(0).Interval(); got != DefaultFlushInterval {
		t.Errorf("NewFlushLimiter(0).Interval() = %v, want %v", got, DefaultFlushInterval)
	}
	if got := NewFlushLimiter(-time.Second).Interval(); got != DefaultFlushInterval {
		t.Errorf("NewFlushLimiter(-1s).Interval() = %v, want %v", got, DefaultFlushInterval)
	}
	if got := NewFlushLimiter(42 * time.Second).Interval(); got != 42*time.Second {
		t.Errorf("NewFlushLimiter(42s).Interval() = %v, want 42s", got)
	}
}
