// Package recorder provides a recording log sink for tests.
package recorder

import (
	"strings"
	"sync"
	"time"

	"github.com/josteink/wayland-proxy-virtwl/pkg/log"
)

// Record is one captured log record.
type Record struct {
	// Source is the emitting component's tag.
	Source string

	// Severity is the record level.
	Severity log.Severity

	// Line is the preformatted record text.
	Line string
}

// Sink captures emitted records for assertions. Safe for concurrent use.
type Sink struct {
	mu      sync.Mutex
	records []Record
}

// NewSink creates an empty recording sink.
func NewSink() *Sink {
	return &Sink{}
}

// Emit implements log.Sink.
func (s *Sink) Emit(source string, sev log.Severity, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, Record{Source: source, Severity: sev, Line: line})
}

// Records returns a copy of everything captured so far.
func (s *Sink) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Lines returns the captured record texts in order.
func (s *Sink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.Line)
	}
	return out
}

// Contains reports whether any captured line contains substr.
func (s *Sink) Contains(substr string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if strings.Contains(r.Line, substr) {
			return true
		}
	}
	return false
}

// WaitFor polls until a captured line contains substr or the timeout
// elapses. Control channel triggers arrive on a background worker, so
// tests wait instead of asserting immediately.
func (s *Sink) WaitFor(substr string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if s.Contains(substr) {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return s.Contains(substr)
}

// Compile-time interface satisfaction check.
var _ log.Sink = (*Sink)(nil)
