package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/josteink/wayland-proxy-virtwl/pkg/logring"
)

// ErrNoRing is returned by DumpNow when the reporter runs in passthrough
// mode and has nothing to dump.
var ErrNoRing = errors.New("no ring store configured")

// timeFormat stamps every record with wall-clock time at microsecond
// precision.
const timeFormat = "15:04:05.000000"

// ReporterConfig configures a Reporter.
type ReporterConfig struct {
	// Ring is the in-memory store for records. Nil selects passthrough
	// mode: every record goes directly to Stderr.
	Ring *logring.Ring

	// Limiter spaces automatic error-triggered dumps. Nil creates one
	// with DefaultFlushInterval.
	Limiter *FlushLimiter

	// Stderr is the process error stream (default: os.Stderr).
	Stderr io.Writer

	// Now supplies record timestamps (default: time.Now).
	Now func() time.Time
}

// Reporter routes every emitted record either into the ring store or to
// the error stream, and drives the automatic dump on error records. It is
// the canonical Sink implementation.
type Reporter struct {
	mu      sync.Mutex
	ring    *logring.Ring
	limiter *FlushLimiter
	stderr  io.Writer
	now     func() time.Time
}

// NewReporter creates a Reporter.
func NewReporter(cfg ReporterConfig) *Reporter {
	if cfg.Limiter == nil {
		cfg.Limiter = NewFlushLimiter(DefaultFlushInterval)
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Reporter{
		ring:    cfg.Ring,
		limiter: cfg.Limiter,
		stderr:  cfg.Stderr,
		now:     cfg.Now,
	}
}

// Emit routes one record. With a ring configured the record is stored,
// notable severities are mirrored to the error stream, and an error
// record triggers the rate-limited automatic dump. Without a ring every
// record goes straight to the error stream.
func (r *Reporter) Emit(source string, sev Severity, line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := fmt.Sprintf("%s %s %s: %s", r.now().Format(timeFormat), sev, source, line)

	if r.ring == nil {
		fmt.Fprintln(r.stderr, record)
		return
	}

	r.ring.Append(record)
	if sev.Notable() {
		fmt.Fprintln(r.stderr, record)
	}
	if sev == SeverityError && r.limiter.Allow(r.now()) {
		r.dumpLocked("automatic dump")
	}
}

// DumpNow performs an unconditional dump, bypassing the rate limiter.
// The control channel uses it for operator-triggered dumps. The error is
// returned to the caller and also reported on the error stream.
func (r *Reporter) DumpNow() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ring == nil {
		return ErrNoRing
	}
	return r.dumpLocked("operator dump")
}

// dumpLocked runs a dump and reports failure directly on the error
// stream. Dump errors must not re-enter Emit: an error-severity record
// there would recurse into another dump attempt.
func (r *Reporter) dumpLocked(reason string) error {
	err := r.ring.Dump()
	if err != nil {
		fmt.Fprintf(r.stderr, "%s %s log: %s failed: %v\n",
			r.now().Format(timeFormat), SeverityError, reason, err)
	}
	return err
}

// Ring returns the configured ring store, or nil in passthrough mode.
func (r *Reporter) Ring() *logring.Ring {
	return r.ring
}

// Compile-time interface satisfaction check.
var _ Sink = (*Reporter)(nil)
