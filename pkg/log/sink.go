package log

// Sink receives every log record the process emits. Formatting happens at
// the call sites; a Sink only consumes the finished line together with
// its source tag and severity. Implementations must be safe for
// concurrent use. The canonical implementation is *Reporter.
type Sink interface {
	// Emit records one preformatted log line.
	Emit(source string, sev Severity, line string)
}

// NoopSink discards all records. Safe for concurrent use and usable as a
// zero value.
type NoopSink struct{}

// Emit discards the record.
func (NoopSink) Emit(string, Severity, string) {}

// Compile-time interface satisfaction check.
var _ Sink = NoopSink{}
