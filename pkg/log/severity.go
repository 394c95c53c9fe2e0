package log

// Severity is the level attached to every log record.
type Severity uint8

const (
	// SeverityDebug is per-message trace output and other chatter.
	SeverityDebug Severity = 0

	// SeverityInfo is routine operational logging. With a ring store
	// configured, info records stay in memory until a dump.
	SeverityInfo Severity = 1

	// SeverityWarn indicates a recoverable problem.
	SeverityWarn Severity = 2

	// SeverityError indicates a fault worth a forensic dump.
	SeverityError Severity = 3
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarn:
		return "WARN"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Notable reports whether a record must reach the error stream
// immediately even when a ring store is configured. Debug and info
// records wait in the ring for a dump; warnings and errors do not.
func (s Severity) Notable() bool {
	return s >= SeverityWarn
}
