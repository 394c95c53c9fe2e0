package trace

import (
	"os"
	"strings"
)

// EnvTraceTargets is the environment variable read by TargetsFromEnv.
const EnvTraceTargets = "WAYLAND_DEBUG_PROXY"

// allTargets enables tracing for every subsystem. "1" is accepted as a
// synonym so the classic WAYLAND_DEBUG=1 habit carries over.
const allTargets = "all"

// Targets selects which proxy subsystems have message tracing enabled.
// The zero value enables nothing.
type Targets struct {
	all   bool
	names map[string]bool
}

// ParseTargets parses a subsystem selection: a single subsystem name, a
// comma-separated list of names, or "all" (or "1") enabling every
// subsystem. Empty input enables nothing.
func ParseTargets(value string) Targets {
	var t Targets
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		switch part {
		case "":
			continue
		case allTargets, "1":
			t.all = true
		default:
			if t.names == nil {
				t.names = make(map[string]bool)
			}
			t.names[part] = true
		}
	}
	return t
}

// TargetsFromEnv parses the WAYLAND_DEBUG_PROXY environment variable.
func TargetsFromEnv() Targets {
	return ParseTargets(os.Getenv(EnvTraceTargets))
}

// Enabled reports whether tracing is on for the named subsystem.
func (t Targets) Enabled(name string) bool {
	return t.all || t.names[name]
}

// Any reports whether at least one subsystem is enabled.
func (t Targets) Any() bool {
	return t.all || len(t.names) > 0
}
