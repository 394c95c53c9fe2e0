package diag

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/josteink/wayland-proxy-virtwl/pkg/log"
	"github.com/josteink/wayland-proxy-virtwl/pkg/logring"
	"github.com/josteink/wayland-proxy-virtwl/pkg/trace"
)

// Config holds the diagnostic configuration supplied by the proxy's
// front end.
type Config struct {
	// Display is the proxy's display/session name. It parameterizes the
	// control socket path.
	Display string

	// Verbose admits debug-severity records from collaborators. Message
	// tracing is governed by TraceTargets, not by Verbose.
	Verbose bool

	// LogFile is the dump destination. Empty disables the ring store
	// and the control channel; records then go straight to the error
	// stream.
	LogFile string

	// LogBudget is the total ring memory budget in bytes
	// (default: logring.DefaultCapacity).
	LogBudget int

	// Suppress lists trace categories to drop (see trace.Categories).
	Suppress []string

	// TraceTargets selects subsystems for message tracing, in the same
	// form as the WAYLAND_DEBUG_PROXY environment variable. Empty falls
	// back to that variable.
	TraceTargets string

	// FlushInterval is the minimum spacing between automatic dumps
	// (default: log.DefaultFlushInterval).
	FlushInterval time.Duration

	// Stderr overrides the process error stream (default: os.Stderr).
	// Tests use this; it is not settable from a configuration file.
	Stderr io.Writer
}

// DefaultConfig returns the configuration for a display with every
// category recorded and default sizing.
func DefaultConfig(display string) Config {
	return Config{
		Display:       display,
		LogBudget:     logring.DefaultCapacity,
		FlushInterval: log.DefaultFlushInterval,
	}
}

// Validate checks for malformed configuration. Unusable paths are not
// checked here; New degrades gracefully on those instead of failing.
func (c Config) Validate() error {
	if c.Display == "" {
		return fmt.Errorf("display name is required")
	}
	if c.LogBudget < 0 {
		return fmt.Errorf("log budget must not be negative")
	}
	if c.FlushInterval < 0 {
		return fmt.Errorf("flush interval must not be negative")
	}
	for _, name := range c.Suppress {
		if _, err := trace.ParseCategory(name); err != nil {
			return err
		}
	}
	return nil
}

// fileConfig is the YAML form of Config. The flush interval is given in
// seconds.
type fileConfig struct {
	Display       string   `yaml:"display"`
	Verbose       bool     `yaml:"verbose"`
	LogFile       string   `yaml:"log-file"`
	LogBudget     int      `yaml:"log-budget"`
	Suppress      []string `yaml:"suppress"`
	TraceTargets  string   `yaml:"trace-targets"`
	FlushInterval int      `yaml:"flush-interval"`
}

// LoadConfig reads a YAML configuration file. Unknown keys are rejected
// so typos surface at startup.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return Config{
		Display:       fc.Display,
		Verbose:       fc.Verbose,
		LogFile:       fc.LogFile,
		LogBudget:     fc.LogBudget,
		Suppress:      fc.Suppress,
		TraceTargets:  fc.TraceTargets,
		FlushInterval: time.Duration(fc.FlushInterval) * time.Second,
	}, nil
}
