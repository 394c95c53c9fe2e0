package diag

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/josteink/wayland-proxy-virtwl/pkg/log"
	"github.com/josteink/wayland-proxy-virtwl/pkg/logring"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig("wayland-1")

	if c.Display != "wayland-1" {
		t.Errorf("Display = %q, want %q", c.Display, "wayland-1")
	}
	if c.LogBudget != logring.DefaultCapacity {
		t.Errorf("LogBudget = %d, want %d", c.LogBudget, logring.DefaultCapacity)
	}
	if c.FlushInterval != log.DefaultFlushInterval {
		t.Errorf("FlushInterval = %v, want %v", c.FlushInterval, log.DefaultFlushInterval)
	}
	if c.Verbose {
		t.Error("Verbose = true, want false by default")
	}
	if c.LogFile != "" {
		t.Errorf("LogFile = %q, want empty", c.LogFile)
	}

	if err := c.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("EmptyDisplay", func(t *testing.T) {
		c := DefaultConfig("")
		if err := c.Validate(); err == nil {
			t.Error("Validate() expected error for empty display")
		}
	})

	t.Run("NegativeBudget", func(t *testing.T) {
		c := DefaultConfig("wayland-0")
		c.LogBudget = -1
		if err := c.Validate(); err == nil {
			t.Error("Validate() expected error for negative budget")
		}
	})

	t.Run("NegativeInterval", func(t *testing.T) {
		c := DefaultConfig("wayland-0")
		c.FlushInterval = -time.Second
		if err := c.Validate(); err == nil {
			t.Error("Validate() expected error for negative flush interval")
		}
	})

	t.Run("SuppressNames", func(t *testing.T) {
		c := DefaultConfig("wayland-0")
		c.Suppress = []string{"motion", "shm"}
		if err := c.Validate(); err != nil {
			t.Errorf("Validate() error = %v for valid suppress names", err)
		}

		c.Suppress = []string{"motion", "bogus"}
		if err := c.Validate(); err == nil {
			t.Error("Validate() expected error for unknown suppress name")
		}
	})
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "proxy.yaml")

	content := `display: wayland-1
verbose: true
log-file: /tmp/proxy-dump.log
log-budget: 262144
suppress:
  - motion
  - shm
trace-targets: client,host
flush-interval: 120
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if c.Display != "wayland-1" {
		t.Errorf("Display = %q, want %q", c.Display, "wayland-1")
	}
	if !c.Verbose {
		t.Error("Verbose = false, want true")
	}
	if c.LogFile != "/tmp/proxy-dump.log" {
		t.Errorf("LogFile = %q", c.LogFile)
	}
	if c.LogBudget != 262144 {
		t.Errorf("LogBudget = %d, want 262144", c.LogBudget)
	}
	if len(c.Suppress) != 2 || c.Suppress[0] != "motion" || c.Suppress[1] != "shm" {
		t.Errorf("Suppress = %v, want [motion shm]", c.Suppress)
	}
	if c.TraceTargets != "client,host" {
		t.Errorf("TraceTargets = %q", c.TraceTargets)
	}
	if c.FlushInterval != 120*time.Second {
		t.Errorf("FlushInterval = %v, want 120s", c.FlushInterval)
	}

	if err := c.Validate(); err != nil {
		t.Errorf("loaded config Validate() error = %v", err)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "proxy.yaml")

	if err := os.WriteFile(path, []byte("display: wayland-0\nbogus-key: 1\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() expected error for unknown key")
	}
}

func TestLoadConfigEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")

	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v for empty file", err)
	}
	if c.Display != "" || c.Verbose {
		t.Errorf("LoadConfig() of empty file = %+v, want zero config", c)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig() expected error for missing file")
	}
}
