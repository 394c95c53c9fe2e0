package recorder

import (
	"os"
	"strings"
	"time"
)

// WaitForFileContains polls path until its contents include substr or
// the timeout elapses. Dumps happen on background workers, so tests wait
// for the file rather than reading it immediately.
func WaitForFileContains(path, substr string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		data, err := os.ReadFile(path)
		if err == nil && strings.Contains(string(data), substr) {
			return true
		}
		if !time.Now().Before(deadline) {
			return false
		}
		time.Sleep(5 * time.Millisecond)
	}
}
