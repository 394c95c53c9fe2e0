package ctl

import (
	"fmt"
	"os"
	"path/filepath"
)

// socketSuffix distinguishes control sockets from the display sockets
// that share the runtime directory.
const socketSuffix = "-ctl"

// SocketPath derives the conventional control socket location for a
// display name: <runtime-dir>/<display>-ctl. The runtime directory is
// $XDG_RUNTIME_DIR when set, the OS temporary directory otherwise.
func SocketPath(display string) (string, error) {
	if display == "" {
		return "", fmt.Errorf("display name is empty")
	}
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, display+socketSuffix), nil
}
