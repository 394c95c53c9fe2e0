package ctl

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// DefaultSendTimeout bounds how long Send waits to reach the proxy.
const DefaultSendTimeout = 5 * time.Second

// Send writes a single trigger line to a control socket and closes the
// connection. Newlines in line are flattened so exactly one trigger is
// delivered.
func Send(socketPath, line string) error {
	conn, err := net.DialTimeout("unix", socketPath, DefaultSendTimeout)
	if err != nil {
		return fmt.Errorf("dial control socket: %w", err)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(DefaultSendTimeout)); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}

	line = strings.ReplaceAll(line, "\n", " ")
	if _, err := fmt.Fprintln(conn, line); err != nil {
		return fmt.Errorf("write control socket: %w", err)
	}
	return nil
}
