package ctl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Config configures a control channel listener.
type Config struct {
	// SocketPath is the filesystem location of the control socket.
	// Derive the conventional location with SocketPath.
	SocketPath string

	// OnLine is invoked for every line received on the channel.
	// Required. It runs on the channel's read worker, so a handler
	// serializes with subsequent triggers.
	OnLine func(line string)

	// Logger for operational logging (optional).
	Logger *slog.Logger
}

// Listener owns the control socket for the life of the process. It
// serves one writer at a time: operator invocations are short-lived,
// sequential writes, and triggered dumps must serialize anyway.
type Listener struct {
	config Config
	logger *slog.Logger

	listener net.Listener
	running  atomic.Bool
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	connMu sync.Mutex
	conn   net.Conn
}

// NewListener creates a control channel listener.
func NewListener(config Config) (*Listener, error) {
	if config.SocketPath == "" {
		return nil, fmt.Errorf("socket path is required")
	}
	if config.OnLine == nil {
		return nil, fmt.Errorf("OnLine handler is required")
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Listener{config: config, logger: config.Logger}, nil
}

// Start binds the socket and launches the read worker. A stale socket
// file left by a previous process is removed first; binding to it would
// otherwise fail or, worse, reach a dead endpoint.
func (l *Listener) Start(ctx context.Context) error {
	if l.running.Load() {
		return fmt.Errorf("control channel already running")
	}

	if err := os.Remove(l.config.SocketPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove stale control socket: %w", err)
	}

	listener, err := net.Listen("unix", l.config.SocketPath)
	if err != nil {
		return fmt.Errorf("listen on control socket: %w", err)
	}
	l.listener = listener

	l.ctx, l.cancel = context.WithCancel(ctx)
	l.running.Store(true)

	l.wg.Add(2)
	go l.acceptLoop()
	go l.watchContext()

	l.logger.Debug("control channel listening", slog.String("path", l.config.SocketPath))
	return nil
}

// Stop halts the read worker and removes the socket.
func (l *Listener) Stop() error {
	if !l.running.Load() {
		return nil
	}

	l.running.Store(false)
	l.cancel()
	l.wg.Wait()

	if err := os.Remove(l.config.SocketPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove control socket: %w", err)
	}
	return nil
}

// Path returns the socket path.
func (l *Listener) Path() string {
	return l.config.SocketPath
}

// watchContext closes the socket and any open connection once the
// context is cancelled, unblocking the accept loop's blocking calls.
func (l *Listener) watchContext() {
	defer l.wg.Done()

	<-l.ctx.Done()
	l.listener.Close()
	l.closeConn()
}

// acceptLoop serves writers one at a time until Stop or context
// cancellation. Accept failures back off and retry; the channel must
// tolerate endpoint reopening for the whole process lifetime.
func (l *Listener) acceptLoop() {
	defer l.wg.Done()

	retry := newBackoff()
	for l.running.Load() {
		conn, err := l.listener.Accept()
		if err != nil {
			if !l.running.Load() || l.ctx.Err() != nil {
				return
			}
			delay := retry.next()
			l.logger.Warn("control channel accept failed",
				slog.String("error", err.Error()),
				slog.Duration("retry_in", delay))
			select {
			case <-time.After(delay):
			case <-l.ctx.Done():
				return
			}
			continue
		}
		retry.reset()
		l.handleConn(conn)
	}
}

// handleConn reads trigger lines until the writer disconnects. A
// disconnect is the normal end of an operator invocation, not an error;
// the accept loop then waits for the next writer.
func (l *Listener) handleConn(conn net.Conn) {
	l.setConn(conn)
	defer l.setConn(nil)
	defer conn.Close()

	logger := l.logger.With(slog.String("conn_id", uuid.New().String()))
	if pid, uid, ok := peerCredentials(conn); ok {
		logger = logger.With(slog.Int("peer_pid", pid), slog.Int("peer_uid", uid))
	}
	logger.Debug("control client connected")

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		l.config.OnLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil && l.running.Load() {
		logger.Warn("control channel read failed", slog.String("error", err.Error()))
	}

	logger.Debug("control client disconnected")
}

func (l *Listener) setConn(conn net.Conn) {
	l.connMu.Lock()
	defer l.connMu.Unlock()
	l.conn = conn
}

func (l *Listener) closeConn() {
	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		l.conn.Close()
	}
}
