package diag

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/josteink/wayland-proxy-virtwl/pkg/ctl"
	"github.com/josteink/wayland-proxy-virtwl/pkg/log"
	"github.com/josteink/wayland-proxy-virtwl/pkg/logring"
	"github.com/josteink/wayland-proxy-virtwl/pkg/trace"
)

// Service is the diagnostic context for one proxy process. It is built
// once at startup and passed by reference to every component that logs;
// all previously process-wide state (category flags, the last-flush
// timestamp, the store handle) lives here.
type Service struct {
	config   Config
	filter   trace.Filter
	targets  trace.Targets
	reporter *log.Reporter
	level    slog.Level
	logger   *slog.Logger
	stderr   io.Writer

	ctl *ctl.Listener
}

// New builds the diagnostic context. Malformed configuration is an
// error; an unusable dump file is reported once and degrades the service
// to passthrough logging instead of failing construction.
func New(config Config) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("diagnostic config: %w", err)
	}
	if config.Stderr == nil {
		config.Stderr = os.Stderr
	}

	filter := trace.DefaultFilter()
	if err := filter.Suppress(config.Suppress...); err != nil {
		return nil, fmt.Errorf("diagnostic config: %w", err)
	}

	var ring *logring.Ring
	if config.LogFile != "" {
		if err := probeDumpFile(config.LogFile); err != nil {
			fmt.Fprintf(config.Stderr,
				"wayland-proxy: log file unusable, logging to stderr instead: %v\n", err)
		} else {
			ring = logring.New(config.LogFile, config.LogBudget)
		}
	}

	targets := trace.ParseTargets(config.TraceTargets)
	if config.TraceTargets == "" {
		targets = trace.TargetsFromEnv()
	}

	level := slog.LevelInfo
	if config.Verbose {
		level = slog.LevelDebug
	}

	s := &Service{
		config:  config,
		filter:  filter,
		targets: targets,
		reporter: log.NewReporter(log.ReporterConfig{
			Ring:    ring,
			Limiter: log.NewFlushLimiter(config.FlushInterval),
			Stderr:  config.Stderr,
		}),
		level:  level,
		stderr: config.Stderr,
	}
	s.logger = s.Logger("proxy")
	return s, nil
}

// probeDumpFile verifies the dump destination is writable, so a bad path
// is reported once at startup instead of on every dump attempt.
func probeDumpFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

// Start brings up the control channel. Passthrough mode has nothing to
// dump, so no channel is created. A channel setup failure is reported
// and disables the channel for the process lifetime; it is not returned
// as an error, because diagnostics must not stop the proxy.
func (s *Service) Start(ctx context.Context) error {
	if s.ctl != nil {
		return fmt.Errorf("diagnostics already started")
	}
	ring := s.reporter.Ring()
	if ring == nil {
		return nil
	}

	socket, err := ctl.SocketPath(s.config.Display)
	if err != nil {
		s.logger.Warn("control channel disabled", slog.String("error", err.Error()))
		return nil
	}

	listener, err := ctl.NewListener(ctl.Config{
		SocketPath: socket,
		OnLine:     s.handleControlLine,
		Logger:     s.logger,
	})
	if err == nil {
		err = listener.Start(ctx)
	}
	if err != nil {
		s.logger.Warn("control channel disabled", slog.String("error", err.Error()))
		return nil
	}

	s.ctl = listener
	s.logger.Debug("diagnostics ready",
		slog.String("ctl", socket),
		slog.String("dump_file", ring.Path()),
		slog.Int("segment_bytes", ring.SegmentCapacity()))
	return nil
}

// Stop tears down the control channel. The ring store needs no teardown;
// process exit reclaims it.
func (s *Service) Stop() error {
	if s.ctl == nil {
		return nil
	}
	err := s.ctl.Stop()
	s.ctl = nil
	return err
}

// handleControlLine runs for every line an operator writes to the
// control socket. Any line is a valid trigger. The reason is logged
// before dumping so it appears in the dump itself.
func (s *Service) handleControlLine(line string) {
	s.reporter.Emit("ctl", log.SeverityInfo, fmt.Sprintf("dump requested: %q", line))
	s.reporter.DumpNow()
}

// Emit hands one preformatted record to the reporter. Debug records are
// dropped unless Verbose is set; message tracers bypass this gate and
// are governed by TraceTargets instead.
func (s *Service) Emit(source string, sev log.Severity, line string) {
	if sev == log.SeverityDebug && !s.config.Verbose {
		return
	}
	s.reporter.Emit(source, sev, line)
}

// Tracer returns the message tracer for one side of the proxy, enabled
// when TraceTargets names the role's subsystem. Call once per role at
// startup.
func (s *Service) Tracer(role trace.Role) *trace.Tracer {
	return trace.NewTracer(role, s.filter, s.targets.Enabled(role.String()), s.reporter)
}

// Logger returns an slog logger whose records flow through the reporter
// under the given source tag.
func (s *Service) Logger(source string) *slog.Logger {
	return slog.New(log.NewSlogHandler(s.reporter, source, s.level))
}

// Reporter exposes the raw record sink.
func (s *Service) Reporter() *log.Reporter {
	return s.reporter
}

// DumpNow dumps the ring store unconditionally, exactly like a
// control-channel trigger. Returns log.ErrNoRing in passthrough mode.
func (s *Service) DumpNow() error {
	return s.reporter.DumpNow()
}

// CtlPath returns the control socket path, or "" while the channel is
// not running.
func (s *Service) CtlPath() string {
	if s.ctl == nil {
		return ""
	}
	return s.ctl.Path()
}
