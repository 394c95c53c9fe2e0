// Package log routes diagnostic records for the proxy.
//
// This package defines the Sink ingestion interface, the Reporter that
// implements it, and the FlushLimiter guarding automatic dumps. A record
// is a preformatted text line tagged with a source name and a Severity;
// formatting happens at the call sites, never here.
//
// # Routing
//
// With a ring store configured the Reporter keeps debug and info records
// in memory only, mirrors warnings and errors to the process error stream
// immediately, and reacts to an error record by dumping the ring to disk,
// rate-limited by the FlushLimiter. Without a ring store every record
// goes to the error stream directly.
//
//	ring := logring.New("/tmp/wayland-proxy.log", logring.DefaultCapacity)
//	rep := log.NewReporter(log.ReporterConfig{Ring: ring})
//	rep.Emit("client", log.SeverityInfo, "connected")
//
// # slog integration
//
// SlogHandler bridges standard log/slog call sites into a Sink, so an
// embedding process needs no bespoke logging plumbing:
//
//	logger := slog.New(log.NewSlogHandler(rep, "proxy", slog.LevelInfo))
//	logger.Warn("xwayland exited", slog.Int("code", code))
package log
