// Package diag wires the proxy's crash-forensics pieces together.
//
// A Service is built once at process startup from a Config and carries
// the trace filter, the in-memory ring store, the record reporter and
// the control channel. Components receive the Service, or one of its
// tracers and loggers, by reference. There is no package-global state,
// so tests construct throwaway instances freely.
//
// Failure posture: diagnostics must never take the proxy down. Malformed
// configuration fails construction, but an unusable dump file degrades
// to stderr logging and a failed control socket disables the channel,
// both with a single reported diagnostic.
package diag
