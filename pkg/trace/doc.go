// Package trace classifies proxied protocol messages for selective capture.
//
// A Wayland session produces most of its traffic on a handful of chatty
// interfaces (pointer motion, shm buffer management, damage accumulation),
// which drowns out the messages that matter when reading a crash log. The
// package assigns each (interface, message) pair to one of six semantic
// categories so that noisy categories can be suppressed independently of
// overall log verbosity. Classification is an allow-list for suppression
// only: any pair the table does not know is always recorded.
//
// A Tracer binds one side of the proxy (client or host) to a Filter and a
// record sink. The proxy constructs one Tracer per side; both share the
// same Filter and differ only in their source label and in how message
// direction is rendered.
package trace
