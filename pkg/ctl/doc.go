// Package ctl implements the proxy's out-of-band control channel.
//
// The channel is a Unix stream socket at <runtime-dir>/<display>-ctl.
// Writing any single line to it makes the proxy dump its in-memory log
// ring to the dump file immediately, bypassing the flush rate limit.
// There is no reply protocol and no malformed input: every line is a
// valid trigger, and its content is only logged as the trigger reason.
//
// Listener is the proxy side. It owns the socket, serves one writer at a
// time, and tolerates writers connecting and disconnecting for the whole
// proxy lifetime. Send is the operator side, used by wayland-proxy-ctl.
package ctl
