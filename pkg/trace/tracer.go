package trace

import (
	"github.com/josteink/wayland-proxy-virtwl/pkg/log"
)

// Role identifies which side of the proxy a tracer observes.
type Role uint8

const (
	// RoleClient observes traffic between the proxy and its client.
	RoleClient Role = 0

	// RoleHost observes traffic between the proxy and the host
	// compositor.
	RoleHost Role = 1
)

// String returns the role name, which doubles as the log source tag.
func (r Role) String() string {
	switch r {
	case RoleClient:
		return "client"
	case RoleHost:
		return "host"
	default:
		return "unknown"
	}
}

// Direction indicates message flow relative to the proxy.
type Direction uint8

const (
	// DirectionIn is traffic arriving at the proxy from the peer.
	DirectionIn Direction = 0

	// DirectionOut is traffic leaving the proxy toward the peer.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Tracer records filtered protocol messages for one side of the proxy.
// Both sides share one Filter; only the source label and the direction
// rendering differ. Construct one per role at startup and reuse it for
// the life of the process.
type Tracer struct {
	role    Role
	filter  Filter
	sink    log.Sink
	enabled bool
}

// NewTracer creates a tracer for one proxy role. A disabled tracer, or
// one with a nil sink, drops everything.
func NewTracer(role Role, filter Filter, enabled bool, sink log.Sink) *Tracer {
	return &Tracer{role: role, filter: filter, sink: sink, enabled: enabled}
}

// Role returns the side of the proxy this tracer observes.
func (t *Tracer) Role() Role {
	return t.role
}

// Enabled reports whether this tracer records anything at all.
func (t *Tracer) Enabled() bool {
	return t.enabled && t.sink != nil
}

// Trace records one protocol message if the category filter allows it.
// iface and msg select the filter category; line is the preformatted
// message text and is recorded as-is behind the direction marker.
func (t *Tracer) Trace(d Direction, iface, msg, line string) {
	if !t.Enabled() {
		return
	}
	if !t.filter.ShouldRecord(iface, msg) {
		return
	}
	t.sink.Emit(t.role.String(), log.SeverityDebug, t.arrow(d)+" "+line)
}

// arrow renders direction on the client-to-compositor axis: requests are
// "->" and events "<-" no matter which side of the proxy saw them.
func (t *Tracer) arrow(d Direction) string {
	in := d == DirectionIn
	if t.role == RoleHost {
		in = !in
	}
	if in {
		return "->"
	}
	return "<-"
}
