package log

import (
	"context"
	"log/slog"
	"strings"
)

// SlogHandler adapts the standard log/slog API to a Sink, so the
// surrounding process keeps its ordinary slog call sites while records
// land in the ring store. Attributes render as plain "key=value" text;
// the store is line-oriented.
type SlogHandler struct {
	sink   Sink
	source string
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// NewSlogHandler creates a handler that emits to sink under the given
// source tag. Records below level are dropped; a nil level admits
// slog.LevelInfo and above.
func NewSlogHandler(sink Sink, source string, level slog.Leveler) *SlogHandler {
	return &SlogHandler{sink: sink, source: source, level: level}
}

// Enabled implements slog.Handler.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.level != nil {
		min = h.level.Level()
	}
	return level >= min
}

// Handle implements slog.Handler.
func (h *SlogHandler) Handle(_ context.Context, rec slog.Record) error {
	var b strings.Builder
	b.WriteString(rec.Message)

	for _, attr := range h.attrs {
		writeAttr(&b, attr)
	}
	prefix := strings.Join(h.groups, ".")
	rec.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, qualify(prefix, attr))
		return true
	})

	h.sink.Emit(h.source, severityFromLevel(rec.Level), b.String())
	return nil
}

// WithAttrs implements slog.Handler. Attributes are qualified with the
// current group prefix at attachment time.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	prefix := strings.Join(h.groups, ".")
	next.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	next.attrs = append(next.attrs, h.attrs...)
	for _, attr := range attrs {
		next.attrs = append(next.attrs, qualify(prefix, attr))
	}
	return &next
}

// WithGroup implements slog.Handler.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = make([]string, 0, len(h.groups)+1)
	next.groups = append(next.groups, h.groups...)
	next.groups = append(next.groups, name)
	return &next
}

// qualify prefixes an attribute key with the group path.
func qualify(prefix string, attr slog.Attr) slog.Attr {
	if prefix == "" {
		return attr
	}
	return slog.Attr{Key: prefix + "." + attr.Key, Value: attr.Value}
}

// writeAttr appends one " key=value" pair. Empty attrs are skipped.
func writeAttr(b *strings.Builder, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	b.WriteByte(' ')
	b.WriteString(attr.Key)
	b.WriteByte('=')
	b.WriteString(attr.Value.Resolve().String())
}

// severityFromLevel maps slog levels onto record severities.
func severityFromLevel(level slog.Level) Severity {
	switch {
	case level >= slog.LevelError:
		return SeverityError
	case level >= slog.LevelWarn:
		return SeverityWarn
	case level >= slog.LevelInfo:
		return SeverityInfo
	default:
		return SeverityDebug
	}
}

// Compile-time interface satisfaction check.
var _ slog.Handler = (*SlogHandler)(nil)
