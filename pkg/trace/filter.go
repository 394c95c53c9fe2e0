package trace

// Filter holds the six category toggles. A true flag records messages in
// that category; every flag defaults to true. The filter is configured
// once at startup and treated as read-only afterwards, so copies may be
// handed to tracers freely.
type Filter struct {
	Motion  bool
	Shm     bool
	Delete  bool
	Region  bool
	Drawing bool
	Hints   bool
}

// DefaultFilter returns a filter that records every category.
func DefaultFilter() Filter {
	return Filter{
		Motion:  true,
		Shm:     true,
		Delete:  true,
		Region:  true,
		Drawing: true,
		Hints:   true,
	}
}

// ShouldRecord reports whether a message should enter the trace log.
// Uncategorized messages are always recorded regardless of flag state.
// Pure: no I/O, no mutation.
func (f Filter) ShouldRecord(iface, msg string) bool {
	return f.allows(Classify(iface, msg))
}

// allows maps a category to its flag. Categories without a flag record
// unconditionally.
func (f Filter) allows(c Category) bool {
	switch c {
	case CategoryMotion:
		return f.Motion
	case CategoryShm:
		return f.Shm
	case CategoryDelete:
		return f.Delete
	case CategoryRegion:
		return f.Region
	case CategoryDrawing:
		return f.Drawing
	case CategoryHints:
		return f.Hints
	default:
		return true
	}
}

// Suppress turns off the named categories. Unknown names are an error and
// leave the filter partially updated; callers treat that as a fatal
// configuration problem at startup.
func (f *Filter) Suppress(names ...string) error {
	for _, name := range names {
		c, err := ParseCategory(name)
		if err != nil {
			return err
		}
		switch c {
		case CategoryMotion:
			f.Motion = false
		case CategoryShm:
			f.Shm = false
		case CategoryDelete:
			f.Delete = false
		case CategoryRegion:
			f.Region = false
		case CategoryDrawing:
			f.Drawing = false
		case CategoryHints:
			f.Hints = false
		}
	}
	return nil
}
