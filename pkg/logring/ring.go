// Package logring implements the bounded in-memory log store behind the
// proxy's crash forensics.
//
// The store is a ring of four text segments. Appends fill the active
// segment; once a line would push the active segment past its capacity
// the ring rotates and the oldest segment is discarded whole. Eviction is
// O(1) and happens only at segment boundaries, at the price of losing a
// whole segment of history per rotation. A dump appends the retained
// segments in chronological order to the dump file, preceded by a
// boundary marker, and flushes them durably. Dumping never discards ring
// contents; only rotation does.
package logring

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	// DefaultCapacity is the total in-memory budget when none is
	// configured.
	DefaultCapacity = 512 * 1024

	// segmentCount is the number of segments in the ring.
	segmentCount = 4

	// minSegmentCapacity keeps a pathologically small configured budget
	// from producing unusable segments.
	minSegmentCapacity = 4 * 1024
)

// BoundaryMarker is written before each dump so consecutive dumps can be
// told apart in the dump file.
const BoundaryMarker = "=== flushing log to file ==="

// Ring is the bounded wrap-around log store. Retained memory never
// exceeds segmentCount times the per-segment capacity, plus at most one
// line that overshot its freshly cleared segment. Safe for concurrent
// use; appends and dumps are serialized.
type Ring struct {
	mu     sync.Mutex
	path   string
	segCap int
	segs   [segmentCount]bytes.Buffer
	active int
}

// New creates a ring store that dumps to path. capacity is the total
// memory budget in bytes, partitioned evenly across the segments with a
// floor of minSegmentCapacity each; non-positive means DefaultCapacity.
func New(path string, capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	segCap := capacity / segmentCount
	if segCap < minSegmentCapacity {
		segCap = minSegmentCapacity
	}
	return &Ring{path: path, segCap: segCap}
}

// Append stores one log line. The line goes into the active segment when
// it fits; otherwise the ring advances to the next segment, discards that
// segment's previous contents, and writes the line there in full even
// when the line alone exceeds the segment capacity. Capacity is a
// rotation threshold, not a truncation limit.
func (r *Ring) Append(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seg := &r.segs[r.active]
	if seg.Len()+len(line)+1 > r.segCap {
		r.active = (r.active + 1) % segmentCount
		seg = &r.segs[r.active]
		if seg.Cap() > r.segCap {
			// Drop the backing array too, so a segment that once held
			// an oversized line stops counting against the memory bound.
			*seg = bytes.Buffer{}
		} else {
			seg.Reset()
		}
	}
	seg.WriteString(line)
	seg.WriteByte('\n')
}

// Dump appends the ring's retained contents to the dump file and flushes
// them durably before returning. The ring keeps its contents whether or
// not the dump succeeds.
func (r *Ring) Dump() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open dump file: %w", err)
	}

	if err := r.writeTo(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync dump file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close dump file: %w", err)
	}
	return nil
}

// DumpTo writes the boundary marker and the retained segments to w in
// chronological order. No durability guarantee is made for w.
func (r *Ring) DumpTo(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writeTo(w)
}

// writeTo emits the marker followed by the segments oldest-first. The
// segment after the active one is the oldest retained; output runs from
// there forward and ends with the active segment. History rotated away
// before this dump is simply absent.
func (r *Ring) writeTo(w io.Writer) error {
	if _, err := fmt.Fprintln(w, BoundaryMarker); err != nil {
		return fmt.Errorf("write boundary marker: %w", err)
	}
	for i := 1; i <= segmentCount; i++ {
		seg := &r.segs[(r.active+i)%segmentCount]
		if seg.Len() == 0 {
			continue
		}
		if _, err := w.Write(seg.Bytes()); err != nil {
			return fmt.Errorf("write segment: %w", err)
		}
	}
	return nil
}

// Path returns the dump destination.
func (r *Ring) Path() string {
	return r.path
}

// Size returns the number of bytes currently retained.
func (r *Ring) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for i := range r.segs {
		n += r.segs[i].Len()
	}
	return n
}

// SegmentCapacity returns the per-segment rotation threshold.
func (r *Ring) SegmentCapacity() int {
	return r.segCap
}
