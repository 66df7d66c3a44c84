package render

import (
	"math"
	"sync"

	"github.com/tortugraph/tortuga/pkg/domain"
	"github.com/tortugraph/tortuga/pkg/ports"
)

// Segment is one recorded stroke on the trail.
type Segment struct {
	From  domain.Point
	To    domain.Point
	Color string
	Width float64
}

// Trail is the default trail surface: an append-only segment log with
// bounds tracking. The SVG and terminal views read from it.
type Trail struct {
	mu       sync.Mutex
	segments []Segment

	minX, minY float64
	maxX, maxY float64
}

var _ ports.TrailSurface = (*Trail)(nil)

// NewTrail creates an empty trail.
func NewTrail() *Trail {
	t := &Trail{}
	t.resetBounds()
	return t
}

func (t *Trail) resetBounds() {
	t.minX, t.minY = math.Inf(1), math.Inf(1)
	t.maxX, t.maxY = math.Inf(-1), math.Inf(-1)
}

// DrawSegment appends one stroke.
func (t *Trail) DrawSegment(from, to domain.Point, color string, width float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.segments = append(t.segments, Segment{From: from, To: to, Color: color, Width: width})
	for _, p := range [...]domain.Point{from, to} {
		t.minX = math.Min(t.minX, p.X)
		t.minY = math.Min(t.minY, p.Y)
		t.maxX = math.Max(t.maxX, p.X)
		t.maxY = math.Max(t.maxY, p.Y)
	}
}

// Clear empties the trail.
func (t *Trail) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.segments = nil
	t.resetBounds()
}

// Segments returns a copy of the recorded strokes.
func (t *Trail) Segments() []Segment {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// Len returns the number of recorded strokes.
func (t *Trail) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.segments)
}

// Bounds returns the bounding box of all strokes. ok is false while the
// trail is empty.
func (t *Trail) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.segments) == 0 {
		return 0, 0, 0, 0, false
	}
	return t.minX, t.minY, t.maxX, t.maxY, true
}
