package render

import (
	"github.com/tortugraph/tortuga/pkg/domain"
	"github.com/tortugraph/tortuga/pkg/ports"
)

// Pipeline couples the two logically distinct surfaces: the persistent
// trail and the ephemeral actor-marker layer. Visibility toggles gate draw
// calls only; Clear always reaches the underlying surface so reset empties
// hidden layers too.
//
// Pipeline itself implements ports.TrailSurface, so the runtime draws
// through it without knowing about visibility.
type Pipeline struct {
	trail   ports.TrailSurface
	markers ports.MarkerSurface

	showTrail  bool
	showActors bool
}

var _ ports.TrailSurface = (*Pipeline)(nil)

// NewPipeline builds a pipeline over the given surfaces. Both layers start
// visible.
func NewPipeline(trail ports.TrailSurface, markers ports.MarkerSurface) *Pipeline {
	return &Pipeline{
		trail:      trail,
		markers:    markers,
		showTrail:  true,
		showActors: true,
	}
}

// SetVisibility updates the per-run layer toggles.
func (p *Pipeline) SetVisibility(showTrail, showActors bool) {
	p.showTrail = showTrail
	p.showActors = showActors
}

// DrawSegment forwards a stroke to the trail surface when visible.
func (p *Pipeline) DrawSegment(from, to domain.Point, color string, width float64) {
	if !p.showTrail {
		return
	}
	p.trail.DrawSegment(from, to, color, width)
}

// Clear empties the trail surface regardless of visibility.
func (p *Pipeline) Clear() {
	p.trail.Clear()
}

// DrawMarker forwards an actor marker when the layer is visible.
func (p *Pipeline) DrawMarker(actor domain.Actor) {
	if !p.showActors {
		return
	}
	p.markers.DrawMarker(actor)
}

// ClearMarkers empties the marker surface regardless of visibility.
func (p *Pipeline) ClearMarkers() {
	p.markers.Clear()
}
