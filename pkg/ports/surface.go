package ports

import "github.com/tortugraph/tortuga/pkg/domain"

// TrailSurface is the persistent drawing target. Segments accumulate across
// frames; the surface is emptied only on clear/reset.
type TrailSurface interface {
	// DrawSegment appends one stroke from a to b.
	DrawSegment(from, to domain.Point, color string, width float64)

	// Clear empties the surface.
	Clear()
}

// MarkerSurface is the ephemeral drawing target for live actor markers.
// The scheduler clears and redraws it on every frame.
type MarkerSurface interface {
	// DrawMarker renders a directional marker at the actor's position.
	DrawMarker(actor domain.Actor)

	// Clear empties the surface.
	Clear()
}
