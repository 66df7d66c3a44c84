package render

import (
	"sync"

	"github.com/tortugraph/tortuga/pkg/domain"
	"github.com/tortugraph/tortuga/pkg/ports"
)

// MarkerLayer is the default marker surface: it holds only the markers
// drawn since the last Clear, matching the redraw-every-frame contract.
type MarkerLayer struct {
	mu      sync.Mutex
	markers []domain.Actor
}

var _ ports.MarkerSurface = (*MarkerLayer)(nil)

// NewMarkerLayer creates an empty marker layer.
func NewMarkerLayer() *MarkerLayer {
	return &MarkerLayer{}
}

// DrawMarker records one actor marker for the current frame.
func (m *MarkerLayer) DrawMarker(actor domain.Actor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markers = append(m.markers, actor)
}

// Clear drops the current frame's markers.
func (m *MarkerLayer) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.markers = nil
}

// Markers returns a copy of the current frame's markers.
func (m *MarkerLayer) Markers() []domain.Actor {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Actor, len(m.markers))
	copy(out, m.markers)
	return out
}
