package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tortugraph/tortuga/internal/render"
	"github.com/tortugraph/tortuga/pkg/domain"
)

func TestTrail_BoundsTracking(t *testing.T) {
	trail := render.NewTrail()

	_, _, _, _, ok := trail.Bounds()
	assert.False(t, ok, "empty trail has no bounds")

	trail.DrawSegment(domain.Point{X: -5, Y: 2}, domain.Point{X: 10, Y: -8}, "#000000", 2)
	trail.DrawSegment(domain.Point{X: 0, Y: 0}, domain.Point{X: 3, Y: 20}, "#000000", 2)

	minX, minY, maxX, maxY, ok := trail.Bounds()
	require.True(t, ok)
	assert.Equal(t, -5.0, minX)
	assert.Equal(t, -8.0, minY)
	assert.Equal(t, 10.0, maxX)
	assert.Equal(t, 20.0, maxY)

	trail.Clear()
	_, _, _, _, ok = trail.Bounds()
	assert.False(t, ok)
	assert.Zero(t, trail.Len())
}

func TestWriteSVG(t *testing.T) {
	t.Run("Empty Trail", func(t *testing.T) {
		var sb strings.Builder
		require.NoError(t, render.WriteSVG(&sb, render.NewTrail()))
		assert.Contains(t, sb.String(), "<svg")
		assert.Contains(t, sb.String(), "</svg>")
		assert.NotContains(t, sb.String(), "<line")
	})

	t.Run("Segments Become Lines", func(t *testing.T) {
		trail := render.NewTrail()
		trail.DrawSegment(domain.Point{}, domain.Point{X: 50}, "#ff0000", 2)
		trail.DrawSegment(domain.Point{X: 50}, domain.Point{X: 50, Y: 50}, "", 2)

		var sb strings.Builder
		require.NoError(t, render.WriteSVG(&sb, trail))
		out := sb.String()

		assert.Equal(t, 2, strings.Count(out, "<line"))
		assert.Contains(t, out, `stroke="#ff0000"`)
		assert.Contains(t, out, `stroke="#000000"`, "empty color falls back to black")
		assert.Contains(t, out, "viewBox=")
	})

	t.Run("Color Is Escaped", func(t *testing.T) {
		trail := render.NewTrail()
		trail.DrawSegment(domain.Point{}, domain.Point{X: 1}, `"><script>`, 1)

		var sb strings.Builder
		require.NoError(t, render.WriteSVG(&sb, trail))
		assert.NotContains(t, sb.String(), "<script>")
	})
}

func TestPipeline_VisibilityGating(t *testing.T) {
	trail := render.NewTrail()
	markers := render.NewMarkerLayer()
	p := render.NewPipeline(trail, markers)

	p.SetVisibility(false, false)
	p.DrawSegment(domain.Point{}, domain.Point{X: 1}, "#000000", 1)
	p.DrawMarker(domain.Actor{ID: "a"})
	assert.Zero(t, trail.Len())
	assert.Empty(t, markers.Markers())

	p.SetVisibility(true, true)
	p.DrawSegment(domain.Point{}, domain.Point{X: 1}, "#000000", 1)
	p.DrawMarker(domain.Actor{ID: "a"})
	assert.Equal(t, 1, trail.Len())
	assert.Len(t, markers.Markers(), 1)

	// Clear reaches hidden surfaces too.
	p.SetVisibility(false, false)
	p.Clear()
	p.ClearMarkers()
	assert.Zero(t, trail.Len())
	assert.Empty(t, markers.Markers())
}

func TestTermView_RenderEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, render.NewTermView().Render(&sb, render.NewTrail()))
	assert.Contains(t, sb.String(), "empty trail")
}

func TestTermView_RenderCoversSegments(t *testing.T) {
	trail := render.NewTrail()
	trail.DrawSegment(domain.Point{}, domain.Point{X: 100}, "#00ff00", 2)

	var sb strings.Builder
	require.NoError(t, render.NewTermView().Render(&sb, trail))
	assert.NotEmpty(t, strings.TrimSpace(sb.String()))
}
