package domain

import "math"

// Point is a position in canvas space. Y grows downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Default drawing attributes for a freshly created actor.
const (
	DefaultColor     = "#000000"
	DefaultLineWidth = 2.0
	// DefaultHeading points straight up in canvas space.
	DefaultHeading = -90.0
)

// Actor is a single animated turtle executing one ExecutionPath.
// It is mutated only by the runtime while draining that path's queue.
type Actor struct {
	ID string `json:"id"`

	Position Point `json:"position"`
	// Heading in degrees. Unbounded; only sin/cos of it matter.
	Heading float64 `json:"heading"`

	PenDown     bool    `json:"pen_down"`
	StrokeColor string  `json:"stroke_color"`
	LineWidth   float64 `json:"line_width"`
}

// Advance returns the endpoint of moving distance units along the actor's
// current heading.
func (a Actor) Advance(distance float64) Point {
	rad := a.Heading * math.Pi / 180
	return Point{
		X: a.Position.X + distance*math.Cos(rad),
		Y: a.Position.Y + distance*math.Sin(rad),
	}
}
