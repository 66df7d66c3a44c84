package render

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// cellAspect compensates for terminal cells being roughly twice as tall as
// they are wide.
const cellAspect = 0.5

// TermView downsamples the trail onto a grid of colored terminal cells.
type TermView struct {
	profile termenv.Profile
	width   int
	height  int
}

// NewTermView probes the terminal size on stdout, falling back to 80x24
// when stdout is not a terminal.
func NewTermView() *TermView {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 2 && h > 3 {
		width, height = w, h-2
	}
	return &TermView{
		profile: termenv.ColorProfile(),
		width:   width,
		height:  height,
	}
}

// Render writes the trail as one colored block character per covered cell.
func (v *TermView) Render(w io.Writer, t *Trail) error {
	minX, minY, maxX, maxY, ok := t.Bounds()
	if !ok {
		_, err := fmt.Fprintln(w, "(empty trail)")
		return err
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	// One uniform scale so the drawing keeps its proportions.
	scale := math.Min(float64(v.width-1)/spanX, float64(v.height-1)/(spanY*cellAspect))

	cols := int(spanX*scale) + 1
	rows := int(spanY*cellAspect*scale) + 1
	grid := make([]string, cols*rows)

	cell := func(p Segment, f float64) (int, int) {
		x := p.From.X + (p.To.X-p.From.X)*f
		y := p.From.Y + (p.To.Y-p.From.Y)*f
		return int((x - minX) * scale), int((y - minY) * cellAspect * scale)
	}

	for _, s := range t.Segments() {
		length := math.Hypot(s.To.X-s.From.X, s.To.Y-s.From.Y)
		steps := int(length*scale)*2 + 1
		for i := 0; i <= steps; i++ {
			cx, cy := cell(s, float64(i)/float64(steps))
			if cx >= 0 && cx < cols && cy >= 0 && cy < rows {
				grid[cy*cols+cx] = s.Color
			}
		}
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			color := grid[row*cols+col]
			if color == "" {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
				continue
			}
			block := termenv.String("█").Foreground(v.profile.Color(color))
			if _, err := io.WriteString(w, block.String()); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
