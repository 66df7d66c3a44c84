package render

import (
	"fmt"
	"io"
	"strings"
)

// svgMargin pads the viewBox around the trail's bounding box.
const svgMargin = 10.0

// WriteSVG renders the trail as a standalone SVG document. An empty trail
// produces a valid document with a default viewBox.
func WriteSVG(w io.Writer, t *Trail) error {
	minX, minY, maxX, maxY, ok := t.Bounds()
	if !ok {
		minX, minY, maxX, maxY = 0, 0, 100, 100
	}
	minX -= svgMargin
	minY -= svgMargin
	width := maxX - minX + svgMargin
	height := maxY - minY + svgMargin

	if _, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.2f %.2f %.2f %.2f">`+"\n",
		minX, minY, width, height); err != nil {
		return err
	}

	for _, s := range t.Segments() {
		color := s.Color
		if color == "" {
			color = "#000000"
		}
		if _, err := fmt.Fprintf(w,
			`  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f" stroke-linecap="round"/>`+"\n",
			s.From.X, s.From.Y, s.To.X, s.To.Y, escapeAttr(color), s.Width); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</svg>\n")
	return err
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
