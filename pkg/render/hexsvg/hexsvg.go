// Package hexsvg renders a keyboard surface as a standalone SVG image of
// the hex grid.
//
// The keyboard is a regular grid of hexagons, alternate rows offset by half
// a key, with the whole grid rotated by the instrument's tilt angle. The
// renderer scans the 19 visual rows of the grid, walking the adjacency
// tables so each drawn cell is tied to its (group, key) position.
package hexsvg

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/tangybbq/dlb-lumatone/pkg/lumatone"
)

const (
	// spacing is the distance between adjacent key centers.
	spacing = 10.0
	// tilt is the rotation of the grid, in radians.
	tilt = 16.0 / 360.0 * (2 * math.Pi)
)

var labelEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Render draws the keyboard as an SVG document. Assigned keys are filled
// with a lightened version of their color and carry their label; unassigned
// keys are drawn white and unlabeled.
func Render(kb *lumatone.Keyboard) ([]byte, error) {
	rows, err := lumatone.GridRows(lumatone.NewMoveMap())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="-20 -20 %.0f %.0f">`+"\n",
		36.0*spacing, 20.0*spacing)
	buf.WriteString("  <style>.key-label { font: 3px serif; }</style>\n")

	for y, row := range rows {
		for i, key := range row {
			x := lumatone.RowSpans[y].Offset + i

			color := lumatone.White()
			label := ""
			if info := kb.Get(key); info != nil {
				color = info.Color
				label = info.Label
			}
			writeHex(&buf, x, y, color)
			writeLabel(&buf, x, y, label)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// writeHex draws the hexagon for the cell at grid position (x, y).
func writeHex(buf *bytes.Buffer, x, y int, color lumatone.RGB) {
	cx, cy := coord(x, y)

	// spacing is the distance to the edge midpoints; the corners sit a
	// little further out.
	corner := spacing / (math.Sqrt(3) / 2)

	var d strings.Builder
	for i := 0; i < 6; i++ {
		angle := 2*math.Pi/6*float64(i) + tilt
		dx := corner / 2 * math.Sin(angle)
		dy := corner / 2 * math.Cos(angle)
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&d, "%s%.2f,%.2f ", cmd, cx+dx, cy+dy)
	}
	d.WriteString("Z")

	fmt.Fprintf(buf, "  <path fill=%q stroke=\"black\" stroke-width=\"0.3\" d=%q/>\n",
		color.Lighten().Hex(), d.String())
}

// writeLabel centers the label text in the cell at grid position (x, y).
func writeLabel(buf *bytes.Buffer, x, y int, label string) {
	if label == "" {
		return
	}
	cx, cy := coord(x, y)
	fmt.Fprintf(buf, "  <text class=\"key-label\" x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\" dominant-baseline=\"middle\">%s</text>\n",
		cx, cy, labelEscaper.Replace(label))
}

// coord maps a grid position to SVG space: odd rows shift right by half a
// key, and the whole grid rotates by the negated tilt since SVG Y points
// down.
func coord(x, y int) (float64, float64) {
	fx := float64(x)*spacing + float64(y%2)*(spacing/2)
	fy := float64(y) * spacing * math.Sqrt(3) / 2

	t := -tilt
	return fx*math.Cos(t) - fy*math.Sin(t),
		fx*math.Sin(t) + fy*math.Cos(t)
}
