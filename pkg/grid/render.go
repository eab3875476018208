package grid

import "github.com/tzgrid/tianzige/pkg/geom"

// Canvas is the drawing surface the renderer emits to. Implementations
// start with a solid line style; SetLineDash switches the style for
// all subsequent lines.
type Canvas interface {
	SetStrokeColor(c geom.RGB)
	SetLineDash(pattern []float64)
	Line(x0, y0, x1, y1 float64)
}

// innerDash is the on/off pattern for the subdivision lines, in points.
var innerDash = []float64{1, 2}

// Render draws the grid onto the canvas. The emission order is fixed:
// stroke color, cols+1 solid vertical lines, rows+1 solid horizontal
// lines, then (if innerGrid) the dashed midpoint lines per axis. All
// lines span the full grid extent; leftover space past the last
// complete square is left blank.
func Render(c Canvas, spec Spec, color geom.RGB, innerGrid bool) {
	c.SetStrokeColor(color)

	left := spec.Margins.Left
	bottom := spec.Margins.Bottom
	width := spec.Width()
	height := spec.Height()

	for i := 0; i <= spec.Cols; i++ {
		x := left + float64(i)*spec.Square
		c.Line(x, bottom, x, bottom+height)
	}
	for i := 0; i <= spec.Rows; i++ {
		y := bottom + float64(i)*spec.Square
		c.Line(left, y, left+width, y)
	}

	if !innerGrid {
		return
	}

	c.SetLineDash(innerDash)
	for i := 0; i < spec.Cols; i++ {
		x := left + float64(i)*spec.Square + spec.Square/2
		c.Line(x, bottom, x, bottom+height)
	}
	for i := 0; i < spec.Rows; i++ {
		y := bottom + float64(i)*spec.Square + spec.Square/2
		c.Line(left, y, left+width, y)
	}
}
