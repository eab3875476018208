// Package grid builds tianzige grid layouts and renders them as line
// drawings. The layout (a Spec) is computed once per invocation and
// is immutable; rendering emits an ordered sequence of line segments
// against an abstract canvas, with a PDF-backed implementation in
// this package.
package grid

import (
	"github.com/tzgrid/tianzige/pkg/geom"
	"github.com/tzgrid/tianzige/pkg/paper"
)

// Margins are the page margins in points.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Spec is a resolved grid layout: the page and margins it was derived
// from, the authoritative square size, and the number of complete
// squares per axis.
type Spec struct {
	Page    paper.Size
	Margins Margins
	Square  float64
	Cols    int
	Rows    int
}

// Build resolves the square size for the page's usable area and
// computes the grid dimensions. It fails if the size request cannot
// be satisfied or if no complete square fits.
func Build(page paper.Size, m Margins, req geom.SizeRequest) (Spec, error) {
	usableWidth := page.Width - m.Left - m.Right
	usableHeight := page.Height - m.Top - m.Bottom

	square, err := geom.ResolveSquareSize(usableWidth, usableHeight, req)
	if err != nil {
		return Spec{}, err
	}
	cols, rows, err := geom.Dimensions(usableWidth, usableHeight, square)
	if err != nil {
		return Spec{}, err
	}

	return Spec{
		Page:    page,
		Margins: m,
		Square:  square,
		Cols:    cols,
		Rows:    rows,
	}, nil
}

// Width returns the drawn grid width in points (cols complete squares).
func (s Spec) Width() float64 {
	return float64(s.Cols) * s.Square
}

// Height returns the drawn grid height in points.
func (s Spec) Height() float64 {
	return float64(s.Rows) * s.Square
}
