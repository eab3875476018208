package grid

import (
	"math"
	"testing"

	"github.com/tzgrid/tianzige/pkg/errors"
	"github.com/tzgrid/tianzige/pkg/geom"
	"github.com/tzgrid/tianzige/pkg/paper"
)

func mmMargins(top, bottom, left, right float64) Margins {
	return Margins{
		Top:    top * paper.MM,
		Bottom: bottom * paper.MM,
		Left:   left * paper.MM,
		Right:  right * paper.MM,
	}
}

func TestBuildAuto(t *testing.T) {
	page, err := paper.Lookup("a4")
	if err != nil {
		t.Fatal(err)
	}
	spec, err := Build(page, mmMargins(15, 15, 20, 10), geom.MinimumBoxes{})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if spec.Cols < 10 || spec.Rows < 10 {
		t.Errorf("grid = %dx%d, want at least 10x10", spec.Cols, spec.Rows)
	}

	// Counts must be the floor of usable extent over square size.
	usableWidth := page.Width - spec.Margins.Left - spec.Margins.Right
	usableHeight := page.Height - spec.Margins.Top - spec.Margins.Bottom
	if want := int(usableWidth / spec.Square); spec.Cols != want {
		t.Errorf("Cols = %d, want %d", spec.Cols, want)
	}
	if want := int(usableHeight / spec.Square); spec.Rows != want {
		t.Errorf("Rows = %d, want %d", spec.Rows, want)
	}

	// The drawn grid must fit inside the usable area.
	if spec.Width() > usableWidth || spec.Height() > usableHeight {
		t.Errorf("grid %.1fx%.1f exceeds usable %.1fx%.1f",
			spec.Width(), spec.Height(), usableWidth, usableHeight)
	}
}

func TestBuildExplicit(t *testing.T) {
	page, err := paper.Lookup("a4")
	if err != nil {
		t.Fatal(err)
	}
	spec, err := Build(page, mmMargins(10, 10, 10, 10), geom.Explicit{SizeMM: 25})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if want := 25 * paper.MM; math.Abs(spec.Square-want) > 1e-9 {
		t.Errorf("Square = %v, want %v", spec.Square, want)
	}
	// 190mm usable width / 25mm and 277mm usable height / 25mm.
	if spec.Cols != 7 || spec.Rows != 11 {
		t.Errorf("grid = %dx%d, want 7x11", spec.Cols, spec.Rows)
	}
}

func TestBuildSingleBox(t *testing.T) {
	page, err := paper.Lookup("a4")
	if err != nil {
		t.Fatal(err)
	}
	spec, err := Build(page, mmMargins(10, 10, 10, 10), geom.Explicit{SizeMM: 180})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if spec.Cols != 1 {
		t.Errorf("Cols = %d, want 1", spec.Cols)
	}
}

func TestBuildSquareTooLarge(t *testing.T) {
	page, err := paper.Lookup("a4")
	if err != nil {
		t.Fatal(err)
	}
	_, err = Build(page, mmMargins(10, 10, 10, 10), geom.Explicit{SizeMM: 1000})
	if err == nil {
		t.Fatal("Build() succeeded, want error")
	}
	if !errors.Is(err, errors.ErrCodeGridTooSmall) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeGridTooSmall)
	}
}

func TestBuildOversizedMargins(t *testing.T) {
	page, err := paper.Lookup("a6")
	if err != nil {
		t.Fatal(err)
	}
	_, err = Build(page, mmMargins(10, 10, 60, 60), geom.MinimumBoxes{})
	if err == nil {
		t.Fatal("Build() succeeded, want error")
	}
	if !errors.Is(err, errors.ErrCodeGridTooSmall) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeGridTooSmall)
	}
}
