package geom

import (
	"math"

	"github.com/tzgrid/tianzige/pkg/errors"
	"github.com/tzgrid/tianzige/pkg/paper"
)

// DefaultMinBoxes is the per-axis minimum box count used when a
// MinimumBoxes request leaves a count unspecified.
const DefaultMinBoxes = 10

// SizeRequest selects how the square size is determined: either an
// explicit size or a minimum box-count constraint.
type SizeRequest interface {
	isSizeRequest()
}

// Explicit requests a fixed square size in millimeters. Optional
// minimum box counts (0 = unconstrained) are verified against the
// resulting grid.
type Explicit struct {
	SizeMM        float64
	MinHorizontal int
	MinVertical   int
}

// MinimumBoxes requests the largest square size that still fits at
// least the given number of boxes on each axis. Zero counts default
// to DefaultMinBoxes.
type MinimumBoxes struct {
	Horizontal int
	Vertical   int
}

func (Explicit) isSizeRequest()     {}
func (MinimumBoxes) isSizeRequest() {}

// ResolveSquareSize computes the authoritative square size in points
// for the given usable area (page minus margins, in points).
//
// For MinimumBoxes requests the candidate size is converted to
// millimeters and floored to the nearest 0.5mm. Rounding down keeps
// the minimum counts satisfied; the result is not re-checked or
// iterated.
func ResolveSquareSize(usableWidth, usableHeight float64, req SizeRequest) (float64, error) {
	if usableWidth <= 0 || usableHeight <= 0 {
		return 0, errors.New(errors.ErrCodeGridTooSmall,
			"margins leave no usable area (%.1fpt x %.1fpt)", usableWidth, usableHeight)
	}

	switch r := req.(type) {
	case Explicit:
		if r.SizeMM <= 0 {
			return 0, errors.New(errors.ErrCodeInvalidSize,
				"square size must be positive, got %gmm", r.SizeMM)
		}
		size := r.SizeMM * paper.MM
		cols := int(usableWidth / size)
		rows := int(usableHeight / size)
		if cols < 1 || rows < 1 {
			return 0, errors.New(errors.ErrCodeGridTooSmall,
				"square size %gmm does not fit the usable area even once", r.SizeMM)
		}
		if r.MinHorizontal > 0 && cols < r.MinHorizontal {
			return 0, errors.New(errors.ErrCodeSizeConflict,
				"square size %gmm fits only %d horizontal boxes, need at least %d",
				r.SizeMM, cols, r.MinHorizontal)
		}
		if r.MinVertical > 0 && rows < r.MinVertical {
			return 0, errors.New(errors.ErrCodeSizeConflict,
				"square size %gmm fits only %d vertical boxes, need at least %d",
				r.SizeMM, rows, r.MinVertical)
		}
		return size, nil

	case MinimumBoxes:
		h, v := r.Horizontal, r.Vertical
		if h == 0 {
			h = DefaultMinBoxes
		}
		if v == 0 {
			v = DefaultMinBoxes
		}
		if h < 1 || v < 1 {
			return 0, errors.New(errors.ErrCodeInvalidSize,
				"minimum box counts must be positive, got %dx%d", h, v)
		}
		candidate := math.Min(usableWidth/float64(h), usableHeight/float64(v))
		sizeMM := math.Floor(candidate/paper.MM*2) / 2
		if sizeMM <= 0 {
			return 0, errors.New(errors.ErrCodeGridTooSmall,
				"usable area too small for %dx%d boxes", h, v)
		}
		return sizeMM * paper.MM, nil

	default:
		return 0, errors.New(errors.ErrCodeInternal, "unknown size request type %T", req)
	}
}

// Dimensions returns the number of complete squares that fit in the
// usable area. Always floors; leftover space past the last complete
// square stays blank.
func Dimensions(usableWidth, usableHeight, square float64) (cols, rows int, err error) {
	if square <= 0 {
		return 0, 0, errors.New(errors.ErrCodeInvalidSize,
			"square size must be positive, got %.1fpt", square)
	}
	cols = int(usableWidth / square)
	rows = int(usableHeight / square)
	if cols < 1 || rows < 1 {
		return 0, 0, errors.New(errors.ErrCodeGridTooSmall,
			"square size %.1fpt larger than usable area %.1fpt x %.1fpt",
			square, usableWidth, usableHeight)
	}
	return cols, rows, nil
}
