package pipeline

// Default values shared by the CLI flag surface and the HTTP server.
const (
	// DefaultPageSize is the paper format used when none is given.
	DefaultPageSize = "a4"

	// DefaultColor is the grid line color.
	DefaultColor = "#808080"

	// Default margins in millimeters.
	DefaultMarginTopMM    = 15.0
	DefaultMarginBottomMM = 15.0
	DefaultMarginLeftMM   = 20.0
	DefaultMarginRightMM  = 10.0
)

// Options describes a single grid generation.
type Options struct {
	// PageSize is the paper format name (a3, a4, a5, a6, b4, b5,
	// letter, legal).
	PageSize string

	// Color is the grid line color as a hex string, with or without
	// a leading '#'.
	Color string

	// SquareSizeMM is the explicit square size in millimeters.
	// Zero selects auto sizing from the minimum box counts.
	SquareSizeMM float64

	// MinHorizontal and MinVertical are minimum box counts per axis.
	// With an explicit square size they act as constraints; with auto
	// sizing, zero values default to 10.
	MinHorizontal int
	MinVertical   int

	// Margins in millimeters.
	MarginTopMM    float64
	MarginBottomMM float64
	MarginLeftMM   float64
	MarginRightMM  float64

	// InnerGrid draws the dashed midpoint subdivision lines.
	InnerGrid bool
}

// DefaultOptions returns the standard invocation: A4 paper, gray
// lines, 15/15/20/10mm margins, auto-sized squares, inner grid on.
func DefaultOptions() Options {
	return Options{
		PageSize:       DefaultPageSize,
		Color:          DefaultColor,
		MarginTopMM:    DefaultMarginTopMM,
		MarginBottomMM: DefaultMarginBottomMM,
		MarginLeftMM:   DefaultMarginLeftMM,
		MarginRightMM:  DefaultMarginRightMM,
		InnerGrid:      true,
	}
}
