// Package paper defines the supported page formats and the conversion
// between millimeters and PDF points.
//
// All geometry in the layout and rendering packages is expressed in
// points (the PDF-native unit, 72 per inch). User-facing inputs
// (margins, square sizes) are given in millimeters and converted once
// at the boundary.
package paper

import (
	"sort"
	"strings"

	"github.com/tzgrid/tianzige/pkg/errors"
)

// Unit conversion factors to PDF points.
const (
	MM   = 72.0 / 25.4
	Inch = 72.0
)

// Size is a page size in points.
type Size struct {
	Width  float64
	Height float64
}

// sizes maps format names to their dimensions. ISO formats are defined
// in millimeters, North American formats in inches.
var sizes = map[string]Size{
	"a3":     {297 * MM, 420 * MM},
	"a4":     {210 * MM, 297 * MM},
	"a5":     {148 * MM, 210 * MM},
	"a6":     {105 * MM, 148 * MM},
	"b4":     {250 * MM, 353 * MM},
	"b5":     {176 * MM, 250 * MM},
	"letter": {8.5 * Inch, 11 * Inch},
	"legal":  {8.5 * Inch, 14 * Inch},
}

// Lookup returns the page size for the given format name.
// Names are matched case-insensitively.
func Lookup(name string) (Size, error) {
	s, ok := sizes[strings.ToLower(name)]
	if !ok {
		return Size{}, errors.New(errors.ErrCodeInvalidPageSize,
			"unknown page size %q (supported: %s)", name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// Names returns the supported format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sizes))
	for name := range sizes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
