// Package geom implements the layout computations for tianzige grids:
// hex color decoding, square size resolution, and grid dimension
// calculation. All functions are pure; lengths are in PDF points
// unless a name says otherwise.
package geom

import (
	"regexp"
	"strconv"
	"strings"
)

// hexColorPattern matches an optional leading '#' followed by exactly
// six hex digits.
var hexColorPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// RGB is a color with components in the unit interval.
type RGB struct {
	R, G, B float64
}

// ValidateHexColor reports whether s is a valid 6-digit hex color,
// with or without a leading '#'.
func ValidateHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// HexToRGB converts a hex color string to an RGB triple in the 0-1
// range. The input must have been checked with ValidateHexColor;
// HexToRGB does not re-validate.
func HexToRGB(s string) RGB {
	s = strings.TrimPrefix(s, "#")
	r, _ := strconv.ParseUint(s[0:2], 16, 8)
	g, _ := strconv.ParseUint(s[2:4], 16, 8)
	b, _ := strconv.ParseUint(s[4:6], 16, 8)
	return RGB{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}
