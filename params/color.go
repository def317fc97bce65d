// Package params holds the leaf parameter utilities: decoding the grid
// color string and resolving responsive desktop/mobile values.
package params

import (
	"regexp"

	css "github.com/mazznoer/csscolorparser"
)

// hexPattern is the only accepted color form: six hex digits with an
// optional leading '#', any case.
var hexPattern = regexp.MustCompile(`\A#?[0-9a-fA-F]{6}\z`)

// White is the fallback color for malformed input.
var White = [3]float64{1, 1, 1}

// DecodeHex parses a 6-hex-digit color string into a normalized RGB
// triple, each channel in [0,1]. Anything that does not match the
// pattern decodes to white; a bad color is a defined fallback here,
// not an error.
func DecodeHex(s string) [3]float64 {
	if !hexPattern.MatchString(s) {
		return White
	}
	if s[0] != '#' {
		s = "#" + s
	}
	c, err := css.Parse(s)
	if err != nil {
		return White
	}
	return [3]float64{c.R, c.G, c.B}
}
