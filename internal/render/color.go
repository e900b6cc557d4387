package render

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// FallbackColor replaces any color string Darken cannot parse.
const FallbackColor = "#c8c8c8"

const hexDigits = "0123456789abcdefABCDEF"

// Darken scales each channel of a "#rrggbb" (or "rrggbb") color by factor,
// flooring and clamping the result to [0, 255]. Malformed input yields
// FallbackColor so one bad language color never aborts a render.
func Darken(hex string, factor float64) string {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 || strings.Trim(h, hexDigits) != "" {
		return FallbackColor
	}
	c, err := colorful.Hex("#" + h)
	if err != nil {
		return FallbackColor
	}
	r, g, b := c.RGB255()
	return colorful.Color{
		R: scaleChannel(r, factor),
		G: scaleChannel(g, factor),
		B: scaleChannel(b, factor),
	}.Hex()
}

// scaleChannel returns the darkened channel as a colorful component in [0, 1].
func scaleChannel(v uint8, factor float64) float64 {
	scaled := math.Floor(float64(v) * factor)
	scaled = math.Max(0, math.Min(255, scaled))
	return scaled / 255
}
