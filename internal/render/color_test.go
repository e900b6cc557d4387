package render

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDarken(t *testing.T) {
	testCases := []struct {
		name     string
		hex      string
		factor   float64
		expected string
	}{
		{name: "halves white and floors", hex: "#ffffff", factor: 0.5, expected: "#7f7f7f"},
		{name: "left face shade", hex: "#40c463", factor: 0.8, expected: "#339c4f"},
		{name: "missing hash prefix is accepted", hex: "00add8", factor: 0.5, expected: "#00566c"},
		{name: "factor one normalizes case only", hex: "#ABCDEF", factor: 1, expected: "#abcdef"},
		{name: "factor above one clamps to 255", hex: "#808080", factor: 3, expected: "#ffffff"},
		{name: "negative factor clamps to zero", hex: "#808080", factor: -1, expected: "#000000"},
		{name: "not a color falls back", hex: "not-a-color", factor: 0.5, expected: FallbackColor},
		{name: "too short falls back", hex: "#12345", factor: 0.5, expected: FallbackColor},
		{name: "too long falls back", hex: "#1234567", factor: 0.5, expected: FallbackColor},
		{name: "non hex digits fall back", hex: "#gg0000", factor: 0.5, expected: FallbackColor},
		{name: "empty string falls back", hex: "", factor: 0.5, expected: FallbackColor},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Darken(tc.hex, tc.factor))
		})
	}
}

func TestDarken_ChannelsNeverIncrease(t *testing.T) {
	wellFormed := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	colors := []string{"#000000", "#ffffff", "#40c463", "#9be9a8", "#dea584", "#00add8", "#0f0f0f"}
	factors := []float64{0.01, 0.25, 0.5, 0.6, 0.8, 0.999, 1}

	for _, c := range colors {
		for _, f := range factors {
			out := Darken(c, f)
			require.Regexp(t, wellFormed, out, "Darken(%q, %v)", c, f)
			for i := 1; i < 7; i += 2 {
				in, err := strconv.ParseUint(c[i:i+2], 16, 8)
				require.NoError(t, err)
				got, err := strconv.ParseUint(out[i:i+2], 16, 8)
				require.NoError(t, err)
				assert.LessOrEqual(t, got, in, "Darken(%q, %v) channel %d", c, f, i/2)
			}
		}
	}
}
