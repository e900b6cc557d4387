package render

import (
	"strconv"
	"strings"
)

// FormatNumber prints a scene coordinate with at most three decimals and no
// trailing zeros. Path data and serialized attributes share it so a document
// uses one number format throughout.
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
