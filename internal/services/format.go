package services

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v as the shortest decimal that round-trips, always
// keeping a fractional part for integral values ("4.0") and switching to
// exponent notation outside 1e-4 <= |v| < 1e16.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	scientific := strconv.FormatFloat(v, 'e', -1, 64)
	exponent, err := strconv.Atoi(scientific[strings.IndexByte(scientific, 'e')+1:])
	if err == nil && (exponent < -4 || exponent >= 16) {
		return scientific
	}

	fixed := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}
	return fixed
}
