package jason

import (
	"math"
	"strconv"
)

// DoubleFormatter appends the decimal text of a finite double to dst.
//
// The text must be the shortest decimal that parses back to the identical
// bit pattern and must not exceed 24 bytes. NaN and infinities are never
// passed in; they are handled by the Strategy.
type DoubleFormatter func(dst []byte, f float64) []byte

// ShortestDouble is the default DoubleFormatter.
// Magnitudes outside [1e-6, 1e21) use exponent notation with a minimal
// exponent, everything else plain notation.
func ShortestDouble(dst []byte, f float64) []byte {
	format := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		// e-07 -> e-7
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}
