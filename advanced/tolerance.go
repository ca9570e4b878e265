package advanced

import "math"

// To compensate for imprecision in floats, all comparisons are tolerance
// based. If we don't account for this, points computed through the implicit
// line reflection formula will almost never match their mirror partners
// exactly, and nothing would ever be symmetric.
type Tolerance float64

const DefaultTolerance Tolerance = 1e-6

func (tol Tolerance) Equal(a, b float64) bool {
	return math.Abs(a-b) < float64(tol)
}

// Strict less-than: a is less than b only if the difference clears the
// tolerance band.
func (tol Tolerance) Less(a, b float64) bool {
	return b-a > float64(tol)
}

// Three-way comparison. Returns 0 whenever Equal would, otherwise the sign of
// a - b.
func (tol Tolerance) Compare(a, b float64) int {
	if tol.Equal(a, b) {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}
