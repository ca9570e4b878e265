package advanced

// A point in the plane. Note that all points flowing through the solver are
// pointers. This means they can be used as map keys while a solve runs. We
// never modify a point supplied by the caller, and reflections computed during
// validation are always fresh transient values, never aliases into the input.
type Point struct {
	X float64
	Y float64
}

// A line in implicit form: ax + by + c = 0. Coefficients are not normalized,
// so two triples describing the same geometric line at different scales are
// distinct values. The solver keeps triples comparable by always deriving a
// given line from the same construction over a canonically ordered pair.
type Line struct {
	A, B, C float64
}

// An unordered pair of points. The fields are canonically ordered at
// construction, so the pairs {p, q} and {q, p} produce identical values and
// the struct can be used as a map key.
type pointPair struct {
	p1, p2 *Point
}

func newPointPair(p, q *Point, tol Tolerance) pointPair {
	if p.Compare(q, tol) <= 0 {
		return pointPair{p1: p, p2: q}
	}
	return pointPair{p1: q, p2: p}
}
