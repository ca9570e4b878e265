// Reflective symmetry detection for planar point sets.
//
// This package finds every line across which reflecting a finite set of 2D
// points reproduces the same set, with each point mapping either to itself or
// to another point in the set. Candidate lines are the perpendicular
// bisectors of point pairs, validated against the whole set with
// tolerance-based comparisons throughout.
package symmetry

import "github.com/osuushi/symmetry/advanced"

type Point = advanced.Point
type Line = advanced.Line

// NewPoint returns a point with the given coordinates, or an error if either
// coordinate is NaN or infinite.
func NewPoint(x, y float64) (*Point, error) {
	return advanced.NewPoint(x, y)
}

// EquidistantLine returns the perpendicular bisector of two points.
func EquidistantLine(p1, p2 *Point) *Line {
	return advanced.EquidistantLine(p1, p2)
}

// ThroughLine returns the line passing through two points.
func ThroughLine(p1, p2 *Point) *Line {
	return advanced.ThroughLine(p1, p2)
}

// Find every line of symmetry of the given points. The returned lines are in
// implicit form ax + by + c = 0 and are not normalized.
//
// highDegreeExpected keeps validating a failing candidate line against the
// remaining points, so that reflection pairs it confirms are never tried as
// candidates of their own; pass false to abandon each failing candidate at
// the first miss instead. Both settings return the same lines.
//
// Known limitation: when the points are collinear, the line running through
// all of them is only reported if no perpendicular-bisector line was found
// first. Use an advanced.Solver with AlwaysCheckThroughLine set for the
// corrected behavior.
func FindSymmetryLines(points []*Point, highDegreeExpected bool) (result []*Line, err error) {
	defer func() {
		recoveredErr := advanced.HandleSymmetryPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	solver := advanced.NewSolver()
	solver.HighDegreeExpected = highDegreeExpected
	return solver.Find(points).Lines(), nil
}
