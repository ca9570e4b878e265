package advanced

import "log"

// Solver finds every line of reflective symmetry of a point set: lines across
// which reflecting the whole set reproduces the same set, each point mapping
// either to itself or to another member.
//
// Every unordered pair of input points seeds one candidate line, the
// perpendicular bisector of the pair, which is then validated against the
// full set. A pair whose reflection relationship has been confirmed during
// any validation scan is retired and never seeds a candidate of its own.
// Worst case is O(n³): O(n²) candidates, each validated in O(n).
type Solver struct {
	// Tolerance used for every comparison during a solve.
	Tolerance Tolerance

	// When true (the default), a failing candidate line is still validated
	// against the remaining points. Each reflection relationship it confirms
	// retires a generator pair, so sets with a lot of partial symmetry solve
	// faster. When false, a candidate is abandoned at the first point with no
	// mirror partner.
	HighDegreeExpected bool

	// A perpendicular bisector can never pass through its generating pair, so
	// the main loop cannot discover a line that runs through all of the
	// points; that case gets one separate check. Historically the check runs
	// only when no bisector validated, which misses sets like three evenly
	// spaced collinear points where both kinds of line exist. Set this to run
	// the check unconditionally.
	AlwaysCheckThroughLine bool
}

// NewSolver returns a solver with the default tolerance and the
// high-degree-expected policy enabled.
func NewSolver() *Solver {
	return &Solver{
		Tolerance:          DefaultTolerance,
		HighDegreeExpected: true,
	}
}

// Find returns all lines of symmetry of the given points. Points equal within
// tolerance are treated as a single point. Fewer than two distinct points
// yields an empty set and a warning, since no symmetry line is defined.
// Panics with a SymmetryError on non-finite coordinates; the root package
// recovers this into an error.
func (s *Solver) Find(points []*Point) *LineSet {
	tol := s.Tolerance
	result := NewLineSet(tol)

	for _, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			fatalf("point coordinates must be finite, got %s", p)
		}
	}

	set := NewPointSet(tol, points)
	if set.Len() < 2 {
		log.Printf("Warning: at least 2 points are needed to find lines of symmetry")
		return result
	}

	members := set.Points()

	// Every unordered pair of distinct points starts out as a generator.
	generators := make(map[pointPair]struct{}, len(members)*(len(members)-1)/2)
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			generators[newPointPair(members[i], members[j], tol)] = struct{}{}
		}
	}

	// Whether a line through all of the points is still the only possible kind
	// of missing symmetry line.
	throughLinePossible := true

	for len(generators) > 0 {
		// Take an arbitrary pair. The final result must not depend on which one;
		// map iteration order keeps us honest about that.
		var pair pointPair
		for p := range generators {
			pair = p
			break
		}
		delete(generators, pair)

		candidate := EquidistantLine(pair.p1, pair.p2)
		valid := true

		// Confirmed mirror partners across the candidate. The generating pair
		// is trivially consistent with its own bisector.
		reflections := make(map[*Point]*Point, set.Len())
		reflections[pair.p1] = pair.p2
		reflections[pair.p2] = pair.p1

		for _, point := range members {
			if _, ok := reflections[point]; ok {
				continue
			}

			reflected := candidate.ReflectPoint(point)
			if reflected.Equal(point, tol) {
				// The point lies on the candidate and mirrors itself.
				reflections[point] = point
				continue
			}

			if mirror := set.Find(reflected); mirror != nil {
				reflections[point] = mirror
				reflections[mirror] = point
				// This reflection relationship is settled either way; the pair
				// never needs to seed a candidate of its own.
				delete(generators, newPointPair(point, mirror, tol))
				continue
			}

			// No mirror partner, so the candidate is not a line of symmetry. Keep
			// scanning under HighDegreeExpected: later points can still retire
			// their pairs even though the candidate is doomed.
			valid = false
			if !s.HighDegreeExpected {
				break
			}
		}

		if valid {
			throughLinePossible = false
			result.Add(candidate)
		}
	}

	if throughLinePossible || s.AlwaysCheckThroughLine {
		s.checkThroughLine(members, result)
	}

	return result
}

// checkThroughLine handles the collinear case: if every point lies on the
// line through the first two members, each point is trivially its own mirror
// and that line is a line of symmetry.
func (s *Solver) checkThroughLine(members []*Point, result *LineSet) {
	through := ThroughLine(members[0], members[1])
	for _, point := range members[2:] {
		if !through.ContainsPoint(point, s.Tolerance) {
			return
		}
	}
	result.Add(through)
}
