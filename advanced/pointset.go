package advanced

// PointSet is a set of points with tolerance-based membership. Members are
// kept in insertion order, so enumeration is stable, and indexed by their
// epsilon-grid bucket for lookup.
type PointSet struct {
	tol     Tolerance
	points  []*Point
	buckets map[pointBucket]*Point
}

// NewPointSet builds a set from the given points, dropping any point equal
// (within tolerance) to an earlier one.
func NewPointSet(tol Tolerance, points []*Point) *PointSet {
	s := &PointSet{
		tol:     tol,
		buckets: make(map[pointBucket]*Point, len(points)),
	}
	for _, p := range points {
		s.add(p)
	}
	return s
}

func (s *PointSet) add(p *Point) {
	if s.Find(p) != nil {
		return
	}
	s.points = append(s.points, p)
	s.buckets[p.bucket(s.tol)] = p
}

// Find returns the member equal to p within tolerance, or nil. Grid snapping
// alone can land two equal points in adjacent buckets, so the 3x3
// neighborhood is probed and each hit is confirmed with banded equality.
func (s *PointSet) Find(p *Point) *Point {
	b := p.bucket(s.tol)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			q, ok := s.buckets[pointBucket{x: b.x + dx, y: b.y + dy}]
			if ok && q.Equal(p, s.tol) {
				return q
			}
		}
	}
	return nil
}

func (s *PointSet) Len() int {
	return len(s.points)
}

// Points returns the members in insertion order. The slice is shared with the
// set; callers must not modify it.
func (s *PointSet) Points() []*Point {
	return s.points
}
