package advanced

// LineSet collects discovered symmetry lines, deduplicated by their
// tolerance-rounded coefficient triples.
type LineSet struct {
	tol   Tolerance
	lines []*Line
	keys  map[lineKey]struct{}
}

func NewLineSet(tol Tolerance) *LineSet {
	return &LineSet{tol: tol, keys: make(map[lineKey]struct{})}
}

// Add inserts l unless a line with the same rounded coefficients is already
// present.
func (s *LineSet) Add(l *Line) {
	k := l.key(s.tol)
	if _, ok := s.keys[k]; ok {
		return
	}
	s.keys[k] = struct{}{}
	s.lines = append(s.lines, l)
}

func (s *LineSet) Contains(l *Line) bool {
	_, ok := s.keys[l.key(s.tol)]
	return ok
}

func (s *LineSet) Len() int {
	return len(s.lines)
}

// Lines returns the collected lines in discovery order.
func (s *LineSet) Lines() []*Line {
	return s.lines
}
