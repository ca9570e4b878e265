package advanced

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/symmetry/dbg"
)

func NewLine(a, b, c float64) *Line {
	return &Line{A: a, B: b, C: c}
}

// EquidistantLine returns the perpendicular bisector of p1 and p2: the locus
// of points equidistant from both. Its direction is undefined when the two
// points coincide, so callers must never pass a degenerate pair.
func EquidistantLine(p1, p2 *Point) *Line {
	a := p2.X - p1.X
	b := p2.Y - p1.Y
	c := 0.5 * (p1.X*p1.X + p1.Y*p1.Y - p2.X*p2.X - p2.Y*p2.Y)
	return NewLine(a, b, c)
}

// ThroughLine returns the line passing through p1 and p2.
func ThroughLine(p1, p2 *Point) *Line {
	a := p2.Y - p1.Y
	b := p1.X - p2.X
	c := -(a*p1.X + b*p1.Y)
	return NewLine(a, b, c)
}

// ReflectPoint returns the mirror image of p across the line, as a fresh
// transient point. Panics (recovered at the public API) when a and b are both
// zero, since the line has no direction to reflect across.
func (l *Line) ReflectPoint(p *Point) *Point {
	denom := l.A*l.A + l.B*l.B
	if denom == 0 {
		fatalf("cannot reflect across degenerate line (a = 0, b = 0, c = %v)", l.C)
	}
	factor := 2 * (l.A*p.X + l.B*p.Y + l.C) / denom
	return &Point{
		X: p.X - factor*l.A,
		Y: p.Y - factor*l.B,
	}
}

// ContainsPoint reports whether p lies on the line within tolerance.
func (l *Line) ContainsPoint(p *Point, tol Tolerance) bool {
	return tol.Equal(l.A*p.X+l.B*p.Y+l.C, 0)
}

func (l *Line) Equal(m *Line, tol Tolerance) bool {
	return tol.Equal(l.A, m.A) && tol.Equal(l.B, m.B) && tol.Equal(l.C, m.C)
}

// lineKey is the identity of a line for set membership: each coefficient
// independently rounded to the nearest multiple of the tolerance. Like the
// point buckets, this is the comparable substitute for hashing raw floats.
type lineKey struct {
	a, b, c int64
}

func (l *Line) key(tol Tolerance) lineKey {
	round := func(v float64) int64 {
		return int64(math.Round(v / float64(tol)))
	}
	return lineKey{a: round(l.A), b: round(l.B), c: round(l.C)}
}

func (l *Line) String() string {
	return fmt.Sprintf("Line %s {a = %.4f, b = %.4f, c = %.4f}", dbg.Name(l), l.A, l.B, l.C)
}

// DbgName colors the line's debug name by orientation, which makes axis lines
// easy to spot in solver traces.
func (l *Line) DbgName() string {
	name := dbg.Name(l)
	switch {
	case DefaultTolerance.Equal(l.A, 0) && DefaultTolerance.Equal(l.B, 0):
		return aurora.Red(name).String() // degenerate
	case DefaultTolerance.Equal(l.B, 0):
		return aurora.Cyan(name).String() // vertical
	case DefaultTolerance.Equal(l.A, 0):
		return aurora.Green(name).String() // horizontal
	}
	return aurora.Yellow(name).String()
}
