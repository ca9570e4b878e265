package advanced

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// NewPoint validates that both coordinates are finite. Everything downstream
// does arithmetic on coordinates and assumes no NaNs can appear, so bad
// values are rejected here at the boundary.
func NewPoint(x, y float64) (*Point, error) {
	if !isFinite(x) || !isFinite(y) {
		return nil, errors.Errorf("point coordinates must be finite, got (%v, %v)", x, y)
	}
	return &Point{X: x, Y: y}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (p *Point) Equal(q *Point, tol Tolerance) bool {
	return tol.Equal(p.X, q.X) && tol.Equal(p.Y, q.Y)
}

// Compare orders points by x, then y, using the same tolerance band as Equal,
// so Compare returns 0 exactly when Equal reports true.
func (p *Point) Compare(q *Point, tol Tolerance) int {
	if c := tol.Compare(p.X, q.X); c != 0 {
		return c
	}
	return tol.Compare(p.Y, q.Y)
}

func (p *Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// pointBucket is the comparable stand-in for a tolerance-derived hash:
// coordinates snapped to the epsilon grid. Raw float bits would split
// tolerance-equal points across buckets. Snapping isn't perfect either (two
// equal points can straddle a grid boundary), but equal coordinates are never
// more than one bucket apart; see PointSet.Find.
type pointBucket struct {
	x, y int64
}

func (p *Point) bucket(tol Tolerance) pointBucket {
	return pointBucket{
		x: int64(math.Round(p.X / float64(tol))),
		y: int64(math.Round(p.Y / float64(tol))),
	}
}
