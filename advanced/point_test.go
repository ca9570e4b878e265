package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoint(t *testing.T) {
	p, err := NewPoint(1.5, -2.5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, p.X)
	assert.Equal(t, -2.5, p.Y)

	for _, bad := range []struct {
		name string
		x, y float64
	}{
		{"NaN x", math.NaN(), 0},
		{"NaN y", 0, math.NaN()},
		{"+Inf x", math.Inf(1), 0},
		{"-Inf y", 0, math.Inf(-1)},
	} {
		t.Run(bad.name, func(t *testing.T) {
			p, err := NewPoint(bad.x, bad.y)
			assert.Error(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestPointCompare(t *testing.T) {
	tol := DefaultTolerance
	eps := float64(tol)

	// Equal within the band on both coordinates
	p1 := &Point{1, 2}
	p2 := &Point{1 + eps/2, 2 + eps/2}
	assert.Equal(t, 0, p1.Compare(p2, tol))
	assert.True(t, p1.Equal(p2, tol))

	// Different x dominates
	p3 := &Point{1, 2}
	p4 := &Point{2, 2}
	assert.Equal(t, -1, p3.Compare(p4, tol))
	assert.Equal(t, 1, p4.Compare(p3, tol))

	// Equal x, different y
	p5 := &Point{1, 2}
	p6 := &Point{1, 3}
	assert.Equal(t, -1, p5.Compare(p6, tol))
	assert.Equal(t, 1, p6.Compare(p5, tol))

	// x difference just above the band
	p7 := &Point{1, 2}
	p8 := &Point{1 + 2*eps, 2}
	assert.Equal(t, -1, p7.Compare(p8, tol))
	assert.False(t, p7.Equal(p8, tol))
}

// Compare must return 0 exactly when Equal reports true, or pair
// canonicalization and set membership would disagree.
func TestPointCompareEqualConsistency(t *testing.T) {
	tol := DefaultTolerance
	eps := float64(tol)

	base := &Point{3, -7}
	for _, dx := range []float64{0, eps / 3, 2 * eps, -2 * eps, 1} {
		for _, dy := range []float64{0, eps / 3, 2 * eps, -2 * eps, 1} {
			other := &Point{base.X + dx, base.Y + dy}
			assert.Equal(t, base.Equal(other, tol), base.Compare(other, tol) == 0,
				"dx=%v dy=%v", dx, dy)
		}
	}
}

func TestPointPairCanonical(t *testing.T) {
	tol := DefaultTolerance
	p := &Point{0, 0}
	q := &Point{1, 1}

	assert.Equal(t, newPointPair(p, q, tol), newPointPair(q, p, tol))
}

func TestPointSetFind(t *testing.T) {
	tol := DefaultTolerance
	eps := float64(tol)

	a := &Point{0, 0}
	b := &Point{1, 0}
	set := NewPointSet(tol, []*Point{a, b})

	// Exact and perturbed lookups resolve to the stored member
	assert.Same(t, a, set.Find(&Point{0, 0}))
	assert.Same(t, a, set.Find(&Point{eps / 2, -eps / 2}))
	assert.Same(t, b, set.Find(&Point{1 + eps/3, 0}))
	assert.Nil(t, set.Find(&Point{0.5, 0}))
}

// Two points equal within tolerance can snap to adjacent grid buckets. Find
// has to see across the seam.
func TestPointSetFindAcrossBucketSeam(t *testing.T) {
	tol := DefaultTolerance
	eps := float64(tol)

	// 0.4 eps and 0.6 eps round to different buckets but are equal
	stored := &Point{1 + 0.4*eps, 2 - 0.4*eps}
	probe := &Point{1 + 0.6*eps, 2 - 0.6*eps}
	assert.NotEqual(t, stored.bucket(tol), probe.bucket(tol))
	assert.True(t, stored.Equal(probe, tol))

	set := NewPointSet(tol, []*Point{stored})
	assert.Same(t, stored, set.Find(probe))
}

func TestPointSetDedupe(t *testing.T) {
	tol := DefaultTolerance
	eps := float64(tol)

	set := NewPointSet(tol, []*Point{
		{0, 0},
		{eps / 2, 0}, // duplicate of the first
		{1, 1},
	})
	assert.Equal(t, 2, set.Len())
}
