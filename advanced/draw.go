package advanced

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/symmetry/dbg"
)

// This is for debugging purposes only

const dbgDrawPadding = 50

// Draw the point set and its lines of symmetry, save to a temp file, and
// print it to the terminal (iTerm only).
func dbgDraw(set *PointSet, lines []*Line, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range set.Points() {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Lines first, so the points draw on top of them. Each line is clipped to
	// a box slightly larger than the drawing area.
	margin := dbgDrawPadding / scale
	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	for _, l := range lines {
		x0, y0, x1, y1, ok := clipLine(l, minX-margin, minY-margin, maxX+margin, maxY+margin)
		if !ok {
			continue
		}
		c.DrawLine(x0, y0, x1, y1)
		c.Stroke()
	}

	c.SetRGB(0, 0.8, 0)
	for _, p := range set.Points() {
		c.DrawCircle(p.X, p.Y, 4/scale)
		c.Fill()
	}

	// Label the points. Text has to be drawn with the identity matrix or it
	// comes out mirrored by the flip above.
	c.SetRGB(1, 1, 1)
	for _, p := range set.Points() {
		x, y := c.TransformPoint(p.X, p.Y)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(dbg.Name(p), x, y-8, 0.5, 1)
		c.Pop()
	}

	c.SavePNG("/tmp/symmetry.png")
	imgcat.CatFile("/tmp/symmetry.png", os.Stdout)
}

// clipLine intersects ax + by + c = 0 with the given box and returns a
// drawable segment. ok is false when the line misses the box.
func clipLine(l *Line, minX, minY, maxX, maxY float64) (x0, y0, x1, y1 float64, ok bool) {
	type hit struct{ x, y float64 }
	var hits []hit
	add := func(x, y float64) {
		if x < minX || x > maxX || y < minY || y > maxY {
			return
		}
		hits = append(hits, hit{x, y})
	}

	// Candidate crossings on each box edge
	if l.B != 0 {
		add(minX, -(l.A*minX+l.C)/l.B)
		add(maxX, -(l.A*maxX+l.C)/l.B)
	}
	if l.A != 0 {
		add(-(l.B*minY+l.C)/l.A, minY)
		add(-(l.B*maxY+l.C)/l.A, maxY)
	}
	if len(hits) < 2 {
		return 0, 0, 0, 0, false
	}

	// With corner crossings, more than two hits are possible; take the two
	// farthest apart.
	first, second := hits[0], hits[1]
	best := math.Hypot(second.x-first.x, second.y-first.y)
	for i := 0; i < len(hits); i++ {
		for j := i + 1; j < len(hits); j++ {
			d := math.Hypot(hits[j].x-hits[i].x, hits[j].y-hits[i].y)
			if d > best {
				first, second, best = hits[i], hits[j], d
			}
		}
	}
	return first.x, first.y, second.x, second.y, true
}
