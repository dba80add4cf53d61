package barrier

import (
	"math"

	"github.com/vovakirdan/maze-arcade/internal/core"
)

// Polygon is an ordered, implicitly closed vertex path.
type Polygon []core.Point

// Bounds returns the minimum and maximum corners of the bounding box.
// An empty polygon has zero bounds.
func (p Polygon) Bounds() (minPt, maxPt core.Point) {
	if len(p) == 0 {
		return core.Point{}, core.Point{}
	}
	minPt, maxPt = p[0], p[0]
	for _, q := range p[1:] {
		minPt.X = math.Min(minPt.X, q.X)
		minPt.Y = math.Min(minPt.Y, q.Y)
		maxPt.X = math.Max(maxPt.X, q.X)
		maxPt.Y = math.Max(maxPt.Y, q.Y)
	}
	return minPt, maxPt
}

// Translate returns a copy of p moved by d.
func (p Polygon) Translate(d core.Point) Polygon {
	out := make(Polygon, len(p))
	for i, q := range p {
		out[i] = q.Add(d)
	}
	return out
}

// normalize moves p so its bounding box starts at the origin.
func (p Polygon) normalize() Polygon {
	minPt, _ := p.Bounds()
	return p.Translate(core.Pt(-minPt.X, -minPt.Y))
}

// Area returns the enclosed area, independent of winding.
func (p Polygon) Area() float64 {
	var sum float64
	for i, a := range p {
		b := p[(i+1)%len(p)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// IsSimple reports whether no two non-adjacent edges touch and no vertex
// repeats. Polygons with fewer than three vertices are not simple.
func (p Polygon) IsSimple() bool {
	n := len(p)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p[i] == p[j] {
				return false
			}
		}
	}
	for i := 0; i < n; i++ {
		a1, a2 := p[i], p[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			if segmentsTouch(a1, a2, p[j], p[(j+1)%n]) {
				return false
			}
		}
	}
	return true
}

func cross(o, a, b core.Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func onSegment(a, b, q core.Point) bool {
	return math.Min(a.X, b.X) <= q.X && q.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= q.Y && q.Y <= math.Max(a.Y, b.Y)
}

// segmentsTouch reports whether segments ab and cd share any point.
func segmentsTouch(a, b, c, d core.Point) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	switch {
	case d1 == 0 && onSegment(c, d, a):
		return true
	case d2 == 0 && onSegment(c, d, b):
		return true
	case d3 == 0 && onSegment(a, b, c):
		return true
	case d4 == 0 && onSegment(a, b, d):
		return true
	}
	return false
}
