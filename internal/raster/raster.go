// Package raster scan-converts closed pixel-space shapes into covered pixels.
//
// Every filled shape in the game (barrier walls on screen, the barrier
// collision mask, the player's disc and its collision footprint) goes through
// the same Filler so that what is drawn and what collides agree at every
// boundary pixel.
package raster

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/vovakirdan/maze-arcade/internal/core"
)

// Threshold is the minimum coverage (out of 0xff) for a pixel to count as
// filled. Pixels whose area is more than half inside the shape are filled.
const Threshold = 0x80

// Plot receives every filled pixel.
type Plot func(x, y int)

// Filler rasterizes closed paths. It keeps its scratch buffers between calls,
// so a long-lived Filler does not allocate per frame. A Filler is not safe for
// concurrent use.
type Filler struct {
	z     *vector.Rasterizer
	alpha *image.Alpha
}

// NewFiller creates a Filler with empty scratch buffers.
func NewFiller() *Filler {
	return &Filler{z: vector.NewRasterizer(0, 0)}
}

// Polygon fills the closed polygon through pts (pixel space) and calls plot
// for each covered pixel inside clip. Fewer than three points fill nothing.
// Scratch memory is bounded by clip, however large the polygon.
func (f *Filler) Polygon(pts []core.Point, clip image.Rectangle, plot Plot) {
	if len(pts) < 3 {
		return
	}
	box := bounds(pts).Intersect(clip)
	if box.Empty() {
		return
	}

	f.reset(box)
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	f.z.MoveTo(float32(pts[0].X-ox), float32(pts[0].Y-oy))
	for _, p := range pts[1:] {
		f.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	f.z.ClosePath()
	f.emit(box, plot)
}

// Circle fills a disc of the given pixel radius around center.
func (f *Filler) Circle(center core.Point, radius float64, clip image.Rectangle, plot Plot) {
	if radius <= 0 {
		return
	}
	f.Polygon(CirclePath(center, radius), clip, plot)
}

// CirclePath approximates a circle with a closed polygon whose segments are
// about two pixels long, never fewer than 16.
func CirclePath(center core.Point, radius float64) []core.Point {
	n := int(math.Ceil(2 * math.Pi * radius / 2))
	if n < 16 {
		n = 16
	}
	pts := make([]core.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = core.Pt(center.X+radius*math.Cos(a), center.Y+radius*math.Sin(a))
	}
	return pts
}

// reset sizes the scratch buffers to box, reusing memory where possible.
func (f *Filler) reset(box image.Rectangle) {
	w, h := box.Dx(), box.Dy()
	f.z.Reset(w, h)

	need := w * h
	if f.alpha == nil || cap(f.alpha.Pix) < need {
		f.alpha = image.NewAlpha(image.Rect(0, 0, w, h))
		return
	}
	f.alpha.Pix = f.alpha.Pix[:need]
	clear(f.alpha.Pix)
	f.alpha.Stride = w
	f.alpha.Rect = image.Rect(0, 0, w, h)
}

// emit draws the accumulated path and reports pixels over the threshold.
// box is already inside the clip rectangle.
func (f *Filler) emit(box image.Rectangle, plot Plot) {
	f.z.Draw(f.alpha, f.alpha.Rect, image.Opaque, image.Point{})

	w := box.Dx()
	for i, a := range f.alpha.Pix {
		if a >= Threshold {
			plot(box.Min.X+i%w, box.Min.Y+i/w)
		}
	}
}

// bounds returns the smallest integer rectangle containing all points.
func bounds(pts []core.Point) image.Rectangle {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}
