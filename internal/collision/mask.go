// Package collision answers "does this shape touch a wall" at pixel precision.
//
// The Mask holds one bit per screen pixel and is built once from the barrier
// polygons. A Footprint is the same kind of bitset filled with a moving
// shape; the two overlap when any pixel is set in both.
package collision

import (
	"image"

	"github.com/bits-and-blooms/bitset"

	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/grid"
	"github.com/vovakirdan/maze-arcade/internal/raster"
)

// Mask is a read-only pixel occupancy map of the screen. After Build returns
// nothing mutates it, so one Mask may be shared by any number of goroutines.
type Mask struct {
	bounds image.Rectangle
	bits   *bitset.BitSet
}

// Build fills every cell-space polygon into a new screen-sized mask, mapping
// vertices through t.
func Build(t grid.Transform, polygons [][]core.Point) *Mask {
	bounds := t.ScreenBounds()
	fp := NewFootprint(bounds)
	for _, poly := range polygons {
		fp.AddPolygon(t.PolygonToScreen(poly))
	}
	// The footprint is dropped here, so the mask owns its bits outright.
	return &Mask{bounds: bounds, bits: fp.bits}
}

// Bounds returns the pixel rectangle the mask covers.
func (m *Mask) Bounds() image.Rectangle {
	return m.bounds
}

// Size returns the mask dimensions in pixels.
func (m *Mask) Size() (width, height int) {
	return m.bounds.Dx(), m.bounds.Dy()
}

// Covered reports whether the pixel at (x, y) is a wall pixel.
// Pixels outside the screen are never covered.
func (m *Mask) Covered(x, y int) bool {
	if !image.Pt(x, y).In(m.bounds) {
		return false
	}
	return m.bits.Test(index(m.bounds, x, y))
}

// Count returns the number of wall pixels.
func (m *Mask) Count() int {
	return int(m.bits.Count())
}

// Overlaps reports whether any pixel of fp is also set in the mask.
// A footprint sized for a different screen never overlaps.
func (m *Mask) Overlaps(fp *Footprint) bool {
	if fp == nil || fp.bounds != m.bounds {
		return false
	}
	return m.bits.IntersectionCardinality(fp.bits) > 0
}

func newBits(r image.Rectangle) *bitset.BitSet {
	return bitset.New(uint(r.Dx() * r.Dy()))
}

func index(r image.Rectangle, x, y int) uint {
	return uint((y-r.Min.Y)*r.Dx() + (x - r.Min.X))
}

func setter(b *bitset.BitSet, r image.Rectangle) raster.Plot {
	return func(x, y int) {
		b.Set(index(r, x, y))
	}
}
