package collision

import (
	"image"

	"github.com/bits-and-blooms/bitset"

	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/raster"
)

// Footprint is reusable scratch space for the pixels of a moving shape.
// It belongs to exactly one owner and is cleared and refilled every frame.
type Footprint struct {
	bounds image.Rectangle
	bits   *bitset.BitSet
	filler *raster.Filler
	set    raster.Plot
}

// NewFootprint creates an empty footprint for a screen of the given bounds.
func NewFootprint(bounds image.Rectangle) *Footprint {
	bits := newBits(bounds)
	return &Footprint{
		bounds: bounds,
		bits:   bits,
		filler: raster.NewFiller(),
		set:    setter(bits, bounds),
	}
}

// Reset clears every pixel.
func (fp *Footprint) Reset() {
	fp.bits.ClearAll()
}

// AddCircle sets the pixels of a disc given in pixel space.
func (fp *Footprint) AddCircle(center core.Point, radius float64) {
	fp.filler.Circle(center, radius, fp.bounds, fp.set)
}

// AddPolygon sets the pixels of a closed polygon given in pixel space.
func (fp *Footprint) AddPolygon(pts []core.Point) {
	fp.filler.Polygon(pts, fp.bounds, fp.set)
}

// Covered reports whether the pixel at (x, y) is set.
func (fp *Footprint) Covered(x, y int) bool {
	if !image.Pt(x, y).In(fp.bounds) {
		return false
	}
	return fp.bits.Test(index(fp.bounds, x, y))
}

// Count returns the number of set pixels.
func (fp *Footprint) Count() int {
	return int(fp.bits.Count())
}
