package world

import (
	"image"

	"github.com/vovakirdan/maze-arcade/internal/barrier"
	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/grid"
	"github.com/vovakirdan/maze-arcade/internal/raster"
)

type background struct{}

func (background) Render(dst *core.Surface) {
	dst.Fill(core.ColorBlack)
}

type border struct {
	rect core.Rect
}

func (b border) Render(dst *core.Surface) {
	dst.StrokeRect(b.rect, BorderWidth, core.ColorBlue)
}

// walls holds the pixels of every barrier, computed once with the same
// fill routine that builds the collision mask.
type walls struct {
	pixels []image.Point
}

func newWalls(t grid.Transform, polys []barrier.Polygon) walls {
	var w walls
	f := raster.NewFiller()
	plot := func(x, y int) {
		w.pixels = append(w.pixels, image.Pt(x, y))
	}
	for _, p := range polys {
		f.Polygon(t.PolygonToScreen(p), t.ScreenBounds(), plot)
	}
	return w
}

func (w walls) Render(dst *core.Surface) {
	for _, p := range w.pixels {
		dst.Set(p.X, p.Y, core.ColorBlue)
	}
}
