// Package world assembles the static part of a maze: the grid, the barrier
// polygons, their collision mask, and the renderables that draw them.
//
// A World is built once and never mutated afterwards, so any number of
// sessions may share one.
package world

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/maze-arcade/internal/barrier"
	"github.com/vovakirdan/maze-arcade/internal/collision"
	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/grid"
)

// BorderWidth is the stroke width of the maze outline, in pixels.
const BorderWidth = 3

// ErrOutsideGrid is wrapped by New when a barrier does not fit in the grid.
var ErrOutsideGrid = errors.New("barrier outside the grid")

// World is the immutable maze.
type World struct {
	cfg       config.Maze
	transform grid.Transform
	specs     []barrier.Spec
	barriers  []barrier.Polygon
	mask      *collision.Mask
	scenery   []core.Renderable
}

// New builds a World from cfg. The first invalid barrier aborts construction;
// the returned error wraps its *barrier.ShapeValidationError.
func New(cfg config.Maze) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid maze config: %w", err)
	}
	tr, err := cfg.Transform()
	if err != nil {
		return nil, err
	}

	polys := make([]barrier.Polygon, len(cfg.Barriers))
	cellPaths := make([][]core.Point, len(cfg.Barriers))
	for i, spec := range cfg.Barriers {
		p, err := barrier.Make(spec)
		if err != nil {
			return nil, fmt.Errorf("barrier %d: %w", i, err)
		}
		if _, maxPt := p.Bounds(); maxPt.X > float64(tr.Columns) || maxPt.Y > float64(tr.Rows) {
			return nil, fmt.Errorf("barrier %d: %w: %v reaches %v on a %dx%d grid",
				i, ErrOutsideGrid, spec, maxPt, tr.Columns, tr.Rows)
		}
		polys[i] = p
		cellPaths[i] = p
	}

	w := &World{
		cfg:       cfg,
		transform: tr,
		specs:     append([]barrier.Spec(nil), cfg.Barriers...),
		barriers:  polys,
		mask:      collision.Build(tr, cellPaths),
	}
	w.scenery = []core.Renderable{
		background{},
		border{rect: tr.Border()},
		newWalls(tr, polys),
	}
	return w, nil
}

// Config returns the configuration the world was built from.
func (w *World) Config() config.Maze {
	return w.cfg
}

// Transform returns the grid transform shared by drawing and collision.
func (w *World) Transform() grid.Transform {
	return w.transform
}

// Mask returns the barrier collision mask.
func (w *World) Mask() *collision.Mask {
	return w.mask
}

// Barriers returns the barrier polygons in cell space. Callers must not
// modify the result.
func (w *World) Barriers() []barrier.Polygon {
	return w.barriers
}

// Specs returns the barrier declarations in registry order.
func (w *World) Specs() []barrier.Spec {
	return w.specs
}

// ScreenSize returns the pixel size of the playfield.
func (w *World) ScreenSize() (width, height int) {
	return w.transform.ScreenSize()
}

// NewSurface creates a black surface sized to the playfield.
func (w *World) NewSurface() *core.Surface {
	width, height := w.ScreenSize()
	return core.NewSurface(width, height)
}

// Render draws the background, the maze outline, and the walls.
func (w *World) Render(dst *core.Surface) {
	for _, r := range w.scenery {
		r.Render(dst)
	}
}
