// Package grid maps between maze-cell space and pixel space.
//
// Renderers and the collision mask must both go through the same Transform;
// a different mapping on either side breaks collision accuracy.
package grid

import (
	"fmt"
	"image"

	"github.com/vovakirdan/maze-arcade/internal/core"
)

// Transform holds the fixed grid constants.
type Transform struct {
	CellSize int // Pixels per cell edge
	Columns  int // Maze width in cells
	Rows     int // Maze height in cells
	Margin   int // Pixels of padding on every side of the maze
}

// New creates a Transform and checks that every constant is usable.
func New(cellSize, columns, rows, margin int) (Transform, error) {
	t := Transform{CellSize: cellSize, Columns: columns, Rows: rows, Margin: margin}
	if err := t.Validate(); err != nil {
		return Transform{}, err
	}
	return t, nil
}

// Validate reports an error for non-positive sizes or a negative margin.
func (t Transform) Validate() error {
	if t.CellSize < 1 || t.Columns < 1 || t.Rows < 1 {
		return fmt.Errorf("grid: cell size, columns and rows must be positive, got %d, %d, %d",
			t.CellSize, t.Columns, t.Rows)
	}
	if t.Margin < 0 {
		return fmt.Errorf("grid: margin must not be negative, got %d", t.Margin)
	}
	return nil
}

// ToScreen maps a maze-space point to pixel space: p*CellSize + margin.
func (t Transform) ToScreen(p core.Point) core.Point {
	m := float64(t.Margin)
	return p.Scale(float64(t.CellSize)).Add(core.Pt(m, m))
}

// FromScreen maps a pixel-space point back to the cell containing it, using
// floor division after removing the margin.
func (t Transform) FromScreen(p core.Point) core.Point {
	m, c := float64(t.Margin), float64(t.CellSize)
	return core.Pt((p.X-m)/c, (p.Y-m)/c).Floor()
}

// ScaleToScreen converts a length in cells to a length in pixels.
func (t Transform) ScaleToScreen(v float64) float64 {
	return v * float64(t.CellSize)
}

// PolygonToScreen maps every point of a maze-space polygon to pixel space.
func (t Transform) PolygonToScreen(pts []core.Point) []core.Point {
	out := make([]core.Point, len(pts))
	for i, p := range pts {
		out[i] = t.ToScreen(p)
	}
	return out
}

// ScreenSize returns the full pixel size of the playfield including margins.
func (t Transform) ScreenSize() (width, height int) {
	return t.Columns*t.CellSize + 2*t.Margin, t.Rows*t.CellSize + 2*t.Margin
}

// ScreenBounds returns the pixel rectangle of the whole screen.
func (t Transform) ScreenBounds() image.Rectangle {
	w, h := t.ScreenSize()
	return image.Rect(0, 0, w, h)
}

// Border returns the pixel rectangle covering the maze cells, excluding margins.
func (t Transform) Border() core.Rect {
	return core.NewRect(t.Margin, t.Margin, t.Columns*t.CellSize, t.Rows*t.CellSize)
}

// InBounds reports whether a cell-space point lies inside the maze.
func (t Transform) InBounds(p core.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < float64(t.Columns) && p.Y < float64(t.Rows)
}
