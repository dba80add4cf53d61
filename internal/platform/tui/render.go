package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-arcade/internal/core"
)

// upperHalf draws the top half of a cell in the foreground color and the
// bottom half in the background color, giving two pixels per character.
const upperHalf = "▀"

// Cell is one character of downsampled output.
type Cell struct {
	Top, Bottom color.RGBA
}

// Downsample shrinks a surface to at most maxCols x maxRows characters, two
// square blocks per character. Each block takes its most common non-black
// color when that color covers at least a quarter of it.
func Downsample(s *core.Surface, maxCols, maxRows int) [][]Cell {
	if maxCols < 1 || maxRows < 1 {
		return nil
	}
	block := max(ceilDiv(s.Width(), maxCols), ceilDiv(s.Height(), 2*maxRows), 1)
	cols := ceilDiv(s.Width(), block)
	rows := ceilDiv(s.Height(), 2*block)

	var tally colorTally
	out := make([][]Cell, rows)
	for r := range out {
		out[r] = make([]Cell, cols)
		for c := range out[r] {
			x0 := c * block
			out[r][c] = Cell{
				Top:    tally.dominant(s, x0, 2*r*block, block),
				Bottom: tally.dominant(s, x0, (2*r+1)*block, block),
			}
		}
	}
	return out
}

// colorTally counts colors within one block. Palettes are tiny, so a slice
// beats a map.
type colorTally struct {
	colors []color.RGBA
	counts []int
}

func (t *colorTally) dominant(s *core.Surface, x0, y0, block int) color.RGBA {
	t.colors, t.counts = t.colors[:0], t.counts[:0]
	area := 0
	for y := y0; y < min(y0+block, s.Height()); y++ {
		for x := x0; x < min(x0+block, s.Width()); x++ {
			area++
			c := s.At(x, y)
			if c == core.ColorBlack {
				continue
			}
			t.add(c)
		}
	}

	best, bestCount := core.ColorBlack, 0
	for i, c := range t.colors {
		if t.counts[i] > bestCount {
			best, bestCount = c, t.counts[i]
		}
	}
	if bestCount == 0 || bestCount*4 < area {
		return core.ColorBlack
	}
	return best
}

func (t *colorTally) add(c color.RGBA) {
	for i, known := range t.colors {
		if known == c {
			t.counts[i]++
			return
		}
	}
	t.colors = append(t.colors, c)
	t.counts = append(t.counts, 1)
}

// Renderer converts downsampled cells into styled strings, caching one
// lipgloss style per color pair.
type Renderer struct {
	styles map[Cell]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[Cell]lipgloss.Style)}
}

// RenderSurface downsamples s to fit maxCols x maxRows and renders it.
func (r *Renderer) RenderSurface(s *core.Surface, maxCols, maxRows int) string {
	return r.RenderCells(Downsample(s, maxCols, maxRows))
}

// RenderCells converts cells to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) RenderCells(cells [][]Cell) string {
	var sb strings.Builder
	for y, row := range cells {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < len(row) {
			start := row[x]
			n := 0
			for x < len(row) && row[x] == start {
				n++
				x++
			}
			sb.WriteString(r.style(start).Render(strings.Repeat(upperHalf, n)))
		}
	}
	return sb.String()
}

func (r *Renderer) style(c Cell) lipgloss.Style {
	if st, ok := r.styles[c]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(c.Top))).
		Background(lipgloss.Color(hex(c.Bottom)))
	r.styles[c] = st
	return st
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
