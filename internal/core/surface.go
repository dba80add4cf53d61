package core

import (
	"image"
	"image/color"
)

// Renderable is anything that can draw itself onto a Surface.
// Render has no return value and no side effect other than drawing.
type Renderable interface {
	Render(dst *Surface)
}

// Surface is a 2D pixel buffer that game code draws into.
// It decouples game rendering from the display, allowing the same frame to be
// shown in a terminal or uploaded to a window.
type Surface struct {
	img *image.RGBA
}

// NewSurface creates a new surface with the given pixel dimensions, filled
// with black.
func NewSurface(width, height int) *Surface {
	s := &Surface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	s.Clear()
	return s
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// Bounds returns the pixel rectangle of the surface.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Rect
}

// Clear fills the entire surface with black.
func (s *Surface) Clear() {
	s.Fill(ColorBlack)
}

// Fill fills the entire surface with the given color.
func (s *Surface) Fill(c color.RGBA) {
	pix := s.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// Set colors the pixel at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (s *Surface) Set(x, y int, c color.RGBA) {
	if x < 0 || x >= s.Width() || y < 0 || y >= s.Height() {
		return
	}
	s.img.SetRGBA(x, y, c)
}

// At returns the color at (x, y).
// Returns transparent black for out-of-bounds coordinates.
func (s *Surface) At(x, y int) color.RGBA {
	if x < 0 || x >= s.Width() || y < 0 || y >= s.Height() {
		return color.RGBA{}
	}
	return s.img.RGBAAt(x, y)
}

// DrawRect fills a rectangular area with the given color.
func (s *Surface) DrawRect(r Rect, c color.RGBA) {
	x0 := Clamp(r.X, 0, s.Width())
	x1 := Clamp(r.Right(), 0, s.Width())
	y0 := Clamp(r.Y, 0, s.Height())
	y1 := Clamp(r.Bottom(), 0, s.Height())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.img.SetRGBA(x, y, c)
		}
	}
}

// StrokeRect draws the outline of r, growing inward by width pixels.
func (s *Surface) StrokeRect(r Rect, width int, c color.RGBA) {
	if width <= 0 {
		return
	}
	if width*2 >= r.W || width*2 >= r.H {
		s.DrawRect(r, c)
		return
	}
	s.DrawRect(NewRect(r.X, r.Y, r.W, width), c)
	s.DrawRect(NewRect(r.X, r.Bottom()-width, r.W, width), c)
	s.DrawRect(NewRect(r.X, r.Y+width, width, r.H-2*width), c)
	s.DrawRect(NewRect(r.Right()-width, r.Y+width, width, r.H-2*width), c)
}

// Pix returns the raw RGBA bytes, row-major, 4 bytes per pixel.
// The slice aliases the surface; callers must not keep it across frames.
func (s *Surface) Pix() []byte {
	return s.img.Pix
}
