package core

import (
	"image/color"
	"testing"
)

func TestNewSurface(t *testing.T) {
	s := NewSurface(56, 62)

	if s.Width() != 56 {
		t.Errorf("Width() = %d, expected 56", s.Width())
	}
	if s.Height() != 62 {
		t.Errorf("Height() = %d, expected 62", s.Height())
	}

	// Check that it's initialized with black
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.At(x, y) != ColorBlack {
				t.Fatalf("New surface should be black, got %v at (%d, %d)", s.At(x, y), x, y)
			}
		}
	}
}

func TestSurfaceSetAt(t *testing.T) {
	s := NewSurface(10, 10)

	s.Set(5, 5, ColorYellow)
	if s.At(5, 5) != ColorYellow {
		t.Errorf("At(5, 5) = %v, expected yellow", s.At(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, ColorYellow)
	s.Set(100, 0, ColorYellow)
	s.Set(0, -1, ColorYellow)
	s.Set(0, 100, ColorYellow)

	if s.At(-1, 0) != (color.RGBA{}) {
		t.Error("Out of bounds At should return transparent")
	}
}

func TestSurfaceFill(t *testing.T) {
	s := NewSurface(5, 5)
	s.Fill(ColorBlue)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if s.At(x, y) != ColorBlue {
				t.Errorf("After Fill, expected blue at (%d, %d), got %v", x, y, s.At(x, y))
			}
		}
	}

	s.Clear()
	if s.At(2, 2) != ColorBlack {
		t.Errorf("After Clear, expected black, got %v", s.At(2, 2))
	}
}

func TestSurfaceDrawRect(t *testing.T) {
	s := NewSurface(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), ColorBlue)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.At(x, y) != ColorBlue {
				t.Errorf("DrawRect: expected blue at (%d, %d), got %v", x, y, s.At(x, y))
			}
		}
	}

	if s.At(1, 1) != ColorBlack || s.At(5, 5) != ColorBlack {
		t.Error("DrawRect should not affect outside area")
	}

	// Clipped rect must not panic
	s.DrawRect(NewRect(-5, -5, 100, 7), ColorWhite)
	if s.At(0, 0) != ColorWhite || s.At(9, 1) != ColorWhite || s.At(0, 2) == ColorWhite {
		t.Error("DrawRect clipping mismatch")
	}
}

func TestSurfaceStrokeRect(t *testing.T) {
	s := NewSurface(20, 20)
	s.StrokeRect(NewRect(2, 2, 10, 8), 2, ColorBlue)

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"top-left corner", 2, 2, ColorBlue},
		{"top edge inner row", 6, 3, ColorBlue},
		{"bottom edge", 6, 9, ColorBlue},
		{"right edge", 11, 5, ColorBlue},
		{"left edge inner column", 3, 5, ColorBlue},
		{"interior", 6, 5, ColorBlack},
		{"outside", 12, 5, ColorBlack},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.At(tc.x, tc.y); got != tc.want {
				t.Errorf("At(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestSurfacePix(t *testing.T) {
	s := NewSurface(3, 2)
	s.Set(1, 1, ColorYellow)

	pix := s.Pix()
	if len(pix) != 3*2*4 {
		t.Fatalf("len(Pix()) = %d, expected 24", len(pix))
	}
	i := (1*3 + 1) * 4
	if pix[i] != 255 || pix[i+1] != 255 || pix[i+2] != 0 || pix[i+3] != 255 {
		t.Errorf("Pix at (1,1) = %v, expected yellow", pix[i:i+4])
	}
}

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		key  Key
		want Point
		ok   bool
	}{
		{KeyUp, Pt(0, -1), true},
		{KeyDown, Pt(0, 1), true},
		{KeyLeft, Pt(-1, 0), true},
		{KeyRight, Pt(1, 0), true},
		{KeyUnknown, Pt(0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.key.String(), func(t *testing.T) {
			got, ok := tc.key.Direction()
			if got != tc.want || ok != tc.ok {
				t.Errorf("Direction() = %v, %v; expected %v, %v", got, ok, tc.want, tc.ok)
			}
		})
	}
}
