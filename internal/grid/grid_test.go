package grid

import (
	"testing"

	"github.com/vovakirdan/maze-arcade/internal/core"
)

func classic(t *testing.T) Transform {
	t.Helper()
	tr, err := New(20, 27, 30, 10)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return tr
}

func TestScreenSize(t *testing.T) {
	tr := classic(t)
	w, h := tr.ScreenSize()
	if w != 560 || h != 620 {
		t.Errorf("ScreenSize() = (%d, %d), expected (560, 620)", w, h)
	}
	if b := tr.ScreenBounds(); b.Dx() != 560 || b.Dy() != 620 || b.Min.X != 0 || b.Min.Y != 0 {
		t.Errorf("ScreenBounds() = %v", b)
	}
}

func TestToScreen(t *testing.T) {
	tr := classic(t)
	tests := []struct {
		in, want core.Point
	}{
		{core.Pt(0, 0), core.Pt(10, 10)},
		{core.Pt(1, 2), core.Pt(30, 50)},
		{core.Pt(13.5, 23), core.Pt(280, 470)},
		{core.Pt(27, 30), core.Pt(550, 610)},
	}

	for _, tc := range tests {
		if got := tr.ToScreen(tc.in); got != tc.want {
			t.Errorf("ToScreen(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestFromScreenFloors(t *testing.T) {
	tr := classic(t)
	tests := []struct {
		name     string
		in, want core.Point
	}{
		{"cell origin", core.Pt(10, 10), core.Pt(0, 0)},
		{"last pixel of first cell", core.Pt(29.9, 29), core.Pt(0, 0)},
		{"next cell", core.Pt(30, 30), core.Pt(1, 1)},
		{"inside margin", core.Pt(5, 5), core.Pt(-1, -1)},
		{"player spawn", core.Pt(280, 470), core.Pt(13, 23)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tr.FromScreen(tc.in); got != tc.want {
				t.Errorf("FromScreen(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRoundTripIntegerCells(t *testing.T) {
	transforms := []Transform{
		{CellSize: 20, Columns: 27, Rows: 30, Margin: 10},
		{CellSize: 3, Columns: 40, Rows: 40, Margin: 7},
		{CellSize: 7, Columns: 11, Rows: 13, Margin: 0},
	}

	for _, tr := range transforms {
		for y := -2; y <= tr.Rows+2; y++ {
			for x := -2; x <= tr.Columns+2; x++ {
				p := core.Pt(float64(x), float64(y))
				if got := tr.FromScreen(tr.ToScreen(p)); got != p {
					t.Fatalf("cell %d, margin %d: FromScreen(ToScreen(%v)) = %v",
						tr.CellSize, tr.Margin, p, got)
				}
			}
		}
	}
}

func TestScaleToScreen(t *testing.T) {
	tr := classic(t)
	if got := tr.ScaleToScreen(0.9); got != 18 {
		t.Errorf("ScaleToScreen(0.9) = %v, expected 18", got)
	}
}

func TestPolygonToScreen(t *testing.T) {
	tr := classic(t)
	got := tr.PolygonToScreen([]core.Point{core.Pt(0, 0), core.Pt(1, 0), core.Pt(1, 1)})
	want := []core.Point{core.Pt(10, 10), core.Pt(30, 10), core.Pt(30, 30)}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestBorder(t *testing.T) {
	tr := classic(t)
	b := tr.Border()
	if b != core.NewRect(10, 10, 540, 600) {
		t.Errorf("Border() = %+v", b)
	}
}

func TestInBounds(t *testing.T) {
	tr := classic(t)
	if !tr.InBounds(core.Pt(0, 0)) || !tr.InBounds(core.Pt(26.9, 29.9)) {
		t.Error("points inside the maze should be in bounds")
	}
	if tr.InBounds(core.Pt(-0.1, 3)) || tr.InBounds(core.Pt(27, 3)) || tr.InBounds(core.Pt(3, 30)) {
		t.Error("points outside the maze should be out of bounds")
	}
}

func TestNewRejectsBadConstants(t *testing.T) {
	tests := []struct {
		name                  string
		cell, cols, rows, mar int
	}{
		{"zero cell", 0, 27, 30, 10},
		{"zero columns", 20, 0, 30, 10},
		{"negative rows", 20, 27, -1, 10},
		{"negative margin", 20, 27, 30, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.cell, tc.cols, tc.rows, tc.mar); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
