package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(13.5, 23)

	if got := p.Add(Pt(0.5, -1)); got != Pt(14, 22) {
		t.Errorf("Add() = %v, expected (14,22)", got)
	}
	if got := p.Sub(Pt(3.5, 3)); got != Pt(10, 20) {
		t.Errorf("Sub() = %v, expected (10,20)", got)
	}
	if got := p.Scale(2); got != Pt(27, 46) {
		t.Errorf("Scale() = %v, expected (27,46)", got)
	}
	if got := p.Floor(); got != Pt(13, 23) {
		t.Errorf("Floor() = %v, expected (13,23)", got)
	}
	if got := Pt(-0.5, -1.5).Floor(); got != Pt(-1, -2) {
		t.Errorf("Floor() of negatives = %v, expected (-1,-2)", got)
	}
	if !Pt(0, 0).IsZero() || p.IsZero() {
		t.Error("IsZero() mismatch")
	}
}
