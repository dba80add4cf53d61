// Package barrier builds the static wall polygons of the maze.
//
// A barrier is a rectangle, optionally with a rectangular stem hanging below
// it, rotated by a quarter-turn multiple and pinned to a cell. Stems make
// L, T and Г shaped walls; a barrier without a stem is a plain rectangle.
package barrier

import (
	"fmt"

	"github.com/vovakirdan/maze-arcade/internal/core"
)

// Rotation is a clockwise turn in degrees, as seen on screen (y grows down).
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// Valid reports whether r is one of the four quarter turns.
func (r Rotation) Valid() bool {
	switch r {
	case Rotate0, Rotate90, Rotate180, Rotate270:
		return true
	}
	return false
}

// Stem is a rectangular protrusion below the base rectangle, in cells.
// LeftOffset is measured from the base's left edge.
type Stem struct {
	LeftOffset int `yaml:"left_offset"`
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
}

// Spec declares one barrier. Top and Left pin the bounding top-left corner of
// the final shape after rotation.
type Spec struct {
	Top      int      `yaml:"top"`
	Left     int      `yaml:"left"`
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	Stem     *Stem    `yaml:"stem,omitempty"`
	Rotation Rotation `yaml:"rotation,omitempty"`
}

// String returns a compact description used in error messages and tables.
func (s Spec) String() string {
	out := fmt.Sprintf("%dx%d@(%d,%d)", s.Width, s.Height, s.Left, s.Top)
	if s.Stem != nil {
		out += fmt.Sprintf(" stem{off=%d %dx%d}", s.Stem.LeftOffset, s.Stem.Width, s.Stem.Height)
	}
	if s.Rotation != Rotate0 {
		out += fmt.Sprintf(" rot=%d", s.Rotation)
	}
	return out
}

// ShapeValidationError reports a geometrically impossible barrier.
// It is a static configuration error: the maze cannot be built around it.
type ShapeValidationError struct {
	Code    string
	Message string
	Spec    Spec
}

func (e *ShapeValidationError) Error() string {
	return fmt.Sprintf("invalid barrier %s: [%s] %s", e.Spec, e.Code, e.Message)
}

// Validation error codes.
const (
	CodeNegativePosition = "NEGATIVE_POSITION"
	CodeEmptySize        = "EMPTY_SIZE"
	CodeStemOffset       = "STEM_OFFSET"
	CodeEmptyStem        = "EMPTY_STEM"
	CodeStemOverflow     = "STEM_OVERFLOW"
	CodeBadRotation      = "BAD_ROTATION"
)

// Validate checks a Spec without building it.
func (s Spec) Validate() error {
	fail := func(code, format string, args ...any) error {
		return &ShapeValidationError{Code: code, Message: fmt.Sprintf(format, args...), Spec: s}
	}

	if s.Top < 0 || s.Left < 0 {
		return fail(CodeNegativePosition, "top and left must not be negative")
	}
	if s.Width < 1 || s.Height < 1 {
		return fail(CodeEmptySize, "width and height must be at least 1")
	}
	if st := s.Stem; st != nil {
		if st.LeftOffset < 0 {
			return fail(CodeStemOffset, "stem left offset must not be negative")
		}
		if st.Width < 1 || st.Height < 1 {
			return fail(CodeEmptyStem, "stem width and height must be at least 1")
		}
		if st.LeftOffset+st.Width > s.Width {
			return fail(CodeStemOverflow, "stem ends at %d, past base width %d",
				st.LeftOffset+st.Width, s.Width)
		}
	}
	if !s.Rotation.Valid() {
		return fail(CodeBadRotation, "rotation must be 0, 90, 180 or 270")
	}
	return nil
}

// Make builds the polygon for s in maze-cell space.
func Make(s Spec) (Polygon, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	pts := outline(s)
	if s.Rotation != Rotate0 {
		for i, p := range pts {
			pts[i] = rotate(p, s.Rotation)
		}
		pts = Polygon(pts).normalize()
	}
	return Polygon(pts).Translate(core.Pt(float64(s.Left), float64(s.Top))), nil
}

// MustMake is like Make but panics on an invalid Spec.
// Intended for static tables whose validity is covered by tests.
func MustMake(s Spec) Polygon {
	p, err := Make(s)
	if err != nil {
		panic(err)
	}
	return p
}

// outline returns the unrotated vertex path with the base's top-left corner
// at the origin. Stem corners that coincide with a base corner are dropped.
func outline(s Spec) []core.Point {
	w, h := float64(s.Width), float64(s.Height)
	topLeft, topRight := core.Pt(0, 0), core.Pt(w, 0)
	bottomLeft, bottomRight := core.Pt(0, h), core.Pt(w, h)

	pts := []core.Point{topLeft, topRight}
	if s.Stem == nil {
		return append(pts, bottomRight, bottomLeft)
	}

	left := float64(s.Stem.LeftOffset)
	right := left + float64(s.Stem.Width)
	bottom := h + float64(s.Stem.Height)
	stemTopLeft, stemTopRight := core.Pt(left, h), core.Pt(right, h)
	stemBottomLeft, stemBottomRight := core.Pt(left, bottom), core.Pt(right, bottom)

	if s.Stem.LeftOffset+s.Stem.Width == s.Width {
		pts = append(pts, stemBottomRight)
	} else {
		pts = append(pts, bottomRight, stemTopRight, stemBottomRight)
	}
	if s.Stem.LeftOffset == 0 {
		pts = append(pts, stemBottomLeft)
	} else {
		pts = append(pts, stemBottomLeft, stemTopLeft, bottomLeft)
	}
	return pts
}

// rotate turns p clockwise on screen about the origin. Quarter turns are
// applied exactly, without trigonometry.
func rotate(p core.Point, r Rotation) core.Point {
	switch r {
	case Rotate90:
		return core.Pt(-p.Y, p.X)
	case Rotate180:
		return core.Pt(-p.X, -p.Y)
	case Rotate270:
		return core.Pt(p.Y, -p.X)
	default:
		return p
	}
}
