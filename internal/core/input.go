package core

// Key identifies a physical input key, abstracted from the frontend's own key
// codes. Frontends translate their events to Keys; anything without a mapping
// arrives as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp          // Up arrow, W
	KeyDown        // Down arrow, S
	KeyLeft        // Left arrow, A
	KeyRight       // Right arrow, D
)

// DirectionKeys lists the keys that steer the player, in a fixed order.
var DirectionKeys = []Key{KeyUp, KeyDown, KeyLeft, KeyRight}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Direction returns the unit vector a key steers toward in maze-cell space
// (y grows downward). The second result is false for non-direction keys.
func (k Key) Direction() (Point, bool) {
	switch k {
	case KeyUp:
		return Pt(0, -1), true
	case KeyDown:
		return Pt(0, 1), true
	case KeyLeft:
		return Pt(-1, 0), true
	case KeyRight:
		return Pt(1, 0), true
	default:
		return Point{}, false
	}
}
