package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-arcade/internal/core"
)

// KeyMap defines the key bindings for the maze.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings. Arrows and WASD steer.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Direction translates a key message to a direction key, or KeyUnknown.
func (k KeyMap) Direction(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Up):
		return core.KeyUp
	case key.Matches(msg, k.Down):
		return core.KeyDown
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Right):
		return core.KeyRight
	}
	return core.KeyUnknown
}

// HoldTracker synthesizes key releases for terminals, which only report
// presses. A key counts as held while it keeps repeating; once no repeat has
// arrived for the release window, it is released.
type HoldTracker struct {
	after time.Duration
	seen  map[core.Key]time.Time
}

// NewHoldTracker creates a tracker releasing keys after the given window.
func NewHoldTracker(after time.Duration) *HoldTracker {
	return &HoldTracker{after: after, seen: make(map[core.Key]time.Time)}
}

// Press records a press or repeat of k at now, restarting its release
// window.
func (h *HoldTracker) Press(k core.Key, now time.Time) {
	h.seen[k] = now
}

// Expire releases every key whose last press is older than the window and
// returns them in a fixed order.
func (h *HoldTracker) Expire(now time.Time) []core.Key {
	var released []core.Key
	for _, k := range core.DirectionKeys {
		last, held := h.seen[k]
		if held && now.Sub(last) >= h.after {
			delete(h.seen, k)
			released = append(released, k)
		}
	}
	return released
}

// Held reports whether k is currently considered held.
func (h *HoldTracker) Held(k core.Key) bool {
	_, held := h.seen[k]
	return held
}
