package tui

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/game"
	"github.com/vovakirdan/maze-arcade/internal/world"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDirection(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight},
		{"w", runeKey('w'), core.KeyUp},
		{"s", runeKey('s'), core.KeyDown},
		{"a", runeKey('a'), core.KeyLeft},
		{"d", runeKey('d'), core.KeyRight},
		{"x", runeKey('x'), core.KeyUnknown},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Direction(tc.msg); got != tc.want {
				t.Errorf("Direction() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestHoldTracker(t *testing.T) {
	start := time.Unix(1000, 0)
	h := NewHoldTracker(500 * time.Millisecond)

	h.Press(core.KeyRight, start)
	h.Press(core.KeyRight, start.Add(300*time.Millisecond))

	// 700 ms after the first press but only 400 ms after the repeat
	if got := h.Expire(start.Add(700 * time.Millisecond)); len(got) != 0 {
		t.Errorf("Expire() released %v before the window", got)
	}
	if !h.Held(core.KeyRight) {
		t.Error("key should still be held")
	}

	h.Press(core.KeyUp, start.Add(750*time.Millisecond))
	got := h.Expire(start.Add(800 * time.Millisecond))
	if !slices.Equal(got, []core.Key{core.KeyRight}) {
		t.Errorf("Expire() = %v, expected [Right]", got)
	}
	if h.Held(core.KeyRight) || !h.Held(core.KeyUp) {
		t.Error("only the stale key should be released")
	}
	h.Press(core.KeyRight, start.Add(900*time.Millisecond))
	if !h.Held(core.KeyRight) {
		t.Error("press after release should hold the key again")
	}
}

func TestDownsampleDimensions(t *testing.T) {
	s := core.NewSurface(560, 620)
	tests := []struct {
		cols, rows         int
		wantCols, wantRows int
	}{
		{80, 22, 38, 21},
		{200, 100, 140, 78},
		{560, 310, 560, 310},
		{1000, 1000, 560, 310},
	}

	for _, tc := range tests {
		cells := Downsample(s, tc.cols, tc.rows)
		if len(cells) > tc.rows || len(cells[0]) > tc.cols {
			t.Errorf("Downsample(%d, %d) = %dx%d, exceeds the limit", tc.cols, tc.rows, len(cells[0]), len(cells))
		}
		if len(cells) != tc.wantRows || len(cells[0]) != tc.wantCols {
			t.Errorf("Downsample(%d, %d) = %dx%d, expected %dx%d",
				tc.cols, tc.rows, len(cells[0]), len(cells), tc.wantCols, tc.wantRows)
		}
	}
	if Downsample(s, 0, 10) != nil {
		t.Error("zero columns should produce nothing")
	}
}

func TestDownsampleDominantColor(t *testing.T) {
	s := core.NewSurface(4, 8)
	// Top block (rows 0-3): a quarter blue.
	s.DrawRect(core.NewRect(0, 0, 2, 2), core.ColorBlue)
	// Bottom block (rows 4-7): one yellow pixel only.
	s.Set(3, 7, core.ColorYellow)

	cells := Downsample(s, 1, 1)
	if len(cells) != 1 || len(cells[0]) != 1 {
		t.Fatalf("got %dx%d cells, expected 1x1", len(cells[0]), len(cells))
	}
	if cells[0][0].Top != core.ColorBlue {
		t.Errorf("top = %v, expected blue", cells[0][0].Top)
	}
	if cells[0][0].Bottom != core.ColorBlack {
		t.Errorf("bottom = %v, expected black for a sparse block", cells[0][0].Bottom)
	}
}

func TestRenderCells(t *testing.T) {
	r := NewRenderer()
	blue := Cell{Top: core.ColorBlue, Bottom: core.ColorBlack}
	black := Cell{Top: core.ColorBlack, Bottom: core.ColorBlack}
	out := r.RenderCells([][]Cell{
		{blue, blue, black},
		{black, black, black},
	})

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 3 {
			t.Errorf("line %d width = %d, expected 3", i, w)
		}
	}
	if len(r.styles) != 2 {
		t.Errorf("cached %d styles, expected 2", len(r.styles))
	}
}

func newModel(t *testing.T) Model {
	t.Helper()
	w, err := world.New(config.DefaultMaze())
	if err != nil {
		t.Fatalf("world.New() error: %v", err)
	}
	rc := core.DefaultConfig()
	return NewModel(game.NewSession(w), rc, 500*time.Millisecond)
}

func TestModelSynthesizesRelease(t *testing.T) {
	m := newModel(t)
	start := time.Unix(2000, 0)

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRight}, start)
	m = next.(Model)
	if got := m.session.Player().Pressed(); !slices.Equal(got, []core.Key{core.KeyRight}) {
		t.Fatalf("Pressed() = %v, expected [Right]", got)
	}

	next, _ = m.handleTick(start.Add(100 * time.Millisecond))
	m = next.(Model)
	next, _ = m.handleTick(start.Add(200 * time.Millisecond))
	m = next.(Model)
	if x := m.session.Player().Position().X; x <= 13.5 {
		t.Errorf("player should move right while held, x = %v", x)
	}

	next, _ = m.handleTick(start.Add(600 * time.Millisecond))
	m = next.(Model)
	if got := m.session.Player().Pressed(); len(got) != 0 {
		t.Errorf("Pressed() = %v, expected release after the hold window", got)
	}
}

func TestModelRepressWins(t *testing.T) {
	m := newModel(t)
	start := time.Unix(3000, 0)
	presses := []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyLeft}, {Type: tea.KeyUp}}

	for i, msg := range presses {
		next, _ := m.handleKey(msg, start.Add(time.Duration(i)*100*time.Millisecond))
		m = next.(Model)
	}

	p := m.session.Player()
	if got := p.Pressed(); !slices.Equal(got, []core.Key{core.KeyLeft, core.KeyUp}) {
		t.Errorf("Pressed() = %v, expected [Left Up]", got)
	}
	if got := p.Direction(); got != core.Pt(0, -1) {
		t.Errorf("Direction() = %v, expected up", got)
	}
}

func TestSSHServerMazeFields(t *testing.T) {
	w, err := world.New(config.DefaultMaze())
	if err != nil {
		t.Fatalf("world.New() error: %v", err)
	}
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, w, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() error: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}

	fields := srv.mazeFields()
	got := make(map[string]any)
	for i := 0; i+1 < len(fields); i += 2 {
		got[fields[i].(string)] = fields[i+1]
	}
	if got["spawn"] != core.Pt(13.5, 23) {
		t.Errorf("spawn = %v, expected (13.5,23)", got["spawn"])
	}
	if got["maze"] != "560x620 px" {
		t.Errorf("maze = %v, expected 560x620 px", got["maze"])
	}
	if got["barriers"] != 25 {
		t.Errorf("barriers = %v, expected 25", got["barriers"])
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" || cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("DefaultSSHServerConfig() = %+v", cfg)
	}
}

func TestModelQuit(t *testing.T) {
	m := newModel(t)
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).quitting || cmd == nil {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelView(t *testing.T) {
	m := newModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)

	view := m.View()
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		if w := lipgloss.Width(line); w > 80 {
			t.Errorf("line %d is %d wide, expected at most 80", i, w)
		}
	}
	if !strings.Contains(view, "FPS") {
		t.Error("view should include the status line")
	}
}
