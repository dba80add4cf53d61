package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/game"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// chromeRows is the number of terminal rows below the maze.
const chromeRows = 2

// Model is the Bubble Tea model for one maze session.
type Model struct {
	session  *game.Session
	surface  *core.Surface
	renderer *Renderer
	keys     KeyMap
	holds    *HoldTracker
	help     help.Model
	config   core.RuntimeConfig
	lastTick time.Time
	quitting bool
}

// NewModel creates a model driving session. Held keys are released after
// releaseAfter without a repeat.
func NewModel(session *game.Session, cfg core.RuntimeConfig, releaseAfter time.Duration) Model {
	return Model{
		session:  session,
		surface:  session.NewSurface(),
		renderer: NewRenderer(),
		keys:     DefaultKeyMap(),
		holds:    NewHoldTracker(releaseAfter),
		help:     help.New(),
		config:   cfg,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Every press or repeat is a key down, so a re-pressed key becomes the
	// most recent.
	if k := m.keys.Direction(msg); k != core.KeyUnknown {
		m.holds.Press(k, now)
		m.session.KeyDown(k)
	}
	return m, nil
}

// handleTick releases stale keys and advances one frame by the real time
// since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.config.FrameInterval()
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	for _, k := range m.holds.Expire(now) {
		m.session.KeyUp(k)
	}
	m.session.Step(elapsed)

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.surface)
	rows := max(m.config.ScreenH-chromeRows, 1)

	var sb strings.Builder
	sb.WriteString(m.renderer.RenderSurface(m.surface, m.config.ScreenW, rows))
	sb.WriteRune('\n')
	sb.WriteString(m.status())
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) status() string {
	pos := m.session.Player().Position()
	return statusStyle.Render(fmt.Sprintf("FPS %.1f  pos (%.2f, %.2f)", m.session.FPS(), pos.X, pos.Y))
}

// Run starts the Bubble Tea program for session.
func Run(session *game.Session, cfg core.RuntimeConfig, releaseAfter time.Duration) error {
	model := NewModel(session, cfg, releaseAfter)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
