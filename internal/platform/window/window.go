// Package window runs a maze session in a desktop window with Ebitengine.
//
// Unlike terminals, Ebitengine reports real key releases, so held keys map
// directly to player key down/up events.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/game"
)

// Options configures the window.
type Options struct {
	Title   string
	Scale   float64 // Window pixels per playfield pixel
	TPS     int     // Updates per second
	ShowFPS bool
}

// DefaultOptions returns the options used by the maze command.
func DefaultOptions() Options {
	return Options{
		Title:   "Pacman",
		Scale:   1,
		TPS:     30,
		ShowFPS: true,
	}
}

type binding struct {
	key ebiten.Key
	dir core.Key
}

var bindings = []binding{
	{ebiten.KeyArrowUp, core.KeyUp},
	{ebiten.KeyW, core.KeyUp},
	{ebiten.KeyArrowDown, core.KeyDown},
	{ebiten.KeyS, core.KeyDown},
	{ebiten.KeyArrowLeft, core.KeyLeft},
	{ebiten.KeyA, core.KeyLeft},
	{ebiten.KeyArrowRight, core.KeyRight},
	{ebiten.KeyD, core.KeyRight},
}

// Game adapts a session to ebiten.Game.
type Game struct {
	session *game.Session
	surface *core.Surface
	face    *text.GoTextFace
	opts    Options
	last    time.Time
}

// NewGame creates the window adapter for session.
func NewGame(session *game.Session, opts Options) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Game{
		session: session,
		surface: session.NewSurface(),
		face:    &text.GoTextFace{Source: src, Size: 14},
		opts:    opts,
	}, nil
}

// Update delivers key events and advances one frame by the real elapsed
// time. Escape or Q ends the game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.session.KeyDown(b.dir)
		}
		if inpututil.IsKeyJustReleased(b.key) && !g.stillHeld(b.dir) {
			g.session.KeyUp(b.dir)
		}
	}

	now := time.Now()
	elapsed := time.Second / time.Duration(max(g.opts.TPS, 1))
	if !g.last.IsZero() {
		elapsed = now.Sub(g.last)
	}
	g.last = now
	g.session.Step(elapsed)
	return nil
}

// stillHeld reports whether another physical key for dir is down.
func (g *Game) stillHeld(dir core.Key) bool {
	for _, b := range bindings {
		if b.dir == dir && ebiten.IsKeyPressed(b.key) {
			return true
		}
	}
	return false
}

// Draw uploads the rendered surface and overlays the frame rate.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Render(g.surface)
	screen.WritePixels(g.surface.Pix())

	if g.opts.ShowFPS {
		op := &text.DrawOptions{}
		op.GeoM.Translate(14, 12)
		op.ColorScale.ScaleWithColor(core.ColorWhite)
		text.Draw(screen, fmt.Sprintf("FPS %.1f", g.session.FPS()), g.face, op)
	}
}

// Layout fixes the logical screen to the playfield size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.surface.Width(), g.surface.Height()
}

// Run opens the window and blocks until it is closed.
func Run(session *game.Session, opts Options) error {
	g, err := NewGame(session, opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(g.surface.Width())*scale), int(float64(g.surface.Height())*scale))
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(max(opts.TPS, 1))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
