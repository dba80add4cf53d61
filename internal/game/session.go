// Package game ties a shared World to one Player and drives the frame
// contract: input, then exactly one Update, then Render.
package game

import (
	"time"

	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/player"
	"github.com/vovakirdan/maze-arcade/internal/world"
)

// Session is one player's view of a maze. Sessions share their World and own
// everything else, so each must be driven by a single goroutine.
type Session struct {
	world  *world.World
	player *player.Player
	fps    *FPSMeter
	frame  uint64
}

// NewSession spawns a player in w at the configured spawn point.
func NewSession(w *world.World) *Session {
	cfg := w.Config()
	return &Session{
		world:  w,
		player: player.New(w, cfg.Spawn(), cfg.Player.Radius, cfg.Player.Speed),
		fps:    NewFPSMeter(time.Second),
	}
}

// World returns the shared maze.
func (s *Session) World() *world.World {
	return s.world
}

// Player returns the session's player.
func (s *Session) Player() *player.Player {
	return s.player
}

// KeyDown forwards a key press to the player.
func (s *Session) KeyDown(k core.Key) {
	s.player.KeyDown(k)
}

// KeyUp forwards a key release to the player.
func (s *Session) KeyUp(k core.Key) {
	s.player.KeyUp(k)
}

// Step advances one frame given the real time since the previous frame.
// It reports whether the player's move was rejected by a wall.
func (s *Session) Step(elapsed time.Duration) (blocked bool) {
	s.frame++
	s.fps.Tick(elapsed)
	return s.player.Update(elapsed)
}

// Frame returns the number of steps taken.
func (s *Session) Frame() uint64 {
	return s.frame
}

// FPS returns the measured frame rate.
func (s *Session) FPS() float64 {
	return s.fps.FPS()
}

// Render draws the maze and then the player.
func (s *Session) Render(dst *core.Surface) {
	s.world.Render(dst)
	s.player.Render(dst)
}

// NewSurface creates a surface sized to this session's playfield.
func (s *Session) NewSurface() *core.Surface {
	return s.world.NewSurface()
}
