// Package player implements the keyboard-driven disc that walks the maze.
package player

import (
	"slices"
	"time"

	"github.com/vovakirdan/maze-arcade/internal/collision"
	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/grid"
	"github.com/vovakirdan/maze-arcade/internal/raster"
)

// Arena is the static environment a player moves through.
type Arena interface {
	Transform() grid.Transform
	Mask() *collision.Mask
}

// Player is a disc in cell space. It is driven by one goroutine at a time.
type Player struct {
	pos    core.Point
	radius float64 // Cells
	speed  float64 // Cells per second

	// pressed holds held direction keys, oldest first.
	pressed []core.Key

	transform grid.Transform
	mask      *collision.Mask
	footprint *collision.Footprint
	filler    *raster.Filler
}

// New creates a player at spawn. The player owns a footprint buffer sized to
// the arena's screen, reused on every Update.
func New(arena Arena, spawn core.Point, radius, speed float64) *Player {
	tr := arena.Transform()
	return &Player{
		pos:       spawn,
		radius:    radius,
		speed:     speed,
		pressed:   make([]core.Key, 0, len(core.DirectionKeys)),
		transform: tr,
		mask:      arena.Mask(),
		footprint: collision.NewFootprint(tr.ScreenBounds()),
		filler:    raster.NewFiller(),
	}
}

// Position returns the center in cell space.
func (p *Player) Position() core.Point {
	return p.pos
}

// Radius returns the radius in cells.
func (p *Player) Radius() float64 {
	return p.radius
}

// Pressed returns the held direction keys, most recent last.
func (p *Player) Pressed() []core.Key {
	return slices.Clone(p.pressed)
}

// KeyDown marks k as the most recently pressed direction. Pressing a held key
// again makes it the most recent. Keys without a direction are ignored.
func (p *Player) KeyDown(k core.Key) {
	if _, ok := k.Direction(); !ok {
		return
	}
	p.remove(k)
	p.pressed = append(p.pressed, k)
}

// KeyUp releases k. Releasing a key that is not held does nothing.
func (p *Player) KeyUp(k core.Key) {
	p.remove(k)
}

func (p *Player) remove(k core.Key) {
	p.pressed = slices.DeleteFunc(p.pressed, func(q core.Key) bool { return q == k })
}

// Direction returns the unit vector of the most recently pressed key, or the
// zero vector when nothing is held.
func (p *Player) Direction() core.Point {
	if len(p.pressed) == 0 {
		return core.Point{}
	}
	d, _ := p.pressed[len(p.pressed)-1].Direction()
	return d
}

// Update advances the player by elapsed time. A move that would make the
// footprint touch a wall is rejected whole and the position is left as it
// was; Update reports that case as blocked.
func (p *Player) Update(elapsed time.Duration) (blocked bool) {
	velocity := p.Direction().Scale(p.speed * elapsed.Seconds())
	if velocity.IsZero() {
		return false
	}

	prev := p.pos
	p.pos = p.pos.Add(velocity)

	p.footprint.Reset()
	p.footprint.AddCircle(p.screenCenter(), p.screenRadius())
	if p.mask.Overlaps(p.footprint) {
		p.pos = prev
		return true
	}
	return false
}

// Render draws the player as a filled disc.
func (p *Player) Render(dst *core.Surface) {
	p.filler.Circle(p.screenCenter(), p.screenRadius(), dst.Bounds(), func(x, y int) {
		dst.Set(x, y, core.ColorYellow)
	})
}

func (p *Player) screenCenter() core.Point {
	return p.transform.ToScreen(p.pos)
}

func (p *Player) screenRadius() float64 {
	return p.transform.ScaleToScreen(p.radius)
}
