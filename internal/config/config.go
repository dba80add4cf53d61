// Package config provides YAML-based maze configuration loading and
// pace presets.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/maze-arcade/internal/barrier"
	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/grid"
)

// Maze contains all configuration for one maze.
type Maze struct {
	Grid      GridConfig     `yaml:"grid"`
	Player    PlayerConfig   `yaml:"player"`
	FrameRate int            `yaml:"frame_rate"`
	Input     InputConfig    `yaml:"input"`
	Barriers  []barrier.Spec `yaml:"barriers"`
}

// GridConfig defines the grid constants.
type GridConfig struct {
	CellSize int `yaml:"cell_size"` // Pixels per cell edge
	Columns  int `yaml:"columns"`
	Rows     int `yaml:"rows"`
	Margin   int `yaml:"margin"` // Pixels around the maze
}

// PlayerConfig defines the player's spawn point and motion, in cells.
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Cells per second
}

// InputConfig defines how terminal frontends treat held keys.
type InputConfig struct {
	// ReleaseAfterMS is how long a key counts as held without a repeat.
	ReleaseAfterMS int `yaml:"release_after_ms"`
}

// Transform returns the grid transform for the configured constants.
func (m Maze) Transform() (grid.Transform, error) {
	return grid.New(m.Grid.CellSize, m.Grid.Columns, m.Grid.Rows, m.Grid.Margin)
}

// Spawn returns the player's start position in cell space.
func (m Maze) Spawn() core.Point {
	return core.Pt(m.Player.SpawnX, m.Player.SpawnY)
}

// ReleaseAfter returns the synthesized key release window.
func (m Maze) ReleaseAfter() time.Duration {
	return time.Duration(m.Input.ReleaseAfterMS) * time.Millisecond
}

// Runtime returns frontend settings derived from the maze config.
func (m Maze) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if m.FrameRate > 0 {
		rc.TickRate = m.FrameRate
	}
	return rc
}

// Validate checks the scalar settings. Barrier shapes are checked when the
// world is built, where the failing index can be reported.
func (m Maze) Validate() error {
	t, err := m.Transform()
	if err != nil {
		return err
	}
	if !t.InBounds(m.Spawn()) {
		return fmt.Errorf("player spawn %v is outside the %dx%d grid", m.Spawn(), t.Columns, t.Rows)
	}
	if m.Player.Radius <= 0 {
		return fmt.Errorf("player radius must be positive, got %v", m.Player.Radius)
	}
	if m.Player.Speed < 0 {
		return fmt.Errorf("player speed must not be negative, got %v", m.Player.Speed)
	}
	if m.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be positive, got %d", m.FrameRate)
	}
	if m.Input.ReleaseAfterMS <= 0 {
		return fmt.Errorf("input release_after_ms must be positive, got %d", m.Input.ReleaseAfterMS)
	}
	return nil
}
