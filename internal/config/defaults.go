package config

import (
	_ "embed"

	"github.com/vovakirdan/maze-arcade/internal/barrier"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMaze returns the classic 27x30 layout with 25 barriers.
func DefaultMaze() Maze {
	return Maze{
		Grid: GridConfig{
			CellSize: 20,
			Columns:  27,
			Rows:     30,
			Margin:   10,
		},
		Player: PlayerConfig{
			SpawnX: 13.5,
			SpawnY: 23,
			Radius: 0.9,
			Speed:  10,
		},
		FrameRate: 30,
		Input: InputConfig{
			ReleaseAfterMS: 500,
		},
		Barriers: defaultBarriers(),
	}
}

// GetDefaultYAML returns the embedded default maze YAML.
func GetDefaultYAML() []byte {
	return defaultMazeYAML
}

func defaultBarriers() []barrier.Spec {
	tee := func(offset int) *barrier.Stem {
		return &barrier.Stem{LeftOffset: offset, Width: 1, Height: 3}
	}
	return []barrier.Spec{
		// Top blocks
		{Top: 2, Left: 2, Width: 3, Height: 2},
		{Top: 2, Left: 7, Width: 4, Height: 2},
		{Top: 0, Left: 13, Width: 1, Height: 4},
		{Top: 2, Left: 16, Width: 4, Height: 2},
		{Top: 2, Left: 22, Width: 3, Height: 2},
		{Top: 6, Left: 2, Width: 3, Height: 1},
		{Top: 6, Left: 22, Width: 3, Height: 1},

		// Side walls around the tunnels
		{Top: 9, Left: 0, Width: 5, Height: 10},
		{Top: 6, Left: 7, Width: 7, Height: 1, Stem: tee(3), Rotation: barrier.Rotate270},
		{Top: 6, Left: 10, Width: 7, Height: 1, Stem: tee(3)},
		{Top: 6, Left: 16, Width: 7, Height: 1, Stem: tee(3), Rotation: barrier.Rotate90},
		{Top: 9, Left: 22, Width: 5, Height: 10},

		// Ghost house row
		{Top: 15, Left: 7, Width: 1, Height: 4},
		{Top: 12, Left: 10, Width: 7, Height: 4},
		{Top: 15, Left: 19, Width: 1, Height: 4},

		// Lower half
		{Top: 21, Left: 2, Width: 3, Height: 1, Stem: tee(2)},
		{Top: 21, Left: 7, Width: 4, Height: 1},
		{Top: 18, Left: 10, Width: 7, Height: 1, Stem: tee(3)},
		{Top: 21, Left: 16, Width: 4, Height: 1},
		{Top: 21, Left: 22, Width: 3, Height: 1, Stem: tee(0)},
		{Top: 24, Left: 0, Width: 2, Height: 1},
		{Top: 24, Left: 2, Width: 9, Height: 1, Stem: tee(3), Rotation: barrier.Rotate180},
		{Top: 24, Left: 10, Width: 7, Height: 1, Stem: tee(3)},
		{Top: 24, Left: 16, Width: 9, Height: 1, Stem: tee(5), Rotation: barrier.Rotate180},
		{Top: 24, Left: 25, Width: 2, Height: 1},
	}
}
