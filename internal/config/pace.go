package config

import "fmt"

// PacePreset represents a named player speed.
type PacePreset string

const (
	PaceSlow   PacePreset = "slow"
	PaceNormal PacePreset = "normal"
	PaceFast   PacePreset = "fast"
)

// SpeedForPreset returns the player speed in cells per second for a preset.
func SpeedForPreset(preset PacePreset) (float64, error) {
	switch preset {
	case PaceSlow:
		return 6, nil
	case PaceNormal:
		return 10, nil
	case PaceFast:
		return 15, nil
	default:
		return 0, fmt.Errorf("unknown pace %q (want slow, normal or fast)", preset)
	}
}

// ApplyPace overrides the player speed with a preset. An empty preset keeps
// the configured speed.
func ApplyPace(cfg *Maze, preset PacePreset) error {
	if preset == "" {
		return nil
	}
	speed, err := SpeedForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Player.Speed = speed
	return nil
}
