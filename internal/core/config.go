package core

import "time"

// RuntimeConfig contains frontend settings passed to a session at startup.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters (terminal frontends only)
	ScreenH  int // Terminal height in characters (terminal frontends only)
	TickRate int // Frames per second the frontend aims for
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// FrameInterval returns the target time between frames.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}
