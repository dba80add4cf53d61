package game

import "time"

// FPSMeter measures frame rate over a sliding window of frame durations.
type FPSMeter struct {
	window  time.Duration
	samples []time.Duration
	total   time.Duration
}

// NewFPSMeter creates a meter averaging over window.
func NewFPSMeter(window time.Duration) *FPSMeter {
	return &FPSMeter{window: window}
}

// Tick records one frame that took elapsed. Non-positive durations are
// ignored.
func (m *FPSMeter) Tick(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	m.samples = append(m.samples, elapsed)
	m.total += elapsed
	// Keep at least one sample so a single slow frame still reports.
	for len(m.samples) > 1 && m.total-m.samples[0] >= m.window {
		m.total -= m.samples[0]
		m.samples = m.samples[1:]
	}
}

// FPS returns frames per second over the window, or 0 before the first frame.
func (m *FPSMeter) FPS() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(len(m.samples)) / m.total.Seconds()
}
