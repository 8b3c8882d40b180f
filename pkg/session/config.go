// Package session runs the try-on render loop: capture, throttled
// asynchronous landmark detection, pose smoothing, and overlay
// compositing.
package session

import (
	"time"

	"github.com/thelllmike/virtual-tryon/pkg/pose"
)

// Config holds all tunable parameters for a try-on session.
type Config struct {
	// Timing
	TickInterval      time.Duration // Display tick (one render per tick)
	DetectEveryNTicks int           // Request detection every Nth tick
	GracePeriod       time.Duration // Keep showing a stale pose this long after face loss

	// Pose
	SmoothingAlpha float64 // EMA blend factor (lower = smoother, laggier)

	// Overlay
	ScaleMultiplier float64 // User size adjustment on top of eye distance
}

// DefaultConfig returns the recommended configuration for responsive
// tracking at display rate.
func DefaultConfig() Config {
	return Config{
		// ~60 Hz render, detection every other tick
		TickInterval:      16 * time.Millisecond,
		DetectEveryNTicks: 2,
		GracePeriod:       500 * time.Millisecond,

		SmoothingAlpha: pose.DefaultAlpha,

		ScaleMultiplier: 1.0,
	}
}

// SmoothConfig returns a configuration for steadier, laggier tracking.
func SmoothConfig() Config {
	cfg := DefaultConfig()
	cfg.SmoothingAlpha = 0.2
	cfg.DetectEveryNTicks = 3
	return cfg
}

// ResponsiveConfig returns a configuration that trusts new detections
// more, at the cost of visible jitter.
func ResponsiveConfig() Config {
	cfg := DefaultConfig()
	cfg.SmoothingAlpha = 0.6
	cfg.DetectEveryNTicks = 1
	return cfg
}

// cadenceWindow is the span of one throttling window: a pose older than
// this no longer counts as freshly tracking.
func (c Config) cadenceWindow() time.Duration {
	n := c.DetectEveryNTicks
	if n < 1 {
		n = 1
	}
	return time.Duration(n) * c.TickInterval
}
