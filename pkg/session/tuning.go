package session

import "time"

// TuningParams holds the real-time adjustable session parameters.
// These can be modified via the tuning API without restarting.
type TuningParams struct {
	SmoothingAlpha    float64 `json:"smoothing_alpha"`     // EMA alpha (0.2=smooth, 0.6=responsive)
	ScaleMultiplier   float64 `json:"scale_multiplier"`    // Overlay size adjustment
	DetectEveryNTicks int     `json:"detect_every_ticks"`  // Detection throttle window
	GracePeriodMs     int     `json:"grace_period_ms"`     // Face-loss grace window
}

// GetTuningParams returns current tuning parameters.
func (s *Session) GetTuningParams() TuningParams {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return TuningParams{
		SmoothingAlpha:    s.smoother.Alpha(),
		ScaleMultiplier:   s.compositor.ScaleMultiplier,
		DetectEveryNTicks: s.cfg.DetectEveryNTicks,
		GracePeriodMs:     int(s.cfg.GracePeriod / time.Millisecond),
	}
}

// SetTuningParams updates tuning parameters at runtime.
// Only positive values are applied.
func (s *Session) SetTuningParams(params TuningParams) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if params.SmoothingAlpha > 0 {
		s.smoother.SetAlpha(params.SmoothingAlpha)
		s.cfg.SmoothingAlpha = s.smoother.Alpha()
	}
	if params.ScaleMultiplier > 0 {
		s.compositor.ScaleMultiplier = params.ScaleMultiplier
		s.cfg.ScaleMultiplier = params.ScaleMultiplier
	}
	if params.DetectEveryNTicks > 0 {
		s.cfg.DetectEveryNTicks = params.DetectEveryNTicks
	}
	if params.GracePeriodMs > 0 {
		s.cfg.GracePeriod = time.Duration(params.GracePeriodMs) * time.Millisecond
	}
}
