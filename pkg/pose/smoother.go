package pose

// DefaultAlpha is the smoothing blend factor. Lower is smoother but
// laggier; 0.35 keeps the overlay steady without visible trailing.
const DefaultAlpha = 0.35

// Smoother maintains an exponentially-weighted running pose estimate.
//
// Not safe for concurrent use: the session's single render loop owns it.
type Smoother struct {
	alpha float64

	seeded      bool
	centerX     float64
	centerY     float64
	eyeDistance float64
	roll        float64
	yaw         float64
}

// NewSmoother creates a smoother with the given blend factor.
// Values outside (0, 1] fall back to DefaultAlpha.
func NewSmoother(alpha float64) *Smoother {
	s := &Smoother{}
	s.SetAlpha(alpha)
	return s
}

// Alpha returns the current blend factor.
func (s *Smoother) Alpha() float64 {
	return s.alpha
}

// SetAlpha updates the blend factor. Values outside (0, 1] fall back
// to DefaultAlpha.
func (s *Smoother) SetAlpha(alpha float64) {
	if alpha <= 0 || alpha > 1 {
		alpha = DefaultAlpha
	}
	s.alpha = alpha
}

// Smooth blends a raw pose into the running estimate and returns the
// smoothed pose. The first call after New or Reset seeds state with the
// raw values directly, so there is no ramp-up lag on first detection.
// The mesh reference is always the latest raw one, never averaged.
func (s *Smoother) Smooth(raw Pose) Pose {
	if !s.seeded {
		s.centerX = raw.Center.X
		s.centerY = raw.Center.Y
		s.eyeDistance = raw.EyeDistance
		s.roll = raw.Roll
		s.yaw = raw.Yaw
		s.seeded = true
	} else {
		s.centerX += (raw.Center.X - s.centerX) * s.alpha
		s.centerY += (raw.Center.Y - s.centerY) * s.alpha
		s.eyeDistance += (raw.EyeDistance - s.eyeDistance) * s.alpha
		s.roll += (raw.Roll - s.roll) * s.alpha
		s.yaw += (raw.Yaw - s.yaw) * s.alpha
	}

	return Pose{
		Center:      Point2{X: s.centerX, Y: s.centerY},
		EyeDistance: s.eyeDistance,
		Roll:        s.roll,
		Yaw:         s.yaw,
		Mesh:        raw.Mesh,
	}
}

// Reset clears all smoothing state. The next Smooth call seeds fresh;
// no smoothing ever crosses a tracking-session restart.
func (s *Smoother) Reset() {
	s.seeded = false
	s.centerX = 0
	s.centerY = 0
	s.eyeDistance = 0
	s.roll = 0
	s.yaw = 0
}
