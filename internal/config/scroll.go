package config

// ScrollManager computes the ground-layer scroll speed for a tick.
// Only the background consumes it; entity speeds are fixed by RunnerPhysics.
type ScrollManager struct {
	cfg       ScrollConfig
	baseSpeed float64
}

// NewScrollManager creates a scroll manager for the given base ground speed.
func NewScrollManager(cfg ScrollConfig, baseSpeed float64) *ScrollManager {
	return &ScrollManager{
		cfg:       cfg,
		baseSpeed: baseSpeed,
	}
}

// Profile returns the active profile.
func (s *ScrollManager) Profile() ScrollProfile {
	if s.cfg.Profile == "" {
		return ScrollFixed
	}
	return s.cfg.Profile
}

// Speed returns the ground-layer speed after the given number of ticks.
func (s *ScrollManager) Speed(ticks int) float64 {
	switch s.Profile() {
	case ScrollPerformance:
		return s.baseSpeed * s.cfg.Multiplier
	case ScrollRamp:
		return s.baseSpeed + float64(ticks)*s.cfg.Ramp
	default:
		return s.baseSpeed
	}
}

// BackgroundSpeed returns how far the background moves during the given tick.
func (s *ScrollManager) BackgroundSpeed(ticks int) float64 {
	return s.Speed(ticks) * s.cfg.Parallax
}
