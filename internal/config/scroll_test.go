package config

import (
	"math"
	"testing"
)

func TestScrollManagerSpeed(t *testing.T) {
	base := DefaultRunnerConfig().Scroll

	tests := []struct {
		name    string
		profile ScrollProfile
		ticks   int
		want    float64
	}{
		{"fixed", ScrollFixed, 1000, 5},
		{"empty means fixed", "", 1000, 5},
		{"performance", ScrollPerformance, 0, 7.5},
		{"ramp start", ScrollRamp, 0, 5},
		{"ramp after 1000 ticks", ScrollRamp, 1000, 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			cfg.Profile = tc.profile
			sm := NewScrollManager(cfg, 5)

			if got := sm.Speed(tc.ticks); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Speed(%d) = %v, expected %v", tc.ticks, got, tc.want)
			}
			if got := sm.BackgroundSpeed(tc.ticks); math.Abs(got-tc.want*0.5) > 1e-9 {
				t.Errorf("BackgroundSpeed(%d) = %v, expected %v", tc.ticks, got, tc.want*0.5)
			}
		})
	}
}
