package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRunner(data)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRunner(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/runner.yaml"); err == nil {
		if cfg, err := parseRunner(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRunner decodes YAML over the defaults and validates the result.
func parseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks that the config can drive a simulation.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, errors.New("world: width and height must be positive"))
	}
	if c.World.Ground <= 0 || c.World.Ground > c.World.Height {
		errs = append(errs, fmt.Errorf("world: ground %.0f outside (0, %.0f]", c.World.Ground, c.World.Height))
	}
	if c.World.BackgroundWidth <= 0 {
		errs = append(errs, errors.New("world: background_width must be positive"))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("physics: gravity must be positive"))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, errors.New("physics: jump_impulse must be negative"))
	}
	if c.Character.AnimationSpeed < 1 {
		errs = append(errs, errors.New("character: animation_speed must be at least 1"))
	}
	if c.Scoring.TimeInterval < 1 {
		errs = append(errs, errors.New("scoring: time_interval must be at least 1"))
	}
	if c.Spawn.PremiumChance < 0 || c.Spawn.PremiumChance > 1 {
		errs = append(errs, errors.New("spawn: premium_chance must be within [0, 1]"))
	}

	ranges := []struct {
		name     string
		r        IntRange
		interval bool
	}{
		{"spawn.obstacle_interval", c.Spawn.ObstacleInterval, true},
		{"spawn.obstacle_offset", c.Spawn.ObstacleOffset, false},
		{"spawn.coin_interval", c.Spawn.CoinInterval, true},
		{"spawn.coin_offset", c.Spawn.CoinOffset, false},
		{"spawn.coin_band", c.Spawn.CoinBand, false},
		{"spawn.airplane_interval", c.Spawn.AirplaneInterval, true},
		{"spawn.airplane_altitude", c.Spawn.AirplaneAltitude, false},
	}
	for _, rr := range ranges {
		if rr.r.Min > rr.r.Max {
			errs = append(errs, fmt.Errorf("%s: min %d greater than max %d", rr.name, rr.r.Min, rr.r.Max))
		}
		if rr.interval && rr.r.Min < 1 {
			errs = append(errs, fmt.Errorf("%s: intervals must be at least 1 tick", rr.name))
		}
	}

	if _, ok := ParseScrollProfile(string(c.Scroll.Profile)); !ok {
		errs = append(errs, fmt.Errorf("scroll: unknown profile %q", c.Scroll.Profile))
	}

	return errors.Join(errs...)
}

// ApplyScrollProfile overrides the config's background scroll profile.
// An empty profile leaves the config unchanged.
func ApplyScrollProfile(cfg *RunnerConfig, profile ScrollProfile) {
	if profile == "" {
		return
	}
	cfg.Scroll.Profile = profile
}

// ApplyGoalMode enables the coin-collection goal, keeping targets set by the config.
func ApplyGoalMode(cfg *RunnerConfig) {
	if cfg.Goal.Enabled() {
		return
	}
	cfg.Goal.Ordinary = DefaultGoalOrdinary
	cfg.Goal.Premium = DefaultGoalPremium
}
