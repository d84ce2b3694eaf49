package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// Goal used by the goal mode when the config does not define one.
const (
	DefaultGoalOrdinary = 47
	DefaultGoalPremium  = 15
)

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: RunnerWorld{
			Width:           800,
			Height:          450,
			Ground:          410,
			BackgroundWidth: 800,
		},
		Physics: RunnerPhysics{
			Gravity:       1,
			JumpImpulse:   -16,
			GroundSpeed:   5,
			AirplaneSpeed: 3,
		},
		Character: RunnerCharacter{
			X:              100,
			StandHeight:    120,
			DuckHeight:     60,
			AnimationSpeed: 5,
			StandBox:       Box{OffsetX: 20, OffsetY: 20, Width: 80, Height: 100},
			DuckBox:        Box{OffsetX: 20, OffsetY: 10, Width: 80, Height: 50},
		},
		Spawn: RunnerSpawn{
			ObstacleInterval: IntRange{Min: 60, Max: 120},
			ObstacleOffset:   IntRange{Min: 50, Max: 150},
			CoinInterval:     IntRange{Min: 30, Max: 90},
			CoinOffset:       IntRange{Min: 20, Max: 100},
			CoinBand:         IntRange{Min: 40, Max: 100},
			PremiumCooldown:  600,
			PremiumChance:    0.2,
			AirplaneInterval: IntRange{Min: 200, Max: 400},
			AirplaneOffset:   100,
			AirplaneAltitude: IntRange{Min: 50, Max: 150},
		},
		Scoring: RunnerScoring{
			OrdinaryValue: 1,
			PremiumValue:  5,
			AirplaneBonus: 2,
			TimeInterval:  30,
		},
		Scroll: ScrollConfig{
			Profile:    ScrollFixed,
			Parallax:   0.5,
			Multiplier: 1.5,
			Ramp:       0.001,
		},
		Labels: RunnerLabels{
			Ordinary: "HBD",
			Premium:  "HivePower",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
