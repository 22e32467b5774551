package config

import (
	_ "embed"
)

//go:embed defaults/roadrush.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors the embedded
// defaults/roadrush.yaml and serves as the last-resort fallback.
func DefaultConfig() GameConfig {
	return GameConfig{
		Viewport: ViewportConfig{
			Width:  400,
			Height: 600,
		},
		Car: CarConfig{
			Width:       50,
			Height:      100,
			Speed:       10,
			StartXRatio: 0.4,
			StartYRatio: 0.6,
		},
		Obstacles: ObstaclesConfig{
			StartY:       -600,
			SpawnMargin:  8,
			MaxObstacles: 3,
			SpawnDelay:   120,
			Kinds: []KindConfig{
				{Name: "car", Width: 50, Height: 100, SpeedModifier: 1.0, ScoreValue: 1, SpawnWeight: 5, Color: "red"},
				{Name: "truck", Width: 60, Height: 140, SpeedModifier: 0.8, ScoreValue: 2, SpawnWeight: 2, Color: "orange"},
				{Name: "sports", Width: 44, Height: 90, SpeedModifier: 1.3, ScoreValue: 3, SpawnWeight: 1.5, Color: "yellow"},
				{Name: "motorcycle", Width: 24, Height: 60, SpeedModifier: 1.5, ScoreValue: 2, SpawnWeight: 1, Color: "cyan"},
				{Name: "bus", Width: 70, Height: 180, SpeedModifier: 0.6, ScoreValue: 4, SpawnWeight: 0.5, Color: "magenta"},
			},
		},
		PowerUps: PowerUpsConfig{
			Enabled:         true,
			SpawnChance:     0.1,
			PickupSize:      30,
			PickupSpeed:     3,
			SpawnJitter:     20,
			ShieldSecs:      3,
			SlowMotionSecs:  5,
			SpeedBoostSecs:  2,
			SlowMultiplier:  0.5,
			BoostMultiplier: 1.5,
		},
		Collision: CollisionConfig{
			YTolerance: 15,
			XTolerance: 5,
		},
		Countdown: CountdownConfig{
			StepSecs: 0.75,
		},
		Difficulties: []DifficultySetting{
			{Name: "easy", ObstacleSpeed: 3, SpeedIncrement: 0.5, SpawnRate: 1.0,
				Description: "Slow traffic, gentle ramp-up."},
			{Name: "normal", ObstacleSpeed: 5, SpeedIncrement: 1.0, SpawnRate: 1.0,
				Description: "The classic pace."},
			{Name: "hard", ObstacleSpeed: 7, SpeedIncrement: 1.5, SpawnRate: 0.8,
				Description: "Fast traffic, denser spawns."},
		},
		Default: "normal",
	}
}
