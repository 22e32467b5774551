// Package config provides YAML-based game configuration loading and
// validation for Road Rush.
package config

import (
	"fmt"

	"github.com/roadrush/roadrush/internal/core"
)

// GameConfig contains all tunable parameters for the game. The simulation
// runs in a fixed virtual-pixel viewport; every distance and speed below is
// in those units per tick unless noted.
type GameConfig struct {
	Viewport     ViewportConfig      `yaml:"viewport"`
	Car          CarConfig           `yaml:"car"`
	Obstacles    ObstaclesConfig     `yaml:"obstacles"`
	PowerUps     PowerUpsConfig      `yaml:"powerups"`
	Collision    CollisionConfig     `yaml:"collision"`
	Countdown    CountdownConfig     `yaml:"countdown"`
	Difficulties []DifficultySetting `yaml:"difficulties"`
	Default      string              `yaml:"default_difficulty"`
}

// ViewportConfig defines the virtual simulation area.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CarConfig defines the player car.
type CarConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`         // Horizontal speed per tick while steering
	StartXRatio float64 `yaml:"start_x_ratio"` // Starting x as a fraction of viewport width
	StartYRatio float64 `yaml:"start_y_ratio"` // Fixed y as a fraction of viewport height
}

// ObstaclesConfig defines hazard behavior and the obstacle kind table.
type ObstaclesConfig struct {
	StartY       float64      `yaml:"start_y"`       // Initial spawn y, far above the viewport
	SpawnMargin  float64      `yaml:"spawn_margin"`  // Horizontal margin kept clear when sampling x
	MaxObstacles int          `yaml:"max_obstacles"` // Concurrent hazards; 1 = classic single-hazard mode
	SpawnDelay   int          `yaml:"spawn_delay"`   // Ticks between spawns when under capacity
	Kinds        []KindConfig `yaml:"kinds"`
}

// KindConfig defines one obstacle type. Weights are relative spawn
// frequencies and need not sum to anything in particular.
type KindConfig struct {
	Name          string  `yaml:"name"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	SpeedModifier float64 `yaml:"speed_modifier"` // Multiplier on the shared base speed
	ScoreValue    int     `yaml:"score_value"`    // Points credited when dodged
	SpawnWeight   float64 `yaml:"spawn_weight"`
	Color         string  `yaml:"color"`
}

// PowerUpsConfig defines pickup spawning and effect durations.
type PowerUpsConfig struct {
	Enabled         bool    `yaml:"enabled"`
	SpawnChance     float64 `yaml:"spawn_chance"` // Probability per dodge, 0..1
	PickupSize      float64 `yaml:"pickup_size"`
	PickupSpeed     float64 `yaml:"pickup_speed"`
	SpawnJitter     float64 `yaml:"spawn_jitter"` // Horizontal scatter around the dodged obstacle
	ShieldSecs      float64 `yaml:"shield_secs"`
	SlowMotionSecs  float64 `yaml:"slow_motion_secs"`
	SpeedBoostSecs  float64 `yaml:"speed_boost_secs"`
	SlowMultiplier  float64 `yaml:"slow_multiplier"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
}

// CollisionConfig holds the hit-box tolerances. They intentionally shrink the
// hit box versus the visual sprite; changing them changes game feel.
type CollisionConfig struct {
	YTolerance float64 `yaml:"y_tolerance"`
	XTolerance float64 `yaml:"x_tolerance"`
}

// CountdownConfig times the pre-race 3-2-1-GO script.
type CountdownConfig struct {
	StepSecs float64 `yaml:"step_secs"` // Seconds each digit stays on screen
}

// DifficultySetting is a named difficulty preset. Exactly one preset is
// active at a time; unknown names are rejected by the difficulty manager.
type DifficultySetting struct {
	Name           string  `yaml:"name"`
	ObstacleSpeed  float64 `yaml:"obstacle_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	SpawnRate      float64 `yaml:"spawn_rate"` // Multiplier on spawn delay; <1 spawns faster
	Description    string  `yaml:"description"`
}

// Validate checks the configuration for values the simulation cannot run on.
func (c *GameConfig) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("config: viewport must be positive, got %.0fx%.0f",
			c.Viewport.Width, c.Viewport.Height)
	}
	if c.Car.Width <= 0 || c.Car.Width >= c.Viewport.Width {
		return fmt.Errorf("config: car width %.0f does not fit viewport width %.0f",
			c.Car.Width, c.Viewport.Width)
	}
	if c.Obstacles.MaxObstacles < 1 {
		return fmt.Errorf("config: max_obstacles must be at least 1, got %d",
			c.Obstacles.MaxObstacles)
	}
	if len(c.Obstacles.Kinds) == 0 {
		return fmt.Errorf("config: at least one obstacle kind is required")
	}
	for _, k := range c.Obstacles.Kinds {
		if k.Width <= 0 || k.Height <= 0 {
			return fmt.Errorf("config: obstacle kind %q has non-positive size", k.Name)
		}
		if k.SpawnWeight < 0 {
			return fmt.Errorf("config: obstacle kind %q has negative spawn weight", k.Name)
		}
	}
	if c.PowerUps.SpawnChance < 0 || c.PowerUps.SpawnChance > 1 {
		return fmt.Errorf("config: powerup spawn_chance must be in [0, 1], got %f",
			c.PowerUps.SpawnChance)
	}
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("config: at least one difficulty preset is required")
	}
	names := make(map[string]bool, len(c.Difficulties))
	for _, d := range c.Difficulties {
		if d.Name == "" {
			return fmt.Errorf("config: difficulty preset with empty name")
		}
		if names[d.Name] {
			return fmt.Errorf("config: duplicate difficulty preset %q", d.Name)
		}
		names[d.Name] = true
	}
	if c.Default != "" && !names[c.Default] {
		return fmt.Errorf("config: default_difficulty %q is not a defined preset", c.Default)
	}
	return nil
}

// colorNames maps config color strings to core colors.
var colorNames = map[string]core.Color{
	"":        core.ColorDefault,
	"default": core.ColorDefault,
	"red":     core.ColorRed,
	"green":   core.ColorGreen,
	"yellow":  core.ColorYellow,
	"blue":    core.ColorBlue,
	"magenta": core.ColorMagenta,
	"cyan":    core.ColorCyan,
	"white":   core.ColorWhite,
	"orange":  core.ColorOrange,
	"gray":    core.ColorGray,
	"purple":  core.ColorMagenta,
	"gold":    core.ColorBrightYellow,
	"brown":   core.ColorOrange,
}

// ParseColor translates a config color name to a core.Color.
// Unknown names fall back to the default color.
func ParseColor(name string) core.Color {
	if c, ok := colorNames[name]; ok {
		return c
	}
	return core.ColorDefault
}
