// Package race implements the Road Rush game logic: a car dodging oncoming
// traffic on a vertically scrolling road. The package is pure simulation;
// rendering, input decoding, and audio output live in the platform layer.
package race

import (
	"fmt"
	"strings"

	"github.com/roadrush/roadrush/internal/config"
)

// Score milestones at which the game speeds up.
var milestones = []int{10, 25, 50, 100, 200}

// crossedMilestone reports the milestone passed between two scores, or 0.
// Past the last entry the game keeps accelerating every 100 points.
func crossedMilestone(prev, cur int) int {
	for _, m := range milestones {
		if prev < m && cur >= m {
			return m
		}
	}
	last := milestones[len(milestones)-1]
	if cur > last {
		prevStep := (prev - last) / 100
		curStep := (cur - last) / 100
		if curStep > prevStep {
			return last + curStep*100
		}
	}
	return 0
}

// Difficulty tracks the active preset and the current base obstacle speed,
// which ramps up as the player passes score milestones.
type Difficulty struct {
	setting config.DifficultySetting
	speed   float64
}

// NewDifficulty resolves a preset by name. An empty name selects the
// configured default; unknown names are an error.
func NewDifficulty(cfg *config.GameConfig, name string) (*Difficulty, error) {
	if name == "" {
		name = cfg.Default
	}
	for _, s := range cfg.Difficulties {
		if s.Name == name {
			return &Difficulty{setting: s, speed: s.ObstacleSpeed}, nil
		}
	}
	known := make([]string, len(cfg.Difficulties))
	for i, s := range cfg.Difficulties {
		known[i] = s.Name
	}
	return nil, fmt.Errorf("race: unknown difficulty %q (have %s)",
		name, strings.Join(known, ", "))
}

// Name returns the preset name.
func (d *Difficulty) Name() string { return d.setting.Name }

// Description returns the preset's menu description.
func (d *Difficulty) Description() string { return d.setting.Description }

// BaseSpeed returns the current base obstacle speed in pixels per tick,
// before per-kind modifiers and power-up multipliers.
func (d *Difficulty) BaseSpeed() float64 { return d.speed }

// SpawnDelay scales the configured spawn delay by the preset's spawn rate.
// Lower rates mean denser traffic.
func (d *Difficulty) SpawnDelay(baseTicks int) int {
	ticks := int(float64(baseTicks) * d.setting.SpawnRate)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// Advance raises the base speed by the preset's increment. In multi-kind
// traffic this happens at score milestones; in single-hazard mode on every
// dodge.
func (d *Difficulty) Advance() {
	d.speed += d.setting.SpeedIncrement
}

// Reset restores the starting speed for a new run.
func (d *Difficulty) Reset() {
	d.speed = d.setting.ObstacleSpeed
}
