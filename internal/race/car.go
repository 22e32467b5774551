package race

import (
	"github.com/roadrush/roadrush/internal/config"
	"github.com/roadrush/roadrush/internal/core"
)

// Car is the player vehicle. It moves only horizontally; the road scrolls
// beneath it. Velocity is set by steering input each tick and the car keeps
// drifting until StopMoving is called, matching the no-key-up input model.
type Car struct {
	X, Y   float64
	Width  float64
	Height float64
	vx     float64

	speed    float64
	viewport config.ViewportConfig
	startX   float64
}

// NewCar creates the player car at its starting position.
func NewCar(cfg *config.GameConfig) *Car {
	c := &Car{
		Width:    cfg.Car.Width,
		Height:   cfg.Car.Height,
		speed:    cfg.Car.Speed,
		viewport: cfg.Viewport,
		startX:   cfg.Viewport.Width * cfg.Car.StartXRatio,
	}
	c.X = c.startX
	c.Y = cfg.Viewport.Height * cfg.Car.StartYRatio
	return c
}

// MoveLeft steers the car left starting this tick.
func (c *Car) MoveLeft() { c.vx = -c.speed }

// MoveRight steers the car right starting this tick.
func (c *Car) MoveRight() { c.vx = c.speed }

// StopMoving halts horizontal movement.
func (c *Car) StopMoving() { c.vx = 0 }

// Moving reports the current steering direction: -1 left, 1 right, 0 idle.
func (c *Car) Moving() int {
	switch {
	case c.vx < 0:
		return -1
	case c.vx > 0:
		return 1
	}
	return 0
}

// Update applies the current velocity. The car is allowed to leave the road;
// OutOfBounds detects that afterwards.
func (c *Car) Update() {
	c.X += c.vx
}

// OutOfBounds reports whether any part of the car is off the road.
func (c *Car) OutOfBounds() bool {
	return c.X < 0 || c.X+c.Width > c.viewport.Width
}

// Rect returns the car's bounding box in simulation space.
func (c *Car) Rect() core.FRect {
	return core.NewFRect(c.X, c.Y, c.Width, c.Height)
}

// Reset returns the car to its starting position and stops it.
func (c *Car) Reset() {
	c.X = c.startX
	c.vx = 0
}
