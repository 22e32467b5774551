package race

import (
	"github.com/roadrush/roadrush/internal/config"
	"github.com/roadrush/roadrush/internal/core"
)

// CarHits tests the car against an obstacle using the tuned asymmetric hit
// box. The tolerances shrink the box relative to the sprites so near misses
// feel fair; they are part of the game feel and must not be "fixed" into a
// plain AABB test.
func CarHits(car *Car, o *Obstacle, tol config.CollisionConfig) bool {
	return car.Y < o.Y+o.Kind.Height-tol.YTolerance &&
		car.X > o.X-car.Width-tol.XTolerance &&
		car.X < o.X+o.Kind.Width-tol.XTolerance
}

// CarCollects tests the car against a pickup with a plain overlap check.
// Pickups use forgiving full-box collection, unlike obstacle hits.
func CarCollects(car *Car, p *Pickup) bool {
	return car.Rect().Overlaps(core.NewFRect(p.X, p.Y, p.Size, p.Size))
}
