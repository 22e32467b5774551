package race

import (
	"testing"

	"github.com/roadrush/roadrush/internal/config"
)

// The hit box is asymmetric on purpose; these fixtures pin its exact shape.
func TestCarHits(t *testing.T) {
	tol := config.CollisionConfig{YTolerance: 15, XTolerance: 5}
	car := &Car{X: 100, Y: 50, Width: 50, Height: 100}
	kind := Kind{Name: "car", Width: 30, Height: 40}

	tests := []struct {
		name string
		obs  Obstacle
		want bool
	}{
		{"direct overlap", Obstacle{Kind: kind, X: 100, Y: 50}, true},
		{"far right", Obstacle{Kind: kind, X: 200, Y: 50}, false},
		{"obstacle above, not yet reached", Obstacle{Kind: kind, X: 100, Y: -100}, false},
		// The hit box has no bottom edge: an obstacle below the car in
		// the same lane still registers until it recycles.
		{"obstacle below the car", Obstacle{Kind: kind, X: 100, Y: 400}, true},
		{"grazing left within tolerance", Obstacle{Kind: kind, X: 46, Y: 50}, false},
		{"just inside from the left", Obstacle{Kind: kind, X: 50, Y: 50}, false},
		{"left overlap", Obstacle{Kind: kind, X: 80, Y: 50}, true},
		{"right overlap", Obstacle{Kind: kind, X: 120, Y: 50}, true},
		// The tolerance extends the hit box past the car's right edge.
		{"grazing right within tolerance", Obstacle{Kind: kind, X: 154, Y: 50}, true},
		{"just beyond right tolerance", Obstacle{Kind: kind, X: 155, Y: 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.obs
			if got := CarHits(car, &o, tol); got != tt.want {
				t.Errorf("CarHits(car@%.0f,%.0f, obs@%.0f,%.0f) = %v, want %v",
					car.X, car.Y, o.X, o.Y, got, tt.want)
			}
		})
	}
}

func TestCarCollects(t *testing.T) {
	car := &Car{X: 100, Y: 300, Width: 50, Height: 100}
	tests := []struct {
		name string
		p    Pickup
		want bool
	}{
		{"overlapping", Pickup{X: 110, Y: 320, Size: 30}, true},
		{"touching edge", Pickup{X: 150, Y: 320, Size: 30}, false},
		{"above the car", Pickup{X: 110, Y: 100, Size: 30}, false},
		{"corner overlap", Pickup{X: 140, Y: 390, Size: 30}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			if got := CarCollects(car, &p); got != tt.want {
				t.Errorf("CarCollects = %v, want %v", got, tt.want)
			}
		})
	}
}
