package race

import (
	"math/rand"

	"github.com/roadrush/roadrush/internal/config"
	"github.com/roadrush/roadrush/internal/core"
)

// Kind describes one obstacle vehicle type.
type Kind struct {
	Name          string
	Width         float64
	Height        float64
	SpeedModifier float64
	ScoreValue    int
	Color         core.Color
}

// Obstacle is one hazard descending the road. Obstacles are recycled rather
// than destroyed: once past the bottom edge they respawn above the top with
// a fresh kind and x position.
type Obstacle struct {
	Kind Kind
	X, Y float64
}

// Rect returns the obstacle's bounding box in simulation space.
func (o *Obstacle) Rect() core.FRect {
	return core.NewFRect(o.X, o.Y, o.Kind.Width, o.Kind.Height)
}

// ObstacleManager spawns, moves, and recycles obstacles. It starts with a
// single obstacle and adds more over time up to the configured cap.
type ObstacleManager struct {
	cfg         config.ObstaclesConfig
	viewport    config.ViewportConfig
	kinds       []Kind
	weights     []float64
	totalWeight float64

	obstacles  []*Obstacle
	spawnTimer int
	rng        *rand.Rand
}

// NewObstacleManager builds a manager from the obstacle kind table.
func NewObstacleManager(cfg *config.GameConfig, rng *rand.Rand) *ObstacleManager {
	m := &ObstacleManager{
		cfg:      cfg.Obstacles,
		viewport: cfg.Viewport,
		rng:      rng,
	}
	for _, k := range cfg.Obstacles.Kinds {
		m.kinds = append(m.kinds, Kind{
			Name:          k.Name,
			Width:         k.Width,
			Height:        k.Height,
			SpeedModifier: k.SpeedModifier,
			ScoreValue:    k.ScoreValue,
			Color:         config.ParseColor(k.Color),
		})
		m.weights = append(m.weights, k.SpawnWeight)
		m.totalWeight += k.SpawnWeight
	}
	m.Reset(rng)
	return m
}

// Reset clears the road down to a single fresh obstacle.
func (m *ObstacleManager) Reset(rng *rand.Rand) {
	m.rng = rng
	m.obstacles = m.obstacles[:0]
	m.spawnTimer = 0
	m.obstacles = append(m.obstacles, m.newObstacle())
}

// Update advances all obstacles by one tick. speed is the effective descent
// speed in pixels per tick before per-kind modifiers; spawnDelay is the
// difficulty-scaled tick gap between new spawns. It returns copies of the
// obstacles that passed the bottom edge this tick, taken before recycling,
// so callers can credit the dodge and spawn pickups where they left.
func (m *ObstacleManager) Update(speed float64, spawnDelay int) []Obstacle {
	var dodged []Obstacle
	for _, o := range m.obstacles {
		o.Y += speed * o.Kind.SpeedModifier
		if o.Y > m.viewport.Height {
			dodged = append(dodged, *o)
			m.recycle(o)
		}
	}

	if len(m.obstacles) < m.cfg.MaxObstacles {
		m.spawnTimer++
		if m.spawnTimer >= spawnDelay {
			m.spawnTimer = 0
			m.obstacles = append(m.obstacles, m.newObstacle())
		}
	}
	return dodged
}

// Obstacles returns the live obstacles. Callers must not mutate them.
func (m *ObstacleManager) Obstacles() []*Obstacle {
	return m.obstacles
}

// newObstacle enters the road from far above so fresh traffic takes a
// moment to arrive instead of materializing at the viewport edge.
func (m *ObstacleManager) newObstacle() *Obstacle {
	o := &Obstacle{}
	m.recycle(o)
	o.Y = m.cfg.StartY
	return o
}

// recycle places a passed obstacle just above the viewport with a freshly
// rolled kind and a random x that keeps the spawn margin clear on both sides.
func (m *ObstacleManager) recycle(o *Obstacle) {
	o.Kind = m.rollKind()
	o.Y = -o.Kind.Height
	span := m.viewport.Width - o.Kind.Width - 2*m.cfg.SpawnMargin
	if span <= 0 {
		o.X = m.cfg.SpawnMargin
		return
	}
	o.X = m.cfg.SpawnMargin + m.rng.Float64()*span
}

// rollKind picks an obstacle kind by spawn weight.
func (m *ObstacleManager) rollKind() Kind {
	if m.totalWeight <= 0 {
		return m.kinds[0]
	}
	roll := m.rng.Float64() * m.totalWeight
	for i, k := range m.kinds {
		roll -= m.weights[i]
		if roll < 0 {
			return k
		}
	}
	return m.kinds[len(m.kinds)-1]
}
