package race

import (
	"math/rand"
	"testing"

	"github.com/roadrush/roadrush/internal/config"
)

func TestObstacleSpawnPositions(t *testing.T) {
	cfg := config.DefaultConfig()
	rng := rand.New(rand.NewSource(1))
	m := NewObstacleManager(&cfg, rng)

	// Drive many recycles and check every spawn respects the margin.
	for i := 0; i < 5000; i++ {
		m.Update(50, 1)
		for _, o := range m.Obstacles() {
			if o.X < cfg.Obstacles.SpawnMargin-1e-9 {
				t.Fatalf("obstacle x = %f violates left margin %f", o.X, cfg.Obstacles.SpawnMargin)
			}
			if o.X+o.Kind.Width > cfg.Viewport.Width-cfg.Obstacles.SpawnMargin+1e-9 {
				t.Fatalf("obstacle right edge %f violates right margin", o.X+o.Kind.Width)
			}
		}
	}
}

func TestObstacleRecycleReportsDodge(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Obstacles.MaxObstacles = 1
	rng := rand.New(rand.NewSource(7))
	m := NewObstacleManager(&cfg, rng)

	total := 0
	for i := 0; i < 10000 && total < 3; i++ {
		dodged := m.Update(cfg.Difficulties[1].ObstacleSpeed, 120)
		for _, o := range dodged {
			total++
			if o.Y <= cfg.Viewport.Height {
				t.Errorf("dodged obstacle reported at y = %f, still on screen", o.Y)
			}
			if o.Kind.ScoreValue < 1 {
				t.Errorf("dodged obstacle has score value %d", o.Kind.ScoreValue)
			}
		}
		if len(m.Obstacles()) != 1 {
			t.Fatalf("single-obstacle mode has %d obstacles", len(m.Obstacles()))
		}
	}
	if total < 3 {
		t.Fatalf("only %d recycles observed", total)
	}
}

func TestObstacleRecycleRespawnsJustAboveViewport(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Obstacles.MaxObstacles = 1
	rng := rand.New(rand.NewSource(11))
	m := NewObstacleManager(&cfg, rng)

	if got := m.Obstacles()[0].Y; got != cfg.Obstacles.StartY {
		t.Fatalf("fresh obstacle enters at y = %f, want %f", got, cfg.Obstacles.StartY)
	}

	for i := 0; i < 10000; i++ {
		if len(m.Update(7, 120)) > 0 {
			o := m.Obstacles()[0]
			if o.Y != -o.Kind.Height {
				t.Fatalf("post-recycle y = %f, want %f", o.Y, -o.Kind.Height)
			}
			return
		}
	}
	t.Fatal("no recycle observed")
}

func TestObstaclePopulationGrowsToCap(t *testing.T) {
	cfg := config.DefaultConfig()
	rng := rand.New(rand.NewSource(3))
	m := NewObstacleManager(&cfg, rng)

	if len(m.Obstacles()) != 1 {
		t.Fatalf("should start with one obstacle, got %d", len(m.Obstacles()))
	}

	// Enough ticks for every spawn delay to elapse.
	for i := 0; i < cfg.Obstacles.SpawnDelay*(cfg.Obstacles.MaxObstacles+2); i++ {
		m.Update(0, cfg.Obstacles.SpawnDelay)
	}
	if got := len(m.Obstacles()); got != cfg.Obstacles.MaxObstacles {
		t.Errorf("population = %d, want cap %d", got, cfg.Obstacles.MaxObstacles)
	}
}

func TestObstacleKindWeights(t *testing.T) {
	cfg := config.DefaultConfig()
	rng := rand.New(rand.NewSource(99))
	m := NewObstacleManager(&cfg, rng)

	counts := make(map[string]int)
	for i := 0; i < 20000; i++ {
		counts[m.rollKind().Name]++
	}
	// "car" carries half the total weight; "bus" is the rarest.
	if counts["car"] < counts["truck"] || counts["truck"] < counts["bus"] {
		t.Errorf("weights not respected: %v", counts)
	}
	for _, k := range cfg.Obstacles.Kinds {
		if counts[k.Name] == 0 {
			t.Errorf("kind %q never rolled", k.Name)
		}
	}
}

func TestObstacleDeterminism(t *testing.T) {
	cfg := config.DefaultConfig()
	run := func(seed int64) []float64 {
		m := NewObstacleManager(&cfg, rand.New(rand.NewSource(seed)))
		var xs []float64
		for i := 0; i < 2000; i++ {
			for _, o := range m.Update(10, 60) {
				xs = append(xs, o.X)
			}
		}
		return xs
	}
	a, b := run(42), run(42)
	if len(a) != len(b) {
		t.Fatalf("runs diverged in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at recycle %d: %f vs %f", i, a[i], b[i])
		}
	}
}

func TestObstacleSpeedModifier(t *testing.T) {
	cfg := config.DefaultConfig()
	rng := rand.New(rand.NewSource(5))
	m := NewObstacleManager(&cfg, rng)

	o := m.Obstacles()[0]
	before := o.Y
	m.Update(10, 1000)
	moved := o.Y - before
	want := 10 * o.Kind.SpeedModifier
	if moved != want {
		t.Errorf("obstacle moved %f, want %f for kind %q", moved, want, o.Kind.Name)
	}
}
