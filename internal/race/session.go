package race

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/roadrush/roadrush/internal/config"
	"github.com/roadrush/roadrush/internal/core"
)

// StepEvents reports what happened during one simulation tick so the
// platform layer can react with sound and presentation.
type StepEvents struct {
	Crashed   bool
	Dodged    int          // Obstacles dodged this tick
	Milestone int          // Milestone crossed this tick, 0 if none
	Collected []EffectKind // Power-ups collected this tick
}

// Session is one run of the game: the car, the traffic, the pickups, and
// the score, advanced tick by tick. It is deterministic given its RNG seed,
// clock, and input sequence.
type Session struct {
	cfg        *config.GameConfig
	car        *Car
	obstacles  *ObstacleManager
	powerups   *PowerUpManager
	score      *ScoreKeeper
	difficulty *Difficulty

	rng     *rand.Rand
	now     func() time.Time
	log     *log.Logger
	ticks   int
	started time.Time
	crashed bool
}

// NewSession builds a run on the given difficulty. The RNG and clock are
// injected so tests replay identical runs.
func NewSession(cfg *config.GameConfig, diff *Difficulty, score *ScoreKeeper,
	rng *rand.Rand, now func() time.Time, logger *log.Logger) *Session {
	s := &Session{
		cfg:        cfg,
		car:        NewCar(cfg),
		difficulty: diff,
		score:      score,
		rng:        rng,
		now:        now,
		log:        logger,
	}
	s.obstacles = NewObstacleManager(cfg, rng)
	s.powerups = NewPowerUpManager(cfg, rng, now)
	s.started = now()
	return s
}

// Step advances the simulation by one tick. Once crashed, further steps are
// no-ops until Restart.
func (s *Session) Step(in core.InputFrame) StepEvents {
	var ev StepEvents
	if s.crashed {
		return ev
	}
	s.ticks++

	// Steering: held keys win, neither means stop drifting.
	switch {
	case in.Has(core.ActionLeft) && !in.Has(core.ActionRight):
		s.car.MoveLeft()
	case in.Has(core.ActionRight) && !in.Has(core.ActionLeft):
		s.car.MoveRight()
	default:
		s.car.StopMoving()
	}
	s.car.Update()

	// Driving off the road ends the run. The shield only absorbs traffic
	// hits, not leaving the road entirely.
	if s.car.OutOfBounds() {
		s.crash("left the road")
		ev.Crashed = true
		return ev
	}

	mult := s.powerups.SpeedMultiplier()
	spawnDelay := s.difficulty.SpawnDelay(s.cfg.Obstacles.SpawnDelay)
	dodged := s.obstacles.Update(s.difficulty.BaseSpeed()*mult, spawnDelay)
	singleHazard := s.cfg.Obstacles.MaxObstacles == 1
	for _, o := range dodged {
		ev.Dodged++
		m := s.score.RecordDodge(o.Kind.ScoreValue)
		// Classic single-hazard mode speeds up on every dodge; multi-kind
		// traffic ramps at score milestones.
		if singleHazard || m != 0 {
			s.difficulty.Advance()
		}
		if m != 0 {
			ev.Milestone = m
			s.log.Info("milestone reached",
				"score", s.score.Score(), "milestone", m,
				"speed", s.difficulty.BaseSpeed())
		}
		s.powerups.MaybeSpawn(o.X)
	}

	s.powerups.Update(mult)
	ev.Collected = s.powerups.Collect(s.car)
	for _, k := range ev.Collected {
		s.log.Debug("power-up collected", "kind", k.String())
	}

	if !s.powerups.Shielded() {
		for _, o := range s.obstacles.Obstacles() {
			if CarHits(s.car, o, s.cfg.Collision) {
				s.crash("hit " + o.Kind.Name)
				ev.Crashed = true
				return ev
			}
		}
	}
	return ev
}

func (s *Session) crash(cause string) {
	s.crashed = true
	s.log.Info("crashed", "cause", cause,
		"score", s.score.Score(), "high_score", s.score.HighScore(),
		"duration", s.Duration().Round(time.Second))
}

// Restart begins a new run on the same difficulty, keeping the high score.
func (s *Session) Restart() {
	s.crashed = false
	s.ticks = 0
	s.started = s.now()
	s.car.Reset()
	s.difficulty.Reset()
	s.obstacles.Reset(s.rng)
	s.powerups.Reset(s.rng)
	s.score.ResetRun()
}

// Crashed reports whether the run has ended.
func (s *Session) Crashed() bool { return s.crashed }

// Car returns the player car for rendering.
func (s *Session) Car() *Car { return s.car }

// Obstacles returns the live obstacles for rendering.
func (s *Session) Obstacles() []*Obstacle { return s.obstacles.Obstacles() }

// Pickups returns the falling pickups for rendering.
func (s *Session) Pickups() []*Pickup { return s.powerups.Pickups() }

// ActiveEffects returns the running power-up effects for the HUD.
func (s *Session) ActiveEffects() []ActiveEffect { return s.powerups.ActiveEffects() }

// Shielded reports whether the shield is up, for rendering the car.
func (s *Session) Shielded() bool { return s.powerups.Shielded() }

// Score returns the score keeper.
func (s *Session) Score() *ScoreKeeper { return s.score }

// Difficulty returns the active difficulty.
func (s *Session) Difficulty() *Difficulty { return s.difficulty }

// Speed returns the effective obstacle speed this tick, for the HUD.
func (s *Session) Speed() float64 {
	return s.difficulty.BaseSpeed() * s.powerups.SpeedMultiplier()
}

// Ticks returns the number of simulation ticks since the run started.
func (s *Session) Ticks() int { return s.ticks }

// Duration returns wall-clock time since the run started.
func (s *Session) Duration() time.Duration { return s.now().Sub(s.started) }
