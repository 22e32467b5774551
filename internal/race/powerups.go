package race

import (
	"math/rand"
	"time"

	"github.com/roadrush/roadrush/internal/config"
	"github.com/roadrush/roadrush/internal/core"
)

// EffectKind identifies a power-up type.
type EffectKind int

const (
	EffectShield EffectKind = iota
	EffectSlowMotion
	EffectSpeedBoost
	effectCount
)

// String returns a display name for the effect.
func (k EffectKind) String() string {
	switch k {
	case EffectShield:
		return "shield"
	case EffectSlowMotion:
		return "slow-mo"
	case EffectSpeedBoost:
		return "boost"
	}
	return "unknown"
}

// Color returns the effect's display color.
func (k EffectKind) Color() core.Color {
	switch k {
	case EffectShield:
		return core.ColorCyan
	case EffectSlowMotion:
		return core.ColorBlue
	case EffectSpeedBoost:
		return core.ColorBrightYellow
	}
	return core.ColorDefault
}

// Pickup is a collectible power-up descending the road.
type Pickup struct {
	Kind EffectKind
	X, Y float64
	Size float64
}

// ActiveEffect is a running effect with its remaining duration.
type ActiveEffect struct {
	Kind      EffectKind
	Remaining time.Duration
}

// PowerUpManager spawns pickups, tracks falling ones, and times active
// effects. Durations use an injected clock so tests control time.
type PowerUpManager struct {
	cfg      config.PowerUpsConfig
	viewport config.ViewportConfig

	pickups []*Pickup
	expiry  map[EffectKind]time.Time
	rng     *rand.Rand
	now     func() time.Time
}

// NewPowerUpManager creates a manager using the given RNG and clock.
func NewPowerUpManager(cfg *config.GameConfig, rng *rand.Rand, now func() time.Time) *PowerUpManager {
	return &PowerUpManager{
		cfg:      cfg.PowerUps,
		viewport: cfg.Viewport,
		expiry:   make(map[EffectKind]time.Time, effectCount),
		rng:      rng,
		now:      now,
	}
}

// Reset clears all pickups and active effects.
func (m *PowerUpManager) Reset(rng *rand.Rand) {
	m.rng = rng
	m.pickups = m.pickups[:0]
	for k := range m.expiry {
		delete(m.expiry, k)
	}
}

// MaybeSpawn rolls the spawn chance and, on success, drops a pickup near
// where a dodged obstacle left the road. Pickups spawn above the viewport
// and fall in like everything else.
func (m *PowerUpManager) MaybeSpawn(x float64) {
	if !m.cfg.Enabled || m.rng.Float64() >= m.cfg.SpawnChance {
		return
	}
	kind := EffectKind(m.rng.Intn(int(effectCount)))
	px := x + (m.rng.Float64()*2-1)*m.cfg.SpawnJitter
	px = core.ClampF(px, 0, m.viewport.Width-m.cfg.PickupSize)
	m.pickups = append(m.pickups, &Pickup{
		Kind: kind,
		X:    px,
		Y:    -m.cfg.PickupSize,
		Size: m.cfg.PickupSize,
	})
}

// Update moves pickups down one tick and drops the ones that fall past the
// bottom edge uncollected.
func (m *PowerUpManager) Update(speedMult float64) {
	live := m.pickups[:0]
	for _, p := range m.pickups {
		p.Y += m.cfg.PickupSpeed * speedMult
		if p.Y <= m.viewport.Height {
			live = append(live, p)
		}
	}
	m.pickups = live
}

// Collect activates every pickup the car overlaps and removes it from the
// road. Collecting an effect that is already running restarts its timer.
// It returns the kinds collected this tick.
func (m *PowerUpManager) Collect(car *Car) []EffectKind {
	var got []EffectKind
	live := m.pickups[:0]
	for _, p := range m.pickups {
		if CarCollects(car, p) {
			m.activate(p.Kind)
			got = append(got, p.Kind)
			continue
		}
		live = append(live, p)
	}
	m.pickups = live
	return got
}

func (m *PowerUpManager) activate(kind EffectKind) {
	var d time.Duration
	switch kind {
	case EffectShield:
		d = secs(m.cfg.ShieldSecs)
	case EffectSlowMotion:
		d = secs(m.cfg.SlowMotionSecs)
	case EffectSpeedBoost:
		d = secs(m.cfg.SpeedBoostSecs)
	}
	m.expiry[kind] = m.now().Add(d)
}

func secs(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func (m *PowerUpManager) active(kind EffectKind) bool {
	exp, ok := m.expiry[kind]
	return ok && m.now().Before(exp)
}

// Shielded reports whether the shield effect is running.
func (m *PowerUpManager) Shielded() bool {
	return m.active(EffectShield)
}

// SpeedMultiplier returns the obstacle speed multiplier from active effects.
// Slow motion wins when both it and a boost are running.
func (m *PowerUpManager) SpeedMultiplier() float64 {
	if m.active(EffectSlowMotion) {
		return m.cfg.SlowMultiplier
	}
	if m.active(EffectSpeedBoost) {
		return m.cfg.BoostMultiplier
	}
	return 1.0
}

// Pickups returns the pickups currently on the road.
func (m *PowerUpManager) Pickups() []*Pickup {
	return m.pickups
}

// ActiveEffects returns the running effects with remaining time, in a fixed
// kind order for stable HUD display.
func (m *PowerUpManager) ActiveEffects() []ActiveEffect {
	var out []ActiveEffect
	now := m.now()
	for k := EffectKind(0); k < effectCount; k++ {
		if exp, ok := m.expiry[k]; ok && now.Before(exp) {
			out = append(out, ActiveEffect{Kind: k, Remaining: exp.Sub(now)})
		}
	}
	return out
}
