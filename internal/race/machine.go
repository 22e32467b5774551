package race

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/roadrush/roadrush/internal/audio"
	"github.com/roadrush/roadrush/internal/config"
	"github.com/roadrush/roadrush/internal/core"
)

// State is a phase of the game flow.
type State int

const (
	StateIntro State = iota
	StateDifficultySelect
	StateCountdown
	StatePlaying
	StatePaused
	StateCrashed
	StateQuit
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StateDifficultySelect:
		return "difficulty-select"
	case StateCountdown:
		return "countdown"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateCrashed:
		return "crashed"
	case StateQuit:
		return "quit"
	}
	return "unknown"
}

// crashHold is how long the crash screen ignores the confirm key, so a
// player hammering the steering keys does not skip past their own score.
const crashHold = time.Second

// Machine drives the game through its states. Every external interaction
// of a tick goes through Step; the platform layer only reads state and
// renders it.
type Machine struct {
	cfg   *config.GameConfig
	state State

	session *Session
	store   HighScoreStore
	sound   audio.Player
	rng     *rand.Rand
	now     func() time.Time
	log     *log.Logger

	diffCursor int // Selection index in the difficulty menu
	introTicks int // Drives the intro animation

	countdownStep     int // 3, 2, 1, then 0 for GO
	countdownDeadline time.Time

	crashedAt time.Time
}

// Option configures a Machine.
type Option func(*Machine)

// WithRand injects the RNG; tests use a fixed seed for replayable runs.
func WithRand(rng *rand.Rand) Option {
	return func(m *Machine) { m.rng = rng }
}

// WithClock injects the time source for countdowns and effect timers.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// WithAudio injects the sound player.
func WithAudio(p audio.Player) Option {
	return func(m *Machine) { m.sound = p }
}

// WithLogger injects the logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) { m.log = l }
}

// NewMachine creates the game in the intro state.
func NewMachine(cfg *config.GameConfig, store HighScoreStore, opts ...Option) *Machine {
	m := &Machine{
		cfg:   cfg,
		state: StateIntro,
		store: store,
		sound: audio.Null{},
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
		log:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	for i, d := range cfg.Difficulties {
		if d.Name == cfg.Default {
			m.diffCursor = i
		}
	}
	return m
}

// Step advances the machine by one tick. The quit action is honored in
// every state, including mid-countdown.
func (m *Machine) Step(in core.InputFrame) {
	if m.state == StateQuit {
		return
	}
	if in.Has(core.ActionQuit) {
		m.toQuit()
		return
	}

	switch m.state {
	case StateIntro:
		m.stepIntro(in)
	case StateDifficultySelect:
		m.stepDifficultySelect(in)
	case StateCountdown:
		m.stepCountdown(in)
	case StatePlaying:
		m.stepPlaying(in)
	case StatePaused:
		m.stepPaused(in)
	case StateCrashed:
		m.stepCrashed(in)
	}
}

func (m *Machine) stepIntro(in core.InputFrame) {
	m.introTicks++
	if in.Has(core.ActionConfirm) {
		m.sound.Play(audio.SoundMenuSelect)
		m.transition(StateDifficultySelect)
	}
}

func (m *Machine) stepDifficultySelect(in core.InputFrame) {
	n := len(m.cfg.Difficulties)
	switch {
	case in.Has(core.ActionUp) || in.Has(core.ActionLeft):
		m.diffCursor = (m.diffCursor - 1 + n) % n
		m.sound.Play(audio.SoundMenuMove)
	case in.Has(core.ActionDown) || in.Has(core.ActionRight):
		m.diffCursor = (m.diffCursor + 1) % n
		m.sound.Play(audio.SoundMenuMove)
	case in.Has(core.ActionBack):
		m.transition(StateIntro)
	case in.Has(core.ActionConfirm):
		name := m.cfg.Difficulties[m.diffCursor].Name
		if err := m.startSession(name); err != nil {
			// Presets come from the validated config, so this cannot
			// happen through the UI; log and stay in the menu.
			m.log.Error("could not start session", "difficulty", name, "err", err)
			return
		}
		m.sound.Play(audio.SoundIgnition)
		m.beginCountdown()
	}
}

// startSession builds a fresh session for the named difficulty, reusing the
// score keeper so the high score survives across runs in one process.
func (m *Machine) startSession(name string) error {
	diff, err := NewDifficulty(m.cfg, name)
	if err != nil {
		return err
	}
	var keeper *ScoreKeeper
	if m.session != nil {
		keeper = m.session.Score()
		keeper.ResetRun()
	} else {
		keeper = NewScoreKeeper(m.store, m.log)
	}
	m.session = NewSession(m.cfg, diff, keeper, m.rng, m.now, m.log)
	m.log.Info("session started", "difficulty", name,
		"high_score", keeper.HighScore())
	return nil
}

func (m *Machine) beginCountdown() {
	m.countdownStep = 3
	m.countdownDeadline = m.now().Add(secs(m.cfg.Countdown.StepSecs))
	m.sound.Play(audio.SoundCountdownBeep)
	m.transition(StateCountdown)
}

func (m *Machine) stepCountdown(core.InputFrame) {
	// All input except quit is ignored until the lights go green.
	if m.now().Before(m.countdownDeadline) {
		return
	}
	m.countdownStep--
	if m.countdownStep > 0 {
		m.countdownDeadline = m.now().Add(secs(m.cfg.Countdown.StepSecs))
		m.sound.Play(audio.SoundCountdownBeep)
		return
	}
	if m.countdownStep == 0 {
		// "GO" flashes for one step before play begins.
		m.countdownDeadline = m.now().Add(secs(m.cfg.Countdown.StepSecs))
		m.sound.Play(audio.SoundCountdownGo)
		return
	}
	m.sound.StartEngine()
	m.transition(StatePlaying)
}

func (m *Machine) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		m.sound.PauseEngine()
		m.transition(StatePaused)
		return
	}
	ev := m.session.Step(in)
	if ev.Milestone != 0 {
		m.sound.Play(audio.SoundMilestone)
	}
	if len(ev.Collected) > 0 {
		m.sound.Play(audio.SoundPickup)
	}
	if ev.Crashed {
		m.session.Score().PersistIfBeaten()
		m.sound.StopEngine()
		m.sound.Play(audio.SoundCrash)
		m.crashedAt = m.now()
		m.transition(StateCrashed)
	}
}

func (m *Machine) stepPaused(in core.InputFrame) {
	if in.Has(core.ActionPause) || in.Has(core.ActionResume) || in.Has(core.ActionConfirm) {
		m.sound.ResumeEngine()
		m.transition(StatePlaying)
	}
}

func (m *Machine) stepCrashed(in core.InputFrame) {
	if m.now().Sub(m.crashedAt) < crashHold {
		return
	}
	switch {
	case in.Has(core.ActionConfirm):
		// Play again on the same difficulty.
		m.session.Restart()
		m.sound.Play(audio.SoundIgnition)
		m.beginCountdown()
	case in.Has(core.ActionBack):
		m.transition(StateDifficultySelect)
	}
}

func (m *Machine) toQuit() {
	if m.state == StatePlaying || m.state == StatePaused {
		// Quitting mid-run still persists a beaten high score.
		m.session.Score().PersistIfBeaten()
	}
	m.sound.StopEngine()
	m.transition(StateQuit)
}

func (m *Machine) transition(to State) {
	m.log.Debug("state transition", "from", m.state.String(), "to", to.String())
	m.state = to
}

// State returns the current game state.
func (m *Machine) State() State { return m.state }

// Session returns the current run, or nil before the first one starts.
func (m *Machine) Session() *Session { return m.session }

// DifficultyCursor returns the selected index in the difficulty menu.
func (m *Machine) DifficultyCursor() int { return m.diffCursor }

// Difficulties returns the menu entries.
func (m *Machine) Difficulties() []config.DifficultySetting { return m.cfg.Difficulties }

// IntroTicks returns the tick counter driving the intro animation.
func (m *Machine) IntroTicks() int { return m.introTicks }

// CountdownLabel returns the text shown during the countdown.
func (m *Machine) CountdownLabel() string {
	switch m.countdownStep {
	case 3:
		return "3"
	case 2:
		return "2"
	case 1:
		return "1"
	}
	return "GO!"
}

// CrashHoldOver reports whether the crash screen accepts input yet.
func (m *Machine) CrashHoldOver() bool {
	return m.now().Sub(m.crashedAt) >= crashHold
}

// TickRate returns the ticks per second the current state should run at.
// Gameplay runs fast; menus idle slowly to save cycles.
func (m *Machine) TickRate(rt core.RuntimeConfig) int {
	switch m.state {
	case StatePlaying, StateCountdown:
		return rt.TickRate
	default:
		return rt.MenuTickRate
	}
}
