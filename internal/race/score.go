package race

import (
	"github.com/charmbracelet/log"
)

// HighScoreStore persists the best score across sessions. Implementations
// live in the storage package; the simulation only depends on this interface.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// ScoreKeeper tracks the run score and the all-time high score. The high
// score updates in memory as soon as it is beaten, but the store is written
// exactly once per run, when the run ends.
type ScoreKeeper struct {
	score     int
	high      int
	baseline  int // high score at the start of the run; ties do not beat it
	store     HighScoreStore
	persisted bool
	log       *log.Logger
}

// NewScoreKeeper loads the high score from the store. A missing or broken
// store is not fatal: the high score starts at zero and the error is logged.
func NewScoreKeeper(store HighScoreStore, logger *log.Logger) *ScoreKeeper {
	k := &ScoreKeeper{store: store, log: logger}
	high, err := store.Load()
	if err != nil {
		logger.Warn("could not load high score, starting at zero", "err", err)
		high = 0
	}
	k.high = high
	k.baseline = high
	return k
}

// RecordDodge credits points for a dodged obstacle and returns the milestone
// crossed, if any.
func (k *ScoreKeeper) RecordDodge(value int) (milestone int) {
	prev := k.score
	k.score += value
	if k.score > k.high {
		k.high = k.score
	}
	return crossedMilestone(prev, k.score)
}

// Score returns the current run score.
func (k *ScoreKeeper) Score() int { return k.score }

// HighScore returns the best score seen, including the current run.
func (k *ScoreKeeper) HighScore() int { return k.high }

// Beat reports whether the current run has beaten the high score it started
// with. A tie is not a beat.
func (k *ScoreKeeper) Beat() bool { return k.score > k.baseline }

// PersistIfBeaten writes the high score to the store if this run beat it.
// It writes at most once per run; store errors are logged and swallowed so
// a broken disk never interrupts the game.
func (k *ScoreKeeper) PersistIfBeaten() {
	if k.persisted || !k.Beat() {
		return
	}
	k.persisted = true
	if err := k.store.Save(k.high); err != nil {
		k.log.Warn("could not save high score", "score", k.high, "err", err)
	}
}

// ResetRun starts a fresh run, keeping the high score as the new baseline.
func (k *ScoreKeeper) ResetRun() {
	k.score = 0
	k.baseline = k.high
	k.persisted = false
}
