package race

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

// spyStore records every interaction with the high score store.
type spyStore struct {
	value   int
	loadErr error
	saveErr error
	saves   []int
	loads   int
}

func (s *spyStore) Load() (int, error) {
	s.loads++
	return s.value, s.loadErr
}

func (s *spyStore) Save(score int) error {
	s.saves = append(s.saves, score)
	if s.saveErr == nil {
		s.value = score
	}
	return s.saveErr
}

func discardLogger() *log.Logger { return log.New(io.Discard) }

func TestScoreKeeperLoadsHighScore(t *testing.T) {
	store := &spyStore{value: 42}
	k := NewScoreKeeper(store, discardLogger())
	if k.HighScore() != 42 {
		t.Errorf("high score = %d, want 42", k.HighScore())
	}
}

func TestScoreKeeperLoadErrorStartsAtZero(t *testing.T) {
	store := &spyStore{value: 99, loadErr: errors.New("corrupt")}
	k := NewScoreKeeper(store, discardLogger())
	if k.HighScore() != 0 {
		t.Errorf("high score after load error = %d, want 0", k.HighScore())
	}
}

func TestScoreKeeperSingleWritePerRun(t *testing.T) {
	store := &spyStore{value: 0}
	k := NewScoreKeeper(store, discardLogger())

	for i := 0; i < 5; i++ {
		k.RecordDodge(1)
	}
	if len(store.saves) != 0 {
		t.Fatalf("store written during play: %v", store.saves)
	}

	k.PersistIfBeaten()
	k.PersistIfBeaten() // second call must not write again
	if len(store.saves) != 1 || store.saves[0] != 5 {
		t.Fatalf("saves = %v, want exactly [5]", store.saves)
	}
}

func TestScoreKeeperTieDoesNotPersist(t *testing.T) {
	store := &spyStore{value: 5}
	k := NewScoreKeeper(store, discardLogger())
	for i := 0; i < 5; i++ {
		k.RecordDodge(1)
	}
	if k.Beat() {
		t.Error("tying the high score is not beating it")
	}
	k.PersistIfBeaten()
	if len(store.saves) != 0 {
		t.Errorf("tie wrote to the store: %v", store.saves)
	}
}

func TestScoreKeeperHighScoreUpdatesLive(t *testing.T) {
	store := &spyStore{value: 3}
	k := NewScoreKeeper(store, discardLogger())
	k.RecordDodge(2)
	if k.HighScore() != 3 {
		t.Errorf("high score = %d before beating it, want 3", k.HighScore())
	}
	k.RecordDodge(2)
	if k.HighScore() != 4 {
		t.Errorf("high score should track the live run, got %d", k.HighScore())
	}
	if len(store.saves) != 0 {
		t.Error("live update must not touch the store")
	}
}

func TestScoreKeeperResetRun(t *testing.T) {
	store := &spyStore{value: 0}
	k := NewScoreKeeper(store, discardLogger())
	k.RecordDodge(10)
	k.PersistIfBeaten()

	k.ResetRun()
	if k.Score() != 0 {
		t.Errorf("score after reset = %d", k.Score())
	}
	if k.HighScore() != 10 {
		t.Errorf("high score lost on reset: %d", k.HighScore())
	}
	if k.Beat() {
		t.Error("fresh run has not beaten anything yet")
	}

	// The new run must beat the carried-over high score to persist again.
	for i := 0; i < 10; i++ {
		k.RecordDodge(1)
	}
	k.PersistIfBeaten()
	if len(store.saves) != 1 {
		t.Errorf("tie after reset wrote to store: %v", store.saves)
	}
	k.ResetRun()
	for i := 0; i < 11; i++ {
		k.RecordDodge(1)
	}
	k.PersistIfBeaten()
	if len(store.saves) != 2 || store.saves[1] != 11 {
		t.Errorf("saves = %v, want [10 11]", store.saves)
	}
}

func TestScoreKeeperSaveErrorIsSwallowed(t *testing.T) {
	store := &spyStore{value: 0, saveErr: errors.New("disk full")}
	k := NewScoreKeeper(store, discardLogger())
	k.RecordDodge(1)
	k.PersistIfBeaten() // must not panic or retry
	if len(store.saves) != 1 {
		t.Errorf("saves = %v, want one attempt", store.saves)
	}
}

func TestScoreKeeperMilestones(t *testing.T) {
	store := &spyStore{}
	k := NewScoreKeeper(store, discardLogger())
	var hit []int
	for i := 0; i < 30; i++ {
		if m := k.RecordDodge(1); m != 0 {
			hit = append(hit, m)
		}
	}
	if len(hit) != 2 || hit[0] != 10 || hit[1] != 25 {
		t.Errorf("milestones = %v, want [10 25]", hit)
	}
}
