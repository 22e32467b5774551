package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/roadrush/roadrush/internal/config"
	"github.com/roadrush/roadrush/internal/core"
	"github.com/roadrush/roadrush/internal/race"
	"github.com/roadrush/roadrush/internal/storage"
)

func newTestMachine(t *testing.T) *race.Machine {
	t.Helper()
	cfg := config.DefaultConfig()
	store, err := storage.NewFileStore(t.TempDir() + "/highscore")
	if err != nil {
		t.Fatal(err)
	}
	return race.NewMachine(&cfg, store,
		race.WithRand(rand.New(rand.NewSource(1))))
}

func confirm() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	return in
}

func TestDrawIntro(t *testing.T) {
	cfg := config.DefaultConfig()
	m := newTestMachine(t)
	s := core.NewScreen(80, 24)

	NewRenderer(&cfg).Draw(s, m)
	out := s.String()
	if !strings.Contains(out, "press ENTER to start") {
		t.Error("intro screen missing start prompt")
	}
}

func TestDrawDifficultySelect(t *testing.T) {
	cfg := config.DefaultConfig()
	m := newTestMachine(t)
	m.Step(confirm())

	s := core.NewScreen(80, 24)
	NewRenderer(&cfg).Draw(s, m)
	out := s.String()
	for _, name := range []string{"easy", "normal", "hard"} {
		if !strings.Contains(out, name) {
			t.Errorf("difficulty menu missing %q", name)
		}
	}
	if !strings.Contains(out, "> normal") {
		t.Error("cursor should start on the default difficulty")
	}
}

func TestDrawPlaying(t *testing.T) {
	cfg := config.DefaultConfig()

	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store, _ := storage.NewFileStore(t.TempDir() + "/highscore")
	m := race.NewMachine(&cfg, store,
		race.WithRand(rand.New(rand.NewSource(1))),
		race.WithClock(func() time.Time { return clock }))

	m.Step(confirm())
	m.Step(confirm())
	// Drive through the countdown.
	for i := 0; i < 10 && m.State() == race.StateCountdown; i++ {
		clock = clock.Add(time.Second)
		m.Step(core.NewInputFrame())
	}
	if m.State() != race.StatePlaying {
		t.Fatalf("state = %v, want playing", m.State())
	}
	m.Step(core.NewInputFrame())

	s := core.NewScreen(80, 24)
	NewRenderer(&cfg).Draw(s, m)
	out := s.String()
	if !strings.Contains(out, "Dodged: 0") {
		t.Error("HUD missing dodge counter")
	}
	if !strings.Contains(out, "km/h") {
		t.Error("HUD missing speed readout")
	}
	if !strings.ContainsRune(out, carBody) {
		t.Error("no car drawn on the road")
	}
	if !strings.ContainsRune(out, roadEdge) {
		t.Error("road edges not drawn")
	}
}

func TestDrawFitsSmallScreen(t *testing.T) {
	cfg := config.DefaultConfig()
	m := newTestMachine(t)
	// Tiny terminal must not panic, just clip.
	s := core.NewScreen(20, 6)
	NewRenderer(&cfg).Draw(s, m)
	m.Step(confirm())
	NewRenderer(&cfg).Draw(s, m)
}

func TestRenderScreenPlainContent(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "hello", core.ColorRed)
	out := RenderScreen(s)
	if !strings.Contains(out, "hello") {
		t.Errorf("rendered output missing text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 1 newline for 2 rows, got %d", strings.Count(out, "\n"))
	}
}
