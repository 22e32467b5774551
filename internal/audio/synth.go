package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Synth is the speaker-backed Player. All sounds are synthesized streamers
// fed into one mixer; the engine hum is a looping streamer with a pause
// control.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	engine      *beep.Ctrl
	initialized bool
}

// NewSynth creates an uninitialized synthesizer. Call Initialize before use;
// on failure fall back to Null.
func NewSynth() *Synth {
	return &Synth{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (s *Synth) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Cleanup silences everything. The speaker itself has no close; clearing
// the mixer is enough to stop output.
func (s *Synth) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	if s.engine != nil {
		s.engine.Paused = true
	}
	s.mixer.Clear()
	s.initialized = false
}

// Play fires a one-shot effect.
func (s *Synth) Play(sound Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}

	var st beep.Streamer
	switch sound {
	case SoundMenuMove:
		st = take(40*time.Millisecond, newTone(660, 0.12))
	case SoundMenuSelect:
		st = take(90*time.Millisecond, newTone(880, 0.15))
	case SoundIgnition:
		st = take(500*time.Millisecond, newIgnition())
	case SoundCountdownBeep:
		st = take(150*time.Millisecond, newTone(440, 0.2))
	case SoundCountdownGo:
		st = take(400*time.Millisecond, newTone(880, 0.25))
	case SoundMilestone:
		st = take(300*time.Millisecond, newChime())
	case SoundPickup:
		st = take(120*time.Millisecond, newTone(1320, 0.15))
	case SoundCrash:
		st = take(600*time.Millisecond, newCrash())
	default:
		return
	}
	s.mixer.Add(st)
}

// StartEngine begins the looping engine hum, restarting it if needed.
func (s *Synth) StartEngine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	if s.engine != nil {
		s.engine.Paused = false
		return
	}
	// The hum generator never ends, so it needs no looping wrapper.
	s.engine = &beep.Ctrl{Streamer: newEngineHum()}
	s.mixer.Add(s.engine)
}

// PauseEngine mutes the hum without losing its position.
func (s *Synth) PauseEngine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine != nil {
		s.engine.Paused = true
	}
}

// ResumeEngine unmutes the hum.
func (s *Synth) ResumeEngine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine != nil {
		s.engine.Paused = false
	}
}

// StopEngine silences the hum until the next StartEngine.
func (s *Synth) StopEngine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine != nil {
		s.engine.Paused = true
	}
}

func take(d time.Duration, st beep.Streamer) beep.Streamer {
	return beep.Take(sampleRate.N(d), st)
}

// toneGenerator produces a sine tone with a short attack envelope and an
// exponential tail so beeps never click.
type toneGenerator struct {
	freq float64
	amp  float64
	pos  int
}

func newTone(freq, amp float64) *toneGenerator {
	return &toneGenerator{freq: freq, amp: amp}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		attack := math.Min(t/0.01, 1.0)
		decay := math.Exp(-t * 6)
		sample := g.amp * attack * decay * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error { return nil }

// ignitionGenerator sweeps a low rumble upward, like a starter motor
// catching.
type ignitionGenerator struct {
	pos int
}

func newIgnition() *ignitionGenerator { return &ignitionGenerator{} }

func (g *ignitionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		freq := 50 + 180*math.Min(t/0.4, 1.0)
		wobble := 1 + 0.1*math.Sin(2*math.Pi*25*t)
		sample := 0.25 * math.Sin(2*math.Pi*freq*wobble*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ignitionGenerator) Err() error { return nil }

// chimeGenerator plays a quick two-note rising arpeggio.
type chimeGenerator struct {
	pos int
}

func newChime() *chimeGenerator { return &chimeGenerator{} }

func (g *chimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	half := sampleRate.N(150 * time.Millisecond)
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		freq := 784.0 // G5
		if g.pos >= half {
			freq = 1047.0 // C6
		}
		decay := math.Exp(-math.Mod(t, 0.15) * 10)
		sample := 0.2 * decay * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *chimeGenerator) Err() error { return nil }

// crashGenerator mixes filtered noise with a falling rumble.
type crashGenerator struct {
	pos  int
	seed int64
}

func newCrash() *crashGenerator {
	return &crashGenerator{seed: time.Now().UnixNano()}
}

func (g *crashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		envelope := math.Exp(-t * 5)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.35 * math.Sin(2*math.Pi*(90-60*math.Min(t/0.5, 1.0))*t)
		sample := envelope * (0.3*noise + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *crashGenerator) Err() error { return nil }

// engineHumGenerator loops a low two-oscillator drone with a slow throb.
type engineHumGenerator struct {
	pos     int
	samples int
}

func newEngineHum() *engineHumGenerator {
	return &engineHumGenerator{samples: sampleRate.N(2 * time.Second)}
}

func (g *engineHumGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(sampleRate)
		cyclePos := float64(g.pos%g.samples) / float64(g.samples)
		throb := 0.7 + 0.3*math.Sin(cyclePos*2*math.Pi)
		sample := throb * (0.08*math.Sin(2*math.Pi*70*t) + 0.05*math.Sin(2*math.Pi*141*t))
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *engineHumGenerator) Err() error { return nil }
