// Package audio synthesizes the game's sound effects with oscillators.
// There are no sound assets; every effect is generated at play time.
package audio

// Sound identifies a one-shot sound effect.
type Sound int

const (
	SoundMenuMove Sound = iota
	SoundMenuSelect
	SoundIgnition
	SoundCountdownBeep
	SoundCountdownGo
	SoundMilestone
	SoundPickup
	SoundCrash
)

// Player is the audio surface the game drives. The engine hum is a looping
// track with pause semantics; everything else is fire-and-forget.
type Player interface {
	Play(s Sound)
	StartEngine()
	PauseEngine()
	ResumeEngine()
	StopEngine()
	Cleanup()
}

// Null is a Player that produces no sound. It is the default for tests,
// the SSH server, and terminals where audio cannot be initialized.
type Null struct{}

func (Null) Play(Sound)    {}
func (Null) StartEngine()  {}
func (Null) PauseEngine()  {}
func (Null) ResumeEngine() {}
func (Null) StopEngine()   {}
func (Null) Cleanup()      {}
