package core

// Action represents a semantic game action, abstracted from physical key
// presses. The simulation works with high-level intents rather than raw keys;
// the platform layer owns the key bindings.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, A - steer left (held)
	ActionRight            // Right arrow, D - steer right (held)
	ActionUp               // Up arrow, W, K - menu navigation
	ActionDown             // Down arrow, S, J - menu navigation
	ActionConfirm          // Enter, Space - start game / select / play again
	ActionPause            // P - pause during play
	ActionResume           // P, Space - resume from pause
	ActionBack             // Esc, B - back out of a menu
	ActionQuit             // Q, Ctrl+C - quit the game
	ActionScores           // Tab - open scoreboard from crash screen
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionScores:
		return "Scores"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot for a single simulation tick. Terminals
// deliver key presses but no key-up events, so steering is expressed as
// "left/right seen this tick"; a tick with neither means the car coasts
// straight. Any action not consumed this tick is dropped, never queued.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
