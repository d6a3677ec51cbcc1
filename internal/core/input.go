package core

// Action represents a semantic game action, abstracted from physical key presses
// and remote controller events.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, Left arrow - move left (held)
	ActionRight            // D, Right arrow - move right (held)
	ActionJump             // Space, W, Up - jump (single-shot)
	ActionStart            // Enter, Space before the first start
	ActionPause            // P, Escape - toggle pause
	ActionPauseOnly        // remote pause signal, never resumes
	ActionResume           // remote resume signal
	ActionRestart          // R key - restart the session
	ActionQuit             // Q, Ctrl+C - exit game/session
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
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionPauseOnly:
		return "PauseOnly"
	case ActionResume:
		return "Resume"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state handed to one simulation tick.
//
// Actions holds edge-triggered actions raised since the previous tick and is
// cleared after every tick. Held holds level-triggered actions (movement
// directions) that stay set until explicitly released.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
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

// Press marks a level-triggered action as held.
func (f *InputFrame) Press(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Release clears a held action. Releasing an action that is not held is a no-op.
func (f *InputFrame) Release(a Action) {
	delete(f.Held, a)
}

// IsHeld returns true if the action is currently held.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets the edge-triggered actions for the next frame.
// Held actions survive.
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
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
