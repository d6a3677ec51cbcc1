package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case "up", "w", " ":
		return core.ActionJump, false
	case "enter":
		return core.ActionStart, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame routes a key into the frame and the hold tracker.
// Directions are held, everything else is a single-shot action.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, holds *HoldTracker) bool {
	action, isQuit := km.MapKey(msg)
	switch {
	case action == core.ActionNone:
	case isDirection(action):
		holds.KeyPress(action)
	default:
		frame.Set(action)
	}
	return isQuit
}

func isDirection(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight
}

func opposite(a core.Action) core.Action {
	if a == core.ActionLeft {
		return core.ActionRight
	}
	return core.ActionLeft
}

// HoldTracker turns key presses and remote press/release events into held
// directions.
//
// Terminals report key presses and auto-repeats but never releases, so a key
// direction stays held for a number of frames after its latest press.
// Pressing the opposite direction on the keyboard releases the other one at
// once. Remote directions are held until the remote releases them.
type HoldTracker struct {
	holdFrames int
	keys       map[core.Action]int
	remote     map[core.Action]bool
}

// NewHoldTracker creates a tracker that keeps a key direction held for
// holdFrames frames after its last press.
func NewHoldTracker(holdFrames int) *HoldTracker {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &HoldTracker{
		holdFrames: holdFrames,
		keys:       make(map[core.Action]int),
		remote:     make(map[core.Action]bool),
	}
}

// KeyPress records a keyboard press or auto-repeat of a direction.
func (h *HoldTracker) KeyPress(a core.Action) {
	if !isDirection(a) {
		return
	}
	h.keys[a] = h.holdFrames
	h.keys[opposite(a)] = 0
}

// Remote records an explicit press or release from the remote controller.
func (h *HoldTracker) Remote(a core.Action, pressed bool) {
	if !isDirection(a) {
		return
	}
	h.remote[a] = pressed
}

// Apply writes the held directions into frame and ages keyboard holds by one
// frame. Call it once per simulation tick, before the step.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if h.keys[a] > 0 || h.remote[a] {
			frame.Press(a)
		} else {
			frame.Release(a)
		}
		if h.keys[a] > 0 {
			h.keys[a]--
		}
	}
}

// Reset drops every held direction.
func (h *HoldTracker) Reset() {
	clear(h.keys)
	clear(h.remote)
}

// holdFramesFor returns how long a key direction stays held at the given
// tick rate. It has to bridge the terminal's initial key-repeat delay.
func holdFramesFor(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tickRate / 2
}
