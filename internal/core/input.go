package core

// Action represents a semantic game intent, abstracted from physical key
// presses. The platform maps keys to actions; the game only sees actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - swim up (also menu cursor up)
	ActionDown           // S, Down arrow - swim down (also menu cursor down)
	ActionLeft           // A, Left arrow - swim left
	ActionRight          // D, Right arrow - swim right
	ActionFire           // Space - shoot a bubble
	ActionConfirm        // Enter - confirm menu selection
	ActionBack           // Esc, B - back to menu
	ActionQuit           // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the set of actions active during one simulation tick.
// Actions are independent booleans; opposite movement intents are both
// applied and cancel by net displacement.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the given action is active this frame.
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
