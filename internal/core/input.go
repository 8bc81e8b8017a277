package core

// Action represents a semantic game action, abstracted from physical key presses.
// Direction actions mean "held during this frame"; the others are one-shot
// key events that happened since the previous frame.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // W, Up arrow held
	ActionDown                // S, Down arrow held
	ActionLeft                // A, Left arrow held
	ActionRight               // D, Right arrow held
	ActionAnyKey              // Some key went down this frame
	ActionAutoMode            // Z released - enable auto mode
	ActionHideAutoHint        // U released - hide the auto mode banner
	ActionQuit                // Esc, Q, Ctrl+C - exit game/session
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
	case ActionAnyKey:
		return "AnyKey"
	case ActionAutoMode:
		return "AutoMode"
	case ActionHideAutoHint:
		return "HideAutoHint"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one frame.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
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

// Has returns true if the given action is active this frame.
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
