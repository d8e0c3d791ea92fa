package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Move cursor up
	ActionDown             // Move cursor down
	ActionLeft             // Move cursor left
	ActionRight            // Move cursor right
	ActionConfirm          // Place ship or fire
	ActionRotate           // Toggle placement orientation
	ActionCycle            // Select next unplaced ship
	ActionAutoPlace        // Place remaining ships at random
	ActionClear            // Remove all placed ships
	ActionBack             // Return to menu
	ActionRestart          // Start a new match
	ActionQuit             // Exit session
	ActionPause            // Pause/unpause
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
	case ActionConfirm:
		return "Confirm"
	case ActionRotate:
		return "Rotate"
	case ActionCycle:
		return "Cycle"
	case ActionAutoPlace:
		return "AutoPlace"
	case ActionClear:
		return "Clear"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one simulation tick.
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
