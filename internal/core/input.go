package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionThrust             // W, Up arrow - main engine
	ActionRotateLeft         // A, Left arrow
	ActionRotateRight        // D, Right arrow
	ActionFire               // Space
	ActionPause              // P, Escape
	ActionRestart            // R - restart after game over
	ActionDebug              // F1 / ` - toggle collider overlay
	ActionQuit               // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrust:
		return "Thrust"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionDebug:
		return "Debug"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputEvent is a discrete press or release of an action.
type InputEvent struct {
	Action  Action
	Pressed bool
}

// InputFrame holds the input events collected during one simulation tick,
// in arrival order.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Events: make([]InputEvent, 0, 4)}
}

// Press records a press of the given action.
func (f *InputFrame) Press(a Action) {
	f.Events = append(f.Events, InputEvent{Action: a, Pressed: true})
}

// Release records a release of the given action.
func (f *InputFrame) Release(a Action) {
	f.Events = append(f.Events, InputEvent{Action: a, Pressed: false})
}

// Set is shorthand for Press, used for one-shot actions like pause.
func (f *InputFrame) Set(a Action) {
	f.Press(a)
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	for _, ev := range f.Events {
		if ev.Action == a && ev.Pressed {
			return true
		}
	}
	return false
}

// Clear resets all events for the next frame.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Events: make([]InputEvent, len(f.Events))}
	copy(clone.Events, f.Events)
	return clone
}
