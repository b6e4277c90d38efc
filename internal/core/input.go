package core

// Action is a semantic game action, abstracted from physical key presses.
// Actions are edge-triggered: the platform sets one per key press, never
// per frame held, so a jump fires exactly once per press.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - upward impulse
	ActionPause          // P, Esc - toggle pause
	ActionRestart        // R - force a session restart
	ActionConfirm        // Enter - confirm in UI screens
	ActionBack           // B, Esc - leave UI screens
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
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

// InputFrame is the set of actions triggered during one simulation tick.
// The platform fills it from key events and clears it after the tick, which
// is what keeps every action edge-triggered from the game's point of view.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
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
