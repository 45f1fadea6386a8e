package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - run left
	ActionRight          // D, Right arrow - run right
	ActionJump           // W, Up arrow, Space - jump when landing on a floor
	ActionGlide          // Shift, G - hold to float without gravity
	ActionUp             // menu navigation
	ActionDown           // menu navigation
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart after the campaign ends
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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
	case ActionGlide:
		return "Glide"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
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

// Intent is the boolean snapshot of control input for one simulation step.
// It is passed by value so a step never observes input changing halfway.
type Intent struct {
	Left  bool
	Right bool
	Up    bool
	Shift bool
}

// IntentSource produces the current intent without blocking.
// InputFrame is the one the game adapter reads each tick.
type IntentSource interface {
	Intent() Intent
}

// InputFrame represents the input state during one simulation tick.
// Movement actions are "held" for the whole tick; the rest are one-shot.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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

// Intent converts the movement actions of this frame into an Intent snapshot.
func (f InputFrame) Intent() Intent {
	return Intent{
		Left:  f.Has(ActionLeft),
		Right: f.Has(ActionRight),
		Up:    f.Has(ActionJump),
		Shift: f.Has(ActionGlide),
	}
}

// Intent implements IntentSource so a frame can stand in for live input.
var _ IntentSource = InputFrame{}
