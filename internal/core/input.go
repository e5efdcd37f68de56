package core

// Action represents a semantic host action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionPrimary           // Space, Up, W, Enter, left click - flap / start / restart
	ActionQuit              // Q, Ctrl+C - exit
	ActionMute              // M - toggle sound
	ActionScreenshot        // Ctrl+S - dump the current frame
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionQuit:
		return "Quit"
	case ActionMute:
		return "Mute"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// ActionEvent is a single primary-action press delivered to the game.
// Pointer events carry a position in playfield coordinates; keyboard
// events do not.
type ActionEvent struct {
	Pointer bool
	X, Y    float64
}

// PrimaryAction returns a keyboard-style event with no position.
func PrimaryAction() ActionEvent {
	return ActionEvent{}
}

// PointerAction returns an event for a click or tap at (x, y).
func PointerAction(x, y float64) ActionEvent {
	return ActionEvent{Pointer: true, X: x, Y: y}
}
