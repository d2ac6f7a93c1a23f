package core

// Action represents a semantic action, abstracted from physical key presses.
// Key bindings resolve to actions; the platform turns game actions into engine intents.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow - shift piece left
	ActionMoveRight        // Right arrow - shift piece right
	ActionSoftDrop         // Down arrow - move piece one row down
	ActionRotate           // Up arrow - rotate clockwise
	ActionHardDrop         // Space - drop and lock
	ActionPause            // P - pause/unpause game
	ActionRestart          // R - discard the game and start over
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionScreenshot       // Ctrl+S - dump the screen to a file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
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
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// IsGameplay reports whether the action affects the simulation rather than the shell around it.
func (a Action) IsGameplay() bool {
	switch a {
	case ActionMoveLeft, ActionMoveRight, ActionSoftDrop, ActionRotate,
		ActionHardDrop, ActionPause, ActionRestart:
		return true
	}
	return false
}
