package tetris

// Intent is a discrete request applied to the game state.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentSoftDrop
	IntentRotate
	IntentHardDrop
	IntentTogglePause
	IntentReset
	IntentTick // Gravity, delivered by the clock adapter
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveLeft:
		return "MoveLeft"
	case IntentMoveRight:
		return "MoveRight"
	case IntentSoftDrop:
		return "SoftDrop"
	case IntentRotate:
		return "Rotate"
	case IntentHardDrop:
		return "HardDrop"
	case IntentTogglePause:
		return "TogglePause"
	case IntentReset:
		return "Reset"
	case IntentTick:
		return "Tick"
	default:
		return "Unknown"
	}
}

// Apply returns the state that results from applying in to s.
// The picker is consulted only when a new piece is needed.
func Apply(s State, in Intent, p Picker) State {
	switch in {
	case IntentMoveLeft:
		return Move(s, -1, 0)
	case IntentMoveRight:
		return Move(s, 1, 0)
	case IntentSoftDrop:
		return Move(s, 0, 1)
	case IntentRotate:
		return RotateActive(s)
	case IntentHardDrop:
		return HardDrop(s, p)
	case IntentTogglePause:
		return TogglePause(s)
	case IntentReset:
		return NewState(p)
	case IntentTick:
		return Tick(s, p)
	default:
		return s
	}
}
