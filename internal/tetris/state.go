package tetris

// State is a complete snapshot of one game. Transitions never modify a State in
// place: each returns a new value, so a snapshot handed to a reader stays consistent.
type State struct {
	Board  Board
	Active *Piece // nil once the game is over
	Next   Piece

	Score int
	Level int
	Lines int

	GameOver bool
	Paused   bool

	Pieces    int // Pieces locked so far
	LastClear int // Rows cleared by the most recent lock
}

// NewState returns a fresh game: empty board, two independently picked pieces,
// zero counters and both flags cleared.
func NewState(p Picker) State {
	active := Template(p.Pick())
	return State{
		Active: &active,
		Next:   Template(p.Pick()),
	}
}

// Clone returns a copy that shares no mutable memory with s.
func (s State) Clone() State {
	if s.Active != nil {
		active := *s.Active
		s.Active = &active
	}
	return s
}

// Playable reports whether piece-affecting intents currently have any effect.
func (s State) Playable() bool {
	return s.Active != nil && !s.GameOver && !s.Paused
}

// Move shifts the active piece by (dx, dy). Invalid moves leave the state unchanged.
func Move(s State, dx, dy int) State {
	if !s.Playable() {
		return s
	}
	moved := s.Active.Moved(dx, dy)
	if !s.Board.Fits(moved) {
		return s
	}
	s.Active = &moved
	return s
}

// RotateActive turns the active piece clockwise if the result fits where it is.
// There is no kick search: the rotation succeeds in place or not at all.
func RotateActive(s State) State {
	if !s.Playable() {
		return s
	}
	rotated := Rotate(*s.Active)
	if !s.Board.Fits(rotated) {
		return s
	}
	s.Active = &rotated
	return s
}

// Tick applies one step of gravity: the piece falls one row, or locks in place
// when it cannot.
func Tick(s State, p Picker) State {
	if !s.Playable() {
		return s
	}
	below := s.Active.Moved(0, 1)
	if s.Board.Fits(below) {
		s.Active = &below
		return s
	}
	return lock(s, *s.Active, p)
}

// HardDrop lowers the active piece row by row until it rests, then locks it.
func HardDrop(s State, p Picker) State {
	if !s.Playable() {
		return s
	}
	return lock(s, landing(&s.Board, *s.Active), p)
}

// TogglePause flips the pause flag. It is inert once the game is over.
func TogglePause(s State) State {
	if s.GameOver {
		return s
	}
	s.Paused = !s.Paused
	return s
}

// DropDistance returns how many rows the active piece can fall before resting.
func DropDistance(s State) int {
	if s.Active == nil {
		return 0
	}
	return landing(&s.Board, *s.Active).Pos.Y - s.Active.Pos.Y
}

// Ghost returns the active piece at its landing position, for previews.
func Ghost(s State) (Piece, bool) {
	if !s.Playable() {
		return Piece{}, false
	}
	return landing(&s.Board, *s.Active), true
}

// IsGameOver reports whether a freshly spawned piece cannot occupy its spawn position.
func IsGameOver(b *Board, p Piece) bool {
	return !IsValid(b, p.Shape, SpawnPosition(p.Shape))
}

// landing probes one row at a time; the resting row is decided by the first
// collision on the way down.
func landing(b *Board, piece Piece) Piece {
	for {
		next := piece.Moved(0, 1)
		if !b.Fits(next) {
			return piece
		}
		piece = next
	}
}

// lock stamps piece onto the board, clears full rows, updates counters and spawns
// the next piece. The game ends when that piece has no room at its spawn position;
// it is then left as Next and no piece is active.
func lock(s State, piece Piece, p Picker) State {
	board, rows := s.Board.Place(piece).ClearLines()
	cleared := len(rows)

	s.Board = board
	s.Score += ScoreFor(cleared, s.Level)
	s.Lines += cleared
	s.Level = LevelFor(s.Lines)
	s.Pieces++
	s.LastClear = cleared

	spawned := Spawn(s.Next)
	if IsGameOver(&s.Board, spawned) {
		s.Active = nil
		s.GameOver = true
		return s
	}
	s.Active = &spawned
	s.Next = Template(p.Pick())
	return s
}
