package tetris

import "github.com/vovakirdan/blockfall/internal/core"

// Kind identifies a tetromino. The zero value marks an empty board cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists the seven playable pieces in catalog order.
var Kinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// String returns the single-letter piece name, or "." for an empty cell.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "."
	}
}

// Color returns the display color of the piece.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorCyan
	case KindO:
		return core.ColorYellow
	case KindT:
		return core.ColorPurple
	case KindS:
		return core.ColorGreen
	case KindZ:
		return core.ColorRed
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// Shape is a piece occupancy matrix indexed [row][column].
// Shapes are never modified after construction; rotation builds a new matrix.
type Shape [][]bool

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Equal reports whether two shapes have identical dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Cells returns the offsets of occupied cells, row by row.
func (s Shape) Cells() []Position {
	var cells []Position
	for y := range s {
		for x := range s[y] {
			if s[y][x] {
				cells = append(cells, Position{X: x, Y: y})
			}
		}
	}
	return cells
}

// clone returns a deep copy so callers never alias a catalog template.
func (s Shape) clone() Shape {
	out := make(Shape, len(s))
	for y := range s {
		out[y] = append([]bool(nil), s[y]...)
	}
	return out
}

// shapeOf builds a shape from rows of '#' (filled) and '.' (empty).
func shapeOf(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, c := range row {
			s[y][x] = c == '#'
		}
	}
	return s
}

// templates holds the spawn orientation of each piece.
var templates = map[Kind]Shape{
	KindI: shapeOf("####"),
	KindO: shapeOf("##", "##"),
	KindT: shapeOf(".#.", "###"),
	KindS: shapeOf(".##", "##."),
	KindZ: shapeOf("##.", ".##"),
	KindJ: shapeOf("#..", "###"),
	KindL: shapeOf("..#", "###"),
}

// Position is a board coordinate. Y grows downwards and may be negative above the board.
type Position struct {
	X, Y int
}

// Add returns the position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Piece is a tetromino in a given rotation, anchored by its top-left corner.
type Piece struct {
	Kind  Kind
	Shape Shape
	Pos   Position
}

// Color returns the display color of the piece.
func (p Piece) Color() core.Color {
	return p.Kind.Color()
}

// Moved returns a copy of the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Pos = p.Pos.Add(dx, dy)
	return p
}

// Template returns the catalog piece of kind k at its spawn position.
// Unknown kinds yield an empty piece.
func Template(k Kind) Piece {
	shape, ok := templates[k]
	if !ok {
		return Piece{}
	}
	shape = shape.clone()
	return Piece{Kind: k, Shape: shape, Pos: SpawnPosition(shape)}
}

// SpawnPosition returns the horizontally centered anchor on the top row for a shape.
func SpawnPosition(s Shape) Position {
	return Position{X: Width/2 - s.Width()/2, Y: 0}
}

// Spawn returns p moved to the spawn position of its current shape.
func Spawn(p Piece) Piece {
	p.Pos = SpawnPosition(p.Shape)
	return p
}

// Rotate returns p turned 90 degrees clockwise in place: kind and anchor are kept.
// The result is only a candidate; callers must check it with IsValid.
func Rotate(p Piece) Piece {
	h, w := p.Shape.Height(), p.Shape.Width()
	rotated := make(Shape, w)
	for x := range w {
		rotated[x] = make([]bool, h)
	}
	for y := range h {
		for x := range w {
			rotated[x][h-1-y] = p.Shape[y][x]
		}
	}
	p.Shape = rotated
	return p
}
