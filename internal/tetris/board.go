package tetris

import "strings"

// Board dimensions. They are fixed for the lifetime of a game.
const (
	Width  = 10
	Height = 20
)

// Board is the playfield grid indexed [row][column]. A cell holds the kind of the
// piece that filled it, or KindNone when empty.
// Board is a value type: assignment copies the whole grid.
type Board [Height][Width]Kind

// Cell returns the content at (x, y), or KindNone outside the grid.
func (b *Board) Cell(x, y int) Kind {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return KindNone
	}
	return b[y][x]
}

// IsValid reports whether shape can occupy the board with its anchor at pos.
// Columns must stay within [0, Width) and rows below Height. Rows above the board
// (negative y) are always passable; only on-board rows are checked for overlap.
func IsValid(b *Board, shape Shape, pos Position) bool {
	for y := range shape {
		for x := range shape[y] {
			if !shape[y][x] {
				continue
			}
			bx, by := pos.X+x, pos.Y+y
			if bx < 0 || bx >= Width || by >= Height {
				return false
			}
			if by >= 0 && b[by][bx] != KindNone {
				return false
			}
		}
	}
	return true
}

// Fits reports whether the piece is valid at its own position.
func (b *Board) Fits(p Piece) bool {
	return IsValid(b, p.Shape, p.Pos)
}

// Place returns a copy of the board with the piece stamped in.
// Cells still above the visible board are dropped.
func (b Board) Place(p Piece) Board {
	for _, c := range p.Shape.Cells() {
		bx, by := p.Pos.X+c.X, p.Pos.Y+c.Y
		if by < 0 || by >= Height || bx < 0 || bx >= Width {
			continue
		}
		b[by][bx] = p.Kind
	}
	return b
}

// RowFull reports whether every cell of row y is occupied.
func (b *Board) RowFull(y int) bool {
	for x := range Width {
		if b[y][x] == KindNone {
			return false
		}
	}
	return true
}

// FullRows returns the indices of full rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for y := range Height {
		if b.RowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearLines removes every full row and returns the compacted board together with
// the removed row indices (top to bottom). Surviving rows keep their order and the
// same number of empty rows is inserted at the top.
func (b Board) ClearLines() (Board, []int) {
	full := b.FullRows()
	if len(full) == 0 {
		return b, nil
	}

	var out Board
	write := Height - 1
	for y := Height - 1; y >= 0; y-- {
		if b.RowFull(y) {
			continue
		}
		out[write] = b[y]
		write--
	}
	return out, full
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for y := range Height {
		for x := range Width {
			if b[y][x] != KindNone {
				n++
			}
		}
	}
	return n
}

// String renders the board as rows of piece letters, with '.' for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for y := range Height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range Width {
			sb.WriteString(b[y][x].String())
		}
	}
	return sb.String()
}

// ParseBoard builds a board from up to Height rows of piece letters, aligned to the
// bottom of the grid. Any character that is not a piece letter is empty.
func ParseBoard(rows ...string) Board {
	var b Board
	offset := Height - len(rows)
	for i, row := range rows {
		y := offset + i
		if y < 0 {
			continue
		}
		for x, c := range row {
			if x >= Width {
				break
			}
			b[y][x] = kindFromRune(c)
		}
	}
	return b
}

func kindFromRune(r rune) Kind {
	for _, k := range Kinds {
		if k.String() == string(r) {
			return k
		}
	}
	return KindNone
}
