package core

import "strings"

// Cell is one character position of the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a character buffer the game views draw into. The tui layer turns it
// into styled terminal output; tests read it back as plain text.
// Drawing outside the buffer is clipped silently.
type Screen struct {
	width  int
	height int
	cells  []Cell // row-major
}

// NewScreen creates a blank screen. Negative sizes are treated as 0.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in columns.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in rows.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the whole screen as a rectangle.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the dimensions and blanks the buffer. Views redraw every frame,
// so nothing is preserved.
func (s *Screen) Resize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	if n := s.width * s.height; cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]Cell, n)
	}
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Put sets one cell.
func (s *Screen) Put(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

// At returns the cell at (x, y), or a blank cell outside the screen.
func (s *Screen) At(x, y int) Cell {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y*s.width+x]
}

// Text writes text left to right from (x, y), one rune per column, and returns
// the column after the last rune.
func (s *Screen) Text(x, y int, text string, c Color) int {
	for _, r := range text {
		s.Put(x, y, r, c)
		x++
	}
	return x
}

// Centered writes text horizontally centered on row y.
func (s *Screen) Centered(y int, text string, c Color) {
	s.Text((s.width-len([]rune(text)))/2, y, text, c)
}

// FillRect sets every cell of r to ch with the default color.
func (s *Screen) FillRect(r Rect, ch rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Put(x, y, ch, ColorDefault)
		}
	}
}

// Frame draws a single-line box along the edge of r.
func (s *Screen) Frame(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	for x := r.X + 1; x < right; x++ {
		s.Put(x, r.Y, '─', c)
		s.Put(x, bottom, '─', c)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Put(r.X, y, '│', c)
		s.Put(right, y, '│', c)
	}
	s.Put(r.X, r.Y, '┌', c)
	s.Put(right, r.Y, '┐', c)
	s.Put(r.X, bottom, '└', c)
	s.Put(right, bottom, '┘', c)
}

// Row returns row y as plain text. Rows outside the screen are blank.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the whole screen as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
