package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

// Playfield layout. Each board cell is two terminal columns wide.
const (
	cellWidth    = 2
	boardBoxW    = tetris.Width*cellWidth + 2
	boardBoxH    = tetris.Height + 2
	sidebarGap   = 2
	sidebarW     = 14
	layoutWidth  = boardBoxW + sidebarGap + sidebarW
	layoutHeight = boardBoxH

	// MinScreenW and MinScreenH are the smallest terminal that fits the playfield.
	MinScreenW = layoutWidth
	MinScreenH = layoutHeight
)

var printer = message.NewPrinter(language.English)

// formatNumber renders n with thousands separators.
func formatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// HUD carries the values drawn next to the board that are not part of the game state.
type HUD struct {
	Best  int
	Ghost bool
}

// DrawGame renders a game snapshot onto the screen.
func DrawGame(s *core.Screen, st tetris.State, hud HUD) {
	s.Clear()

	if s.Width() < MinScreenW || s.Height() < MinScreenH {
		y := s.Height() / 2
		s.Centered(y-1, "Terminal too small", core.ColorDefault)
		s.Centered(y, formatSize(MinScreenW, MinScreenH), core.ColorGray)
		return
	}

	layout := s.Bounds().Centered(layoutWidth, layoutHeight)
	board := core.NewRect(layout.X, layout.Y, boardBoxW, boardBoxH)

	s.Frame(board, core.ColorGray)
	well := board.Inset(1)
	drawBoard(s, well.X, well.Y, st, hud.Ghost)
	drawSidebar(s, board.Right()+sidebarGap, board.Y, st, hud)

	switch {
	case st.GameOver:
		drawBanner(s, board, "GAME OVER", "r: restart")
	case st.Paused:
		drawBanner(s, board, "PAUSED", "p: resume")
	}
}

func formatSize(w, h int) string {
	return printer.Sprintf("need %dx%d", w, h)
}

// drawBoard draws locked cells, the ghost and the active piece with the board's
// top-left cell at (x, y).
func drawBoard(s *core.Screen, x, y int, st tetris.State, ghost bool) {
	for row := range tetris.Height {
		for col := range tetris.Width {
			k := st.Board[row][col]
			if k == tetris.KindNone {
				drawCell(s, x, y, col, row, " .", core.ColorDim)
				continue
			}
			drawCell(s, x, y, col, row, "██", k.Color())
		}
	}

	if st.Active == nil {
		return
	}
	if ghost {
		if g, ok := tetris.Ghost(st); ok {
			drawPiece(s, x, y, g, "░░", core.ColorDim)
		}
	}
	drawPiece(s, x, y, *st.Active, "██", st.Active.Color())
}

func drawPiece(s *core.Screen, x, y int, p tetris.Piece, glyph string, c core.Color) {
	for _, cell := range p.Shape.Cells() {
		col, row := p.Pos.X+cell.X, p.Pos.Y+cell.Y
		if row < 0 {
			continue
		}
		drawCell(s, x, y, col, row, glyph, c)
	}
}

func drawCell(s *core.Screen, x, y, col, row int, glyph string, c core.Color) {
	s.Text(x+col*cellWidth, y+row, glyph, c)
}

func drawSidebar(s *core.Screen, x, y int, st tetris.State, hud HUD) {
	preview := core.NewRect(x, y, sidebarW, 6)
	s.Frame(preview, core.ColorGray)
	s.Text(x+2, y, " NEXT ", core.ColorBrightWhite)

	next := st.Next
	px := x + (sidebarW-next.Shape.Width()*cellWidth)/2
	py := y + 1 + (4-next.Shape.Height())/2
	for _, cell := range next.Shape.Cells() {
		s.Text(px+cell.X*cellWidth, py+cell.Y, "██", next.Color())
	}

	stats := []struct {
		label string
		value int
	}{
		{"SCORE", st.Score},
		{"BEST", hud.Best},
		{"LEVEL", st.Level},
		{"LINES", st.Lines},
		{"PIECES", st.Pieces},
	}
	row := preview.Bottom() + 1
	for _, stat := range stats {
		s.Text(x+1, row, stat.label, core.ColorGray)
		s.Text(x+1, row+1, formatNumber(stat.value), core.ColorBrightWhite)
		row += 3
	}
}

// drawBanner draws a two-line message box over the middle of the board.
func drawBanner(s *core.Screen, board core.Rect, title, hint string) {
	box := board.Centered(board.W-4, 4)
	s.FillRect(box, ' ')
	s.Frame(box, core.ColorBrightWhite)
	centerIn(s, box, box.Y+1, title, core.ColorBrightYellow)
	centerIn(s, box, box.Y+2, hint, core.ColorGray)
}

func centerIn(s *core.Screen, r core.Rect, y int, text string, c core.Color) {
	s.Text(r.X+(r.W-len([]rune(text)))/2, y, text, c)
}
