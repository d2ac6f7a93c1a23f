package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
)

// palette maps screen colors to terminal colors. Piece colors follow the usual
// guideline hues where 256 colors allow it.
var palette = map[core.Color]lipgloss.TerminalColor{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
	core.ColorPurple:        lipgloss.Color("135"),
	core.ColorDim:           lipgloss.Color("238"),
}

// screenRenderer turns a core.Screen into styled terminal output for one
// lipgloss renderer. SSH sessions each get their own so color support is
// detected per client.
type screenRenderer struct {
	styles map[core.Color]lipgloss.Style
}

func newScreenRenderer(r *lipgloss.Renderer) screenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
	styles[core.ColorDefault] = r.NewStyle()
	for c, tc := range palette {
		styles[c] = r.NewStyle().Foreground(tc)
	}
	return screenRenderer{styles: styles}
}

// Render writes each row as runs of equally colored cells, one style per run.
func (sr screenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.At(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.At(x, y).Color == color; x++ {
				run.WriteRune(s.At(x, y).Rune)
			}
			sb.WriteString(sr.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

func (sr screenRenderer) style(c core.Color) lipgloss.Style {
	if st, ok := sr.styles[c]; ok {
		return st
	}
	return sr.styles[core.ColorDefault]
}
