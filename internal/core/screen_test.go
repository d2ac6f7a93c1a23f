package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	if got := s.String(); got != strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", 12)+"\n", 4), "\n") {
		t.Errorf("new screen is not blank: %q", got)
	}
	if s.Bounds() != NewRect(0, 0, 12, 4) {
		t.Errorf("Bounds() = %+v", s.Bounds())
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, 5)
	if s.Width() != 0 || s.String() != "\n\n\n\n" {
		t.Errorf("negative width: %dx%d %q", s.Width(), s.Height(), s.String())
	}
}

func TestScreenPutAt(t *testing.T) {
	s := NewScreen(5, 5)

	s.Put(2, 3, '█', ColorCyan)
	if got := s.At(2, 3); got != (Cell{Rune: '█', Color: ColorCyan}) {
		t.Errorf("At(2, 3) = %+v", got)
	}

	// Clipped
	s.Put(-1, 0, 'A', ColorRed)
	s.Put(5, 0, 'A', ColorRed)
	s.Put(0, 5, 'A', ColorRed)
	if strings.Contains(s.String(), "A") {
		t.Error("out of bounds Put wrote into the buffer")
	}
	if s.At(9, 9) != blank {
		t.Error("out of bounds At should be blank")
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name    string
		x       int
		text    string
		row     string
		nextCol int
	}{
		{"start", 0, "SCORE", "SCORE     ", 5},
		{"clipped right", 7, "LINES", "       LIN", 12},
		{"clipped left", -2, "LEVEL", "VEL       ", 3},
		{"block glyphs", 1, "██░░", " ██░░     ", 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			next := s.Text(tc.x, 0, tc.text, ColorGray)
			if got := s.Row(0); got != tc.row {
				t.Errorf("Row(0) = %q, want %q", got, tc.row)
			}
			if next != tc.nextCol {
				t.Errorf("Text() = %d, want %d", next, tc.nextCol)
			}
		})
	}
}

func TestScreenCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.Centered(0, "PAUSE", ColorBrightYellow)

	if got := s.Row(0); got != "   PAUSE   " {
		t.Errorf("Row(0) = %q", got)
	}
	if s.At(3, 0).Color != ColorBrightYellow {
		t.Errorf("color = %v, want bright", s.At(3, 0).Color)
	}
}

func TestScreenFrame(t *testing.T) {
	s := NewScreen(5, 4)
	s.Frame(s.Bounds(), ColorGray)

	expected := "┌───┐\n│   │\n│   │\n└───┘"
	if got := s.String(); got != expected {
		t.Errorf("Frame() =\n%s\nwant\n%s", got, expected)
	}
	if s.At(0, 0).Color != ColorGray {
		t.Error("frame should use the given color")
	}

	tiny := NewScreen(3, 3)
	tiny.Frame(NewRect(0, 0, 1, 3), ColorGray)
	if strings.TrimSpace(tiny.String()) != "" {
		t.Error("frames narrower than 2 cells are not drawn")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(6, 3)
	s.Text(0, 1, "xxxxxx", ColorRed)
	s.FillRect(NewRect(1, 0, 3, 2), '#')

	expected := " ###  \nx###xx\n      "
	if got := s.String(); got != expected {
		t.Errorf("FillRect() =\n%s\nwant\n%s", got, expected)
	}
	if s.At(2, 1).Color != ColorDefault {
		t.Error("filled cells lose their color")
	}
}

func TestScreenClearAndResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.Text(0, 0, "abcd", ColorDefault)

	s.Clear()
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Clear() left content behind")
	}

	s.Text(0, 0, "abcd", ColorDefault)
	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Resize() should blank the buffer")
	}

	s.Resize(8, 8)
	s.Put(7, 7, 'z', ColorDefault)
	if s.At(7, 7).Rune != 'z' {
		t.Error("grown buffer is not addressable")
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(4); got != "   " {
		t.Errorf("Row(4) = %q, want blank", got)
	}
}
