package tetris

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

func TestIsValid(t *testing.T) {
	board := ParseBoard(
		"..........",
		"....J.....",
	)
	vertical := Rotate(Template(KindI)).Shape // 1 wide, 4 tall
	square := Template(KindO).Shape

	tests := []struct {
		name     string
		shape    Shape
		pos      Position
		expected bool
	}{
		{"inside empty area", square, Position{0, 0}, true},
		{"left wall", square, Position{-1, 0}, false},
		{"right wall", square, Position{Width - 1, 0}, false},
		{"touching right wall", square, Position{Width - 2, 0}, true},
		{"resting on floor", square, Position{0, Height - 2}, true},
		{"below floor", square, Position{0, Height - 1}, false},
		{"overlapping occupied cell", square, Position{3, Height - 2}, false},
		{"next to occupied cell", square, Position{5, Height - 2}, true},
		{"above the board", vertical, Position{0, -4}, true},
		{"partially above the board", vertical, Position{0, -2}, true},
		{"above the board but outside columns", vertical, Position{-1, -4}, false},
		{"far above an occupied column", vertical, Position{4, -10}, true},
		{"reaching into occupied column", vertical, Position{4, Height - 4}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := IsValid(&board, tc.shape, tc.pos)
			if result != tc.expected {
				t.Errorf("IsValid(%v) = %v, want %v", tc.pos, result, tc.expected)
			}
		})
	}
}

func TestIsValidIgnoresEmptyShapeCells(t *testing.T) {
	// T has an empty top-left cell; it may overlap an occupied cell.
	var board Board
	board[0][0] = KindZ

	tpiece := Template(KindT)
	if !IsValid(&board, tpiece.Shape, Position{0, 0}) {
		t.Error("empty shape cells should not collide with the board")
	}
	if IsValid(&board, tpiece.Shape, Position{-1, -1}) {
		t.Error("occupied shape cell outside the left wall should be invalid")
	}
}

func TestPlaceDropsCellsAboveBoard(t *testing.T) {
	var board Board
	piece := Rotate(Template(KindI)) // vertical
	piece.Pos = Position{X: 2, Y: -2}

	placed := board.Place(piece)

	if placed.Filled() != 2 {
		t.Errorf("Filled() = %d, want 2 (rows -2 and -1 dropped)", placed.Filled())
	}
	if placed[0][2] != KindI || placed[1][2] != KindI {
		t.Error("visible cells should be stamped with the piece kind")
	}
	if board.Filled() != 0 {
		t.Error("Place must not modify the original board")
	}
}

func TestClearLinesPreservesOrder(t *testing.T) {
	board := ParseBoard(
		"T.........",
		"IIIIIIIIII",
		"..S.S.....",
		"ZZZZZZZZZZ",
		"JJJJJJJJJ.",
	)

	cleared, rows := board.ClearLines()

	if len(rows) != 2 || rows[0] != Height-4 || rows[1] != Height-2 {
		t.Fatalf("ClearLines() rows = %v, want [%d %d]", rows, Height-4, Height-2)
	}

	want := ParseBoard(
		"..........",
		"..........",
		"T.........",
		"..S.S.....",
		"JJJJJJJJJ.",
	)
	if cleared != want {
		t.Errorf("ClearLines() board =\n%s\nwant\n%s", cleared, want)
	}

	if len(cleared) != Height {
		t.Errorf("board height = %d, want %d", len(cleared), Height)
	}
}

func TestClearLinesNoFullRows(t *testing.T) {
	board := ParseBoard("JJJJJJJJJ.")
	cleared, rows := board.ClearLines()
	if rows != nil {
		t.Errorf("rows = %v, want none", rows)
	}
	if cleared != board {
		t.Error("board without full rows should be returned unchanged")
	}
}

func TestClearLinesFourRows(t *testing.T) {
	board := ParseBoard(
		"...O......",
		"IIIIIIIIII",
		"IIIIIIIIII",
		"IIIIIIIIII",
		"IIIIIIIIII",
	)
	cleared, rows := board.ClearLines()
	if len(rows) != 4 {
		t.Fatalf("cleared %d rows, want 4", len(rows))
	}
	if cleared.Filled() != 1 || cleared[Height-1][3] != KindO {
		t.Errorf("surviving cell should fall to the floor, got\n%s", cleared)
	}
}

func TestBoardStringGolden(t *testing.T) {
	board := ParseBoard(
		"T.........",
		"IIIIIIIIII",
		"..S.S.....",
		"ZZZZZZZZZZ",
	)
	cleared, _ := board.ClearLines()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "clear_two_rows", []byte(cleared.String()))
}
