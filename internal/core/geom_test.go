package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)

	if r.Right() != 12 {
		t.Errorf("Right() = %d, want 12", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, want 8", r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name     string
		rect     Rect
		n        int
		expected Rect
	}{
		{"frame interior", NewRect(0, 0, 22, 22), 1, NewRect(1, 1, 20, 20)},
		{"zero", NewRect(4, 4, 3, 3), 0, NewRect(4, 4, 3, 3)},
		{"collapses", NewRect(0, 0, 3, 1), 2, NewRect(2, 2, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rect.Inset(tc.n); got != tc.expected {
				t.Errorf("Inset(%d) = %+v, want %+v", tc.n, got, tc.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	screen := NewRect(0, 0, 80, 24)

	got := screen.Centered(36, 22)
	if got != NewRect(22, 1, 36, 22) {
		t.Errorf("Centered() = %+v, want {22 1 36 22}", got)
	}

	inner := NewRect(10, 10, 20, 20).Centered(4, 2)
	if inner.X != 18 || inner.Y != 19 {
		t.Errorf("Centered() origin = (%d, %d), want (18, 19)", inner.X, inner.Y)
	}
}
