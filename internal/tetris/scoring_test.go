package tetris

import (
	"testing"
	"time"
)

func TestScoreFor(t *testing.T) {
	tests := []struct {
		lines    int
		level    int
		expected int
	}{
		{0, 0, 0},
		{1, 0, 40},
		{2, 0, 100},
		{3, 0, 300},
		{4, 0, 1200},
		{1, 1, 80},
		{4, 2, 3600},
		{2, 9, 1000},
		{5, 0, 0},
		{-1, 0, 0},
	}

	for _, tc := range tests {
		result := ScoreFor(tc.lines, tc.level)
		if result != tc.expected {
			t.Errorf("ScoreFor(%d, %d) = %d, want %d", tc.lines, tc.level, result, tc.expected)
		}
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		lines    int
		expected int
	}{
		{0, 0},
		{9, 0},
		{10, 1},
		{19, 1},
		{25, 2},
		{200, 20},
	}

	for _, tc := range tests {
		if result := LevelFor(tc.lines); result != tc.expected {
			t.Errorf("LevelFor(%d) = %d, want %d", tc.lines, result, tc.expected)
		}
	}
}

func TestDropInterval(t *testing.T) {
	tests := []struct {
		level    int
		expected time.Duration
	}{
		{0, time.Second},
		{1, 950 * time.Millisecond},
		{10, 500 * time.Millisecond},
		{18, 100 * time.Millisecond},
		{19, 50 * time.Millisecond},
		{30, 50 * time.Millisecond},
	}

	for _, tc := range tests {
		if result := DropInterval(tc.level); result != tc.expected {
			t.Errorf("DropInterval(%d) = %v, want %v", tc.level, result, tc.expected)
		}
	}
}

func TestGravityCurveCustom(t *testing.T) {
	curve := GravityCurve{Base: 600 * time.Millisecond, Step: 100 * time.Millisecond, Min: 200 * time.Millisecond}

	if got := curve.Interval(0); got != 600*time.Millisecond {
		t.Errorf("Interval(0) = %v, want 600ms", got)
	}
	if got := curve.Interval(3); got != 300*time.Millisecond {
		t.Errorf("Interval(3) = %v, want 300ms", got)
	}
	if got := curve.Interval(10); got != 200*time.Millisecond {
		t.Errorf("Interval(10) = %v, want 200ms", got)
	}
}
