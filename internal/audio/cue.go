// Package audio plays short synthesized cues for game events.
package audio

import "github.com/vovakirdan/blockfall/internal/tetris"

// Cue identifies a game event with a sound.
type Cue int

const (
	CueNone Cue = iota
	CueLock
	CueClear
	CueFourLines
	CueLevelUp
	CueGameOver
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueNone:
		return "none"
	case CueLock:
		return "lock"
	case CueClear:
		return "clear"
	case CueFourLines:
		return "four-lines"
	case CueLevelUp:
		return "level-up"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// CueFor picks the cue for the transition from prev to next.
// Only the most significant event of a transition is voiced.
func CueFor(prev, next tetris.State) Cue {
	switch {
	case next.GameOver && !prev.GameOver:
		return CueGameOver
	case next.Pieces == prev.Pieces:
		return CueNone
	case next.Level > prev.Level:
		return CueLevelUp
	case next.LastClear >= 4:
		return CueFourLines
	case next.LastClear > 0:
		return CueClear
	case next.Pieces > prev.Pieces:
		return CueLock
	}
	return CueNone
}
