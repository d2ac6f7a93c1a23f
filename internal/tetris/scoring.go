package tetris

import "time"

// ScoreTable holds the base award per lock, indexed by the number of rows cleared
// at once. A four-row clear earns far more than four single clears.
var ScoreTable = [...]int{0, 40, 100, 300, 1200}

// LinesPerLevel is the number of cleared rows needed to advance one level.
const LinesPerLevel = 10

// ScoreFor returns the points for clearing n rows while playing at level.
func ScoreFor(n, level int) int {
	if n < 0 || n >= len(ScoreTable) {
		return 0
	}
	return ScoreTable[n] * (level + 1)
}

// LevelFor returns the level reached after clearing lines rows in total.
func LevelFor(lines int) int {
	return lines / LinesPerLevel
}

// GravityCurve maps a level to the delay between gravity ticks.
type GravityCurve struct {
	Base time.Duration // Delay at level 0
	Step time.Duration // Reduction per level
	Min  time.Duration // Floor
}

// DefaultGravityCurve returns the classic curve: 1s at level 0, 50ms faster per
// level, never below 50ms.
func DefaultGravityCurve() GravityCurve {
	return GravityCurve{
		Base: time.Second,
		Step: 50 * time.Millisecond,
		Min:  50 * time.Millisecond,
	}
}

// Interval returns the gravity period at the given level.
func (c GravityCurve) Interval(level int) time.Duration {
	d := c.Base - time.Duration(level)*c.Step
	if d < c.Min {
		return c.Min
	}
	return d
}

// DropInterval returns the default gravity period at the given level.
func DropInterval(level int) time.Duration {
	return DefaultGravityCurve().Interval(level)
}
