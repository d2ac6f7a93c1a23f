package tetris

import "time"

// Gravity tracks the gravity schedule a clock adapter must keep for a game.
//
// Ticks are armed only while the game is playable, at the period given by the
// curve for the current level. Every change of period or armed state starts a new
// generation; a tick scheduled under an older generation must be dropped. Because
// the adapter checks the generation on the same goroutine that applies intents,
// cancellation takes effect in the same step as the pause, game-over or reset.
type Gravity struct {
	curve  GravityCurve
	armed  bool
	period time.Duration
	gen    uint64
}

// NewGravity creates a disarmed schedule for the given curve.
func NewGravity(curve GravityCurve) *Gravity {
	return &Gravity{curve: curve}
}

// Sync reconciles the schedule with s and reports whether the previous
// generation was invalidated.
func (g *Gravity) Sync(s State) bool {
	armed := s.Playable()
	period := g.curve.Interval(s.Level)
	if armed == g.armed && period == g.period {
		return false
	}
	g.armed = armed
	g.period = period
	g.gen++
	return true
}

// Cancel disarms the schedule and invalidates any pending tick.
func (g *Gravity) Cancel() {
	g.armed = false
	g.gen++
}

// Accept reports whether a tick scheduled under gen should be applied.
func (g *Gravity) Accept(gen uint64) bool {
	return g.armed && gen == g.gen
}

// Armed reports whether ticks should currently be delivered.
func (g *Gravity) Armed() bool {
	return g.armed
}

// Period returns the current delay between ticks.
func (g *Gravity) Period() time.Duration {
	return g.period
}

// Generation returns the current schedule generation.
func (g *Gravity) Generation() uint64 {
	return g.gen
}
