// Package tetris implements the falling-block game engine: board, pieces,
// collision, locking, line clears, scoring and game-over detection.
//
// The engine is deterministic for a given Picker and has no dependency on
// timers, terminals or storage. Gravity is driven from outside through IntentTick.
package tetris

import "sync"

// Engine owns the single live State of a game session and applies intents to it
// one at a time.
type Engine struct {
	mu     sync.Mutex
	picker Picker
	state  State
}

// NewEngine starts a new game using p for piece selection.
func NewEngine(p Picker) *Engine {
	return &Engine{
		picker: p,
		state:  NewState(p),
	}
}

// Apply applies an intent and returns the resulting snapshot.
func (e *Engine) Apply(in Intent) State {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = Apply(e.state, in, e.picker)
	return e.state.Clone()
}

// State returns the current snapshot.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.Clone()
}

// Reset discards the current game and starts a fresh one.
func (e *Engine) Reset() State {
	return e.Apply(IntentReset)
}
