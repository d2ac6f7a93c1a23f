// Package tui provides the Bubble Tea integration for blockfall.
// It handles the terminal UI loop, input mapping, gravity scheduling and the
// menu and scoreboard screens, locally and over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// GravityMsg is a gravity tick scheduled for one game under a schedule
// generation. Ticks for another game or an older generation are dropped on arrival.
type GravityMsg struct {
	Run  string // Game the tick was scheduled for
	Gen  uint64
	Time time.Time
}

// gravityCmd returns a Bubble Tea command that delivers one gravity tick after period.
func gravityCmd(period time.Duration, run string, gen uint64) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg {
		return GravityMsg{Run: run, Gen: gen, Time: t}
	})
}
