package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/storage"
)

func newTestSession(t *testing.T, store *storage.Store) SessionModel {
	t.Helper()
	deps := Deps{Config: config.Default(), Store: store}
	return NewSessionModel(deps, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, Seed: 7})
}

func step(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func TestSessionPlayAndBack(t *testing.T) {
	m := newTestSession(t, nil)
	require.Equal(t, screenMenu, m.current)

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.current)
	require.NotNil(t, m.game)
	assert.NotNil(t, cmd, "starting a game schedules gravity")

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenGame, m.current, "esc while playing stays in the game")

	m, _ = step(t, m, runeKey("p"))
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.current)
	assert.Nil(t, m.game)
	assert.False(t, m.quitting)
}

func TestSessionDropsTickFromLeftGame(t *testing.T) {
	m := newTestSession(t, nil)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.game)
	old := GravityMsg{Run: m.game.RunID(), Gen: m.game.gravity.Generation()}

	m, _ = step(t, m, runeKey("p"))
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, screenMenu, m.current)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.current)
	require.Equal(t, old.Gen, m.game.gravity.Generation(), "fresh schedules share generation numbers")
	y := m.game.State().Active.Pos.Y

	m, cmd := step(t, m, old)
	assert.Equal(t, y, m.game.State().Active.Pos.Y, "tick from the left game moved the new piece")
	assert.Nil(t, cmd, "tick from the left game scheduled another tick")
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()
	_, err = store.SaveScore(storage.Run{RunID: "a", Player: "ana", Score: 300})
	require.NoError(t, err)

	m := newTestSession(t, store)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenScores, m.current)
	assert.Equal(t, 1, m.scoreboard.Rows())
	assert.Contains(t, m.View(), "HIGH SCORES")

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.current)
	assert.Nil(t, cmd, "leaving the scoreboard must not quit the session")
}

func TestSessionMenuQuit(t *testing.T) {
	m := newTestSession(t, nil)
	m, cmd := step(t, m, runeKey("q"))
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestSessionReportsBadConfig(t *testing.T) {
	deps := Deps{Config: config.Default()}
	deps.Config.Randomizer = "nope"
	m := NewSessionModel(deps, core.DefaultConfig())

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.quitting)
	assert.Error(t, m.Err())
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(80, 24, 1200)
	assert.Contains(t, m.View(), "1,200")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	assert.Equal(t, ChoiceQuit, m.Choice())
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
}

func TestScoreboardToggleAndColumns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()
	for i, score := range []int{100, 900, 400} {
		_, err := store.SaveScore(storage.Run{RunID: string(rune('a' + i)), Player: "p", Score: score})
		require.NoError(t, err)
	}

	m := NewScoreboardModel(store, 120, 30)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, "900", m.table.Rows()[0][2])

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, ViewRecent, m.view)
	assert.Contains(t, m.View(), "RECENT GAMES")

	narrow := NewScoreboardModel(store, 50, 30)
	assert.Len(t, narrow.table.Columns(), 5)
	assert.Equal(t, "900", narrow.table.Rows()[0][1])
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	assert.Equal(t, 0, m.Rows())
	assert.Contains(t, m.View(), "unavailable")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	assert.True(t, m.IsGoingBack())
	assert.Nil(t, cmd)
}
