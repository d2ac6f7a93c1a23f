package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game or scoreboard -> menu.
// It is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	deps       Deps
	config     core.RuntimeConfig
	current    screenKind
	menu       MenuModel
	scoreboard ScoreboardModel
	game       *GameModel
	quitting   bool
	err        error
}

// NewSessionModel creates a new session model.
func NewSessionModel(deps Deps, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		deps:   deps,
		config: cfg,
		menu:   NewMenuModel(cfg.ScreenW, cfg.ScreenH, bestOf(deps)).WithRenderer(deps.Renderer),
	}
}

func bestOf(deps Deps) int {
	if deps.Tracker == nil {
		return 0
	}
	return deps.Tracker.Best()
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoicePlay:
		gm, err := NewGameModel(m.deps, m.config)
		if err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		gm = gm.WithBackToMenu()
		m.game = &gm
		m.current = screenGame
		return m, m.game.Init()

	case ChoiceScores:
		m.scoreboard = NewScoreboardModel(m.deps.Store, m.config.ScreenW, m.config.ScreenH)
		m.current = screenScores
		return m, m.scoreboard.Init()
	}

	// The menu quits its own program; inside a session the choice is handled above.
	return m, filterQuit(cmd)
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		return m.toMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH, bestOf(m.deps)).WithRenderer(m.deps.Renderer)
	m.current = screenMenu
	return m, m.menu.Init()
}

// filterQuit drops tea.Quit so a child model cannot end the session.
func filterQuit(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		if _, ok := msg.(tea.QuitMsg); ok {
			return nil
		}
		return msg
	}
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// RunSession runs the menu-driven session in the current terminal.
func RunSession(deps Deps, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(deps, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if sm, ok := final.(SessionModel); ok {
		return sm.Err()
	}
	return nil
}
