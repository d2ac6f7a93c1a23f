package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/audio"
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/highscore"
	"github.com/vovakirdan/blockfall/internal/logging"
	"github.com/vovakirdan/blockfall/internal/storage"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

// Deps bundles the services a game session uses. Every field is optional
// except Config.
type Deps struct {
	Config  config.Config
	Store   *storage.Store
	Tracker *highscore.Tracker
	Audio   *audio.Player
	Logger  *log.Logger
	Player  string // Name recorded with scores

	// Renderer styles output for the client terminal; nil uses the local one.
	Renderer *lipgloss.Renderer
}

// GameModel is the Bubble Tea model for one blockfall session.
// It owns the engine and the gravity schedule; every state change goes through apply.
type GameModel struct {
	deps    Deps
	engine  *tetris.Engine
	gravity *tetris.Gravity
	state   tetris.State
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	painter screenRenderer
	runID   string

	allowBack  bool // Esc/b returns to the menu instead of doing nothing
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the finished game has been recorded
}

// NewGameModel creates a new session. The piece picker is seeded from cfg.Seed,
// or from the clock when it is 0.
func NewGameModel(deps Deps, cfg core.RuntimeConfig) (GameModel, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}

	picker, err := deps.Config.Picker(cfg.Seed)
	if err != nil {
		return GameModel{}, err
	}

	engine := tetris.NewEngine(picker)
	m := GameModel{
		deps:    deps,
		engine:  engine,
		gravity: tetris.NewGravity(deps.Config.Gravity.Curve()),
		state:   engine.State(),
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:  cfg,
		keys:    NewKeyMap(deps.Config.Keys),
		help:    help.New(),
		painter: newScreenRenderer(deps.Renderer),
		runID:   uuid.NewString(),
	}
	m.help.Width = cfg.ScreenW
	m.keys.Back.SetEnabled(false)
	return m, nil
}

// WithBackToMenu makes Esc/b leave the game when it is paused or over.
func (m GameModel) WithBackToMenu() GameModel {
	m.allowBack = true
	m.keys.Back.SetEnabled(true)
	return m
}

// Init starts gravity for the first piece.
func (m GameModel) Init() tea.Cmd {
	m.deps.Logger.Info("game started", "run", m.runID, "seed", m.config.Seed)
	m.gravity.Sync(m.state)
	return m.schedule()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case GravityMsg:
		return m.handleGravity(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	case core.ActionBack:
		if m.allowBack && (m.state.GameOver || m.state.Paused) {
			m.backToMenu = true
		}
		return m, nil
	case core.ActionRestart:
		return m, m.restart()
	}

	if !action.IsGameplay() {
		return m, nil
	}
	return m, m.apply(IntentFor(action))
}

// handleGravity applies a tick if it belongs to the live schedule and arms the next one.
func (m GameModel) handleGravity(msg GravityMsg) (tea.Model, tea.Cmd) {
	if msg.Run != m.runID || !m.gravity.Accept(msg.Gen) {
		return m, nil
	}
	m.apply(tetris.IntentTick)
	return m, m.schedule()
}

// apply runs an intent through the engine and returns a gravity command when the
// schedule was restarted by the transition.
func (m *GameModel) apply(in tetris.Intent) tea.Cmd {
	prev := m.state
	m.state = m.engine.Apply(in)
	m.observe(prev)

	if m.gravity.Sync(m.state) {
		return m.schedule()
	}
	return nil
}

// restart discards the current game. Pending ticks are invalidated before the
// new game exists so none of them can reach it.
func (m *GameModel) restart() tea.Cmd {
	m.gravity.Cancel()
	m.state = m.engine.Reset()
	m.runID = uuid.NewString()
	m.scoreSaved = false
	m.deps.Logger.Info("game restarted", "run", m.runID)

	m.gravity.Sync(m.state)
	return m.schedule()
}

// schedule returns the next gravity tick for the current generation, if armed.
func (m GameModel) schedule() tea.Cmd {
	if !m.gravity.Armed() {
		return nil
	}
	return gravityCmd(m.gravity.Period(), m.runID, m.gravity.Generation())
}

// observe reacts to a transition from prev to the current state.
func (m *GameModel) observe(prev tetris.State) {
	if m.deps.Tracker != nil {
		m.deps.Tracker.Observe(m.state.Score)
	}
	if m.deps.Audio != nil {
		m.deps.Audio.Play(audio.CueFor(prev, m.state))
	}

	if m.state.Level > prev.Level {
		m.deps.Logger.Debug("level up", "run", m.runID, "level", m.state.Level)
	}
	if m.state.GameOver && !prev.GameOver {
		m.deps.Logger.Info("game over",
			"run", m.runID,
			"score", m.state.Score,
			"lines", m.state.Lines,
			"level", m.state.Level,
		)
		m.recordScore()
	}
}

// recordScore saves a finished game once. Games without points are not recorded.
func (m *GameModel) recordScore() {
	if !m.state.GameOver || m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.deps.Store == nil || m.state.Score <= 0 {
		return
	}

	_, err := m.deps.Store.SaveScore(storage.Run{
		RunID:  m.runID,
		Player: m.deps.Player,
		Score:  m.state.Score,
		Lines:  m.state.Lines,
		Level:  m.state.Level,
		Pieces: m.state.Pieces,
	})
	if err != nil {
		m.deps.Logger.Error("cannot save score", "run", m.runID, "error", err)
	}
}

// best returns the best score for the HUD.
func (m GameModel) best() int {
	if m.deps.Tracker != nil {
		return m.deps.Tracker.Best()
	}
	return m.state.Score
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	DrawGame(m.screen, m.state, HUD{Best: m.best(), Ghost: m.deps.Config.Ghost})

	home, err := os.UserHomeDir()
	if err != nil {
		m.deps.Logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".blockfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("blockfall_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.deps.Logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.deps.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	DrawGame(m.screen, m.state, HUD{Best: m.best(), Ghost: m.deps.Config.Ghost})

	var b strings.Builder
	b.WriteString(m.painter.Render(m.screen))
	b.WriteString("\n")
	b.WriteString(m.painter.style(core.ColorGray).Render(m.help.View(m.keys)))
	return b.String()
}

// State returns the current game snapshot.
func (m GameModel) State() tetris.State {
	return m.state
}

// RunID returns the identifier of the current game.
func (m GameModel) RunID() string {
	return m.runID
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone game in the current terminal.
func Run(deps Deps, cfg core.RuntimeConfig) error {
	model, err := NewGameModel(deps, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
