package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/storage"
)

const (
	scoreLimit       = 100 // Rows loaded per view
	statsWidth       = 22
	statsMinScreenW  = 80 // Narrower terminals hide the stats panel
	playerMinTableW  = 60 // Narrower tables drop the player column
	scoreboardChrome = 8  // Title, borders and help bar
	dateLayout       = "Jan 02 15:04"
)

// ScoreboardView selects which records the table lists.
type ScoreboardView int

const (
	ViewTop ScoreboardView = iota
	ViewRecent
)

func (v ScoreboardView) String() string {
	if v == ViewRecent {
		return "RECENT GAMES"
	}
	return "HIGH SCORES"
}

// load fetches the records of the view.
func (v ScoreboardView) load(store *storage.Store) ([]storage.ScoreEntry, error) {
	if v == ViewRecent {
		return store.RecentScores(scoreLimit)
	}
	return store.TopScores(scoreLimit)
}

// scoreColumn is one table column and how to fill it.
type scoreColumn struct {
	title    string
	width    int
	optional bool // Dropped when the table is narrow
	cell     func(rank int, e storage.ScoreEntry) string
}

var scoreColumns = []scoreColumn{
	{title: "Rank", width: 5, cell: func(rank int, _ storage.ScoreEntry) string { return fmt.Sprintf("#%d", rank) }},
	{title: "Player", width: 10, optional: true, cell: func(_ int, e storage.ScoreEntry) string { return e.Player }},
	{title: "Score", width: 10, cell: func(_ int, e storage.ScoreEntry) string { return formatNumber(e.Score) }},
	{title: "Lines", width: 6, cell: func(_ int, e storage.ScoreEntry) string { return formatNumber(e.Lines) }},
	{title: "Lvl", width: 4, cell: func(_ int, e storage.ScoreEntry) string { return fmt.Sprint(e.Level) }},
	{title: "Date", width: 13, cell: func(_ int, e storage.ScoreEntry) string { return e.CreatedAt.Format(dateLayout) }},
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l"), key.WithHelp("tab", "top/recent")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists recorded games with aggregate stats beside them.
type ScoreboardModel struct {
	store   *storage.Store
	view    ScoreboardView
	scores  []storage.ScoreEntry
	stats   storage.Stats
	loadErr error

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int

	standalone bool // Quit the program on leave instead of handing control back
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard showing the best games first.
// A nil store shows an "unavailable" message.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.layout()
	m.reload()
	return m
}

func (m ScoreboardModel) showStats() bool {
	return m.width >= statsMinScreenW
}

// columns returns the columns that fit the current width.
func (m ScoreboardModel) columns() []scoreColumn {
	avail := m.width - 4
	if m.showStats() {
		avail -= statsWidth + 3
	}

	cols := make([]scoreColumn, 0, len(scoreColumns))
	for _, c := range scoreColumns {
		if c.optional && avail < playerMinTableW {
			continue
		}
		cols = append(cols, c)
	}
	return cols
}

// layout rebuilds the table for the current size and refills its rows.
func (m *ScoreboardModel) layout() {
	cols := m.columns()
	tcols := make([]table.Column, len(cols))
	for i, c := range cols {
		tcols[i] = table.Column{Title: c.title, Width: c.width}
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	m.table = table.New(
		table.WithColumns(tcols),
		table.WithFocused(true),
		table.WithHeight(max(m.height-scoreboardChrome, 3)),
		table.WithStyles(styles),
	)
	m.help.Width = m.width
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	cols := m.columns()
	rows := make([]table.Row, len(m.scores))
	for i, e := range m.scores {
		row := make(table.Row, len(cols))
		for j, c := range cols {
			row[j] = c.cell(i+1, e)
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// reload queries the store for the current view.
func (m *ScoreboardModel) reload() {
	m.scores, m.loadErr = nil, nil
	if m.store != nil {
		m.scores, m.loadErr = m.view.load(m.store)
		if stats, err := m.store.Stats(); err == nil {
			m.stats = *stats
		}
	}
	m.fillRows()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.leave()
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.leave()
		case key.Matches(msg, m.keys.Toggle):
			m.view = (m.view + 1) % 2
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) leave() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scorePanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	scoreMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := m.view.String()
	body := scorePanelStyle.Render(m.tableContent())
	if m.showStats() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.statsPanel(), "  ", body)
	} else {
		body = centerText(body, lipgloss.Width(body), m.width)
	}

	return strings.Join([]string{
		centerText(scoreTitleStyle.Render(title), len(title), m.width),
		"",
		body,
		scoreMutedStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

func (m ScoreboardModel) statsPanel() string {
	st := m.stats
	lines := []string{"Stats", strings.Repeat("─", statsWidth-4)}
	for _, kv := range [][2]string{
		{"Games", formatNumber(st.GamesCount)},
		{"Best", formatNumber(st.HighScore)},
		{"Average", formatNumber(int(st.AvgScore))},
		{"Lines", formatNumber(int(st.TotalLines))},
		{"Top level", formatNumber(st.MaxLevel)},
	} {
		lines = append(lines, scoreMutedStyle.Render(fmt.Sprintf("%-10s", kv[0]))+kv[1])
	}
	if !st.LastPlayed.IsZero() {
		lines = append(lines, scoreMutedStyle.Render("Last"), st.LastPlayed.Format(dateLayout))
	}
	return scorePanelStyle.Width(statsWidth).Render(strings.Join(lines, "\n"))
}

func (m ScoreboardModel) tableContent() string {
	var msg string
	switch {
	case m.store == nil:
		msg = "Score database unavailable."
	case m.loadErr != nil:
		msg = "Could not load scores."
	case len(m.scores) == 0:
		msg = "No games recorded yet.\nFinish a game with points to get on the board!"
	default:
		return m.table.View()
	}
	return scoreMutedStyle.Italic(true).Padding(2, 4).Render(msg)
}

// Rows returns the number of records shown.
func (m ScoreboardModel) Rows() int {
	return len(m.scores)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard as its own program.
// It reports whether the user left with back rather than quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)
	model.standalone = true

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(ScoreboardModel); ok {
		return m.IsGoingBack(), nil
	}
	return false, nil
}
