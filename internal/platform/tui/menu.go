package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is the entry picked on the title menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Title  string
	Choice MenuChoice
}

var menuItems = []MenuItem{
	{Title: "Play", Choice: ChoicePlay},
	{Title: "High Scores", Choice: ChoiceScores},
	{Title: "Quit", Choice: ChoiceQuit},
}

var titleArt = []string{
	"█▀▄ █   █▀█ █▀▀ █▄▀ █▀▀ ▄▀█ █   █  ",
	"█▄█ █▄▄ █▄█ █▄▄ █ █ █▀  █▀█ █▄▄ █▄▄",
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	best     int
	choice   MenuChoice
	quitting bool
	renderer *lipgloss.Renderer
}

// NewMenuModel creates a new menu model. best is shown under the title.
func NewMenuModel(width, height, best int) MenuModel {
	return MenuModel{width: width, height: height, best: best}
}

// WithRenderer styles the menu for a specific output, such as an SSH session.
func (m MenuModel) WithRenderer(r *lipgloss.Renderer) MenuModel {
	m.renderer = r
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		m.choice = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = menuItems[m.cursor].Choice
		if m.choice == ChoiceQuit {
			m.quitting = true
		}
		return m, tea.Quit

	case MenuActionScoreboard:
		m.choice = ChoiceScores
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	r := m.renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	titleStyle := r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	dimStyle := r.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := r.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range titleArt {
		b.WriteString(centerText(titleStyle.Render(line), lipgloss.Width(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	best := "Best: " + formatNumber(m.best)
	b.WriteString(centerText(dimStyle.Render(best), len(best), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := fmt.Sprintf("  %s", item.Title)
		style := r.NewStyle()
		if i == m.cursor {
			line = fmt.Sprintf("> %s", item.Title)
			style = activeStyle
		}
		line = fmt.Sprintf("%-14s", line)
		b.WriteString(centerText(style.Render(line), len(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), len(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the user picked, or ChoiceNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads rendered text of the given visible width to the center of width.
func centerText(rendered string, visible, width int) string {
	if visible >= width {
		return rendered
	}
	return strings.Repeat(" ", (width-visible)/2) + rendered
}
