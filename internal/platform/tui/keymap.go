package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

// KeyMap holds the in-game key bindings. It implements help.KeyMap.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	SoftDrop   key.Binding
	Rotate     key.Binding
	HardDrop   key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// bindingSpec describes one configurable action.
type bindingSpec struct {
	name   string
	action core.Action
	help   string
	field  func(*KeyMap) *key.Binding
}

var bindingSpecs = []bindingSpec{
	{"left", core.ActionMoveLeft, "left", func(k *KeyMap) *key.Binding { return &k.Left }},
	{"right", core.ActionMoveRight, "right", func(k *KeyMap) *key.Binding { return &k.Right }},
	{"soft_drop", core.ActionSoftDrop, "down", func(k *KeyMap) *key.Binding { return &k.SoftDrop }},
	{"rotate", core.ActionRotate, "rotate", func(k *KeyMap) *key.Binding { return &k.Rotate }},
	{"hard_drop", core.ActionHardDrop, "drop", func(k *KeyMap) *key.Binding { return &k.HardDrop }},
	{"pause", core.ActionPause, "pause", func(k *KeyMap) *key.Binding { return &k.Pause }},
	{"restart", core.ActionRestart, "restart", func(k *KeyMap) *key.Binding { return &k.Restart }},
	{"screenshot", core.ActionScreenshot, "screenshot", func(k *KeyMap) *key.Binding { return &k.Screenshot }},
	{"back", core.ActionBack, "menu", func(k *KeyMap) *key.Binding { return &k.Back }},
	{"quit", core.ActionQuit, "quit", func(k *KeyMap) *key.Binding { return &k.Quit }},
}

// NewKeyMap builds bindings from action name to key strings, as found in the
// configuration. Actions missing from keys are left unbound.
func NewKeyMap(keys map[string][]string) KeyMap {
	var km KeyMap
	for _, bs := range bindingSpecs {
		list := keys[bs.name]
		b := key.NewBinding(
			key.WithKeys(list...),
			key.WithHelp(helpKeys(list), bs.help),
		)
		if len(list) == 0 {
			b.SetEnabled(false)
		}
		*bs.field(&km) = b
	}
	return km
}

// helpKeys formats key names for the help bar.
func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		switch k {
		case " ":
			names[i] = "space"
		case "left":
			names[i] = "←"
		case "right":
			names[i] = "→"
		case "up":
			names[i] = "↑"
		case "down":
			names[i] = "↓"
		default:
			names[i] = k
		}
	}
	return strings.Join(names, "/")
}

// Action resolves a key message to an action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, bs := range bindingSpecs {
		if key.Matches(msg, *bs.field(&k)) {
			return bs.action
		}
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.SoftDrop, k.HardDrop, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate, k.SoftDrop, k.HardDrop},
		{k.Pause, k.Restart, k.Screenshot, k.Back, k.Quit},
	}
}

// IntentFor maps a gameplay action to an engine intent.
func IntentFor(a core.Action) tetris.Intent {
	switch a {
	case core.ActionMoveLeft:
		return tetris.IntentMoveLeft
	case core.ActionMoveRight:
		return tetris.IntentMoveRight
	case core.ActionSoftDrop:
		return tetris.IntentSoftDrop
	case core.ActionRotate:
		return tetris.IntentRotate
	case core.ActionHardDrop:
		return tetris.IntentHardDrop
	case core.ActionPause:
		return tetris.IntentTogglePause
	case core.ActionRestart:
		return tetris.IntentReset
	default:
		return tetris.IntentNone
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
