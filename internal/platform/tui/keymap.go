package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-gemswap/internal/core"
)

// GameKeyMap defines the key bindings while a board is shown.
// Tokens are moved with the mouse only.
type GameKeyMap struct {
	Restart    key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Back, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Restart, k.Screenshot},
		{k.Back, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new board"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PointerFromMouse translates a Bubble Tea mouse message into a pointer event.
// Only the left button starts a drag; motion and release are forwarded
// whatever button the terminal reports, since many terminals report
// releases without one.
func PointerFromMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	ev := core.PointerEvent{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.PointerEvent{}, false
		}
		ev.Kind = core.PointerDown
	case tea.MouseActionMotion:
		ev.Kind = core.PointerMove
	case tea.MouseActionRelease:
		ev.Kind = core.PointerUp
	default:
		return core.PointerEvent{}, false
	}

	return ev, true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionStats
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionStats
	}

	return MenuActionNone
}
