package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-gemswap/internal/core"
	"github.com/vovakirdan/tui-gemswap/internal/registry"
	"github.com/vovakirdan/tui-gemswap/internal/storage"
)

// MenuItem represents a selectable variant in the menu.
type MenuItem struct {
	GameID   string
	Title    string
	Sessions int // Stored sessions, 0 without a store
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	quitting  bool
	selected  *MenuItem // Set when user selects a variant
	openStats bool      // True if user pressed Tab for statistics
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	var stats map[string]*storage.GameStats
	if store != nil {
		// Best-effort: the menu works without counts
		stats, _ = store.GetAllGamesStats()
	}

	for _, g := range games {
		item := MenuItem{
			GameID: g.ID,
			Title:  g.Title,
		}
		if s, ok := stats[g.ID]; ok {
			item.Sessions = s.SessionCount
		}
		items = append(items, item)
	}

	return MenuModel{
		items:  items,
		cursor: 0,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionStats:
		m.openStats = true
		return m, tea.Quit // Exit menu to show statistics
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	// Title
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  G E M   S W A P  "), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText("Select a board", m.width))
	b.WriteString("\n\n")

	// Variant list
	for i, item := range m.items {
		line := "  " + item.Title
		if item.Sessions > 0 {
			line += fmt.Sprintf("  (%d played)", item.Sessions)
		}
		if i == m.cursor {
			line = cursorStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Stats  |  Q: Quit"
	b.WriteString(centerText(helpStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsStats returns true if user requested the statistics screen.
func (m MenuModel) WantsStats() bool {
	return m.openStats
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID     string
	Config     core.RuntimeConfig
	WantsStats bool
	Quit       bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsStats() {
		result.WantsStats = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
	} else {
		result.Quit = true
	}

	return result, nil
}
