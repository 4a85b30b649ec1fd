package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-gemswap/internal/registry"
	"github.com/vovakirdan/tui-gemswap/internal/storage"
)

// Stats screen layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show variant list sidebar
	sidebarWidth       = 30  // Width of variant list sidebar
	maxSessions        = 100 // Max sessions to load
)

// StatsKeyMap defines the key bindings for the statistics screen.
type StatsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next board"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the session statistics screen.
type StatsModel struct {
	games       []registry.GameInfo
	gameCursor  int
	store       *storage.Store
	sessions    []storage.Session
	summary     *storage.GameStats
	table       table.Model
	help        help.Model
	keys        StatsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool
	embedded    bool // Hosted by SessionModel; back does not quit the program
}

// NewStatsModel creates a new statistics model.
// initial selects the variant shown first; empty means the first one.
func NewStatsModel(store *storage.Store, initial string, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		games:       registry.List(),
		store:       store,
		keys:        DefaultStatsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, g := range m.games {
		if g.ID == initial {
			m.gameCursor = i
		}
	}

	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadSessions(m.games[m.gameCursor].ID)
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Swaps", Width: 6},
		{Title: "Reverts", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // Leave room for header, summary and help
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSessions loads sessions and totals for the given variant.
func (m *StatsModel) loadSessions(gameID string) {
	m.sessions = nil
	m.summary = nil
	if m.store != nil {
		if sessions, err := m.store.RecentSessions(gameID, maxSessions); err == nil {
			m.sessions = sessions
		}
		if summary, err := m.store.GetGameStats(gameID); err == nil {
			m.summary = summary
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current sessions.
func (m *StatsModel) updateTableRows() {
	m.table.SetRows(SessionRows(m.sessions))

	// Reset cursor to top
	m.table.GotoTop()
}

// SessionRows formats sessions as table rows, newest first.
func SessionRows(sessions []storage.Session) []table.Row {
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		player := s.Username
		if player == "" {
			player = "local"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.Swaps),
			fmt.Sprintf("%d", s.Reverts),
			s.Duration().Round(time.Second).String(),
			player,
			s.EndedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the statistics model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the statistics screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadSessions(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.loadSessions(m.games[m.gameCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the statistics screen.
func (m StatsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "SESSIONS"
	if len(m.games) > 0 {
		title = fmt.Sprintf("SESSIONS - %s", m.games[m.gameCursor].Title)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.summaryLine(), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(centerText(boxStyle.Render(m.renderTableContent()), m.width))
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// summaryLine renders the totals of the selected variant.
func (m StatsModel) summaryLine() string {
	if m.summary == nil || m.summary.SessionCount == 0 {
		return helpStyle.Render("no sessions")
	}
	s := m.summary
	return fmt.Sprintf("%d sessions  %d swaps  %d reverts  %.0f%% swapped",
		s.SessionCount, s.Swaps, s.Reverts, s.SwapRate()*100)
}

// renderWideLayout renders the table with a sidebar for variant selection.
func (m StatsModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Boards\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.games {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.gameCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := g.Title
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	sidebarRendered := boxStyle.Width(sidebarWidth).Render(sidebar.String())
	tableRendered := boxStyle.Render(m.renderTableContent())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderTableContent renders the table or empty message.
func (m StatsModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No sessions recorded yet.\nSwap a few gems first!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}

// RunStats runs the statistics screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunStats(store *storage.Store, initial string, width, height int) (goBack bool, err error) {
	model := NewStatsModel(store, initial, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(StatsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
