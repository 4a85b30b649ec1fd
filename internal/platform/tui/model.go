// Package tui provides the Bubble Tea integration for the gem swap board.
// It handles the terminal UI loop, mouse mapping, and session bookkeeping.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-gemswap/internal/core"
	"github.com/vovakirdan/tui-gemswap/internal/registry"
	"github.com/vovakirdan/tui-gemswap/internal/storage"
)

// Model is the Bubble Tea model for playing one board variant.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      GameKeyMap
	help      help.Model
	logger    *log.Logger
	username  string
	startedAt time.Time
	gameState core.GameState
	saved     bool // Session of the current board already stored

	width, height int

	embedded   bool // Hosted by SessionModel; back does not quit the program
	quitting   bool
	backToMenu bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for gesture events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithUsername records the player name with saved sessions.
func WithUsername(name string) Option {
	return func(m *Model) {
		m.username = name
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:      game,
		store:     store,
		config:    cfg,
		keys:      DefaultGameKeyMap(),
		help:      help.New(),
		logger:    log.New(io.Discard),
		startedAt: time.Now(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.config.ScreenH = m.boardHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("board dealt", "game", m.game.ID(), "seed", m.config.Seed)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveSession()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.saveSession()
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Restart):
		m.restart()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.width, m.height)
	}

	return m, nil
}

// handleMouse feeds the pointer stream to the game.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev, ok := PointerFromMouse(msg)
	if !ok {
		return m, nil
	}

	result := m.game.Pointer(ev)
	m.gameState = result.State
	m.logEvent(result.Event)
	return m, nil
}

// handleResize processes window resize events without touching the board.
func (m Model) handleResize(w, h int) (tea.Model, tea.Cmd) {
	m.width = w
	m.height = h
	m.help.Width = w

	m.config.ScreenW = w
	m.config.ScreenH = m.boardHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.gameState = m.game.State()
	return m, nil
}

// boardHeight is the screen height left above the help footer.
func (m Model) boardHeight() int {
	return max(0, m.height-lipgloss.Height(m.help.View(m.keys)))
}

// restart saves the finished board and deals a new one.
func (m *Model) restart() {
	m.saveSession()
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.startedAt = time.Now()
	m.saved = false
	m.logger.Debug("board dealt", "game", m.game.ID(), "seed", m.config.Seed)
}

// saveSession stores the counters of the current board, if it was played.
func (m *Model) saveSession() {
	if m.store == nil || m.saved || m.gameState.PickUps == 0 {
		return
	}

	sess := storage.Session{
		GameID:    m.game.ID(),
		Username:  m.username,
		PickUps:   m.gameState.PickUps,
		Swaps:     m.gameState.Swaps,
		Reverts:   m.gameState.Reverts,
		StartedAt: m.startedAt,
		EndedAt:   time.Now(),
	}
	if _, err := m.store.SaveSession(sess); err != nil {
		m.logger.Warn("could not save session", "error", err)
		return
	}
	m.saved = true
}

// logEvent writes gesture outcomes at debug level.
func (m Model) logEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventPickUp:
		m.logger.Debug("pick up", "token", ev.Token, "slot", ev.From)
	case core.EventSwap:
		m.logger.Debug("swap", "token", ev.Token, "partner", ev.Partner, "from", ev.From, "to", ev.To)
	case core.EventRevert:
		m.logger.Debug("revert", "token", ev.Token, "slot", ev.From)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".gemswap", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// State returns the latest session counters.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// RunGame starts the Bubble Tea program for one variant.
// Returns true if the user asked to go back to the menu.
func RunGame(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) (goBack bool, err error) {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag motion and release
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
