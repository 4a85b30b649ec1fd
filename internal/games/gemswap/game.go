// Package gemswap adapts the board to a character grid: it maps terminal
// pointer events to board pixels and draws the board into a core.Screen.
package gemswap

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-gemswap/internal/board"
	"github.com/vovakirdan/tui-gemswap/internal/config"
	"github.com/vovakirdan/tui-gemswap/internal/core"
	"github.com/vovakirdan/tui-gemswap/internal/registry"
)

// Game is one board variant played on a terminal.
type Game struct {
	variant config.Variant
	cfg     config.GemSwapConfig
	colors  []core.Color
	board   *board.Board

	view view

	// Screen dimensions
	screenW int
	screenH int

	tooSmall bool
}

// Package-level config source, set by the CLI before games are created.
var (
	configPath     string
	configOverride *config.GemSwapConfig
)

// SetConfigPath selects the YAML file loaded on Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetConfig replaces file loading with a fixed configuration.
// Variant presets are still applied on top of it. Pass nil to clear.
func SetConfig(cfg *config.GemSwapConfig) {
	configOverride = cfg
}

// New creates a game for the given variant.
func New(v config.Variant) *Game {
	return &Game{variant: v}
}

// NewWithConfig creates a game that uses cfg as loaded, without a preset.
func NewWithConfig(v config.Variant, cfg config.GemSwapConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{variant: v}
	g.setConfig(cfg)
	return g, nil
}

func init() {
	for _, v := range config.Variants {
		v := v
		registry.Register(string(v), func() registry.Game {
			return New(v)
		})
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.variant {
	case config.VariantMini:
		return "Gem Swap 6x6"
	case config.VariantLegacy:
		return "Gem Swap (legacy adjacency)"
	default:
		return "Gem Swap"
	}
}

// Reset deals a new board from the seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.colors == nil {
		g.setConfig(loadConfig(g.variant))
	}

	b, err := newBoard(g.cfg, cfg.Seed)
	if err != nil {
		// setConfig only ever receives validated configs.
		panic(fmt.Sprintf("gemswap: %v", err))
	}
	g.board = b

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// newBoard deals a board for a validated config.
func newBoard(cfg config.GemSwapConfig, seed int64) (*board.Board, error) {
	mode, err := cfg.AdjacencyMode()
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	return board.New(cfg.Grid(), len(cfg.Palette), rng, board.WithAdjacency(mode))
}

// setConfig stores cfg and its terminal palette. cfg must be valid.
func (g *Game) setConfig(cfg config.GemSwapConfig) {
	g.cfg = cfg
	g.colors = make([]core.Color, len(cfg.Palette))
	for i, hex := range cfg.Palette {
		g.colors[i] = core.Color(hex)
	}
}

// loadConfig resolves the config for a variant, falling back to defaults.
func loadConfig(v config.Variant) config.GemSwapConfig {
	if configOverride != nil {
		cfg := *configOverride
		config.ApplyVariant(&cfg, v)
		if cfg.Validate() == nil {
			return cfg
		}
	}

	cfg, err := config.LoadVariant(configPath, v)
	if err != nil {
		cfg = config.DefaultGemSwapConfig()
		config.ApplyVariant(&cfg, v)
	}
	return cfg
}

// Resize recomputes the layout without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.view = newView(g.cfg, w, h)
	g.tooSmall = !g.view.fits(w, h)
}

// Pointer applies one pointer event in screen cells.
func (g *Game) Pointer(ev core.PointerEvent) core.StepResult {
	if g.board == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	var event core.Event
	switch ev.Kind {
	case core.PointerDown:
		event = g.pointerDown(ev.X, ev.Y)
	case core.PointerMove:
		g.pointerMove(ev.X, ev.Y)
	case core.PointerUp:
		event = g.pointerUp()
	}

	return core.StepResult{State: g.State(), Event: event}
}

// pointerDown lifts the token in the cell under the pointer.
func (g *Game) pointerDown(tx, ty int) core.Event {
	if g.board.Dragging() != nil {
		return core.Event{}
	}

	x, y := g.view.toBoard(tx, ty)
	slot, ok := g.board.Grid().SlotAt(x, y)
	if !ok {
		return core.Event{}
	}

	t := g.board.At(slot)
	if err := g.board.PickUp(t.ID); err != nil {
		return core.Event{}
	}
	return core.Event{Kind: core.EventPickUp, Token: t.ID, Partner: -1, From: slot, To: slot}
}

// pointerMove drags the held token to the pointer.
func (g *Game) pointerMove(tx, ty int) {
	t := g.board.Dragging()
	if t == nil {
		return
	}
	x, y := g.view.toBoard(tx, ty)
	//nolint:errcheck // t is the dragged token
	g.board.Move(t.ID, x, y)
}

// pointerUp releases the held token and reports the outcome.
func (g *Game) pointerUp() core.Event {
	t := g.board.Dragging()
	if t == nil {
		return core.Event{}
	}

	out, err := g.board.Release(t.ID)
	if err != nil {
		return core.Event{}
	}

	kind := core.EventRevert
	if out.Kind == board.Committed {
		kind = core.EventSwap
	}
	return core.Event{Kind: kind, Token: out.Token, Partner: out.Partner, From: out.From, To: out.To}
}

// State returns the session counters.
func (g *Game) State() core.GameState {
	st := core.GameState{TooSmall: g.tooSmall}
	if g.board == nil {
		return st
	}

	stats := g.board.Stats()
	st.PickUps = stats.PickUps
	st.Swaps = stats.Swaps
	st.Reverts = stats.Reverts
	st.Dragging = g.board.Dragging() != nil
	return st
}

// Board returns the underlying board, nil before the first Reset.
func (g *Game) Board() *board.Board {
	return g.board
}

// Config returns the effective configuration.
func (g *Game) Config() config.GemSwapConfig {
	return g.cfg
}
