package gemswap

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-gemswap/internal/board"
	"github.com/vovakirdan/tui-gemswap/internal/config"
	"github.com/vovakirdan/tui-gemswap/internal/core"
	"github.com/vovakirdan/tui-gemswap/internal/registry"
)

// newTestGame returns a default 8x8 game on an 80x24 screen.
// The board is drawn at (19, 4); cell (row, col) has its interior at
// x = 20+5*col .. 23+5*col, y = 5+2*row.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewWithConfig(config.VariantClassic, config.DefaultGemSwapConfig())
	if err != nil {
		t.Fatalf("NewWithConfig() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})
	return g
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range config.Variants {
		if !registry.Exists(string(v)) {
			t.Errorf("variant %s not registered", v)
		}
	}
}

func TestViewLayout(t *testing.T) {
	g := newTestGame(t)

	if g.view.ox != 19 || g.view.oy != 4 {
		t.Errorf("origin = (%d, %d), expected (19, 4)", g.view.ox, g.view.oy)
	}
	if g.view.tokenW != 4 || g.view.tokenH != 1 {
		t.Errorf("token block = %dx%d, expected 4x1", g.view.tokenW, g.view.tokenH)
	}

	x, y := g.view.toBoard(21, 5)
	if x != 27 || y != 40.5 {
		t.Errorf("toBoard(21, 5) = (%v, %v), expected (27, 40.5)", x, y)
	}

	tx, ty := g.view.tokenOrigin(27, 27)
	if tx != 20 || ty != 5 {
		t.Errorf("tokenOrigin(27, 27) = (%d, %d), expected (20, 5)", tx, ty)
	}
}

func TestPointerSwap(t *testing.T) {
	g := newTestGame(t)

	res := g.Pointer(core.PointerEvent{Kind: core.PointerDown, X: 21, Y: 5})
	if res.Event.Kind != core.EventPickUp || res.Event.Token != 0 {
		t.Fatalf("down event = %+v, expected pick-up of token 0", res.Event)
	}
	if !res.State.Dragging {
		t.Error("State.Dragging = false after pick-up")
	}

	g.Pointer(core.PointerEvent{Kind: core.PointerMove, X: 26, Y: 5})
	res = g.Pointer(core.PointerEvent{Kind: core.PointerUp, X: 26, Y: 5})

	ev := res.Event
	if ev.Kind != core.EventSwap {
		t.Fatalf("up event = %v, expected swap", ev.Kind)
	}
	if ev.Token != 0 || ev.Partner != 1 || ev.From != 0 || ev.To != 1 {
		t.Errorf("swap = %+v, expected token 0 with 1, slot 0 -> 1", ev)
	}
	if res.State.Swaps != 1 || res.State.Dragging {
		t.Errorf("state = %+v, expected 1 swap and no drag", res.State)
	}

	seq := g.Board().Sequence()
	if seq[0] != 1 || seq[1] != 0 {
		t.Errorf("sequence starts %v, expected [1 0 ...]", seq[:2])
	}
}

func TestPointerClickReverts(t *testing.T) {
	g := newTestGame(t)

	g.Pointer(core.PointerEvent{Kind: core.PointerDown, X: 31, Y: 7})
	res := g.Pointer(core.PointerEvent{Kind: core.PointerUp, X: 31, Y: 7})

	if res.Event.Kind != core.EventRevert {
		t.Errorf("event = %v, expected revert", res.Event.Kind)
	}
	if res.Event.From != 10 || res.Event.To != 10 {
		t.Errorf("revert slots = %d -> %d, expected 10 -> 10", res.Event.From, res.Event.To)
	}
	if res.State.Reverts != 1 {
		t.Errorf("Reverts = %d, expected 1", res.State.Reverts)
	}
}

func TestPointerIgnored(t *testing.T) {
	tests := []struct {
		name string
		ev   core.PointerEvent
	}{
		{"down outside board", core.PointerEvent{Kind: core.PointerDown, X: 0, Y: 0}},
		{"down right of board", core.PointerEvent{Kind: core.PointerDown, X: 70, Y: 5}},
		{"move without drag", core.PointerEvent{Kind: core.PointerMove, X: 21, Y: 5}},
		{"up without drag", core.PointerEvent{Kind: core.PointerUp, X: 21, Y: 5}},
		{"none", core.PointerEvent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			res := g.Pointer(tt.ev)
			if res.Event.Kind != core.EventNone {
				t.Errorf("event = %v, expected none", res.Event.Kind)
			}
			if res.State != (core.GameState{}) {
				t.Errorf("state = %+v, expected zero", res.State)
			}
		})
	}
}

func TestSecondPressDuringDrag(t *testing.T) {
	g := newTestGame(t)

	g.Pointer(core.PointerEvent{Kind: core.PointerDown, X: 21, Y: 5})
	res := g.Pointer(core.PointerEvent{Kind: core.PointerDown, X: 31, Y: 7})
	if res.Event.Kind != core.EventNone {
		t.Errorf("second press event = %v, expected none", res.Event.Kind)
	}
	if held := g.Board().Dragging(); held == nil || held.ID != 0 {
		t.Errorf("dragging %v, expected token 0", held)
	}
}

func TestTooSmall(t *testing.T) {
	g, err := NewWithConfig(config.VariantClassic, config.DefaultGemSwapConfig())
	if err != nil {
		t.Fatalf("NewWithConfig() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, Seed: 7})

	if !g.State().TooSmall {
		t.Fatal("State().TooSmall = false on 30x10")
	}
	res := g.Pointer(core.PointerEvent{Kind: core.PointerDown, X: 5, Y: 5})
	if res.Event.Kind != core.EventNone {
		t.Errorf("event = %v while too small, expected none", res.Event.Kind)
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if got := screen.Row(5); got != "       Window too small       " {
		t.Errorf("row 5 = %q", got)
	}

	before := g.Board().Sequence()
	g.Resize(80, 24)
	if g.State().TooSmall {
		t.Error("State().TooSmall = true after resize to 80x24")
	}
	after := g.Board().Sequence()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("Resize changed the board at slot %d", i)
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if r := screen.Get(19, 4); r != '┌' {
		t.Errorf("top-left corner = %q, expected '┌'", r)
	}
	if r := screen.Get(59, 20); r != '┘' {
		t.Errorf("bottom-right corner = %q, expected '┘'", r)
	}
	if r := screen.Get(24, 6); r != '┼' {
		t.Errorf("inner junction = %q, expected '┼'", r)
	}

	tok := g.Board().At(0)
	palette := config.DefaultGemSwapConfig().Palette
	for x := 20; x <= 23; x++ {
		c := screen.GetCell(x, 5)
		if c.Rune != tokenRune {
			t.Errorf("cell (%d, 5) = %q, expected token", x, c.Rune)
		}
		if c.Color != core.Color(palette[tok.Color]) {
			t.Errorf("cell (%d, 5) color = %s, expected %s", x, c.Color, palette[tok.Color])
		}
		if c.Faint {
			t.Errorf("cell (%d, 5) faint at rest", x)
		}
	}

	if got := string([]rune(screen.Row(3))[19:31]); got != "GEM SWAP 8x8" {
		t.Errorf("HUD = %q, expected GEM SWAP 8x8", got)
	}
}

func TestRenderDraggedOnTop(t *testing.T) {
	g := newTestGame(t)
	dragged := g.Board().At(0)

	g.Pointer(core.PointerEvent{Kind: core.PointerDown, X: 21, Y: 5})
	g.Pointer(core.PointerEvent{Kind: core.PointerMove, X: 26, Y: 5})

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	palette := config.DefaultGemSwapConfig().Palette
	c := screen.GetCell(26, 5)
	if !c.Faint {
		t.Error("dragged token not faint")
	}
	if c.Color != core.Color(palette[dragged.Color]) {
		t.Errorf("top cell color = %s, expected dragged token's %s", c.Color, palette[dragged.Color])
	}
}

func TestMiniVariant(t *testing.T) {
	def := config.DefaultGemSwapConfig()
	SetConfig(&def)
	t.Cleanup(func() { SetConfig(nil) })

	g := New(config.VariantMini)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	if n := g.Board().Len(); n != 36 {
		t.Errorf("Len() = %d, expected 36", n)
	}
	if g.Title() != "Gem Swap 6x6" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestResetDeterministic(t *testing.T) {
	a := newTestGame(t)
	b := newTestGame(t)
	for i, n := 0, a.Board().Len(); i < n; i++ {
		if a.Board().At(i).Color != b.Board().At(i).Color {
			t.Fatalf("slot %d colors differ for the same seed", i)
		}
	}
}

func TestNewWithConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.GemSwapConfig)
	}{
		{"unknown adjacency", func(c *config.GemSwapConfig) { c.Adjacency = "diagonal" }},
		{"empty palette", func(c *config.GemSwapConfig) { c.Palette = nil }},
		{"zero size", func(c *config.GemSwapConfig) { c.Board.Size = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultGemSwapConfig()
			tc.modify(&cfg)
			g, err := NewWithConfig(config.VariantClassic, cfg)
			if !errors.Is(err, config.ErrInvalidConfig) {
				t.Errorf("NewWithConfig() error = %v, expected ErrInvalidConfig", err)
			}
			if g != nil {
				t.Error("NewWithConfig() should not return a game for an invalid config")
			}
		})
	}
}

func TestResetUsesConfiguredAdjacency(t *testing.T) {
	cfg := config.DefaultGemSwapConfig()
	cfg.Adjacency = "legacy"
	g, err := NewWithConfig(config.VariantClassic, cfg)
	if err != nil {
		t.Fatalf("NewWithConfig() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})

	if g.Board().Adjacency() != board.AdjacencyLegacy {
		t.Errorf("Adjacency() = %q, expected legacy", g.Board().Adjacency())
	}
	if g.Board().PaletteSize() != len(cfg.Palette) {
		t.Errorf("PaletteSize() = %d, expected %d", g.Board().PaletteSize(), len(cfg.Palette))
	}
}
