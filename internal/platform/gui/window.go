// Package gui runs a board in a desktop window with Ebitengine.
// The window uses board pixels 1:1, so the pointer needs no scaling
// beyond the board's offset inside the window.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-gemswap/internal/board"
	"github.com/vovakirdan/tui-gemswap/internal/config"
	"github.com/vovakirdan/tui-gemswap/internal/storage"
)

const hudBaseline = 20

var (
	background = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	gridLine   = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	hudText    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hudSoft    = color.RGBA{R: 140, G: 140, B: 160, A: 255}
)

// Options configures a Window.
type Options struct {
	Variant config.Variant
	Config  config.GemSwapConfig
	Store   *storage.Store // Optional; sessions are not saved without it
	Logger  *log.Logger    // Optional; defaults to discarding
	Seed    int64          // 0 means time based
}

// Window implements ebiten.Game for one board variant.
type Window struct {
	opts    Options
	colors  []colorful.Color
	board   *board.Board
	mode    board.AdjacencyMode
	face    font.Face
	logger  *log.Logger
	originX float64
	originY float64

	seed      int64
	startedAt time.Time
	saved     bool
}

// NewWindow validates the config and deals the first board.
func NewWindow(opts Options) (*Window, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	colors, err := opts.Config.Colors()
	if err != nil {
		return nil, err
	}
	mode, err := opts.Config.AdjacencyMode()
	if err != nil {
		return nil, err
	}

	w := &Window{
		opts:   opts,
		colors: colors,
		mode:   mode,
		face:   basicfont.Face7x13,
		logger: opts.Logger,
		seed:   opts.Seed,
	}
	if w.logger == nil {
		w.logger = log.New(io.Discard)
	}

	grid := opts.Config.Grid()
	w.originX = (float64(opts.Config.Window.Width) - grid.Extent()) / 2
	w.originY = (float64(opts.Config.Window.Height) - grid.Extent()) / 2

	if err := w.deal(); err != nil {
		return nil, err
	}
	return w, nil
}

// deal replaces the board with a fresh one.
func (w *Window) deal() error {
	if w.seed == 0 {
		w.seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(w.seed))
	b, err := board.New(w.opts.Config.Grid(), len(w.colors), rng, board.WithAdjacency(w.mode))
	if err != nil {
		return err
	}
	w.board = b
	w.startedAt = time.Now()
	w.saved = false
	w.logger.Debug("board dealt", "game", w.opts.Variant, "seed", w.seed)
	return nil
}

// restart saves the finished board and deals a new one.
func (w *Window) restart() error {
	w.saveSession()
	w.seed = time.Now().UnixNano()
	return w.deal()
}

// Update handles input once per tick.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.saveSession()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := w.restart(); err != nil {
			return err
		}
	}

	mx, my := ebiten.CursorPosition()
	x := float64(mx) - w.originX
	y := float64(my) - w.originY

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		w.pointerDown(x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		w.pointerMove(x, y)
		w.pointerUp()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		w.pointerMove(x, y)
	}
	return nil
}

// pointerDown lifts the topmost token under the pointer.
func (w *Window) pointerDown(x, y float64) {
	t := w.board.TokenAt(x, y)
	if t == nil {
		return
	}
	if err := w.board.PickUp(t.ID); err != nil {
		return
	}
	w.logger.Debug("pick up", "token", t.ID, "slot", w.board.SlotOf(t))
}

// pointerMove drags the held token to the pointer.
func (w *Window) pointerMove(x, y float64) {
	if t := w.board.Dragging(); t != nil {
		//nolint:errcheck // t is the dragged token
		w.board.Move(t.ID, x, y)
	}
}

// pointerUp drops the held token.
func (w *Window) pointerUp() {
	t := w.board.Dragging()
	if t == nil {
		return
	}
	out, err := w.board.Release(t.ID)
	if err != nil {
		return
	}
	if out.Kind == board.Committed {
		w.logger.Debug("swap", "token", out.Token, "partner", out.Partner,
			"from", out.From, "to", out.To, "direction", out.Direction)
		return
	}
	w.logger.Debug("revert", "token", out.Token, "slot", out.From)
}

// saveSession stores the counters of the current board, if it was played.
func (w *Window) saveSession() {
	stats := w.board.Stats()
	if w.opts.Store == nil || w.saved || stats.PickUps == 0 {
		return
	}

	_, err := w.opts.Store.SaveSession(storage.Session{
		GameID:    string(w.opts.Variant),
		PickUps:   stats.PickUps,
		Swaps:     stats.Swaps,
		Reverts:   stats.Reverts,
		StartedAt: w.startedAt,
		EndedAt:   time.Now(),
	})
	if err != nil {
		w.logger.Warn("could not save session", "error", err)
		return
	}
	w.saved = true
}

// Draw renders grid lines, then tokens in draw order.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	grid := w.board.Grid()
	for i, n := 0, grid.Len(); i < n; i++ {
		cx, cy := grid.CellOrigin(i)
		vector.StrokeRect(screen,
			float32(w.originX+cx), float32(w.originY+cy),
			float32(grid.CellSize), float32(grid.CellSize),
			float32(grid.Border), gridLine, false)
	}

	for _, t := range w.board.DrawOrder() {
		r := t.Bounds()
		vector.DrawFilledRect(screen,
			float32(w.originX+r.X), float32(w.originY+r.Y),
			float32(r.W), float32(r.H),
			w.tokenColor(t), false)
	}

	stats := w.board.Stats()
	hud := fmt.Sprintf("GEM SWAP %dx%d  swaps: %d  reverts: %d",
		grid.Size, grid.Size, stats.Swaps, stats.Reverts)
	text.Draw(screen, hud, w.face, int(w.originX), hudBaseline, hudText)

	hint := "drag a gem onto a neighbor  R: new board  Q: quit"
	text.Draw(screen, hint, w.face, int(w.originX), w.opts.Config.Window.Height-8, hudSoft)
}

// tokenColor returns the palette color with the token's alpha applied.
func (w *Window) tokenColor(t *board.Token) color.Color {
	c := colorful.Color{R: 1, G: 1, B: 1}
	if t.Color >= 0 && t.Color < len(w.colors) {
		c = w.colors[t.Color]
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(t.Alpha * 255)}
}

// Layout returns the fixed logical screen size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.opts.Config.Window.Width, w.opts.Config.Window.Height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	w, err := NewWindow(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Config.Window.Width, opts.Config.Window.Height)
	ebiten.SetWindowTitle(fmt.Sprintf("Gem Swap - %s", opts.Variant))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	err = ebiten.RunGame(w)
	// Closing the window without Q still ends the session.
	w.saveSession()
	return err
}
