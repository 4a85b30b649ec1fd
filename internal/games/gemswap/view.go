package gemswap

import (
	"math"

	"github.com/vovakirdan/tui-gemswap/internal/config"
)

const hudHeight = 1

// view maps board pixels to terminal cells and back.
// Every grid cell spans cols x rows terminal cells; neighboring cells
// share their outline, so the board is N*cols+1 wide and N*rows+1 tall.
type view struct {
	size       int
	cols, rows int
	sx, sy     float64 // board pixels per terminal cell
	ox, oy     int     // terminal position of the board's top-left corner
	tokenW     int
	tokenH     int
}

// newView centers the board below the HUD on a w x h screen.
func newView(cfg config.GemSwapConfig, w, h int) view {
	v := view{
		size: cfg.Board.Size,
		cols: cfg.Terminal.CellCols,
		rows: cfg.Terminal.CellRows,
	}
	v.sx = cfg.Board.CellSize / float64(v.cols)
	v.sy = cfg.Board.CellSize / float64(v.rows)
	v.ox = (w - v.width()) / 2
	v.oy = hudHeight + (h-hudHeight-v.height())/2
	v.tokenW = max(1, int(math.Round(cfg.Board.TokenSize/v.sx)))
	v.tokenH = max(1, int(math.Round(cfg.Board.TokenSize/v.sy)))
	return v
}

func (v view) width() int {
	return v.size*v.cols + 1
}

func (v view) height() int {
	return v.size*v.rows + 1
}

// fits reports whether the board and HUD fit on a w x h screen.
func (v view) fits(w, h int) bool {
	return w >= v.width() && h >= v.height()+hudHeight
}

// toBoard maps the center of terminal cell (tx, ty) to board pixels.
func (v view) toBoard(tx, ty int) (x, y float64) {
	x = (float64(tx-v.ox) + 0.5) * v.sx
	y = (float64(ty-v.oy) + 0.5) * v.sy
	return x, y
}

// tokenOrigin returns the top-left terminal cell of a token block
// centered on board pixel (x, y).
func (v view) tokenOrigin(x, y float64) (tx, ty int) {
	cx := x/v.sx + float64(v.ox)
	cy := y/v.sy + float64(v.oy)
	tx = int(math.Round(cx - float64(v.tokenW)/2))
	ty = int(math.Round(cy - float64(v.tokenH)/2))
	return tx, ty
}

// cellOrigin returns the terminal position of the outline corner of cell (row, col).
func (v view) cellOrigin(row, col int) (tx, ty int) {
	return v.ox + col*v.cols, v.oy + row*v.rows
}
