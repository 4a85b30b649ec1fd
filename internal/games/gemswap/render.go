package gemswap

import (
	"fmt"

	"github.com/vovakirdan/tui-gemswap/internal/core"
)

const tokenRune = '█'

// Render draws the board to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.board == nil {
		return
	}

	g.renderHUD(dst)
	g.renderGrid(dst)
	g.renderTokens(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorWhite)
	need := fmt.Sprintf("Need %dx%d", g.view.width(), g.view.height()+hudHeight)
	dst.DrawTextCentered(y+1, need, core.ColorGray)
}

// renderHUD draws the title and counters above the board.
func (g *Game) renderHUD(dst *core.Screen) {
	n := g.board.Grid().Size
	stats := g.board.Stats()

	title := fmt.Sprintf("GEM SWAP %dx%d", n, n)
	counters := fmt.Sprintf("swaps: %d  reverts: %d", stats.Swaps, stats.Reverts)

	y := g.view.oy - hudHeight
	x := g.view.ox
	dst.DrawTextColor(x, y, title, core.ColorTitle)

	cx := x + g.view.width() - len(counters)
	if cx < x+len(title)+1 {
		cx = x + len(title) + 1
	}
	dst.DrawTextColor(cx, y, counters, core.ColorGray)
}

// renderGrid outlines every cell, sharing edges with its neighbors.
func (g *Game) renderGrid(dst *core.Screen) {
	n := g.board.Grid().Size
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			x, y := g.view.cellOrigin(row, col)
			dst.DrawBox(core.NewRect(x, y, g.view.cols+1, g.view.rows+1), core.ColorDim)
		}
	}
}

// renderTokens draws tokens back to front; the dragged one is drawn last and faint.
func (g *Game) renderTokens(dst *core.Screen) {
	for _, t := range g.board.DrawOrder() {
		p := t.Position()
		x, y := g.view.tokenOrigin(p.X, p.Y)
		cell := core.Cell{
			Rune:  tokenRune,
			Color: g.colorOf(t.Color),
			Faint: t.Dragging(),
		}
		dst.FillRect(core.NewRect(x, y, g.view.tokenW, g.view.tokenH), cell)
	}
}

func (g *Game) colorOf(i int) core.Color {
	if i < 0 || i >= len(g.colors) {
		return core.ColorWhite
	}
	return g.colors[i]
}
