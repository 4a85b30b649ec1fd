// Package board implements the interactive core of the gem swap board:
// grid topology, tokens, neighbor resolution, drag tracking and swap
// resolution. It has no rendering or input dependencies; the platform
// layers read token state after every call and draw it.
package board

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGrid is returned by Grid.Validate for unusable dimensions.
var ErrInvalidGrid = errors.New("board: invalid grid")

// Grid is the static N×N board topology.
// All lengths are in board pixels with the origin at the top-left cell corner.
type Grid struct {
	Size      int     // N, tokens per side
	CellSize  float64 // Edge length of a square cell
	TokenSize float64 // Edge length of a token footprint
	Border    float64 // Grid line thickness
}

// DefaultGrid returns the classic 8×8 board.
func DefaultGrid() Grid {
	return Grid{
		Size:      8,
		CellSize:  54,
		TokenSize: 40,
		Border:    2,
	}
}

// Validate checks the grid dimensions.
// N=1 is accepted: it has no neighbors, so every drag reverts.
func (g Grid) Validate() error {
	switch {
	case g.Size < 1:
		return fmt.Errorf("%w: size %d must be at least 1", ErrInvalidGrid, g.Size)
	case g.CellSize <= 0:
		return fmt.Errorf("%w: cell size %v must be positive", ErrInvalidGrid, g.CellSize)
	case g.TokenSize <= 0 || g.TokenSize > g.CellSize:
		return fmt.Errorf("%w: token size %v must be in (0, %v]", ErrInvalidGrid, g.TokenSize, g.CellSize)
	case g.Border < 0:
		return fmt.Errorf("%w: border %v must not be negative", ErrInvalidGrid, g.Border)
	}

	if lo, hi := g.DragBounds(); lo > hi {
		return fmt.Errorf("%w: drag bounds [%v, %v] are empty", ErrInvalidGrid, lo, hi)
	}
	return nil
}

// Len returns the number of cells, N².
func (g Grid) Len() int {
	return g.Size * g.Size
}

// Contains reports whether i is a valid linear cell index.
func (g Grid) Contains(i int) bool {
	return i >= 0 && i < g.Len()
}

// RowCol maps a linear index to its row and column.
func (g Grid) RowCol(i int) (row, col int) {
	return i / g.Size, i % g.Size
}

// Index maps a row and column to the linear index.
func (g Grid) Index(row, col int) int {
	return row*g.Size + col
}

// CellOrigin returns the top-left corner of cell i.
func (g Grid) CellOrigin(i int) (x, y float64) {
	row, col := g.RowCol(i)
	return float64(col) * g.CellSize, float64(row) * g.CellSize
}

// CellCenter returns the center of cell i, where its token rests.
func (g Grid) CellCenter(i int) (x, y float64) {
	x, y = g.CellOrigin(i)
	return x + g.CellSize/2, y + g.CellSize/2
}

// Extent returns the length of the cell grid on either axis.
func (g Grid) Extent() float64 {
	return float64(g.Size) * g.CellSize
}

// TokenExtent returns the length covered by the resting tokens' footprints
// on either axis: from the first token's outer edge to the last one's.
// Cell padding outside the outermost tokens is not part of it.
func (g Grid) TokenExtent() float64 {
	return float64(g.Size-1)*g.CellSize + g.TokenSize
}

// DragBounds returns the range a dragged token's center is clamped to on
// both axes.
func (g Grid) DragBounds() (min, max float64) {
	return g.TokenSize/2 - g.Border, g.TokenExtent() - 2*g.Border
}

// SlotAt returns the cell containing the board-local point (x, y).
func (g Grid) SlotAt(x, y float64) (int, bool) {
	if x < 0 || y < 0 {
		return -1, false
	}
	col := int(math.Floor(x / g.CellSize))
	row := int(math.Floor(y / g.CellSize))
	if col >= g.Size || row >= g.Size {
		return -1, false
	}
	return g.Index(row, col), true
}
