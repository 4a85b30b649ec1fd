package board

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNoSuchToken is returned for a token ID that is not on the board.
	ErrNoSuchToken = errors.New("board: no such token")

	// ErrDragInProgress is returned when a second token is picked up
	// before the first is released.
	ErrDragInProgress = errors.New("board: drag already in progress")

	// ErrNotDragging is returned when moving or releasing a token that is
	// not held.
	ErrNotDragging = errors.New("board: token is not being dragged")

	// ErrUnknownAdjacency is returned for an adjacency mode other than
	// strict or legacy.
	ErrUnknownAdjacency = errors.New("board: unknown adjacency mode")
)

// Rand is the source of uniform random integers used for colors.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Stats counts gestures over the board's lifetime.
type Stats struct {
	PickUps int
	Swaps   int
	Reverts int
}

// Board owns the tokens and the display sequence. The position of a token
// in the sequence is its slot and defines adjacency; Row and Col on every
// token always agree with it.
type Board struct {
	grid      Grid
	adjacency AdjacencyMode
	palette   int

	tokens []*Token // indexed by ID
	seq    []*Token // indexed by slot
	active *Token
	stats  Stats
}

// Option configures a Board.
type Option func(*Board)

// WithAdjacency selects the down-neighbor rule.
// New rejects modes other than AdjacencyStrict and AdjacencyLegacy;
// the empty mode means AdjacencyStrict.
func WithAdjacency(mode AdjacencyMode) Option {
	return func(b *Board) {
		b.adjacency = mode
	}
}

// New creates a board with one token per cell, in row-major order, each
// centered in its cell with a color drawn uniformly from [0, paletteSize).
func New(grid Grid, paletteSize int, rng Rand, opts ...Option) (*Board, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if paletteSize < 1 {
		return nil, fmt.Errorf("board: palette size %d must be at least 1", paletteSize)
	}

	b := &Board{
		grid:      grid,
		adjacency: AdjacencyStrict,
		palette:   paletteSize,
		tokens:    make([]*Token, grid.Len()),
		seq:       make([]*Token, grid.Len()),
	}
	for _, opt := range opts {
		opt(b)
	}

	mode, err := ParseAdjacencyMode(string(b.adjacency))
	if err != nil {
		return nil, err
	}
	b.adjacency = mode

	for i := range b.seq {
		x, y := grid.CellCenter(i)
		row, col := grid.RowCol(i)
		t := &Token{
			ID:    i,
			X:     x,
			Y:     y,
			Color: rng.Intn(paletteSize),
			Alpha: restAlpha,
			Row:   row,
			Col:   col,
			size:  grid.TokenSize,
		}
		b.tokens[i] = t
		b.seq[i] = t
	}

	return b, nil
}

// Grid returns the board topology.
func (b *Board) Grid() Grid {
	return b.grid
}

// Adjacency returns the down-neighbor rule in use.
func (b *Board) Adjacency() AdjacencyMode {
	return b.adjacency
}

// PaletteSize returns the number of colors tokens were drawn from.
func (b *Board) PaletteSize() int {
	return b.palette
}

// Len returns the number of tokens.
func (b *Board) Len() int {
	return len(b.seq)
}

// At returns the token in slot i, or nil.
func (b *Board) At(slot int) *Token {
	if !b.grid.Contains(slot) {
		return nil
	}
	return b.seq[slot]
}

// Token returns the token with the given ID, or nil.
func (b *Board) Token(id int) *Token {
	if id < 0 || id >= len(b.tokens) {
		return nil
	}
	return b.tokens[id]
}

// SlotOf returns the token's current slot.
func (b *Board) SlotOf(t *Token) int {
	return b.grid.Index(t.Row, t.Col)
}

// Sequence returns token IDs in slot order.
func (b *Board) Sequence() []int {
	ids := make([]int, len(b.seq))
	for slot, t := range b.seq {
		ids[slot] = t.ID
	}
	return ids
}

// DrawOrder returns the tokens sorted bottom to top.
// Equal Z keeps slot order, so a held token is always drawn last.
func (b *Board) DrawOrder() []*Token {
	order := make([]*Token, len(b.seq))
	copy(order, b.seq)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Z < order[j].Z
	})
	return order
}

// TokenAt returns the topmost token whose footprint contains (x, y).
func (b *Board) TokenAt(x, y float64) *Token {
	order := b.DrawOrder()
	for i := len(order) - 1; i >= 0; i-- {
		if order[i].Bounds().Contains(x, y) {
			return order[i]
		}
	}
	return nil
}

// Neighbors returns the current neighbor slots of slot i.
func (b *Board) Neighbors(slot int) Neighbors {
	return NeighborSlots(b.grid, b.adjacency, slot)
}

// Dragging returns the held token, or nil.
func (b *Board) Dragging() *Token {
	return b.active
}

// Stats returns the gesture counters.
func (b *Board) Stats() Stats {
	return b.stats
}
