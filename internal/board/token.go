package board

import "github.com/vovakirdan/tui-gemswap/internal/core"

const (
	// dragLift is added to a token's Z while it is held.
	dragLift = 100

	restAlpha = 1.0
	dragAlpha = 0.5
)

// Point is a position in board pixels.
type Point struct {
	X, Y float64
}

// Token is a draggable gem. Its ID never changes; its slot does, on every
// committed swap.
type Token struct {
	ID    int     // Row-major slot the token was created in
	X, Y  float64 // Center position in board pixels
	Color int     // Palette index
	Z     int     // Stacking order, raised while dragged
	Alpha float64 // Opacity, lowered while dragged
	Row   int     // Current row, kept in step with the board sequence
	Col   int     // Current column, kept in step with the board sequence

	size    float64
	session *dragSession
}

// dragSession is the transient state captured at pick-up.
type dragSession struct {
	origin     Point
	originSlot int
	neighbors  Neighbors
}

// Position returns the token's current center.
func (t *Token) Position() Point {
	return Point{X: t.X, Y: t.Y}
}

// Dragging reports whether the token is currently held.
func (t *Token) Dragging() bool {
	return t.session != nil
}

// Bounds returns the token's on-screen footprint.
func (t *Token) Bounds() core.RectF {
	return core.RectAround(t.X, t.Y, t.size, t.size)
}

func (t *Token) moveTo(p Point) {
	t.X, t.Y = p.X, p.Y
}
