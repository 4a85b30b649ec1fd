package board

import (
	"fmt"

	"github.com/vovakirdan/tui-gemswap/internal/core"
)

// PickUp starts dragging token id: it records the origin, caches the
// neighbor set and lifts the token above all others.
// Only one token may be held at a time.
func (b *Board) PickUp(id int) error {
	t := b.Token(id)
	if t == nil {
		return fmt.Errorf("%w: %d", ErrNoSuchToken, id)
	}
	if b.active != nil {
		return fmt.Errorf("%w: token %d is held", ErrDragInProgress, b.active.ID)
	}

	slot := b.SlotOf(t)
	t.session = &dragSession{
		origin:     t.Position(),
		originSlot: slot,
		neighbors:  b.Neighbors(slot),
	}
	t.Z += dragLift
	t.Alpha = dragAlpha

	b.active = t
	b.stats.PickUps++
	return nil
}

// Move places the held token at the board-local point (x, y), clamped so
// the token stays on the playfield. It returns the applied position.
func (b *Board) Move(id int, x, y float64) (Point, error) {
	t := b.active
	if t == nil || t.ID != id {
		return Point{}, fmt.Errorf("%w: %d", ErrNotDragging, id)
	}

	lo, hi := b.grid.DragBounds()
	p := Point{
		X: core.ClampF(x, lo, hi),
		Y: core.ClampF(y, lo, hi),
	}
	t.moveTo(p)
	return p, nil
}

// Release drops the held token and either commits a swap with an
// overlapping neighbor or snaps the token back to its origin.
func (b *Board) Release(id int) (Outcome, error) {
	t := b.active
	if t == nil || t.ID != id {
		return Outcome{}, fmt.Errorf("%w: %d", ErrNotDragging, id)
	}

	session := t.session
	t.Z -= dragLift
	t.Alpha = restAlpha
	t.session = nil
	b.active = nil

	return b.resolve(t, session), nil
}
