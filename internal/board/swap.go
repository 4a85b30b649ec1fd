package board

// OutcomeKind tells how a release ended.
type OutcomeKind int

const (
	Reverted OutcomeKind = iota
	Committed
)

// String returns a human-readable name for the outcome kind.
func (k OutcomeKind) String() string {
	if k == Committed {
		return "committed"
	}
	return "reverted"
}

// Outcome describes the result of a release.
// From and To are slots of the dragged token before and after; for a
// revert they are equal and Partner is -1.
type Outcome struct {
	Kind      OutcomeKind
	Token     int
	Partner   int
	From      int
	To        int
	Direction Direction
}

// resolve picks at most one swap target among the cached neighbors and
// commits the swap, or reverts the token to its origin.
func (b *Board) resolve(t *Token, s *dragSession) Outcome {
	revert := Outcome{
		Kind:    Reverted,
		Token:   t.ID,
		Partner: -1,
		From:    s.originSlot,
		To:      s.originSlot,
	}

	if t.Position() == s.origin {
		return b.revert(t, s, revert)
	}

	bounds := t.Bounds()
	for _, d := range Directions {
		slot, ok := s.neighbors.Get(d)
		if !ok {
			continue
		}
		hit := b.seq[slot]
		if !bounds.Overlaps(hit.Bounds()) {
			continue
		}

		b.commit(t, hit, s)
		b.stats.Swaps++
		return Outcome{
			Kind:      Committed,
			Token:     t.ID,
			Partner:   hit.ID,
			From:      s.originSlot,
			To:        slot,
			Direction: d,
		}
	}

	return b.revert(t, s, revert)
}

func (b *Board) revert(t *Token, s *dragSession, out Outcome) Outcome {
	t.moveTo(s.origin)
	b.stats.Reverts++
	return out
}

// commit exchanges the two tokens' slots and screen positions together so
// adjacency and placement cannot drift apart.
func (b *Board) commit(t, hit *Token, s *dragSession) {
	from := s.originSlot
	to := b.SlotOf(hit)

	b.seq[from], b.seq[to] = hit, t
	t.Row, t.Col, hit.Row, hit.Col = hit.Row, hit.Col, t.Row, t.Col

	t.moveTo(hit.Position())
	hit.moveTo(s.origin)
}
