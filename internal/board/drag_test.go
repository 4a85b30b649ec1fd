package board

import (
	"errors"
	"testing"
)

func TestPickUp(t *testing.T) {
	b := newTestBoard(t)

	if err := b.PickUp(9); err != nil {
		t.Fatalf("PickUp() failed: %v", err)
	}

	tok := b.Token(9)
	if !tok.Dragging() || b.Dragging() != tok {
		t.Fatal("token 9 should be held")
	}
	if tok.Z != dragLift {
		t.Errorf("Z = %d, expected %d", tok.Z, dragLift)
	}
	if tok.Alpha != dragAlpha {
		t.Errorf("Alpha = %v, expected %v", tok.Alpha, dragAlpha)
	}

	s := tok.session
	if s.originSlot != 9 || s.origin != (Point{81, 81}) {
		t.Errorf("session origin = slot %d at %v, expected slot 9 at {81 81}", s.originSlot, s.origin)
	}
	if s.neighbors != (Neighbors{1, 17, 8, 10}) {
		t.Errorf("cached neighbors = %v, expected [1 17 8 10]", s.neighbors)
	}
	if b.Stats().PickUps != 1 {
		t.Errorf("PickUps = %d, expected 1", b.Stats().PickUps)
	}
}

func TestPickUpErrors(t *testing.T) {
	b := newTestBoard(t)

	if err := b.PickUp(64); !errors.Is(err, ErrNoSuchToken) {
		t.Errorf("PickUp(64) error = %v, expected ErrNoSuchToken", err)
	}

	if err := b.PickUp(3); err != nil {
		t.Fatalf("PickUp(3) failed: %v", err)
	}
	if err := b.PickUp(4); !errors.Is(err, ErrDragInProgress) {
		t.Errorf("second PickUp error = %v, expected ErrDragInProgress", err)
	}
	if err := b.PickUp(3); !errors.Is(err, ErrDragInProgress) {
		t.Errorf("repeated PickUp error = %v, expected ErrDragInProgress", err)
	}

	// The first drag is unaffected
	if b.Dragging().ID != 3 || b.Token(4).Dragging() {
		t.Error("rejected pick-up should not disturb the held token")
	}
	if b.Token(3).Z != dragLift {
		t.Errorf("Z after repeated pick-up = %d, expected %d", b.Token(3).Z, dragLift)
	}
}

func TestMoveClamps(t *testing.T) {
	tests := []struct {
		name  string
		x, y  float64
		wantX float64
		wantY float64
	}{
		{"inside", 100, 200, 100, 200},
		{"at min", 18, 18, 18, 18},
		{"at max", 414, 414, 414, 414},
		{"left of board", -50, 200, 18, 200},
		{"above board", 100, 3, 100, 18},
		{"right of board", 1000, 200, 414, 200},
		{"below board", 100, 415, 100, 414},
		{"past last token", 428, 428, 414, 414},
		{"far corner", -1e9, 1e9, 18, 414},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBoard(t)
			if err := b.PickUp(0); err != nil {
				t.Fatalf("PickUp() failed: %v", err)
			}

			p, err := b.Move(0, tc.x, tc.y)
			if err != nil {
				t.Fatalf("Move() failed: %v", err)
			}
			if p.X != tc.wantX || p.Y != tc.wantY {
				t.Errorf("Move(%v, %v) = %v, expected {%v %v}", tc.x, tc.y, p, tc.wantX, tc.wantY)
			}
			tok := b.Token(0)
			if tok.X != tc.wantX || tok.Y != tc.wantY {
				t.Errorf("token at (%v, %v), expected (%v, %v)", tok.X, tok.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestMoveAndReleaseRequireHeldToken(t *testing.T) {
	b := newTestBoard(t)

	if _, err := b.Move(0, 50, 50); !errors.Is(err, ErrNotDragging) {
		t.Errorf("Move() without pick-up error = %v, expected ErrNotDragging", err)
	}
	if _, err := b.Release(0); !errors.Is(err, ErrNotDragging) {
		t.Errorf("Release() without pick-up error = %v, expected ErrNotDragging", err)
	}

	if err := b.PickUp(1); err != nil {
		t.Fatalf("PickUp() failed: %v", err)
	}
	if _, err := b.Move(0, 50, 50); !errors.Is(err, ErrNotDragging) {
		t.Errorf("Move() of another token error = %v, expected ErrNotDragging", err)
	}
	if b.Token(0).X != 27 {
		t.Error("Move() of a resting token should not change it")
	}
	if _, err := b.Release(0); !errors.Is(err, ErrNotDragging) {
		t.Errorf("Release() of another token error = %v, expected ErrNotDragging", err)
	}
}

func TestReleaseRestoresLift(t *testing.T) {
	b := newTestBoard(t)

	if err := b.PickUp(5); err != nil {
		t.Fatalf("PickUp() failed: %v", err)
	}
	if _, err := b.Release(5); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}

	tok := b.Token(5)
	if tok.Z != 0 || tok.Alpha != restAlpha || tok.Dragging() || b.Dragging() != nil {
		t.Errorf("released token should be at rest, got Z=%d alpha=%v", tok.Z, tok.Alpha)
	}

	// A new drag can start after release
	if err := b.PickUp(6); err != nil {
		t.Errorf("PickUp() after release failed: %v", err)
	}
}
