package core

// PointerKind is the phase of a pointer gesture.
type PointerKind int

const (
	PointerNone PointerKind = iota
	PointerDown             // Button pressed
	PointerMove             // Motion while pressed
	PointerUp               // Button released
)

// String returns a human-readable name for the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "none"
	}
}

// PointerEvent is a single event of the pointer stream, in screen cells.
// The platform delivers down, zero or more moves, then exactly one up.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// EventKind describes what a pointer event did to the board.
type EventKind int

const (
	EventNone    EventKind = iota
	EventPickUp            // A token was lifted
	EventSwap              // A release committed a swap
	EventRevert            // A release snapped the token back
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPickUp:
		return "pickup"
	case EventSwap:
		return "swap"
	case EventRevert:
		return "revert"
	default:
		return "none"
	}
}

// Event reports a board change for logging and statistics.
// Token and Partner are token IDs; From and To are slots. Partner is -1
// unless Kind is EventSwap.
type Event struct {
	Kind    EventKind
	Token   int
	Partner int
	From    int
	To      int
}
