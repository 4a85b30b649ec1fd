package board

import "fmt"

// Direction names one of the four swap neighbors.
type Direction int

// Directions are declared in swap priority order: when a release overlaps
// several neighbors, the first one in this order wins.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in swap priority order.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// AdjacencyMode selects the bottom-edge rule for the down neighbor.
type AdjacencyMode string

const (
	// AdjacencyStrict gives slot i a down neighbor iff i+N < N².
	AdjacencyStrict AdjacencyMode = "strict"

	// AdjacencyLegacy gives slot i a down neighbor iff i+N < N²-1.
	// Under it slot N²-1-N, the right end of the second-to-last row,
	// cannot swap downward.
	AdjacencyLegacy AdjacencyMode = "legacy"
)

// ParseAdjacencyMode converts a config string into a mode.
// The empty string selects AdjacencyStrict.
func ParseAdjacencyMode(s string) (AdjacencyMode, error) {
	switch AdjacencyMode(s) {
	case "", AdjacencyStrict:
		return AdjacencyStrict, nil
	case AdjacencyLegacy:
		return AdjacencyLegacy, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownAdjacency, s)
	}
}

// Neighbors holds the slot of each neighbor, or -1 when absent.
// It is plain data: caching it does not alias any board state.
type Neighbors [len(Directions)]int

// Get returns the neighbor slot in direction d.
func (n Neighbors) Get(d Direction) (int, bool) {
	slot := n[d]
	return slot, slot >= 0
}

// Count returns how many neighbors exist.
func (n Neighbors) Count() int {
	count := 0
	for _, slot := range n {
		if slot >= 0 {
			count++
		}
	}
	return count
}

// NeighborSlots computes the four-neighbor set of slot i from linear index
// arithmetic alone. Out-of-range indices have no neighbors.
func NeighborSlots(g Grid, mode AdjacencyMode, i int) Neighbors {
	n := Neighbors{-1, -1, -1, -1}
	if !g.Contains(i) {
		return n
	}

	size, length := g.Size, g.Len()

	if i-size >= 0 {
		n[Up] = i - size
	}

	downLimit := length
	if mode == AdjacencyLegacy {
		downLimit = length - 1
	}
	if i+size < downLimit {
		n[Down] = i + size
	}

	if i%size != 0 {
		n[Left] = i - 1
	}

	if i < length-1 && (i+1)%size != 0 {
		n[Right] = i + 1
	}

	return n
}
