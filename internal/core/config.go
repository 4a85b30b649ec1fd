package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for the board colors
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a board session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	PickUps  int  // Drags started
	Swaps    int  // Committed swaps
	Reverts  int  // Drags that snapped back
	Dragging bool // Whether a token is currently held
	TooSmall bool // Whether the screen cannot fit the board
}

// StepResult is returned after each pointer event.
type StepResult struct {
	State GameState
	Event Event
}
