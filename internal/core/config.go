package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the board, adapt to the screen, and seed placement.
type RuntimeConfig struct {
	BoardW  int   // Board width in cells
	BoardH  int   // Board height in cells
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		BoardW:  5,
		BoardH:  5,
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Steps     int  // Accepted moves so far
	CoinsLeft int  // Coins still on the board
	Won       bool // Whether every coin has been collected

	// Notice is the win notice scheduled but not yet delivered, if any.
	Notice *WinNotice
}

// StepResult is returned by Game.HandleKey() after each key event.
type StepResult struct {
	State GameState

	// Moved is true when the event produced an accepted move.
	Moved bool

	// Collected is the number of coins removed by this event.
	Collected int

	// Notice is set on the event that scheduled the win notification.
	Notice *WinNotice
}
