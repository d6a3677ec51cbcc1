package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for decoration scatter
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended (win or loss)
	Won      bool // Whether the session ended by reaching the goal
	Paused   bool // Whether the game is paused
	Started  bool // Whether the session has left the idle state
	Coins    int  // Coins held toward the next extra life
	Lives    int  // Lives left
	Time     int  // Seconds left on the clock
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
