package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size their board and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW      int    // Screen width in characters
	ScreenH      int    // Screen height in characters
	BoardW       int    // Playing field width including the wall ring
	BoardH       int    // Playing field height including the wall ring
	TickRate     int    // Simulation ticks per second
	Seed         int64  // RNG seed for deterministic gameplay
	StartDir     string // Initial heading name ("up", "down", "left", "right")
	FoodAttempts int    // Random placement attempts before scanning for a free cell
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		BoardW:       24,
		BoardH:       24,
		TickRate:     7,
		Seed:         0, // 0 means use current time in platform layer
		StartDir:     "up",
		FoodAttempts: 64,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Ticks    uint64 // Simulated ticks so far
	GameOver bool   // Whether the session has ended
	Reason   string // Why the session ended; empty while live
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
