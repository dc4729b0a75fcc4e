package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// TickMs returns the duration of one tick in milliseconds.
// A non-positive TickRate falls back to 60 ticks per second.
func (c RuntimeConfig) TickMs() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1000.0 / float64(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunSummary describes a finished run for persistence and score displays.
type RunSummary struct {
	Score       int
	MostCleared string         // Name of the most-cleared symbol, empty if none
	Cleared     map[string]int // Symbol name -> cells cleared
}

// TotalCleared returns the number of cells cleared during the run.
func (s RunSummary) TotalCleared() int {
	total := 0
	for _, n := range s.Cleared {
		total += n
	}
	return total
}
