package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic bridge layouts
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

// GameState represents the current state of a game as seen by the platform.
type GameState struct {
	Score    int  // Final or running score
	GameOver bool // Whether the run has ended
	Won      bool // Whether the run ended in success
	Paused   bool // Whether the game is paused

	// Run details for leaderboard persistence. Only meaningful once
	// GameOver is true.
	Difficulty   string  // Difficulty tier id
	Rank         string  // Letter rank (S/A/B/C/D, F for failed runs)
	Accuracy     float64 // Average repair accuracy percent
	MaxCombo     int     // Best consecutive Perfect/Good streak
	DurationSecs float64 // Run duration in seconds
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
