package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size their arena and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in pixels
	ScreenH  int   // Viewport height in pixels
	TickRate int   // Frames per second the platform drives Step at
	Seed     int64 // RNG seed for deterministic gameplay
	Debug    bool  // Draw the debug overlay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  1280,
		ScreenH:  720,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Viewport returns the configured screen size.
func (c RuntimeConfig) Viewport() Viewport {
	return Viewport{W: c.ScreenW, H: c.ScreenH}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
