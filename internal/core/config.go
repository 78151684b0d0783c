package core

// World cell metrics. The simulation runs in a virtual pixel space so the
// physics tuning constants stay resolution-independent; each terminal cell
// maps to a CellW x CellH block of world pixels.
const (
	CellW = 12.0
	CellH = 24.0
)

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

// CanvasW returns the virtual world width in pixels.
func (c RuntimeConfig) CanvasW() float64 {
	return float64(c.ScreenW) * CellW
}

// CanvasH returns the virtual world height in pixels.
func (c RuntimeConfig) CanvasH() float64 {
	return float64(c.ScreenH) * CellH
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level (1-based)
	Health   int  // Remaining player health
	Distance int  // World pixels scrolled this run
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
