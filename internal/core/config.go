package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Debug    bool  // Draw collider overlays
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

// Dt returns the fixed simulation step in seconds.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Cue is a one-shot notification from the simulation, used for sound effects.
type Cue int

const (
	CueFire Cue = iota
	CueExplosion
	CueProcessKilled
	CuePlayerHit
)

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any cues raised during the tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}
