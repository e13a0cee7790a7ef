package core

import "time"

// RuntimeConfig describes the terminal the game is shown on.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns the terminal size used when the real one is unknown.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int           // Current score
	Elapsed  time.Duration // Game time since the session started
	GameOver bool          // Whether the game has ended
	Paused   bool          // Whether the game is paused
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
}
