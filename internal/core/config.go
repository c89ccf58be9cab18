package core

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second
	Seed     int64 // RNG seed, 0 lets the platform pick one
}

// DefaultConfig returns the standard 80x24 terminal at 30 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the part of a game's state the platform cares about.
type GameState struct {
	Score    int
	Moves    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
// Events are short human-readable notes about what happened this tick,
// such as "cascade x2"; the platform may show or log them.
type StepResult struct {
	State  GameState
	Events []string
}
