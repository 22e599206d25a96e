package parameter

import "time"

// Match rules
const (
	// TargetScore is the banked score that wins the match
	TargetScore = 100

	// PlayerCount is fixed by the game
	PlayerCount = 2

	// DefaultPlayerOneName and DefaultPlayerTwoName label the scoreboard
	DefaultPlayerOneName = "Player 1"
	DefaultPlayerTwoName = "Player 2"
)

// Phase timing
const (
	// DisplayDelay is the pause after a roll resolves before input is accepted again
	DisplayDelay = 2 * time.Second

	// SettleCheckInterval is how often both pigs are polled for rest while rolling
	SettleCheckInterval = 100 * time.Millisecond

	// SettleConfirmDelay debounces the settle signal before the roll resolves
	SettleConfirmDelay = 100 * time.Millisecond
)

// Frame timing
const (
	// FrameUpdateInterval is the front-end tick (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// StreamUpdateInterval throttles snapshot broadcast to spectators
	StreamUpdateInterval = 50 * time.Millisecond
)

// Bench
const (
	// MaxTicksPerToss bounds a headless toss that never settles
	MaxTicksPerToss = 60 * 60
)
