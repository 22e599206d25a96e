package engine

import (
	"github.com/lixenwraith/pigroll/physics"
	"github.com/lixenwraith/pigroll/scoring"
)

// Player is one side of the match
// Score is non-negative and never decreases within a match
type Player struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Winner announces a finished match
type Winner struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// MatchState is owned by the Controller and mutated only from the game loop
type MatchState struct {
	Phase         Phase
	Pigs          [2]physics.Body
	Players       [2]Player
	CurrentPlayer int
	TurnScore     int
	TargetScore   int

	LastResult *scoring.Result
	Message    string
	Winner     *Winner
	Tosses     int
}

// Current returns the player whose turn it is
func (m *MatchState) Current() *Player {
	return &m.Players[m.CurrentPlayer]
}

// BothResting reports whether both pigs have settled
func (m *MatchState) BothResting() bool {
	return m.Pigs[0].Resting && m.Pigs[1].Resting
}
