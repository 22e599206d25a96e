package engine

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pigroll/pose"
	"github.com/lixenwraith/pigroll/scoring"
)

// PigSnapshot is a read-only copy of one pig's pose
type PigSnapshot struct {
	Position mgl64.Vec3    `json:"position"`
	Rotation mgl64.Vec3    `json:"rotation"`
	Resting  bool          `json:"resting"`
	Category pose.Category `json:"category"` // live classification of the current rotation
}

// Snapshot is a value copy of the match for renderers and spectators
// Holds no references into controller state
type Snapshot struct {
	Phase         Phase           `json:"phase"`
	Pigs          [2]PigSnapshot  `json:"pigs"`
	Players       [2]Player       `json:"players"`
	CurrentPlayer int             `json:"currentPlayer"`
	TurnScore     int             `json:"turnScore"`
	TargetScore   int             `json:"targetScore"`
	LastResult    *scoring.Result `json:"lastResult,omitempty"`
	Message       string          `json:"message,omitempty"`
	Winner        *Winner         `json:"winner,omitempty"`
	Tosses        int             `json:"tosses"`
	Time          time.Duration   `json:"time"`
}

// Snapshot copies the current match state
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Phase:         c.state.Phase,
		Players:       c.state.Players,
		CurrentPlayer: c.state.CurrentPlayer,
		TurnScore:     c.state.TurnScore,
		TargetScore:   c.state.TargetScore,
		Message:       c.state.Message,
		Tosses:        c.state.Tosses,
		Time:          c.clock,
	}
	for i := range c.state.Pigs {
		b := &c.state.Pigs[i]
		s.Pigs[i] = PigSnapshot{
			Position: b.Position,
			Rotation: b.Rotation,
			Resting:  b.Resting,
			Category: pose.Classify(b.Rotation),
		}
	}
	if c.state.LastResult != nil {
		r := *c.state.LastResult
		s.LastResult = &r
	}
	if c.state.Winner != nil {
		w := *c.state.Winner
		s.Winner = &w
	}
	return s
}

// CurrentName returns the name of the player to move
func (s Snapshot) CurrentName() string {
	return s.Players[s.CurrentPlayer].Name
}
