package engine

import "fmt"

// Phase is the controller's position in the toss cycle
// Exactly one phase is active at a time
type Phase uint8

const (
	// PhaseIdle accepts Toss and Stop
	PhaseIdle Phase = iota
	// PhaseRolling integrates both pigs until they settle
	PhaseRolling
	// PhaseResolving shows the scored roll for the display delay
	PhaseResolving
	// PhaseTurnEnd banks the turn score and hands over the turn
	PhaseTurnEnd
	// PhaseMatchEnd announces the winner before the match resets
	PhaseMatchEnd
)

var phaseNames = [...]string{
	PhaseIdle:      "idle",
	PhaseRolling:   "rolling",
	PhaseResolving: "resolving",
	PhaseTurnEnd:   "turn_end",
	PhaseMatchEnd:  "match_end",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for i, n := range phaseNames {
		if n == string(text) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("engine: unknown phase %q", text)
}

// transitions is the legal phase graph; Reset bypasses it
var transitions = map[Phase][]Phase{
	PhaseIdle:      {PhaseRolling, PhaseTurnEnd},
	PhaseRolling:   {PhaseResolving},
	PhaseResolving: {PhaseIdle, PhaseTurnEnd},
	PhaseTurnEnd:   {PhaseIdle, PhaseMatchEnd},
	PhaseMatchEnd:  {PhaseIdle},
}

// CanTransition reports whether from -> to is an edge of the phase graph
func CanTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
