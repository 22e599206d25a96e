package events

import (
	"fmt"
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventToss signals a new toss has been seeded
	// Trigger: Controller.Toss | Payload: *TossPayload
	EventToss EventType = iota + 1

	// EventImpact signals a pig hit the ring hard enough to be heard
	// Trigger: integrator floor contact above threshold | Payload: *ImpactPayload
	EventImpact

	// EventRollResolved carries the scored roll
	// Trigger: settle confirmation | Payload: *RollPayload
	EventRollResolved

	// EventTurnEnd signals a banked turn and the player switch
	// Trigger: stop request, pig out | Payload: *TurnEndPayload
	EventTurnEnd

	// EventMatchEnd announces the winner, fired before the match resets
	// Payload: *MatchEndPayload
	EventMatchEnd

	// EventReset signals scores and pigs returned to their initial state
	// Trigger: Controller.Reset, match end | Payload: nil
	EventReset
)

var eventNames = map[EventType]string{
	EventToss:         "toss",
	EventImpact:       "impact",
	EventRollResolved: "roll_resolved",
	EventTurnEnd:      "turn_end",
	EventMatchEnd:     "match_end",
	EventReset:        "reset",
}

func (t EventType) String() string {
	if n, ok := eventNames[t]; ok {
		return n
	}
	return "unknown"
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(text []byte) error {
	et, ok := ParseEventType(string(text))
	if !ok {
		return fmt.Errorf("events: unknown event type %q", text)
	}
	*t = et
	return nil
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType     `json:"type"`
	Payload any           `json:"payload,omitempty"`
	Toss    int           `json:"toss"` // toss counter at emission
	Time    time.Duration `json:"time"` // game clock at emission
}

// ParseEventType returns the EventType for a wire name
func ParseEventType(name string) (EventType, bool) {
	for t, n := range eventNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}
