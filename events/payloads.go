package events

import (
	"github.com/lixenwraith/pigroll/scoring"
)

// TossPayload identifies the thrower
type TossPayload struct {
	Player int `json:"player"`
}

// ImpactPayload reports a floor contact
type ImpactPayload struct {
	Pig   int     `json:"pig"`
	Speed float64 `json:"speed"`
}

// RollPayload carries a scored roll and the running turn total
type RollPayload struct {
	Player          int            `json:"player"`
	Result          scoring.Result `json:"result"`
	TurnScoreBefore int            `json:"turnScoreBefore"`
	TurnScore       int            `json:"turnScore"`
}

// TurnEndPayload reports what was banked and who plays next
type TurnEndPayload struct {
	Player     int `json:"player"`
	Banked     int `json:"banked"`
	Total      int `json:"total"`
	NextPlayer int `json:"nextPlayer"`
}

// MatchEndPayload names the winner
type MatchEndPayload struct {
	Player int    `json:"player"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
}
