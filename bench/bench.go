// Package bench runs headless tosses at a fixed step and tallies the results
package bench

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/lixenwraith/pigroll/engine"
	"github.com/lixenwraith/pigroll/events"
	"github.com/lixenwraith/pigroll/parameter"
	"github.com/lixenwraith/pigroll/pose"
	"github.com/lixenwraith/pigroll/scoring"
)

// BankThreshold is the turn score at which the bench player stops rolling
const BankThreshold = 20

// Report is the tally of a bench run
type Report struct {
	Seed       uint64                  `json:"seed"`
	Tosses     int                     `json:"tosses"`
	Settled    int                     `json:"settled"`
	Unsettled  int                     `json:"unsettled"`
	Categories map[pose.Category]int   `json:"categories"`
	Outcomes   map[scoring.Outcome]int `json:"outcomes"`
	Turns      int                     `json:"turns"`
	Matches    int                     `json:"matches"`
	Wins       [2]int                  `json:"wins"`
	TotalTicks int                     `json:"totalTicks"`
	MeanTicks  float64                 `json:"meanTicks"`
}

// Step is the fixed tick used by Run
var Step time.Duration = parameter.FixedDelta

// Run plays n tosses with params, banking whenever the turn score reaches BankThreshold
// Tosses that have not settled after MaxTicksPerToss are counted unsettled and the match is reset
func Run(params engine.Params, n int) Report {
	c := engine.NewController(params)
	router := events.NewRouter(c.Events())

	r := Report{
		Seed:       params.Seed,
		Categories: make(map[pose.Category]int),
		Outcomes:   make(map[scoring.Outcome]int),
	}
	router.Register(events.HandlerFunc{
		Types: []events.EventType{events.EventRollResolved, events.EventTurnEnd, events.EventMatchEnd},
		Func:  r.record,
	})

	for i := 0; i < n; i++ {
		if c.Snapshot().TurnScore >= BankThreshold {
			c.Stop()
			router.DispatchAll()
		}
		if !c.Toss() {
			break
		}
		r.Tosses++

		ticks := 0
		for c.Phase() == engine.PhaseRolling && ticks < parameter.MaxTicksPerToss {
			c.Tick(Step)
			ticks++
		}
		router.DispatchAll()

		if c.Phase() == engine.PhaseRolling {
			r.Unsettled++
			c.Reset()
			router.DispatchAll()
			continue
		}
		r.Settled++
		r.TotalTicks += ticks

		waitIdle(c)
		router.DispatchAll()
	}

	if r.Settled > 0 {
		r.MeanTicks = float64(r.TotalTicks) / float64(r.Settled)
	}
	return r
}

// waitIdle ticks through the display delay and any turn hand-over
func waitIdle(c *engine.Controller) {
	for ticks := 0; c.Phase() != engine.PhaseIdle && ticks < parameter.MaxTicksPerToss; ticks++ {
		c.Tick(Step)
	}
}

func (r *Report) record(ev events.GameEvent) {
	switch p := ev.Payload.(type) {
	case *events.RollPayload:
		r.Categories[p.Result.Categories[0]]++
		r.Categories[p.Result.Categories[1]]++
		r.Outcomes[p.Result.Outcome]++
	case *events.TurnEndPayload:
		r.Turns++
	case *events.MatchEndPayload:
		r.Turns++
		r.Matches++
		r.Wins[p.Player]++
	}
}

// Write prints the report as aligned text
func (r Report) Write(w io.Writer) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("seed %d: %d tosses, %d settled, %d unsettled\n", r.Seed, r.Tosses, r.Settled, r.Unsettled)
	printf("mean ticks to settle: %.1f\n", r.MeanTicks)
	printf("turns %d, matches %d, wins %d/%d\n", r.Turns, r.Matches, r.Wins[0], r.Wins[1])

	pigs := 2 * r.Settled
	printf("\ncategories (%d pigs)\n", pigs)
	for _, c := range sortedKeys(r.Categories) {
		printf("  %-16s %6d  %5.1f%%\n", c, r.Categories[c], percent(r.Categories[c], pigs))
	}

	printf("\noutcomes (%d rolls)\n", r.Settled)
	for _, o := range sortedKeys(r.Outcomes) {
		printf("  %-16s %6d  %5.1f%%\n", o, r.Outcomes[o], percent(r.Outcomes[o], r.Settled))
	}
	return err
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(total)
}

func sortedKeys[K ~uint8, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
