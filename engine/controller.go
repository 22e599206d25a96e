package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pigroll/events"
	"github.com/lixenwraith/pigroll/physics"
	"github.com/lixenwraith/pigroll/pose"
	"github.com/lixenwraith/pigroll/scoring"
	"github.com/lixenwraith/pigroll/vmath"
)

// Controller drives a two-player match: tosses, settle detection, scoring and turn hand-over
//
// Threading: every method must be called from the single game loop goroutine
// Deferred transitions run inside Tick and are guarded by the phase token
type Controller struct {
	params     Params
	integrator *physics.Integrator
	rest       *physics.RestDetector
	rng        *vmath.FastRand

	state MatchState

	// Game clock, advanced only by Tick
	clock time.Duration

	// token is bumped on Toss and Reset; tasks carrying an older value are stale
	token uint64

	scheduler   Scheduler
	settleAccum time.Duration

	queue *events.EventQueue
}

// NewController creates a controller in the Idle phase with both pigs at their rest poses
func NewController(p Params) *Controller {
	c := &Controller{
		params:     p,
		integrator: p.Physics.Integrator(),
		rest:       p.Physics.RestDetector(),
		rng:        vmath.NewFastRand(p.Seed),
		queue:      events.NewEventQueue(),
	}
	c.state.TargetScore = p.TargetScore
	c.resetMatch()
	return c
}

// Events returns the queue the controller emits into; drain it with an events.Router
func (c *Controller) Events() *events.EventQueue {
	return c.queue
}

// Phase returns the active phase
func (c *Controller) Phase() Phase {
	return c.state.Phase
}

// Clock returns the game clock
func (c *Controller) Clock() time.Duration {
	return c.clock
}

// Toss launches both pigs; accepted only in Idle
func (c *Controller) Toss() bool {
	if c.state.Phase != PhaseIdle {
		return false
	}
	c.setPhase(PhaseRolling)
	c.token++
	c.settleAccum = 0
	c.state.Tosses++
	c.state.LastResult = nil
	c.state.Winner = nil
	c.state.Message = ""

	for i := range c.state.Pigs {
		c.launch(i)
	}

	log.Printf("Toss %d by %s", c.state.Tosses, c.state.Current().Name)
	c.emit(events.EventToss, &events.TossPayload{Player: c.state.CurrentPlayer})
	return true
}

// Stop banks the turn score and passes the turn; accepted only in Idle
func (c *Controller) Stop() bool {
	if c.state.Phase != PhaseIdle {
		return false
	}
	c.endTurn()
	return true
}

// Reset returns the match to its initial state from any phase
// Pending deferred tasks become stale; the last winner announcement is kept
func (c *Controller) Reset() {
	c.resetMatch()
	c.state.Message = "Game reset"
	log.Printf("Match reset")
	c.emit(events.EventReset, nil)
}

// Tick advances the game clock by dt (clamped), runs due deferred tasks, then steps physics while Rolling
func (c *Controller) Tick(dt time.Duration) {
	dt = ClampDelta(dt, c.params.MaxDelta)
	c.clock += dt

	c.scheduler.RunDue(c.clock, c.taskValid)

	if c.state.Phase != PhaseRolling {
		return
	}
	c.stepPhysics(dt)

	c.settleAccum += dt
	if c.settleAccum > c.params.SettleCheckInterval && c.state.BothResting() {
		c.settleAccum = 0
		c.after(c.params.SettleConfirmDelay, "settle", c.confirmSettle)
	}
}

// stepPhysics integrates non-resting pigs in substeps no longer than the physics step
func (c *Controller) stepPhysics(dt time.Duration) {
	step := c.params.PhysicsStep
	if step <= 0 {
		step = dt
	}
	for dt > 0 {
		h := min(step, dt)
		dt -= h
		c.substep(h.Seconds())
	}
}

func (c *Controller) substep(dt float64) {
	for i := range c.state.Pigs {
		b := &c.state.Pigs[i]
		if b.Resting {
			continue
		}
		if impact := c.integrator.Advance(b, dt); impact > 0 && impact >= c.params.ImpactThreshold {
			c.emit(events.EventImpact, &events.ImpactPayload{Pig: i, Speed: impact})
		}
		c.rest.Update(b, dt)
	}
}

// confirmSettle is the debounced settle signal; the first valid one resolves the roll
func (c *Controller) confirmSettle() {
	if !c.state.BothResting() {
		return
	}
	c.resolve()
}

func (c *Controller) resolve() {
	c.setPhase(PhaseResolving)

	a, b := &c.state.Pigs[0], &c.state.Pigs[1]
	catA, catB := pose.Classify(a.Rotation), pose.Classify(b.Rotation)
	result := scoring.Resolve(catA, catB, a.Yaw(), b.Yaw())

	before := c.state.TurnScore
	if result.Outcome == scoring.PigOut {
		c.state.TurnScore = 0
	} else {
		c.state.TurnScore += result.Points
	}
	c.state.LastResult = &result
	c.state.Message = result.Message

	log.Printf("Roll %d: pig1 rot=(%.2f, %.2f, %.2f) %s, pig2 rot=(%.2f, %.2f, %.2f) %s",
		c.state.Tosses,
		a.Rotation.X(), a.Rotation.Y(), a.Rotation.Z(), catA,
		b.Rotation.X(), b.Rotation.Y(), b.Rotation.Z(), catB)
	log.Printf("Roll %d: %s (%s), turn score %d -> %d", c.state.Tosses, result.Message, result.Outcome, before, c.state.TurnScore)

	c.emit(events.EventRollResolved, &events.RollPayload{
		Player:          c.state.CurrentPlayer,
		Result:          result,
		TurnScoreBefore: before,
		TurnScore:       c.state.TurnScore,
	})

	if result.Outcome == scoring.PigOut {
		c.after(c.params.DisplayDelay, "pig-out turn end", c.endTurn)
		return
	}
	c.after(c.params.DisplayDelay, "display done", func() { c.setPhase(PhaseIdle) })
}

// endTurn banks the turn score, then either ends the match or passes the turn
func (c *Controller) endTurn() {
	c.setPhase(PhaseTurnEnd)

	idx := c.state.CurrentPlayer
	player := c.state.Current()
	banked := c.state.TurnScore
	player.Score += banked
	c.state.TurnScore = 0

	if player.Score >= c.state.TargetScore {
		c.setPhase(PhaseMatchEnd)
		winner := &Winner{Index: idx, Name: player.Name, Score: player.Score}
		log.Printf("%s wins with %d points", winner.Name, winner.Score)
		c.emit(events.EventMatchEnd, &events.MatchEndPayload{Player: idx, Name: winner.Name, Score: winner.Score})

		c.resetMatch()
		c.state.Winner = winner
		c.state.Message = fmt.Sprintf("%s wins with %d points!", winner.Name, winner.Score)
		c.emit(events.EventReset, nil)
		return
	}

	c.state.CurrentPlayer = 1 - idx
	c.state.Message = fmt.Sprintf("%s banked %d. %s's turn", player.Name, banked, c.state.Current().Name)
	log.Printf("Turn end: %s banked %d (total %d), next %s", player.Name, banked, player.Score, c.state.Current().Name)
	c.emit(events.EventTurnEnd, &events.TurnEndPayload{
		Player:     idx,
		Banked:     banked,
		Total:      player.Score,
		NextPlayer: c.state.CurrentPlayer,
	})
	c.setPhase(PhaseIdle)
}

// resetMatch zeroes scores and places pigs at rest; phase forced to Idle
func (c *Controller) resetMatch() {
	c.token++
	c.settleAccum = 0
	c.state.Phase = PhaseIdle
	c.state.CurrentPlayer = 0
	c.state.TurnScore = 0
	c.state.LastResult = nil
	for i := range c.state.Players {
		c.state.Players[i] = Player{Name: c.params.Names[i], Score: 0}
	}
	for i := range c.state.Pigs {
		c.state.Pigs[i].Place(c.restPosition(i))
	}
}

func (c *Controller) restPosition(i int) mgl64.Vec3 {
	return mgl64.Vec3{c.side(i), c.params.Physics.FloorY + c.params.Spawn.Height, 0}
}

// side places pig 0 left and pig 1 right so spawns never overlap
func (c *Controller) side(i int) float64 {
	if i == 0 {
		return -c.params.Spawn.Separation
	}
	return c.params.Spawn.Separation
}

func (c *Controller) launch(i int) {
	s := c.params.Spawn
	r := c.rng
	pos := mgl64.Vec3{
		c.side(i),
		c.params.Physics.FloorY + s.Height + r.Range(0, s.HeightJitter),
		r.Range(0, s.DepthJitter),
	}
	rot := mgl64.Vec3{r.Range(0, vmath.TwoPi), r.Range(0, vmath.TwoPi), r.Range(0, vmath.TwoPi)}
	vel := mgl64.Vec3{
		r.Centered(s.HorizontalSpeed),
		r.Range(s.LiftMin, s.LiftRange),
		r.Centered(s.HorizontalSpeed),
	}
	spin := mgl64.Vec3{r.Centered(s.Spin), r.Centered(s.Spin), r.Centered(s.Spin)}
	c.state.Pigs[i].Launch(pos, rot, vel, spin)
}

// after schedules fn on the game clock, bound to the current phase and token
func (c *Controller) after(d time.Duration, name string, fn func()) {
	c.scheduler.Schedule(Task{
		Name:  name,
		Due:   c.clock + d,
		Token: c.token,
		Phase: c.state.Phase,
		Run:   fn,
	})
}

func (c *Controller) taskValid(t Task) bool {
	return t.Token == c.token && t.Phase == c.state.Phase
}

func (c *Controller) setPhase(to Phase) {
	from := c.state.Phase
	if !CanTransition(from, to) {
		panic(fmt.Sprintf("engine: illegal phase transition %s -> %s", from, to))
	}
	c.state.Phase = to
}

func (c *Controller) emit(t events.EventType, payload any) {
	c.queue.Push(events.GameEvent{
		Type:    t,
		Payload: payload,
		Toss:    c.state.Tosses,
		Time:    c.clock,
	})
}
