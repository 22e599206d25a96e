package engine

import (
	"time"

	"github.com/lixenwraith/pigroll/parameter"
	"github.com/lixenwraith/pigroll/physics"
)

// SpawnParams shapes the initial conditions of a toss
type SpawnParams struct {
	Height          float64 // above the floor
	HeightJitter    float64
	DepthJitter     float64
	Separation      float64 // pig 0 at -Separation, pig 1 at +Separation on x
	HorizontalSpeed float64 // span of the centered x/z velocity
	LiftMin         float64
	LiftRange       float64
	Spin            float64 // span of the centered angular velocity per axis
}

// Params configures a Controller
type Params struct {
	Physics physics.Params
	Spawn   SpawnParams

	TargetScore int
	Names       [2]string

	DisplayDelay        time.Duration
	SettleCheckInterval time.Duration
	SettleConfirmDelay  time.Duration
	MaxDelta            time.Duration

	// PhysicsStep caps the integration substep; zero integrates each tick in one step
	// Must stay under Physics.MaxSettleStep or pigs never come to rest
	PhysicsStep time.Duration

	// ImpactThreshold is the minimum impact speed emitted as EventImpact
	ImpactThreshold float64

	Seed uint64
}

// DefaultParams returns the stock match rules and tuning with a fixed seed
func DefaultParams() Params {
	return Params{
		Physics: physics.DefaultParams(),
		Spawn: SpawnParams{
			Height:          parameter.SpawnHeight,
			HeightJitter:    parameter.SpawnHeightJitter,
			DepthJitter:     parameter.SpawnDepthJitter,
			Separation:      parameter.SpawnSeparation,
			HorizontalSpeed: parameter.TossHorizontalSpeed,
			LiftMin:         parameter.TossLiftMin,
			LiftRange:       parameter.TossLiftRange,
			Spin:            parameter.TossSpin,
		},
		TargetScore:         parameter.TargetScore,
		Names:               [2]string{parameter.DefaultPlayerOneName, parameter.DefaultPlayerTwoName},
		DisplayDelay:        parameter.DisplayDelay,
		SettleCheckInterval: parameter.SettleCheckInterval,
		SettleConfirmDelay:  parameter.SettleConfirmDelay,
		MaxDelta:            parameter.MaxDelta,
		PhysicsStep:         parameter.FixedDelta,
		ImpactThreshold:     parameter.ImpactThreshold,
		Seed:                1,
	}
}
