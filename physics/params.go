package physics

import (
	"math"

	"github.com/lixenwraith/pigroll/parameter"
)

// Params collects every tunable of the simulation
type Params struct {
	Gravity         float64
	BounceDamping   float64
	Friction        float64
	AngularDamping  float64
	WallRestitution float64

	FloorY         float64
	RingHalfExtent float64

	RestSpeedThreshold float64
	RestHeightBand     float64
	SettleDuration     float64
}

// DefaultParams returns the stock ring tuning
func DefaultParams() Params {
	return Params{
		Gravity:            parameter.Gravity,
		BounceDamping:      parameter.BounceDamping,
		Friction:           parameter.Friction,
		AngularDamping:     parameter.AngularDamping,
		WallRestitution:    parameter.WallRestitution,
		FloorY:             parameter.FloorY,
		RingHalfExtent:     parameter.RingHalfExtent,
		RestSpeedThreshold: parameter.RestSpeedThreshold,
		RestHeightBand:     parameter.RestHeightBand,
		SettleDuration:     parameter.SettleDurationSeconds,
	}
}

// MaxSettleStep is the longest integration step, in seconds, at which a body on the floor can come to rest
// Each floor step leaves a residual bounce of BounceDamping*Gravity*dt/(1+BounceDamping);
// above this step that bounce stays over RestSpeedThreshold forever
func (p Params) MaxSettleStep() float64 {
	k := p.BounceDamping * p.Gravity
	if k <= 0 {
		return math.Inf(1)
	}
	return p.RestSpeedThreshold * (1 + p.BounceDamping) / k
}

func (p Params) Platform() Platform {
	return Platform{FloorY: p.FloorY, HalfExtent: p.RingHalfExtent}
}

func (p Params) Integrator() *Integrator {
	return &Integrator{
		Gravity:         p.Gravity,
		BounceDamping:   p.BounceDamping,
		Friction:        p.Friction,
		AngularDamping:  p.AngularDamping,
		WallRestitution: p.WallRestitution,
		Platform:        p.Platform(),
	}
}

func (p Params) RestDetector() *RestDetector {
	return &RestDetector{
		SpeedThreshold: p.RestSpeedThreshold,
		HeightBand:     p.RestHeightBand,
		SettleDuration: p.SettleDuration,
		FloorY:         p.FloorY,
	}
}
