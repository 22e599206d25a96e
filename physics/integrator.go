package physics

import (
	"math"

	"github.com/lixenwraith/pigroll/vmath"
)

// Platform is the ring the pigs land on
// HalfExtent of zero leaves horizontal motion unbounded
type Platform struct {
	FloorY     float64
	HalfExtent float64
}

// Integrator advances a Body under gravity with an inelastic floor
type Integrator struct {
	Gravity         float64
	BounceDamping   float64
	Friction        float64
	AngularDamping  float64
	WallRestitution float64
	Platform        Platform
}

// Advance performs one explicit Euler step: v += g*dt; p += v*dt; r += w*dt
// Returns the vertical impact speed on floor contact, 0 otherwise
func (in *Integrator) Advance(b *Body, dt float64) float64 {
	b.Velocity[1] -= in.Gravity * dt
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
	b.Rotation = b.Rotation.Add(b.AngularVelocity.Mul(dt))

	impact := 0.0
	if b.Position[1] < in.Platform.FloorY {
		impact = math.Abs(b.Velocity[1])
		b.Position[1] = in.Platform.FloorY
		b.Velocity[1] *= -in.BounceDamping
		b.Velocity[0] *= in.Friction
		b.Velocity[2] *= in.Friction
		b.AngularVelocity = b.AngularVelocity.Mul(in.AngularDamping)
	}

	in.containWalls(b)
	return impact
}

// containWalls keeps the body over the ring, x and z only
func (in *Integrator) containWalls(b *Body) {
	h := in.Platform.HalfExtent
	if h <= 0 {
		return
	}
	vmath.ReflectAxis(&b.Position[0], &b.Velocity[0], -h, h, in.WallRestitution)
	vmath.ReflectAxis(&b.Position[2], &b.Velocity[2], -h, h, in.WallRestitution)
}
