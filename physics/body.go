package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Body is the pose and motion state of one tossed pig
// Rotation holds Euler angles (x, y, z) accumulated additively, never normalized here
type Body struct {
	Position        mgl64.Vec3
	Rotation        mgl64.Vec3
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3

	// Resting implies zero velocities and RestTime past the settle duration
	Resting  bool
	RestTime float64
}

// Place puts the body at position with zero rotation and motion
func (b *Body) Place(position mgl64.Vec3) {
	b.Position = position
	b.Rotation = mgl64.Vec3{}
	b.Velocity = mgl64.Vec3{}
	b.AngularVelocity = mgl64.Vec3{}
	b.Wake()
}

// Launch sets a full set of initial conditions and clears rest state
func (b *Body) Launch(position, rotation, velocity, angularVelocity mgl64.Vec3) {
	b.Position = position
	b.Rotation = rotation
	b.Velocity = velocity
	b.AngularVelocity = angularVelocity
	b.Wake()
}

// Wake clears rest state
func (b *Body) Wake() {
	b.Resting = false
	b.RestTime = 0
}

// Sleep marks the body resting and zeroes residual motion
func (b *Body) Sleep() {
	b.Resting = true
	b.Velocity = mgl64.Vec3{}
	b.AngularVelocity = mgl64.Vec3{}
}

func (b *Body) Speed() float64 {
	return b.Velocity.Len()
}

func (b *Body) AngularSpeed() float64 {
	return b.AngularVelocity.Len()
}

// Yaw is the accumulated rotation about the vertical axis
func (b *Body) Yaw() float64 {
	return b.Rotation.Y()
}
