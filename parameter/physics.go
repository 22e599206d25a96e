package parameter

import "time"

// Integration
const (
	// Gravity is the downward acceleration applied every step (units/s²)
	Gravity = 9.8

	// MaxDelta caps a single tick to ride out frame hitches
	MaxDelta = 100 * time.Millisecond

	// FixedDelta is the physics substep and the headless tick (60 Hz)
	FixedDelta = time.Second / 60
)

// Platform (boxing ring)
const (
	// RingHeight is the thickness of the ring platform
	RingHeight = 0.3

	// PigHalfHeight is the distance from a pig's origin to its contact surface
	PigHalfHeight = 0.3

	// FloorY is the lowest vertical position a pig origin may take
	FloorY = RingHeight + PigHalfHeight

	// RingHalfExtent is half the side length of the square ring, 0 disables walls
	RingHalfExtent = 6.0
)

// Contact response
const (
	// BounceDamping scales the inverted vertical velocity on floor contact
	BounceDamping = 0.3

	// Friction scales horizontal velocity on floor contact
	Friction = 0.8

	// AngularDamping scales angular velocity on floor contact
	AngularDamping = 0.9
)

// Rest detection
const (
	// RestSpeedThreshold is the linear and angular speed below which a pig counts as still
	RestSpeedThreshold = 0.05

	// RestHeightBand is the tolerance above FloorY still considered grounded
	RestHeightBand = 0.05

	// SettleDurationSeconds is how long a pig must stay still to be resting
	SettleDurationSeconds = 0.3
)

// Toss seeding
const (
	// SpawnHeight is the drop height above FloorY
	SpawnHeight = 1.7

	// SpawnHeightJitter is the random extra drop height
	SpawnHeightJitter = 0.5

	// SpawnDepthJitter is the random offset along z
	SpawnDepthJitter = 0.5

	// SpawnSeparation is the x offset of each pig from the ring center
	SpawnSeparation = 1.0

	// TossHorizontalSpeed is the full range of initial x/z velocity, centered on zero
	TossHorizontalSpeed = 3.0

	// TossLiftMin and TossLiftRange bound initial upward velocity
	TossLiftMin   = 1.0
	TossLiftRange = 2.0

	// TossSpin is the full range of initial angular velocity per axis, centered on zero
	TossSpin = 10.0
)

// Ring walls
const (
	// WallRestitution scales the reflected horizontal velocity at the ring edge
	WallRestitution = 0.5
)

// Feedback
const (
	// ImpactThreshold is the minimum floor impact speed reported as an event
	ImpactThreshold = 1.0
)
