// Package vmath holds the small float helpers shared by the simulation:
// angle wrapping and a seedable xorshift source.
package vmath

import "math"

const TwoPi = 2 * math.Pi

// --- Angles ---

// NormalizeAngle maps an accumulated angle into [-π, π]
// Truncated remainder first (sign follows the input), then a single wrap
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a > math.Pi {
		a -= TwoPi
	}
	if a < -math.Pi {
		a += TwoPi
	}
	return a
}

// WrapTurn returns the truncated remainder of a over one full turn, in (-2π, 2π)
func WrapTurn(a float64) float64 {
	return math.Mod(a, TwoPi)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ReflectAxis clamps pos to [lo, hi] and reflects an outbound velocity scaled by restitution
// Returns true on contact
func ReflectAxis(pos, vel *float64, lo, hi, restitution float64) bool {
	if *pos < lo {
		*pos = lo
		if *vel < 0 {
			*vel = -*vel * restitution
		}
		return true
	}
	if *pos > hi {
		*pos = hi
		if *vel > 0 {
			*vel = -*vel * restitution
		}
		return true
	}
	return false
}
