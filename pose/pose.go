// Package pose classifies a settled pig's orientation into a scoring category.
//
// Classification looks only at the x and z Euler angles, each normalized to
// [-π, π] and taken as an absolute tilt. Rules are evaluated in Rules order
// and the first match wins. The ranges overlap on purpose; their order is the
// tie-break and must be kept as is.
package pose

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pigroll/vmath"
)

// Category is the resting stance of one pig
type Category uint8

const (
	Trotter Category = iota
	Razorback
	Snouter
	LeaningJowler

	categoryCount
)

var categoryNames = [categoryCount]string{
	Trotter:       "Trotter",
	Razorback:     "Razorback",
	Snouter:       "Snouter",
	LeaningJowler: "Leaning Jowler",
}

var categoryKeys = [categoryCount]string{
	Trotter:       "trotter",
	Razorback:     "razorback",
	Snouter:       "snouter",
	LeaningJowler: "leaning_jowler",
}

// Categories lists every valid category
var Categories = []Category{Trotter, Razorback, Snouter, LeaningJowler}

func (c Category) Valid() bool {
	return c < categoryCount
}

func (c Category) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryNames[c]
}

// Key is the stable snake_case identifier used on the wire
func (c Category) Key() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryKeys[c]
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.Key()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	for i, k := range categoryKeys {
		if k == string(text) {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("pose: unknown category %q", text)
}

// Rule matches absolute x/z tilt in radians
type Rule struct {
	Category Category
	Match    func(tiltX, tiltZ float64) bool
}

// Rules in evaluation order; Trotter is the fallback and has no rule
var Rules = []Rule{
	// On its back
	{Razorback, func(x, _ float64) bool { return x > 1.3 }},
	// On snout and front feet
	{Snouter, func(x, z float64) bool { return x > 0.7 && x < 1.3 && z < 0.8 }},
	// Tilted on both axes
	{LeaningJowler, func(x, z float64) bool { return x > 0.5 && x < 1.2 && z > 0.3 && z < 1.1 }},
}

// Tilt returns the absolute normalized x and z angles of a rotation
func Tilt(rotation mgl64.Vec3) (tiltX, tiltZ float64) {
	return math.Abs(vmath.NormalizeAngle(rotation.X())), math.Abs(vmath.NormalizeAngle(rotation.Z()))
}

// Classify maps a rotation to its category
func Classify(rotation mgl64.Vec3) Category {
	x, z := Tilt(rotation)
	for _, r := range Rules {
		if r.Match(x, z) {
			return r.Category
		}
	}
	return Trotter
}
