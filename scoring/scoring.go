// Package scoring turns a pair of pig stances into points.
package scoring

import (
	"fmt"
	"math"

	"github.com/lixenwraith/pigroll/pose"
	"github.com/lixenwraith/pigroll/vmath"
)

// Outcome is the kind of roll, independent of the points it carries
type Outcome uint8

const (
	Normal Outcome = iota
	DoubleRazorback
	DoubleTrotter
	DoubleSnouter
	DoubleJowler
	PigOut
	Cider
)

var outcomeKeys = map[Outcome]string{
	Normal:          "normal",
	DoubleRazorback: "double_razorback",
	DoubleTrotter:   "double_trotter",
	DoubleSnouter:   "double_snouter",
	DoubleJowler:    "double_jowler",
	PigOut:          "pig_out",
	Cider:           "cider",
}

func (o Outcome) String() string {
	if k, ok := outcomeKeys[o]; ok {
		return k
	}
	return "unknown"
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	for k, v := range outcomeKeys {
		if v == string(text) {
			*o = k
			return nil
		}
	}
	return fmt.Errorf("scoring: unknown outcome %q", text)
}

func (o Outcome) IsDouble() bool {
	switch o {
	case DoubleRazorback, DoubleTrotter, DoubleSnouter, DoubleJowler:
		return true
	}
	return false
}

// Result of one roll
type Result struct {
	Points     int              `json:"points"`
	Outcome    Outcome          `json:"outcome"`
	Message    string           `json:"message"`
	Categories [2]pose.Category `json:"categories"`
}

// Cider fires when the two yaws differ by π within this tolerance
const CiderTolerance = 0.5

const (
	CiderPoints  = 1
	PigOutPoints = 0
)

var basePoints = map[pose.Category]int{
	pose.Trotter:       5,
	pose.Razorback:     5,
	pose.Snouter:       10,
	pose.LeaningJowler: 15,
}

type double struct {
	category pose.Category
	points   int
	outcome  Outcome
	message  string
}

// doubles are mutually exclusive; listed in rule order for readability
var doubles = []double{
	{pose.Razorback, 20, DoubleRazorback, "Double Razorback! +20 points"},
	{pose.Trotter, 20, DoubleTrotter, "Double Trotter! +20 points"},
	{pose.Snouter, 40, DoubleSnouter, "Double Snouter! +40 points"},
	{pose.LeaningJowler, 60, DoubleJowler, "Double Leaning Jowler! +60 points"},
}

// BasePoints is the single-pig value of a category
// Panics on a category outside the defined set, which Classify never yields
func BasePoints(c pose.Category) int {
	p, ok := basePoints[c]
	if !ok {
		panic(fmt.Sprintf("scoring: undefined pig category %d", c))
	}
	return p
}

// YawDelta is the absolute difference of the two yaws, each reduced by one full turn
func YawDelta(yawA, yawB float64) float64 {
	return math.Abs(vmath.WrapTurn(yawA) - vmath.WrapTurn(yawB))
}

// IsCider reports whether the pigs face roughly opposite directions
func IsCider(yawA, yawB float64) bool {
	d := YawDelta(yawA, yawB)
	return d > math.Pi-CiderTolerance && d < math.Pi+CiderTolerance
}

// Resolve scores a roll. Rule order:
// doubles, pig out, cider (yaw), then the sum of base values
func Resolve(a, b pose.Category, yawA, yawB float64) Result {
	pa, pb := BasePoints(a), BasePoints(b)
	cats := [2]pose.Category{a, b}

	if a == b {
		for _, d := range doubles {
			if d.category == a {
				return Result{Points: d.points, Outcome: d.outcome, Message: d.message, Categories: cats}
			}
		}
	}

	if (a == pose.Razorback && b == pose.Trotter) || (a == pose.Trotter && b == pose.Razorback) {
		return Result{Points: PigOutPoints, Outcome: PigOut, Message: "Pig Out! Turn ends, no points", Categories: cats}
	}

	if IsCider(yawA, yawB) {
		return Result{Points: CiderPoints, Outcome: Cider, Message: "Cider! +1 point", Categories: cats}
	}

	total := pa + pb
	return Result{
		Points:     total,
		Outcome:    Normal,
		Message:    fmt.Sprintf("%s + %s = +%d points", a, b, total),
		Categories: cats,
	}
}
