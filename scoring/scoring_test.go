package scoring

import (
	"math"
	"testing"

	"github.com/lixenwraith/pigroll/pose"
	"github.com/lixenwraith/pigroll/vmath"
)

func TestResolveTable(t *testing.T) {
	tests := []struct {
		name    string
		a, b    pose.Category
		points  int
		outcome Outcome
	}{
		{"double razorback", pose.Razorback, pose.Razorback, 20, DoubleRazorback},
		{"double trotter", pose.Trotter, pose.Trotter, 20, DoubleTrotter},
		{"double snouter", pose.Snouter, pose.Snouter, 40, DoubleSnouter},
		{"double jowler", pose.LeaningJowler, pose.LeaningJowler, 60, DoubleJowler},
		{"pig out", pose.Razorback, pose.Trotter, 0, PigOut},
		{"pig out reversed", pose.Trotter, pose.Razorback, 0, PigOut},
		{"trotter snouter", pose.Trotter, pose.Snouter, 15, Normal},
		{"razorback jowler", pose.Razorback, pose.LeaningJowler, 20, Normal},
		{"snouter jowler", pose.Snouter, pose.LeaningJowler, 25, Normal},
		{"razorback snouter", pose.Razorback, pose.Snouter, 15, Normal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.a, tt.b, 0, 0)
			if got.Points != tt.points || got.Outcome != tt.outcome {
				t.Errorf("Resolve(%s, %s) = %d %s, want %d %s", tt.a, tt.b, got.Points, got.Outcome, tt.points, tt.outcome)
			}
			if got.Message == "" {
				t.Error("empty message")
			}
			if got.Categories != [2]pose.Category{tt.a, tt.b} {
				t.Errorf("categories = %v", got.Categories)
			}
		})
	}
}

func TestResolveNormalMessage(t *testing.T) {
	got := Resolve(pose.Trotter, pose.Snouter, 0, 0)
	if got.Message != "Trotter + Snouter = +15 points" {
		t.Fatalf("message = %q", got.Message)
	}
}

func TestResolveCider(t *testing.T) {
	got := Resolve(pose.Trotter, pose.Snouter, 0.2, 0.2+math.Pi)
	if got.Outcome != Cider || got.Points != 1 {
		t.Fatalf("got %d %s, want 1 cider", got.Points, got.Outcome)
	}
}

// Doubles and pig out win over opposite-facing yaws
func TestResolveCiderPriority(t *testing.T) {
	yawA, yawB := 0.0, math.Pi
	if !IsCider(yawA, yawB) {
		t.Fatal("precondition: yaws should be cider")
	}
	if got := Resolve(pose.Snouter, pose.Snouter, yawA, yawB); got.Outcome != DoubleSnouter {
		t.Errorf("double with cider yaw = %s", got.Outcome)
	}
	if got := Resolve(pose.Razorback, pose.Trotter, yawA, yawB); got.Outcome != PigOut {
		t.Errorf("pig out with cider yaw = %s", got.Outcome)
	}
	if got := Resolve(pose.Snouter, pose.LeaningJowler, yawA, yawB); got.Outcome != Cider {
		t.Errorf("normal pair with cider yaw = %s", got.Outcome)
	}
}

func TestIsCiderBounds(t *testing.T) {
	tests := []struct {
		delta float64
		want  bool
	}{
		{0, false},
		{math.Pi - 0.5, false},
		{math.Pi - 0.49, true},
		{math.Pi, true},
		{math.Pi + 0.49, true},
		{math.Pi + 0.5, false},
		{vmath.TwoPi - 0.1, false},
	}
	for _, tt := range tests {
		if got := IsCider(0, tt.delta); got != tt.want {
			t.Errorf("IsCider(0, %v) = %v, want %v", tt.delta, got, tt.want)
		}
	}
}

// Whole turns are removed from each yaw before comparing
func TestYawDeltaWrapsTurns(t *testing.T) {
	if d := YawDelta(3*vmath.TwoPi+1, 1); math.Abs(d) > 1e-9 {
		t.Fatalf("YawDelta across turns = %v, want 0", d)
	}
	if !IsCider(5*vmath.TwoPi, math.Pi) {
		t.Fatal("expected cider after removing whole turns")
	}
}

func TestResolveSymmetric(t *testing.T) {
	r := vmath.NewFastRand(3)
	for _, a := range pose.Categories {
		for _, b := range pose.Categories {
			for i := 0; i < 200; i++ {
				ya, yb := r.Centered(30), r.Centered(30)
				ab := Resolve(a, b, ya, yb)
				ba := Resolve(b, a, yb, ya)
				if ab.Points != ba.Points || ab.Outcome != ba.Outcome {
					t.Fatalf("asymmetric: (%s,%v)+(%s,%v) = %d %s, swapped = %d %s",
						a, ya, b, yb, ab.Points, ab.Outcome, ba.Points, ba.Outcome)
				}
				if ab.Points < 0 {
					t.Fatalf("negative points for %s,%s", a, b)
				}
			}
		}
	}
}

func TestBasePointsPanicsOnUndefinedCategory(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for undefined category")
		}
	}()
	BasePoints(pose.Category(200))
}

func TestResolvePanicsOnUndefinedCategory(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for undefined category")
		}
	}()
	Resolve(pose.Trotter, pose.Category(9), 0, 0)
}

func TestOutcomeIsDouble(t *testing.T) {
	for _, o := range []Outcome{DoubleRazorback, DoubleTrotter, DoubleSnouter, DoubleJowler} {
		if !o.IsDouble() {
			t.Errorf("%s should be a double", o)
		}
	}
	for _, o := range []Outcome{Normal, PigOut, Cider} {
		if o.IsDouble() {
			t.Errorf("%s should not be a double", o)
		}
	}
}

func TestOutcomeUnmarshalText(t *testing.T) {
	var o Outcome
	if err := o.UnmarshalText([]byte("pig_out")); err != nil || o != PigOut {
		t.Errorf("UnmarshalText(pig_out) = %v, %v", o, err)
	}
	if err := o.UnmarshalText([]byte("makin_bacon")); err == nil {
		t.Error("expected error for unknown outcome")
	}
}
