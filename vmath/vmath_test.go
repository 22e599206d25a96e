package vmath

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"inside range", 1.2, 1.2},
		{"negative inside range", -2.5, -2.5},
		{"one full turn", TwoPi + 0.4, 0.4},
		{"past pi", 4.0, 4.0 - TwoPi},
		{"below minus pi", -4.0, -4.0 + TwoPi},
		{"many turns", 10*TwoPi + 1.0, 1.0},
		{"many negative turns", -7*TwoPi - 1.0, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAngle(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if got < -math.Pi || got > math.Pi {
				t.Errorf("NormalizeAngle(%v) = %v out of [-π, π]", tt.in, got)
			}
		})
	}
}

func TestWrapTurnKeepsSign(t *testing.T) {
	if got := WrapTurn(-7.0); got >= 0 {
		t.Fatalf("WrapTurn(-7) = %v, expected negative remainder", got)
	}
	if got := WrapTurn(7.0); math.Abs(got-(7.0-TwoPi)) > 1e-12 {
		t.Fatalf("WrapTurn(7) = %v", got)
	}
}

func TestReflectAxis(t *testing.T) {
	pos, vel := -7.0, -2.0
	if !ReflectAxis(&pos, &vel, -6, 6, 0.5) {
		t.Fatal("expected contact below lo")
	}
	if pos != -6 || vel != 1.0 {
		t.Fatalf("got pos=%v vel=%v, want -6, 1", pos, vel)
	}

	pos, vel = 6.5, -1.0
	if !ReflectAxis(&pos, &vel, -6, 6, 0.5) {
		t.Fatal("expected contact above hi")
	}
	if pos != 6 || vel != -1.0 {
		t.Fatalf("inbound velocity must be kept, got pos=%v vel=%v", pos, vel)
	}

	pos, vel = 0, 3
	if ReflectAxis(&pos, &vel, -6, 6, 0.5) {
		t.Fatal("no contact expected inside bounds")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

func TestFastRandFloatRanges(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 10000; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
		if c := r.Centered(3); c < -1.5 || c >= 1.5 {
			t.Fatalf("Centered(3) out of range: %v", c)
		}
		if v := r.Range(1, 2); v < 1 || v >= 3 {
			t.Fatalf("Range(1, 2) out of range: %v", v)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Fatal("zero seed must not produce a stuck generator")
	}
}
