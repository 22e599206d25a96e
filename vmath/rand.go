package vmath

// FastRand is a xorshift64 source, deterministic for a given seed
// Not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Centered returns a value in [-span/2, span/2)
func (r *FastRand) Centered(span float64) float64 {
	return (r.Float64() - 0.5) * span
}

// Range returns a value in [lo, lo+span)
func (r *FastRand) Range(lo, span float64) float64 {
	return lo + r.Float64()*span
}
