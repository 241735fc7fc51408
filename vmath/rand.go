package vmath

// FastRand is a xorshift64 generator for gameplay randomness
// Deterministic per seed so sessions can be replayed from the report seed
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

// Intn returns a value in [0, n)
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Fixed returns a Q32.32 value in [0, Scale)
func (r *FastRand) Fixed() int64 {
	return int64(r.Next() & (Scale - 1))
}

// Sym returns a Q32.32 value in [-mag, +mag]
func (r *FastRand) Sym(mag int64) int64 {
	if mag <= 0 {
		return 0
	}
	span := uint64(mag)<<1 + 1
	return int64(r.Next()%span) - mag
}
