package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value with probability 0.5.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// FillBool sets every cell independently live with probability 0.5.
func (r *RNG) FillBool(buf []bool) {
	for i := range buf {
		buf[i] = r.Bool()
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
