package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for
// deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// Shuffle permutes the provided ints in place.
func (r *RNG) Shuffle(vals []int) {
	r.r.Shuffle(len(vals), func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
