// Package randutil builds reproducible random sources for shuffling and
// randomized tests.
package randutil

import rand "math/rand/v2"

// New returns a PCG-backed generator whose sequence depends only on seed.
// Both PCG words come from successive SplitMix64 steps, so nearby seeds
// still give unrelated streams.
func New(seed int64) *rand.Rand {
	state := uint64(seed)
	hi := splitMix64(&state)
	lo := splitMix64(&state)
	return rand.New(rand.NewPCG(hi, lo))
}

func splitMix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
