// Package randutil centralises how deterministic randomness sources are
// derived, so every call site gets a reproducible sequence for a given
// seed.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. rand/v2's
// PCG needs two 64-bit words, both derived here from the single seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// ForPair returns an independent stream for one pairing within a run.
// Folding the pair index into the seed keeps match outcomes identical no
// matter how the pairs are scheduled across workers.
func ForPair(seed int64, pair int) *rand.Rand {
	u := uint64(seed) ^ mix(uint64(pair)+goldenRatio64)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// mix is the splitmix64 finaliser, used to spread nearby seeds across the
// whole 64-bit space.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
