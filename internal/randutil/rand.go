// Package randutil centralises how pseudo-random sources are constructed.
// Everything in the engine that needs randomness (shuffling, Monte Carlo
// sampling, bluff rolls) takes an explicit *rand.Rand so tests can pin the
// seed and replay exact hands.
package randutil

import rand "math/rand/v2"

const golden64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. rand/v2's
// PCG wants two 64-bit states; both are derived from the single seed via a
// splitmix-style finalizer so call sites only ever deal in one number.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+golden64)))
}

// Fork derives an independent source from src, for handing to a worker
// goroutine without sharing the parent generator.
func Fork(src *rand.Rand) *rand.Rand {
	return New(int64(src.Uint64()))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
