// Package core - deterministic RNG helpers.
//
// The library itself never seeds or owns randomness; algorithms consume the
// Rand interface supplied at build time. These helpers centralize a
// reproducible seeding policy for callers, examples and tests.
//
// Goals:
//   - Determinism: same seed ⇒ identical runs across platforms.
//   - Encapsulation: one factory; no time-based sources hidden anywhere.
//   - Independence: derived streams for multi-start or paired runs without
//     correlation between them.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a Rand across
//     goroutines; use DeriveRand to create independent streams instead.
package core

import "math/rand"

// defaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// RandFromSeed returns a deterministic Rand backed by math/rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func RandFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style finalizer (Vigna 2014). Small changes in the
// inputs produce large, well-distributed output changes, which keeps derived
// streams uncorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand creates an independent deterministic stream from base and a
// stream identifier. If base==nil, defaultSeed is used as the parent;
// otherwise base.Int63() is consumed once, intentionally advancing base so
// that reusing the same stream id by mistake still yields distinct children.
//
// Call during setup, not in hot loops.
//
// Complexity: O(1).
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
