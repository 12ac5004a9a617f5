// SPDX-License-Identifier: MIT
// Package: deckentropy/shuffle
//
// rng.go — deterministic RNG factory, per-worker stream derivation and the
// discrete draws used by the models.
//
// Goals:
//   - Determinism: same seed ⇒ identical shuffles on every platform.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//   - Independence: DeriveRand gives each worker a decorrelated stream.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share one across goroutines.

package shuffle

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// defaultSeed is the fixed seed used when callers pass seed==0 or a nil Source.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with a SplitMix64 finalizer.
// Small changes in either input produce well-spread output seeds.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand creates an independent deterministic stream from base and a
// stream id. base.Int63() is consumed once, so deriving twice with the same
// id still yields different children. base==nil uses defaultSeed as parent.
//
// Call during setup (one per worker), not inside trial loops.
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

// resolveSource substitutes the default deterministic stream for nil.
func resolveSource(rng Source) Source {
	if rng == nil {
		return NewRand(0)
	}

	return rng
}

// uniformInt draws uniformly from the inclusive range [lo, hi]. hi >= lo.
func uniformInt(rng Source, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// Binomial draws from Binomial(n, p) with gonum's distuv sampler fed by rng.
// n <= 0 yields 0; p is expected in [0,1] (p==1 always yields n).
//
// For n < 25 distuv counts n uniform draws against min(p, 1-p), so exactly n
// Float64 values are consumed from rng per call.
// Complexity: O(n) for n < 25, O(1) expected above.
func Binomial(rng Source, n int, p float64) int {
	if n <= 0 {
		return 0
	}
	b := distuv.Binomial{N: float64(n), P: p, Src: uniformBits{src: resolveSource(rng)}}

	return int(b.Rand())
}

// uniformBits adapts a Source to the math/rand/v2 Source distuv reads from.
// One Float64 draw becomes one Uint64: the low 53 bits hold the draw scaled
// onto the 2^-53 grid, which is exactly what rand/v2's Float64 reads back;
// the high 11 bits repeat the draw's top bits so Uint32-based paths stay
// spread over their full range.
type uniformBits struct {
	src Source
}

func (u uniformBits) Uint64() uint64 {
	k := uint64(u.src.Float64() * (1 << 53))

	return k | (k>>42)<<53
}
