// SPDX-License-Identifier: MIT
// Package: deckentropy/shuffle
//
// riffle.go — Model B, the riffle shuffle.
//
// Algorithm (one round, N cards):
//  1. m = floor(U[N/2 − s·N, N/2 + s·N + 1)), clamped to [0,N].
//  2. With probability 1/2, half1 = deck[:m], half2 = deck[m:];
//     otherwise half2 = deck[:m], half1 = deck[m:].
//  3. While len(half1) > maxRun and len(half2) > maxRun:
//     t1, t2 ~ Binomial(maxRun, bias) + 1;
//     new = half2[-t2:] ++ half1[-t1:] ++ new; drop those tails.
//  4. new = half2 ++ half1 ++ new.
//
// Precondition (documented, not defended): N should be large relative to
// 1/spread so the cut window is meaningful; tiny decks still yield valid
// permutations, just with a degenerate split.
//
// Complexity:
//   - Time: O(rounds·N·maxRun) for the binomial draws, O(N log N) assertion.
//   - Space: O(N).

package shuffle

import (
	"fmt"
	"math"

	"github.com/katalvlaran/deckentropy/deck"
)

const (
	methodRiffle = "Riffle"
	minRunFloor  = 1
	coinFlip     = 0.5
)

// Riffle is a configured riffle model. Immutable after construction.
type Riffle struct {
	rounds int     // number of riffles
	maxRun int     // run length is Binomial(maxRun, bias)+1
	bias   float64 // success probability of the run-length binomial
	spread float64 // cut window half-width as a fraction of N
}

// NewRiffle validates the configuration and returns a model.
//
// Errors:
//   - ErrInvalidRounds when rounds < 0.
//   - ErrInvalidRun when maxRun < 1.
//   - ErrInvalidProbability when bias is NaN or outside [0,1].
func NewRiffle(rounds, maxRun int, bias float64, opts ...RiffleOption) (*Riffle, error) {
	if rounds < 0 {
		return nil, fmt.Errorf("%s: rounds=%d: %w", methodRiffle, rounds, ErrInvalidRounds)
	}
	if maxRun < minRunFloor {
		return nil, fmt.Errorf("%s: maxRun=%d: %w", methodRiffle, maxRun, ErrInvalidRun)
	}
	if math.IsNaN(bias) || bias < 0 || bias > 1 {
		return nil, fmt.Errorf("%s: bias=%v: %w", methodRiffle, bias, ErrInvalidProbability)
	}
	cfg := newRiffleConfig(opts...)

	return &Riffle{rounds: rounds, maxRun: maxRun, bias: bias, spread: cfg.spread}, nil
}

// Rounds returns the configured number of rounds.
func (r *Riffle) Rounds() int { return r.rounds }

// String renders the configuration for logs and run records.
func (r *Riffle) String() string {
	return fmt.Sprintf("riffle(rounds=%d,maxRun=%d,bias=%g,spread=%g)", r.rounds, r.maxRun, r.bias, r.spread)
}

// Shuffle applies the configured rounds to a copy of d.
func (r *Riffle) Shuffle(d deck.Deck, rng Source) deck.Deck {
	cur := d.Clone()
	if r.rounds == 0 || len(d) == 0 {
		return cur
	}
	rng = resolveSource(rng)
	buf := make(deck.Deck, len(d))

	var k int
	for k = 0; k < r.rounds; k++ {
		r.round(cur, buf, rng)
		cur, buf = buf, cur
	}
	mustPermutation(methodRiffle, d, cur)

	return cur
}

// round writes one riffle of src into dst, filling dst right-to-left.
func (r *Riffle) round(src, dst deck.Deck, rng Source) {
	m := splitPoint(len(src), r.spread, rng)

	var half1, half2 deck.Deck
	if rng.Float64() > coinFlip {
		half1, half2 = src[:m], src[m:]
	} else {
		half2, half1 = src[:m], src[m:]
	}

	pos := len(dst)
	var t1, t2 int
	for len(half1) > r.maxRun && len(half2) > r.maxRun {
		t1 = Binomial(rng, r.maxRun, r.bias) + 1
		t2 = Binomial(rng, r.maxRun, r.bias) + 1

		// new = half2[-t2:] ++ half1[-t1:] ++ new
		pos -= t1
		copy(dst[pos:pos+t1], half1[len(half1)-t1:])
		pos -= t2
		copy(dst[pos:pos+t2], half2[len(half2)-t2:])

		half1 = half1[:len(half1)-t1]
		half2 = half2[:len(half2)-t2]
	}

	// new = half2 ++ half1 ++ new
	pos -= len(half1)
	copy(dst[pos:pos+len(half1)], half1)
	copy(dst[:pos], half2) // pos == len(half2)
}

// splitPoint draws the cut index from the window centred on n/2.
func splitPoint(n int, spread float64, rng Source) int {
	half := float64(n) / 2
	lo := half - spread*float64(n)
	hi := half + spread*float64(n) + 1
	m := int(lo + rng.Float64()*(hi-lo))

	return max(0, min(m, n))
}

// RiffleShuffle is the one-shot form: validate, build, shuffle.
func RiffleShuffle(d deck.Deck, rounds, maxRun int, bias float64, rng Source) (deck.Deck, error) {
	r, err := NewRiffle(rounds, maxRun, bias)
	if err != nil {
		return nil, err
	}

	return r.Shuffle(d, rng), nil
}
