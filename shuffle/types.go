// SPDX-License-Identifier: MIT
// Package: deckentropy/shuffle
//
// types.go — the Shuffler strategy, the random Source it consumes, and the
// closure adapter.

package shuffle

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/deckentropy/deck"
)

// Source is the minimal random surface the models draw from.
// *math/rand.Rand satisfies it; tests may supply scripted doubles.
type Source interface {
	// Intn returns a uniform int in [0,n). n > 0.
	Intn(n int) int
	// Float64 returns a uniform float in [0,1).
	Float64() float64
}

// Shuffler transforms a deck into a new, shuffled deck.
// Implementations must not mutate d and must return a permutation of d.
type Shuffler interface {
	Shuffle(d deck.Deck, rng Source) deck.Deck
}

// Func adapts a plain function to the Shuffler interface.
type Func func(d deck.Deck, rng Source) deck.Deck

// Shuffle calls f(d, rng).
func (f Func) Shuffle(d deck.Deck, rng Source) deck.Deck { return f(d, rng) }

// identity is the zero-round model.
type identity struct{}

// Identity returns every deck unchanged (as a fresh copy).
var Identity Shuffler = identity{}

// Shuffle returns a clone of d.
func (identity) Shuffle(d deck.Deck, _ Source) deck.Deck { return d.Clone() }

// String names the model for logs and run records.
func (identity) String() string { return "identity" }

// Compile-time conformance checks.
var (
	_ Shuffler = Func(nil)
	_ Shuffler = (*CutStack)(nil)
	_ Shuffler = (*Riffle)(nil)
	_ Source   = (*rand.Rand)(nil)
)

// mustPermutation panics when out is not a permutation of in.
// Reserved for model defects; user input can never trigger it.
func mustPermutation(method string, in, out deck.Deck) {
	if !deck.IsPermutationOf(in, out) {
		panic(fmt.Sprintf("shuffle: %s produced a non-permutation (in=%d cards, out=%d cards)", method, len(in), len(out)))
	}
}
