// Package entropy_test contains shared fixtures for the estimator tests.
package entropy_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/deckentropy/deck"
	"github.com/katalvlaran/deckentropy/shuffle"
	"github.com/stretchr/testify/require"
)

// Numeric tolerances used across the estimator tests.
const (
	sumTol = 1e-9 // distributions must sum to 1 within this
	seedA  = 17
	seedB  = 18
)

// uniformShuffler is a Fisher–Yates stand-in producing uniform permutations;
// it pins the maximum-entropy end of the scale.
var uniformShuffler = shuffle.Func(func(d deck.Deck, rng shuffle.Source) deck.Deck {
	out := d.Clone()
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
})

// sum adds up a vector.
func sum(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}

// requireDistribution checks values in [0,1], no NaN, and total 1.
func requireDistribution(t *testing.T, p []float64) {
	t.Helper()
	for i, v := range p {
		require.False(t, math.IsNaN(v), "p[%d] is NaN", i)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
	}
	require.InDelta(t, 1.0, sum(p), sumTol)
}
