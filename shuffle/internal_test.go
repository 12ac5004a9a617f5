package shuffle

import (
	"testing"

	"github.com/katalvlaran/deckentropy/deck"
	"github.com/stretchr/testify/assert"
)

// TestMustPermutation_PanicsOnDefect guards the model assertion itself.
func TestMustPermutation_PanicsOnDefect(t *testing.T) {
	in := deck.Deck{1, 2, 3}
	assert.Panics(t, func() { mustPermutation("test", in, deck.Deck{1, 1, 3}) })
	assert.Panics(t, func() { mustPermutation("test", in, deck.Deck{1, 2}) })
	assert.NotPanics(t, func() { mustPermutation("test", in, deck.Deck{3, 1, 2}) })
}

// TestSplitPoint_Window keeps the cut inside the configured window.
func TestSplitPoint_Window(t *testing.T) {
	rng := NewRand(3)
	for i := 0; i < 1000; i++ {
		m := splitPoint(52, DefaultSplitSpread, rng)
		// 26 ± 52/12 → [21.67, 31.33]
		assert.GreaterOrEqual(t, m, 21)
		assert.LessOrEqual(t, m, 31)
	}
	assert.Equal(t, 0, splitPoint(0, 0.5, rng))
	assert.Equal(t, 2, splitPoint(4, 0, rng))
}
