// Package deck_test validates the permutation primitive.
package deck_test

import (
	"testing"

	"github.com/katalvlaran/deckentropy/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Canonical checks that New builds [1..n].
func TestNew_Canonical(t *testing.T) {
	d, err := deck.New(5)
	require.NoError(t, err)
	assert.Equal(t, deck.Deck{1, 2, 3, 4, 5}, d)
	assert.Equal(t, 5, d.Len())
}

// TestNew_Empty rejects non-positive sizes.
func TestNew_Empty(t *testing.T) {
	_, err := deck.New(0)
	assert.ErrorIs(t, err, deck.ErrEmptyDeck)

	_, err = deck.New(-3)
	assert.ErrorIs(t, err, deck.ErrEmptyDeck)
}

// TestClone_Independent ensures mutations of the clone never reach the source.
func TestClone_Independent(t *testing.T) {
	d, _ := deck.New(4)
	c := d.Clone()
	c[0] = 99

	assert.Equal(t, 1, d[0], "source must be untouched")
	assert.Nil(t, deck.Deck(nil).Clone())
}

// TestIndexOf covers present and absent labels.
func TestIndexOf(t *testing.T) {
	d := deck.Deck{3, 1, 4, 2}
	assert.Equal(t, 0, d.IndexOf(3))
	assert.Equal(t, 3, d.IndexOf(2))
	assert.Equal(t, -1, d.IndexOf(7))
}

// TestIsPermutationOf covers reorderings, duplicates and length mismatch.
func TestIsPermutationOf(t *testing.T) {
	base := deck.Deck{1, 2, 3, 4}

	assert.True(t, deck.IsPermutationOf(base, deck.Deck{4, 2, 1, 3}))
	assert.False(t, deck.IsPermutationOf(base, deck.Deck{1, 2, 2, 4}), "duplicate label")
	assert.False(t, deck.IsPermutationOf(base, deck.Deck{1, 2, 3}), "short deck")
	assert.Equal(t, deck.Deck{1, 2, 3, 4}, base, "input must stay sorted as given")
}

// TestValidateCanonical checks the sentinel for each violation class.
func TestValidateCanonical(t *testing.T) {
	require.NoError(t, deck.ValidateCanonical(deck.Deck{2, 3, 1}))

	cases := map[string]deck.Deck{
		"duplicate":    {1, 1, 3},
		"out of range": {1, 2, 4},
		"zero label":   {0, 1, 2},
	}
	for name, d := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, deck.ValidateCanonical(d), deck.ErrNotPermutation)
		})
	}

	assert.ErrorIs(t, deck.ValidateCanonical(nil), deck.ErrEmptyDeck)
}
