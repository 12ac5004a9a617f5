package shuffle_test

import (
	"testing"

	"github.com/katalvlaran/deckentropy/deck"
	"github.com/katalvlaran/deckentropy/shuffle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRiffle_TwelveCardsTraced follows one riffle by hand.
//
//	cut:    5 + 0.5·3 → m=6; coin 0.9 → half1=[1..6], half2=[7..12]
//	pass 1: t1=2, t2=1 → new=[12,5,6]
//	pass 2: t1=1, t2=3 → new=[9,10,11,4,12,5,6]
//	stop:   half2=[7,8] is not longer than maxRun=2
//	result: [7,8,1,2,3,9,10,11,4,12,5,6]
func TestRiffle_TwelveCardsTraced(t *testing.T) {
	src := &scripted{t: t, floats: []float64{
		0.5,      // split point
		0.9,      // coin: top part is half1
		0.1, 0.9, // t1 = 1+1
		0.9, 0.9, // t2 = 0+1
		0.9, 0.9, // t1 = 0+1
		0.1, 0.1, // t2 = 2+1
	}}
	r, err := shuffle.NewRiffle(1, 2, 0.5)
	require.NoError(t, err)

	d, _ := deck.New(12)
	out := r.Shuffle(d, src)
	assert.Equal(t, deck.Deck{7, 8, 1, 2, 3, 9, 10, 11, 4, 12, 5, 6}, out)
	assert.NoError(t, src.exhausted())
}

// TestRiffle_CoinSwapsHalves puts the bottom part in the half1 role.
// With maxRun ≥ both halves the loop never runs: result = half2 ++ half1 = deck.
func TestRiffle_CoinSwapsHalves(t *testing.T) {
	src := &scripted{t: t, floats: []float64{0.0, 0.2}}
	r, err := shuffle.NewRiffle(1, 10, 0.5, shuffle.WithSplitSpread(0))
	require.NoError(t, err)

	out := r.Shuffle(deck.Deck{1, 2, 3, 4}, src)
	assert.Equal(t, deck.Deck{1, 2, 3, 4}, out)

	src = &scripted{t: t, floats: []float64{0.0, 0.7}}
	out = r.Shuffle(deck.Deck{1, 2, 3, 4}, src)
	// half1=[1,2], half2=[3,4] → half2 ++ half1
	assert.Equal(t, deck.Deck{3, 4, 1, 2}, out)
}

// TestRiffle_ZeroRounds is the identity.
func TestRiffle_ZeroRounds(t *testing.T) {
	d, _ := deck.New(52)
	out, err := shuffle.RiffleShuffle(d, 0, 3, 0.3, shuffle.NewRand(7))
	require.NoError(t, err)
	assert.Equal(t, d, out)
}

// TestNewRiffle_Invalid covers each configuration error class.
func TestNewRiffle_Invalid(t *testing.T) {
	_, err := shuffle.NewRiffle(-2, 3, 0.5)
	assert.ErrorIs(t, err, shuffle.ErrInvalidRounds)

	_, err = shuffle.NewRiffle(1, 0, 0.5)
	assert.ErrorIs(t, err, shuffle.ErrInvalidRun)

	_, err = shuffle.NewRiffle(1, 3, 1.5)
	assert.ErrorIs(t, err, shuffle.ErrInvalidProbability)

	_, err = shuffle.RiffleShuffle(deck.Deck{1, 2}, 1, 3, -0.1, nil)
	assert.ErrorIs(t, err, shuffle.ErrInvalidProbability)
}

// TestWithSplitSpread_Panics enforces option-constructor validation.
func TestWithSplitSpread_Panics(t *testing.T) {
	assert.Panics(t, func() { shuffle.WithSplitSpread(-0.1) })
	assert.Panics(t, func() { shuffle.WithSplitSpread(0.6) })
	assert.NotPanics(t, func() { shuffle.WithSplitSpread(0.25) })
}

// TestRiffle_String documents the rendering used in run records.
func TestRiffle_String(t *testing.T) {
	r, _ := shuffle.NewRiffle(2, 3, 0.25)
	assert.Equal(t, "riffle(rounds=2,maxRun=3,bias=0.25,spread=0.08333333333333333)", r.String())
	assert.Equal(t, 2, r.Rounds())
}
