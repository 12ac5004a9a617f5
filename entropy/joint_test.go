package entropy_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/deckentropy/deck"
	"github.com/katalvlaran/deckentropy/entropy"
	"github.com/katalvlaran/deckentropy/matrix"
	"github.com/katalvlaran/deckentropy/shuffle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJoint_IdentityOneHot: identity shuffle puts all mass at (l1-1, l2-1).
func TestJoint_IdentityOneHot(t *testing.T) {
	res, err := entropy.Joint(4, shuffle.Identity, 1, 3, 1)
	require.NoError(t, err)

	assert.Equal(t, 12, res.Trials) // 4·3·1
	v, err := res.Distribution.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 0.0, res.Entropy)

	first, second, err := res.Marginals()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0}, first)
	assert.Equal(t, []float64{0, 0, 1, 0}, second)
}

// TestJoint_DiagonalZeroAndSum checks the structural zeros and the total.
func TestJoint_DiagonalZeroAndSum(t *testing.T) {
	const n = 12
	riffle, _ := shuffle.NewRiffle(2, 2, 0.5)

	res, err := entropy.Joint(n, riffle, 1, 2, 5, entropy.WithSeed(seedA), entropy.WithWorkers(2))
	require.NoError(t, err)

	flat, err := matrix.Flatten(res.Distribution)
	require.NoError(t, err)
	requireDistribution(t, flat)

	for i := 0; i < n; i++ {
		v, _ := res.Distribution.At(i, i)
		assert.Equal(t, 0.0, v, "diagonal (%d,%d) must be unreachable", i, i)
	}
	total, _ := matrix.Total(res.Counts)
	assert.Equal(t, float64(res.Trials), total)
	assert.LessOrEqual(t, res.Entropy, entropy.MaxJointEntropy(n)+sumTol)
}

// TestJoint_UniformReachesMax: the uniform stand-in approaches ln(N(N−1))
// and the two positions carry almost no mutual information.
func TestJoint_UniformReachesMax(t *testing.T) {
	const n = 6
	res, err := entropy.Joint(n, uniformShuffler, 2, 5, 1000, entropy.WithSeed(seedB), entropy.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, 30000, res.Trials)
	assert.InDelta(t, math.Log(n*(n-1)), res.Entropy, 0.01)

	mi, err := res.MutualInformation()
	require.NoError(t, err)
	// Exact MI of a uniform ordered pair of distinct positions: 2·ln N − ln(N(N−1)).
	assert.InDelta(t, 2*math.Log(n)-math.Log(n*(n-1)), mi, 0.01)
}

// TestJoint_InvalidConfiguration fails fast for the joint-specific errors.
func TestJoint_InvalidConfiguration(t *testing.T) {
	_, err := entropy.Joint(5, shuffle.Identity, 2, 2, 1)
	assert.ErrorIs(t, err, entropy.ErrSameLabel)

	_, err = entropy.Joint(5, shuffle.Identity, 1, 9, 1)
	assert.ErrorIs(t, err, entropy.ErrLabelOutOfRange)

	_, err = entropy.Joint(5, shuffle.Identity, 0, 2, 1)
	assert.ErrorIs(t, err, entropy.ErrLabelOutOfRange)

	_, err = entropy.Joint(5, shuffle.Identity, 1, 2, 0.01) // 20·0.01 → 0 trials
	assert.ErrorIs(t, err, entropy.ErrNoTrials)

	_, err = entropy.Joint(1, shuffle.Identity, 1, 2, 1)
	assert.ErrorIs(t, err, entropy.ErrDeckTooSmall)
}

// TestJoint_RejectsNonPermutation: both tracked cards are present, but a
// duplicate elsewhere makes the output invalid.
func TestJoint_RejectsNonPermutation(t *testing.T) {
	dup := shuffle.Func(func(d deck.Deck, _ shuffle.Source) deck.Deck { return deck.Deck{1, 4, 4, 2} })
	_, err := entropy.Joint(4, dup, 1, 2, 1, entropy.WithWorkers(2))
	assert.ErrorIs(t, err, entropy.ErrNotPermutation)
}

// TestJoint_Pool adds the count tables of two runs.
func TestJoint_Pool(t *testing.T) {
	cut, _ := shuffle.NewCutStack(1, 1, 3)
	a, err := entropy.Joint(8, cut, 1, 8, 2, entropy.WithSeed(seedA))
	require.NoError(t, err)
	b, err := entropy.Joint(8, cut, 1, 8, 2, entropy.WithSeed(seedB))
	require.NoError(t, err)

	p, err := a.Pool(b)
	require.NoError(t, err)
	assert.Equal(t, a.Trials+b.Trials, p.Trials)
	total, _ := matrix.Total(p.Distribution)
	assert.InDelta(t, 1.0, total, sumTol)

	c, _ := entropy.Joint(8, cut, 2, 8, 2)
	_, err = a.Pool(c)
	assert.ErrorIs(t, err, entropy.ErrIncompatibleResults)
}
