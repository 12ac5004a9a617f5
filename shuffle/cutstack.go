// SPDX-License-Identifier: MIT
// Package: deckentropy/shuffle
//
// cutstack.go — Model A, the cut-stack shuffle.
//
// Algorithm (one round):
//  1. remaining = deck; new = remaining[:t], t ~ U{minCut..maxCut}.
//  2. While len(remaining) > maxCut: new = remaining[:t] ++ new.
//  3. new = remaining ++ new. new becomes the next round's deck.
//
// The first draw always happens, even when the deck is no longer than
// maxCut; a draw larger than the remaining run takes the whole run.
//
// Implementation:
//   - Packets are written right-to-left into a destination buffer, so the
//     "prepend" steps cost O(t) instead of reallocating the pile.
//   - Two buffers alternate between rounds; total O(N) space.
//
// Complexity:
//   - Time: O(rounds·N) plus O(N log N) for the permutation assertion.
//   - Space: O(N).

package shuffle

import (
	"fmt"

	"github.com/katalvlaran/deckentropy/deck"
)

const (
	methodCutStack = "CutStack"
	minCutFloor    = 1
)

// CutStack is a configured cut-stack model. Immutable after construction.
type CutStack struct {
	rounds int // number of full passes over the deck
	minCut int // smallest packet size (>= 1)
	maxCut int // largest packet size (>= minCut)
}

// NewCutStack validates the configuration and returns a model.
//
// Errors:
//   - ErrInvalidRounds when rounds < 0.
//   - ErrInvalidCut when minCut < 1 or maxCut < minCut.
func NewCutStack(rounds, minCut, maxCut int) (*CutStack, error) {
	if rounds < 0 {
		return nil, fmt.Errorf("%s: rounds=%d: %w", methodCutStack, rounds, ErrInvalidRounds)
	}
	if minCut < minCutFloor || maxCut < minCut {
		return nil, fmt.Errorf("%s: cut range [%d,%d]: %w", methodCutStack, minCut, maxCut, ErrInvalidCut)
	}

	return &CutStack{rounds: rounds, minCut: minCut, maxCut: maxCut}, nil
}

// Rounds returns the configured number of rounds.
func (c *CutStack) Rounds() int { return c.rounds }

// String renders the configuration, e.g. "cut-stack(rounds=3,cut=[2,8])".
func (c *CutStack) String() string {
	return fmt.Sprintf("cut-stack(rounds=%d,cut=[%d,%d])", c.rounds, c.minCut, c.maxCut)
}

// Shuffle applies the configured rounds to a copy of d.
func (c *CutStack) Shuffle(d deck.Deck, rng Source) deck.Deck {
	cur := d.Clone()
	if c.rounds == 0 || len(d) == 0 {
		return cur
	}
	rng = resolveSource(rng)
	buf := make(deck.Deck, len(d))

	var r int
	for r = 0; r < c.rounds; r++ {
		cutStackRound(cur, buf, c.minCut, c.maxCut, rng)
		cur, buf = buf, cur // output of this round feeds the next
	}
	mustPermutation(methodCutStack, d, cur)

	return cur
}

// cutStackRound writes one round of src into dst (same length, no aliasing).
func cutStackRound(src, dst deck.Deck, minCut, maxCut int, rng Source) {
	rest := src
	pos := len(dst) // dst[pos:] holds the pile built so far

	// First packet seeds the new pile unconditionally.
	t := min(uniformInt(rng, minCut, maxCut), len(rest))
	copy(dst[pos-t:pos], rest[:t])
	pos -= t
	rest = rest[t:]

	// len(rest) > maxCut >= t, so no clamp is needed inside the loop.
	for len(rest) > maxCut {
		t = uniformInt(rng, minCut, maxCut)
		copy(dst[pos-t:pos], rest[:t])
		pos -= t
		rest = rest[t:]
	}

	// The remainder lands on top; pos == len(rest) here.
	copy(dst[:pos], rest)
}

// CutStackShuffle is the one-shot form: validate, build, shuffle.
func CutStackShuffle(d deck.Deck, rounds, minCut, maxCut int, rng Source) (deck.Deck, error) {
	c, err := NewCutStack(rounds, minCut, maxCut)
	if err != nil {
		return nil, err
	}

	return c.Shuffle(d, rng), nil
}
