// SPDX-License-Identifier: MIT
// Package: deckentropy/deck
//
// deck.go — Deck type, canonical constructor and read-only helpers.
//
// Contract:
//   - Labels are plain ints; the canonical deck uses 1..N.
//   - Every helper treats its receiver as immutable.

package deck

import (
	"fmt"
	"slices"
)

// firstLabel is the label of the top card in a canonical deck.
const firstLabel = 1

// Deck is an ordered sequence of card labels; index 0 is the top card.
type Deck []int

// New returns the canonical deck [1..n].
// Returns ErrEmptyDeck when n < 1.
// Complexity: O(n).
func New(n int) (Deck, error) {
	if n < 1 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrEmptyDeck)
	}
	d := make(Deck, n)

	var i int
	for i = 0; i < n; i++ {
		d[i] = i + firstLabel // card i+1 sits at index i
	}

	return d, nil
}

// Len returns the number of cards.
func (d Deck) Len() int { return len(d) }

// Clone returns a copy with an independent backing array.
// A nil deck clones to nil.
func (d Deck) Clone() Deck {
	if d == nil {
		return nil
	}
	out := make(Deck, len(d))
	copy(out, d)

	return out
}

// IndexOf returns the 0-based position of label, or -1 when absent.
// Complexity: O(n).
func (d Deck) IndexOf(label int) int {
	return slices.Index(d, label)
}

// Equal reports whether both decks hold the same labels in the same order.
func (d Deck) Equal(other Deck) bool {
	return slices.Equal(d, other)
}

// IsPermutationOf reports whether a and b have equal length and the same
// multiset of labels. Neither input is modified.
// Complexity: O(n log n) time, O(n) space.
func IsPermutationOf(a, b Deck) bool {
	if len(a) != len(b) {
		return false
	}
	// Compare sorted copies; duplicates and gaps both surface as a mismatch.
	sa := slices.Clone(a)
	sb := slices.Clone(b)
	slices.Sort(sa)
	slices.Sort(sb)

	return slices.Equal(sa, sb)
}

// ValidateCanonical checks that d is a permutation of 1..len(d).
// Returns a wrapped ErrNotPermutation naming the first offending label.
// Complexity: O(n) time, O(n) space.
func ValidateCanonical(d Deck) error {
	n := len(d)
	if n == 0 {
		return fmt.Errorf("ValidateCanonical: %w", ErrEmptyDeck)
	}
	seen := make([]bool, n+firstLabel)

	var i, label int
	for i = 0; i < n; i++ {
		label = d[i]
		if label < firstLabel || label > n {
			return fmt.Errorf("ValidateCanonical: label %d at %d outside [1,%d]: %w", label, i, n, ErrNotPermutation)
		}
		if seen[label] {
			return fmt.Errorf("ValidateCanonical: duplicate label %d at %d: %w", label, i, ErrNotPermutation)
		}
		seen[label] = true
	}

	return nil
}
