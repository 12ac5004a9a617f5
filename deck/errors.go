// SPDX-License-Identifier: MIT
// Package: deckentropy/deck
//
// errors.go - sentinel errors for the deck package.
// Callers MUST branch with errors.Is; context is attached via %w.

package deck

import "errors"

// ErrEmptyDeck is returned when a deck of non-positive size is requested.
var ErrEmptyDeck = errors.New("deck: size must be > 0")

// ErrNotPermutation indicates a deck is not a permutation of the expected
// labels (length mismatch, duplicate label, or missing label).
var ErrNotPermutation = errors.New("deck: not a permutation")
