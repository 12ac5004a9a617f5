// SPDX-License-Identifier: MIT
// Package: deckentropy/entropy
//
// errors.go - sentinel errors for the estimators.
//
// Error policy:
//   • Configuration errors are returned BEFORE any trial runs.
//   • A shuffler that breaks the permutation contract surfaces as
//     ErrNotPermutation rather than as a skewed distribution.
//   • Callers match with errors.Is; context is attached with %w.

package entropy

import "errors"

var (
	// ErrDeckTooSmall indicates N < 2.
	ErrDeckTooSmall = errors.New("entropy: deck size must be >= 2")

	// ErrInvalidDensity indicates a density that is not a finite value > 0,
	// or one so large the trial count overflows int.
	ErrInvalidDensity = errors.New("entropy: density must be finite and > 0")

	// ErrLabelOutOfRange indicates a tracked label outside [1,N].
	ErrLabelOutOfRange = errors.New("entropy: label out of range")

	// ErrSameLabel indicates the joint estimator was given one label twice.
	ErrSameLabel = errors.New("entropy: joint labels must differ")

	// ErrNilShuffler indicates a nil shuffle strategy.
	ErrNilShuffler = errors.New("entropy: shuffler is nil")

	// ErrNoTrials indicates the density rounds the trial count down to zero.
	ErrNoTrials = errors.New("entropy: density yields no trials")

	// ErrNotPermutation indicates a shuffler returned something other than a
	// permutation of [1..n]: wrong length, duplicate, missing or foreign label.
	ErrNotPermutation = errors.New("entropy: shuffler output is not a permutation")

	// ErrIncompatibleResults indicates two results that cannot be pooled
	// (different deck size or tracked labels).
	ErrIncompatibleResults = errors.New("entropy: results are not poolable")
)
