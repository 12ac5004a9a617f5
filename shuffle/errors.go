// SPDX-License-Identifier: MIT
// Package: deckentropy/shuffle
//
// errors.go - sentinel errors for model construction.
//
// Error policy:
//   • Constructors validate and return these sentinels wrapped with context.
//   • Shuffle itself never returns an error: a model that has been built is
//     valid for every deck. A non-permutation output is a defect and panics.
//   • Option constructors (WithX) panic on meaningless values.

package shuffle

import "errors"

// ErrInvalidRounds indicates a negative number of rounds.
var ErrInvalidRounds = errors.New("shuffle: rounds must be >= 0")

// ErrInvalidCut indicates a cut-stack packet range with minCut < 1 or
// maxCut < minCut.
var ErrInvalidCut = errors.New("shuffle: invalid cut range")

// ErrInvalidRun indicates a riffle run bound below 1.
var ErrInvalidRun = errors.New("shuffle: max run must be >= 1")

// ErrInvalidProbability indicates a bias outside [0,1] (or NaN).
var ErrInvalidProbability = errors.New("shuffle: probability out of range")
