// SPDX-License-Identifier: MIT
// Package: deckentropy/entropy
//
// position.go — single-card position entropy.

package entropy

import (
	"fmt"

	"github.com/katalvlaran/deckentropy/deck"
	"github.com/katalvlaran/deckentropy/shuffle"
)

const methodPosition = "Position"

// PositionResult is the outcome of one Position estimate.
type PositionResult struct {
	N            int       // deck size
	Label        int       // tracked card
	Trials       int       // M, number of shuffles sampled
	Counts       []float64 // Counts[i] = trials ending with Label at index i
	Distribution []float64 // Counts / Trials; sums to 1
	Entropy      float64   // −Σ p ln p, nats
}

// Position estimates the entropy of the final position of card `label`
// after shuffling the canonical deck [1..n] with s.
//
// M = ⌊n·density⌋ trials are run; each starts from the canonical deck.
//
// Errors (all reported before any trial):
//   - ErrDeckTooSmall, ErrNilShuffler, ErrInvalidDensity,
//     ErrLabelOutOfRange, ErrNoTrials.
//
// Runtime errors:
//   - ErrNotPermutation when s returns anything but a permutation of [1..n]
//     (wrong size, duplicate, missing or foreign label).
func Position(n int, s shuffle.Shuffler, label int, density float64, opts ...Option) (*PositionResult, error) {
	if err := validateRun(methodPosition, n, s, density); err != nil {
		return nil, err
	}
	if err := validateLabel(methodPosition, n, label); err != nil {
		return nil, err
	}
	trials, err := trialCount(methodPosition, n, density)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	observe := func(d deck.Deck) int {
		return d.IndexOf(label)
	}
	counts, err := runTrials(methodPosition, n, trials, n, s, observe, cfg)
	if err != nil {
		return nil, err
	}

	return newPositionResult(n, label, trials, counts)
}

// newPositionResult finalizes counts into a result.
func newPositionResult(n, label, trials int, counts []float64) (*PositionResult, error) {
	p, h, err := summarize(counts, trials)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPosition, err)
	}

	return &PositionResult{
		N:            n,
		Label:        label,
		Trials:       trials,
		Counts:       counts,
		Distribution: p,
		Entropy:      h,
	}, nil
}

// Pool merges two independent estimates of the same (N, Label) into one
// with Trials = a.Trials + b.Trials, as if a single larger run was made.
func (r *PositionResult) Pool(other *PositionResult) (*PositionResult, error) {
	if other == nil || r.N != other.N || r.Label != other.Label {
		return nil, fmt.Errorf("%s.Pool: %w", methodPosition, ErrIncompatibleResults)
	}
	counts := make([]float64, len(r.Counts))
	for i := range counts {
		counts[i] = r.Counts[i] + other.Counts[i]
	}

	return newPositionResult(r.N, r.Label, r.Trials+other.Trials, counts)
}
