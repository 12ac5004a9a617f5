// SPDX-License-Identifier: MIT
// Package: deckentropy/entropy
//
// joint.go — joint entropy of the final positions of two cards.
//
// The outcome (i, j) = (position of label1, position of label2) is encoded
// as the flat row-major index i·N + j so the shared trial runner and
// summarize routine serve both estimators. The N×N table keeps the diagonal,
// which is unreachable for a permutation and therefore stays exactly 0.

package entropy

import (
	"fmt"

	"github.com/katalvlaran/deckentropy/deck"
	"github.com/katalvlaran/deckentropy/matrix"
	"github.com/katalvlaran/deckentropy/shuffle"
)

const methodJoint = "Joint"

// JointResult is the outcome of one Joint estimate.
type JointResult struct {
	N            int           // deck size
	Label1       int           // first tracked card (rows)
	Label2       int           // second tracked card (columns)
	Trials       int           // M, number of shuffles sampled
	Counts       *matrix.Dense // N×N histogram
	Distribution *matrix.Dense // Counts / Trials; sums to 1
	Entropy      float64       // joint entropy, nats
}

// Joint estimates the joint entropy of the final positions of cards
// label1 and label2 after shuffling the canonical deck [1..n] with s.
//
// M = ⌊n(n−1)·density⌋ trials are run; each starts from the canonical deck.
//
// Errors (all reported before any trial):
//   - ErrDeckTooSmall, ErrNilShuffler, ErrInvalidDensity,
//     ErrLabelOutOfRange, ErrSameLabel, ErrNoTrials.
//
// Runtime errors:
//   - ErrNotPermutation when s returns anything but a permutation of [1..n]
//     (wrong size, duplicate, missing or foreign label).
func Joint(n int, s shuffle.Shuffler, label1, label2 int, density float64, opts ...Option) (*JointResult, error) {
	if err := validateRun(methodJoint, n, s, density); err != nil {
		return nil, err
	}
	if err := validateLabel(methodJoint, n, label1); err != nil {
		return nil, err
	}
	if err := validateLabel(methodJoint, n, label2); err != nil {
		return nil, err
	}
	if label1 == label2 {
		return nil, fmt.Errorf("%s: label1=label2=%d: %w", methodJoint, label1, ErrSameLabel)
	}
	trials, err := trialCount(methodJoint, n*(n-1), density)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	observe := func(d deck.Deck) int {
		return d.IndexOf(label1)*n + d.IndexOf(label2)
	}
	counts, err := runTrials(methodJoint, n, trials, n*n, s, observe, cfg)
	if err != nil {
		return nil, err
	}
	table, err := matrix.Reshape(counts, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodJoint, err)
	}

	return newJointResult(n, label1, label2, trials, table)
}

// newJointResult finalizes an N×N count table into a result.
func newJointResult(n, label1, label2, trials int, table *matrix.Dense) (*JointResult, error) {
	flat, err := matrix.Flatten(table)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodJoint, err)
	}
	_, h, err := summarize(flat, trials)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodJoint, err)
	}
	dist, err := matrix.Scale(table, 1/float64(trials))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodJoint, err)
	}

	return &JointResult{
		N:            n,
		Label1:       label1,
		Label2:       label2,
		Trials:       trials,
		Counts:       table,
		Distribution: dist,
		Entropy:      h,
	}, nil
}

// Marginals returns the distributions of label1's position (row sums) and
// label2's position (column sums).
func (r *JointResult) Marginals() (first, second []float64, err error) {
	if first, err = matrix.RowSums(r.Distribution); err != nil {
		return nil, nil, fmt.Errorf("%s.Marginals: %w", methodJoint, err)
	}
	if second, err = matrix.ColSums(r.Distribution); err != nil {
		return nil, nil, fmt.Errorf("%s.Marginals: %w", methodJoint, err)
	}

	return first, second, nil
}

// MutualInformation returns H(first) + H(second) − H(first, second) in nats:
// how much knowing one card's final position tells about the other's.
func (r *JointResult) MutualInformation() (float64, error) {
	first, second, err := r.Marginals()
	if err != nil {
		return 0, err
	}
	mi := Shannon(first) + Shannon(second) - r.Entropy

	return max(0, mi), nil // fold float round-off below zero
}

// Pool merges two independent estimates of the same (N, Label1, Label2).
func (r *JointResult) Pool(other *JointResult) (*JointResult, error) {
	if other == nil || r.N != other.N || r.Label1 != other.Label1 || r.Label2 != other.Label2 {
		return nil, fmt.Errorf("%s.Pool: %w", methodJoint, ErrIncompatibleResults)
	}
	table, err := matrix.Add(r.Counts, other.Counts)
	if err != nil {
		return nil, fmt.Errorf("%s.Pool: %w", methodJoint, err)
	}

	return newJointResult(r.N, r.Label1, r.Label2, r.Trials+other.Trials, table)
}
