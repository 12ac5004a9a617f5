// SPDX-License-Identifier: MIT
// Package: deckentropy/entropy
//
// trials.go — the Monte Carlo loop shared by every estimator.
//
// Implementation:
//   - Stage 1: build the canonical deck once; it is never handed to a
//     shuffler, so it stays read-only from here on.
//   - Stage 2: derive one RNG stream per worker, in worker order, before any
//     goroutine starts (keeps seeding deterministic).
//   - Stage 3: each worker runs its share of trials into a private histogram.
//     Every trial shuffles the worker's own deck, reset to canonical order
//     first, so a shuffler that permutes in place never chains trials.
//     Each output must be a permutation of [1..n] before it is counted.
//   - Stage 4: merge partial histograms in worker order.
//
// Concurrency:
//   - No shared mutable state besides the partials slice, where each worker
//     owns exactly one slot. The canonical deck is only read.

package entropy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/deckentropy/deck"
	"github.com/katalvlaran/deckentropy/shuffle"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// observer maps one validated permutation of [1..n] to a flat outcome index
// in [0, outcomes).
type observer func(d deck.Deck) int

// runTrials executes `trials` independent shuffles of the canonical deck of
// size n and returns the outcome histogram (len == outcomes, sum == trials).
func runTrials(method string, n, trials, outcomes int, s shuffle.Shuffler, observe observer, cfg config) ([]float64, error) {
	// Stage 1
	canonical, err := deck.New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	// Stage 2
	workers := min(cfg.workers, trials)
	base := cfg.rng
	if base == nil {
		base = shuffle.NewRand(cfg.seed)
	}
	streams := make([]*rand.Rand, workers)
	for w := range streams {
		streams[w] = shuffle.DeriveRand(base, uint64(w))
	}

	log := cfg.logger.WithFields(logrus.Fields{
		"method":   method,
		"n":        n,
		"trials":   trials,
		"outcomes": outcomes,
		"workers":  workers,
	})
	log.Debug("trials started")
	start := time.Now()

	// Stage 3
	partials := make([][]float64, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		share := trials / workers
		if w < trials%workers {
			share++ // spread the remainder over the first workers
		}
		g.Go(func() error {
			hist := make([]float64, outcomes)
			rng := streams[w]
			work := canonical.Clone()
			var k int
			var out deck.Deck
			var err error
			for k = 0; k < share; k++ {
				copy(work, canonical)
				out = s.Shuffle(work, rng)
				if len(out) != n {
					return fmt.Errorf("%s: shuffled deck has %d cards, want %d: %w", method, len(out), n, ErrNotPermutation)
				}
				if err = deck.ValidateCanonical(out); err != nil {
					return fmt.Errorf("%s: %w: %w", method, ErrNotPermutation, err)
				}
				hist[observe(out)]++
			}
			partials[w] = hist
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	// Stage 4
	counts := partials[0]
	for w := 1; w < workers; w++ {
		for i, c := range partials[w] {
			counts[i] += c
		}
	}
	log.WithField("elapsed", time.Since(start)).Debug("trials finished")

	return counts, nil
}
