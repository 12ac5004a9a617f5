// SPDX-License-Identifier: MIT
// Package: deckentropy/entropy
//
// options.go - functional options shared by Position and Joint.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Defaults: one worker, seed 0 (fixed default stream), silent logger.
//   • WithRand takes precedence over WithSeed when both are given.

package entropy

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"
)

const defaultWorkers = 1

// config aggregates every estimator knob. Passed by value once resolved.
type config struct {
	seed    int64              // base seed; 0 ⇒ shuffle's default stream
	rng     *rand.Rand         // explicit base RNG; overrides seed when set
	workers int                // goroutines sharing the trial budget
	logger  logrus.FieldLogger // run diagnostics; discarded by default
}

// Option customizes an estimator run.
type Option func(*config)

// WithSeed fixes the base seed from which worker streams are derived.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithRand supplies the base RNG explicitly. Panics on nil.
// The estimator consumes one Int63 per worker from it during setup.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("entropy: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithWorkers spreads the trials over k goroutines. Panics when k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("entropy: WithWorkers(%d) must be >= 1", k))
	}
	return func(c *config) {
		c.workers = k
	}
}

// WithLogger routes run diagnostics (debug level) to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("entropy: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// newConfig applies options in order over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		workers: defaultWorkers,
		logger:  discardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// discardLogger returns a logger that drops everything.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
