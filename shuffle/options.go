// SPDX-License-Identifier: MIT
// Package: deckentropy/shuffle
//
// options.go — functional options for the riffle model.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Later options override earlier ones.

package shuffle

import (
	"fmt"
	"math"
)

// Riffle defaults.
const (
	// DefaultSplitSpread places the riffle cut within N/2 ± N/12.
	DefaultSplitSpread = 1.0 / 12.0
	maxSplitSpread     = 0.5
)

// riffleConfig holds the riffle knobs that are not positional arguments.
type riffleConfig struct {
	spread float64 // half-width of the cut window as a fraction of N
}

// RiffleOption customizes a Riffle at construction.
type RiffleOption func(*riffleConfig)

// WithSplitSpread sets the half-width of the cut window as a fraction of the
// deck size: the cut lands in [N/2 − f·N, N/2 + f·N]. f=0 always cuts at N/2.
// Panics when f is NaN or outside [0, 0.5].
func WithSplitSpread(f float64) RiffleOption {
	if math.IsNaN(f) || f < 0 || f > maxSplitSpread {
		panic(fmt.Sprintf("shuffle: WithSplitSpread(%v) outside [0,%v]", f, maxSplitSpread))
	}
	return func(c *riffleConfig) {
		c.spread = f
	}
}

// newRiffleConfig applies options over the defaults.
func newRiffleConfig(opts ...RiffleOption) riffleConfig {
	cfg := riffleConfig{spread: DefaultSplitSpread}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
