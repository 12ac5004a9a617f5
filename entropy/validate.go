// SPDX-License-Identifier: MIT
// Package: deckentropy/entropy
//
// validate.go - boundary checks run before any trial.

package entropy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/deckentropy/shuffle"
)

const minDeckSize = 2

// validateRun checks the arguments common to both estimators.
func validateRun(method string, n int, s shuffle.Shuffler, density float64) error {
	if n < minDeckSize {
		return fmt.Errorf("%s: n=%d: %w", method, n, ErrDeckTooSmall)
	}
	if s == nil {
		return fmt.Errorf("%s: %w", method, ErrNilShuffler)
	}
	if math.IsNaN(density) || math.IsInf(density, 0) || density <= 0 {
		return fmt.Errorf("%s: density=%v: %w", method, density, ErrInvalidDensity)
	}

	return nil
}

// validateLabel checks 1 <= label <= n.
func validateLabel(method string, n, label int) error {
	if label < 1 || label > n {
		return fmt.Errorf("%s: label=%d not in [1,%d]: %w", method, label, n, ErrLabelOutOfRange)
	}

	return nil
}

// trialCount returns ⌊outcomes·density⌋, rejecting zero and any product
// that does not fit in an int.
func trialCount(method string, outcomes int, density float64) (int, error) {
	product := math.Floor(float64(outcomes) * density)
	if product >= math.MaxInt { // float64(MaxInt) rounds up to 2^63
		return 0, fmt.Errorf("%s: %d outcomes × density %v overflows the trial count: %w", method, outcomes, density, ErrInvalidDensity)
	}
	m := int(product)
	if m < 1 {
		return 0, fmt.Errorf("%s: %d outcomes × density %v: %w", method, outcomes, density, ErrNoTrials)
	}

	return m, nil
}
