// SPDX-License-Identifier: MIT
// Package: deckentropy/entropy
//
// shannon.go — the shared histogram → distribution → entropy math.

package entropy

import (
	"fmt"
	"math"
)

// Shannon returns −Σ p·ln p in nats, with the convention 0·ln 0 = 0.
// Non-positive entries contribute nothing, so the result is never NaN for
// a distribution built from counts.
// Complexity: O(len(p)).
func Shannon(p []float64) float64 {
	var h float64
	for _, v := range p {
		if v > 0 {
			h -= v * math.Log(v)
		}
	}
	// −Σ p ln p ≥ 0 term by term for p ∈ (0,1]; only −0 needs folding.
	if h <= 0 {
		return 0
	}

	return h
}

// Normalize divides counts by trials into a new probability vector.
// Returns ErrNoTrials when trials < 1.
// Complexity: O(len(counts)).
func Normalize(counts []float64, trials int) ([]float64, error) {
	if trials < 1 {
		return nil, fmt.Errorf("Normalize: trials=%d: %w", trials, ErrNoTrials)
	}
	inv := 1 / float64(trials)
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = c * inv
	}

	return out, nil
}

// summarize is the single routine both estimators use to turn a flat
// histogram into (distribution, entropy).
func summarize(counts []float64, trials int) ([]float64, float64, error) {
	p, err := Normalize(counts, trials)
	if err != nil {
		return nil, 0, err
	}

	return p, Shannon(p), nil
}

// MaxPositionEntropy is ln N, reached by a uniform final position.
func MaxPositionEntropy(n int) float64 {
	if n < 1 {
		return 0
	}

	return math.Log(float64(n))
}

// MaxJointEntropy is ln(N(N−1)), reached by a uniform ordered pair of
// distinct positions.
func MaxJointEntropy(n int) float64 {
	if n < 2 {
		return 0
	}

	return math.Log(float64(n) * float64(n-1))
}
