// SPDX-License-Identifier: MIT
// Package matrix - flat-vector conversions.
//
// Flatten and Reshape are the row-major bridge between a 2D table and flat
// numeric storage: Reshape(Flatten(m), m.Cols()) reproduces m exactly.

package matrix

import (
	"fmt"
	"math"
)

const (
	opFlatten = "Flatten"
	opReshape = "Reshape"
)

// Flatten returns the elements of m in row-major order as a new slice.
// Complexity: O(r·c).
func Flatten(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}
	if dm, ok := m.(*Dense); ok {
		out := make([]float64, len(dm.data))
		copy(out, dm.data)
		return out, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out[i*cols+j], _ = m.At(i, j)
		}
	}

	return out, nil
}

// Reshape builds a Dense with the given column count from a row-major
// vector. The row count is len(vec)/cols.
//
// Errors:
//   - ErrInvalidDimensions when cols <= 0 or vec is empty.
//   - ErrDimensionMismatch when len(vec) is not a multiple of cols.
//   - ErrNaNInf when vec holds a non-finite value.
//
// Complexity: O(len(vec)).
func Reshape(vec []float64, cols int) (*Dense, error) {
	if cols <= 0 || len(vec) == 0 {
		return nil, fmt.Errorf("%s: len=%d cols=%d: %w", opReshape, len(vec), cols, ErrInvalidDimensions)
	}
	if len(vec)%cols != 0 {
		return nil, fmt.Errorf("%s: len=%d cols=%d: %w", opReshape, len(vec), cols, ErrDimensionMismatch)
	}
	for idx, v := range vec {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: element %d: %w", opReshape, idx, ErrNaNInf)
		}
	}
	res, err := NewDense(len(vec)/cols, cols)
	if err != nil {
		return nil, matrixErrorf(opReshape, err)
	}
	copy(res.data, vec)

	return res, nil
}
