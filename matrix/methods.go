// SPDX-License-Identifier: MIT
// Package matrix - element-wise kernels and reductions.
//
// Every kernel follows the same stages:
//   Stage 1 (Validate): nil-checks and shape match via validators.go.
//   Stage 2 (Prepare):  allocate the result Dense.
//   Stage 3 (Execute):  fast path on *Dense flat buffers, interface fallback otherwise.
//   Stage 4 (Finalize): return the result.

package matrix

import "fmt"

// Operation tags used in error wrappers.
const (
	opAdd     = "Add"
	opScale   = "Scale"
	opRowSums = "RowSums"
	opColSums = "ColSums"
	opTotal   = "Total"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns a new matrix holding the element-wise sum a + b.
// Used to pool the count tables of two joint estimates.
// Complexity: O(r·c) time and memory.
func Add(a, b Matrix) (*Dense, error) {
	// Stage 1: Validate
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Stage 2: Prepare
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Stage 3: fast path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + db.data[idx]
			}
			return res, nil
		}
	}

	// Fallback: generic interface loop
	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j) // safe: bounds ensured
			bv, _ = b.At(i, j) // safe: same shape
			res.data[i*cols+j] = av + bv
		}
	}

	// Stage 4
	return res, nil
}

// Scale returns a new matrix where each element of m is multiplied by alpha.
// Used to turn a histogram into a distribution (alpha = 1/trials).
// Complexity: O(r·c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx := range res.data {
			res.data[idx] = dm.data[idx] * alpha
		}
		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// RowSums returns r where r[i] = Σ_j m[i,j] (the row marginal).
// Complexity: O(r·c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns c where c[j] = Σ_i m[i,j] (the column marginal).
// Complexity: O(r·c).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, cols)

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)
			out[j] += v
		}
	}

	return out, nil
}

// Total returns the sum of all elements.
// Complexity: O(r·c).
func Total(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTotal, err)
	}
	if dm, ok := m.(*Dense); ok {
		var s float64
		for _, v := range dm.data {
			s += v
		}
		return s, nil
	}
	row, err := RowSums(m)
	if err != nil {
		return 0, matrixErrorf(opTotal, err)
	}
	var s float64
	for _, v := range row {
		s += v
	}

	return s, nil
}
