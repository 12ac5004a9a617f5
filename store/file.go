// SPDX-License-Identifier: MIT
// Package: deckentropy/store
//
// file.go - path forms; each call owns its file handle end to end.

package store

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/deckentropy/matrix"
)

// StoreVector writes vec to path, truncating any existing file.
func StoreVector(path string, vec []float64) error {
	return writeFile(path, func(w io.Writer) error { return WriteVector(w, vec) })
}

// LoadVector reads a vector previously written by StoreVector.
func LoadVector(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadVector: %w", err)
	}
	defer f.Close()

	return ReadVector(f)
}

// StoreMatrix writes m to path row-major.
func StoreMatrix(path string, m matrix.Matrix) error {
	return writeFile(path, func(w io.Writer) error { return WriteMatrix(w, m) })
}

// LoadMatrix reads a matrix of row width cols from path.
func LoadMatrix(path string, cols int) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadMatrix: %w", err)
	}
	defer f.Close()

	return ReadMatrix(f, cols)
}

// writeFile creates path and reports the close error when encode succeeded,
// so a short write on flush is never lost.
func writeFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("store: %w", cerr)
		}
	}()

	return encode(f)
}
