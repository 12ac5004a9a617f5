// SPDX-License-Identifier: MIT
// Package: deckentropy/store
//
// csv.go - stream forms of the vector/matrix codec.

package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/deckentropy/matrix"
)

// Header is the single column label written before any value.
const Header = "vec"

// WriteVector writes the header and then one value per record.
// NaN and ±Inf are rejected with ErrBadValue before anything is written,
// so every accepted vector reads back through ReadVector.
func WriteVector(w io.Writer, vec []float64) error {
	for i, v := range vec {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("WriteVector: value %d is %v: %w", i, v, ErrBadValue)
		}
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{Header}); err != nil {
		return fmt.Errorf("WriteVector: %w", err)
	}
	rec := make([]string, 1)
	for _, v := range vec {
		rec[0] = strconv.FormatFloat(v, 'g', -1, 64)
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteVector: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteVector: %w", err)
	}

	return nil
}

// ReadVector is the inverse of WriteVector. An input holding only the
// header yields an empty, non-nil slice.
func ReadVector(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // width checked per record below
	cr.ReuseRecord = true

	head, err := cr.Read()
	if errors.Is(err, io.EOF) || (err == nil && (len(head) != 1 || head[0] != Header)) {
		return nil, fmt.Errorf("ReadVector: %w", ErrBadHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadVector: %w", err)
	}

	vec := make([]float64, 0, 64)
	var rec []string
	var v float64
	for line := 2; ; line++ {
		rec, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadVector: %w", err)
		}
		if len(rec) != 1 {
			return nil, fmt.Errorf("ReadVector: line %d has %d fields: %w", line, len(rec), ErrBadValue)
		}
		if v, err = strconv.ParseFloat(rec[0], 64); err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("ReadVector: line %d %q: %w", line, rec[0], ErrBadValue)
		}
		vec = append(vec, v)
	}

	return vec, nil
}

// WriteMatrix flattens m row-major and writes it as a vector.
func WriteMatrix(w io.Writer, m matrix.Matrix) error {
	flat, err := matrix.Flatten(m)
	if err != nil {
		return fmt.Errorf("WriteMatrix: %w", err)
	}

	return WriteVector(w, flat)
}

// ReadMatrix reads a vector and reshapes it into rows of width cols.
func ReadMatrix(r io.Reader, cols int) (*matrix.Dense, error) {
	vec, err := ReadVector(r)
	if err != nil {
		return nil, err
	}
	m, err := matrix.Reshape(vec, cols)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix: %d values, width %d: %w: %w", len(vec), cols, ErrBadWidth, err)
	}

	return m, nil
}
