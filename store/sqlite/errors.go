// SPDX-License-Identifier: MIT
// Package: deckentropy/store/sqlite

package sqlite

import "errors"

var (
	// ErrNoPath indicates Open was called with an empty path.
	ErrNoPath = errors.New("sqlite: storage path is required")

	// ErrNoName indicates an empty series name.
	ErrNoName = errors.New("sqlite: series name is required")

	// ErrNotFound indicates no series is stored under the given name.
	ErrNotFound = errors.New("sqlite: series not found")

	// ErrKindMismatch indicates a vector was loaded as a matrix or vice versa.
	ErrKindMismatch = errors.New("sqlite: series kind mismatch")

	// ErrClosed indicates use of a nil or closed Store.
	ErrClosed = errors.New("sqlite: store is not open")
)
