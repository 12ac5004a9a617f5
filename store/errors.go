// SPDX-License-Identifier: MIT
// Package: deckentropy/store

package store

import "errors"

var (
	// ErrBadHeader indicates the first record is not the "vec" header.
	ErrBadHeader = errors.New("store: missing or unexpected header")

	// ErrBadValue indicates a record that is not exactly one parseable,
	// finite number, or a non-finite value passed to a writer.
	ErrBadValue = errors.New("store: malformed value record")

	// ErrBadWidth indicates the stored length cannot be reshaped to the
	// requested row width.
	ErrBadWidth = errors.New("store: vector length incompatible with row width")
)
