// SPDX-License-Identifier: MIT
// Package: deckentropy/store
//
// Package store persists estimator output (entropy curves, position
// distributions, joint tables) as delimited text that a human can open.
//
// Layout (one file per vector or matrix):
//
//	vec
//	0.25
//	0.75
//
// Matrices are flattened row-major into the same layout; the row width is
// not stored and must be supplied on read.
//
// Numbers are written with the shortest representation that parses back
// to the same float64, so Read∘Write is the identity on finite values.
package store
