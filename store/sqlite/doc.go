// SPDX-License-Identifier: MIT
// Package: deckentropy/store/sqlite
//
// Package sqlite keeps estimator output in a single SQLite file: named
// vectors and matrices (row width persisted alongside the values) and a
// log of estimation runs keyed by UUID.
//
// A Store is safe for concurrent use; the connection pool is capped at one
// connection so writers serialize inside database/sql.
package sqlite
