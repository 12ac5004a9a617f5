// SPDX-License-Identifier: MIT
// Package: deckentropy/store/sqlite

package sqlite

// schema is idempotent; Open applies it on every start.
const schema = `
CREATE TABLE IF NOT EXISTS series (
    name       TEXT PRIMARY KEY,
    kind       TEXT NOT NULL CHECK (kind IN ('vector', 'matrix')),
    cols       INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS series_values (
    name  TEXT NOT NULL REFERENCES series(name) ON DELETE CASCADE,
    idx   INTEGER NOT NULL,
    value REAL NOT NULL,
    PRIMARY KEY (name, idx)
);

CREATE TABLE IF NOT EXISTS runs (
    id         TEXT PRIMARY KEY,
    model      TEXT NOT NULL,
    mode       TEXT NOT NULL,
    n          INTEGER NOT NULL,
    rounds     INTEGER NOT NULL,
    label1     INTEGER NOT NULL,
    label2     INTEGER NOT NULL,
    density    REAL NOT NULL,
    seed       INTEGER NOT NULL,
    trials     INTEGER NOT NULL,
    entropy    REAL NOT NULL,
    created_at INTEGER NOT NULL
);
`

const (
	kindVector = "vector"
	kindMatrix = "matrix"
)
