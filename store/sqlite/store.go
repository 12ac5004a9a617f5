// SPDX-License-Identifier: MIT
// Package: deckentropy/store/sqlite

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/deckentropy/matrix"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for estimator output.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrNoPath
	}

	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err = sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying connection. Safe on a nil Store.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	err := s.sqlDB.Close()
	s.sqlDB = nil

	return err
}

func (s *Store) ready() error {
	if s == nil || s.sqlDB == nil {
		return ErrClosed
	}
	return nil
}

// SaveVector stores vec under name, replacing any previous series.
func (s *Store) SaveVector(ctx context.Context, name string, vec []float64) error {
	return s.save(ctx, name, kindVector, 1, vec)
}

// LoadVector returns the vector stored under name.
func (s *Store) LoadVector(ctx context.Context, name string) ([]float64, error) {
	vec, _, err := s.load(ctx, name, kindVector)
	return vec, err
}

// SaveMatrix stores m row-major under name together with its width.
func (s *Store) SaveMatrix(ctx context.Context, name string, m matrix.Matrix) error {
	flat, err := matrix.Flatten(m)
	if err != nil {
		return fmt.Errorf("save matrix %q: %w", name, err)
	}
	return s.save(ctx, name, kindMatrix, m.Cols(), flat)
}

// LoadMatrix returns the matrix stored under name, reshaped with the
// persisted width.
func (s *Store) LoadMatrix(ctx context.Context, name string) (*matrix.Dense, error) {
	flat, cols, err := s.load(ctx, name, kindMatrix)
	if err != nil {
		return nil, err
	}
	m, err := matrix.Reshape(flat, cols)
	if err != nil {
		return nil, fmt.Errorf("load matrix %q: %w", name, err)
	}
	return m, nil
}

func (s *Store) save(ctx context.Context, name, kind string, cols int, values []float64) error {
	if err := s.ready(); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNoName
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save %s %q: begin: %w", kind, name, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range []string{
		`DELETE FROM series_values WHERE name = ?`,
		`DELETE FROM series WHERE name = ?`,
	} {
		if _, err = tx.ExecContext(ctx, q, name); err != nil {
			return fmt.Errorf("save %s %q: clear: %w", kind, name, err)
		}
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO series (name, kind, cols, updated_at) VALUES (?, ?, ?, ?)`,
		name, kind, cols, time.Now().UTC().UnixMilli(),
	); err != nil {
		return fmt.Errorf("save %s %q: header: %w", kind, name, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO series_values (name, idx, value) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("save %s %q: prepare: %w", kind, name, err)
	}
	defer stmt.Close()
	for i, v := range values {
		if _, err = stmt.ExecContext(ctx, name, i, v); err != nil {
			return fmt.Errorf("save %s %q: value %d: %w", kind, name, i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("save %s %q: commit: %w", kind, name, err)
	}
	return nil
}

func (s *Store) load(ctx context.Context, name, kind string) ([]float64, int, error) {
	if err := s.ready(); err != nil {
		return nil, 0, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, 0, ErrNoName
	}

	var storedKind string
	var cols int
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT kind, cols FROM series WHERE name = ?`, name,
	).Scan(&storedKind, &cols)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, fmt.Errorf("load %s %q: %w", kind, name, ErrNotFound)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("load %s %q: %w", kind, name, err)
	}
	if storedKind != kind {
		return nil, 0, fmt.Errorf("load %s %q: stored as %s: %w", kind, name, storedKind, ErrKindMismatch)
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT value FROM series_values WHERE name = ? ORDER BY idx`, name,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("load %s %q: %w", kind, name, err)
	}
	defer rows.Close()

	values := make([]float64, 0, 64)
	var v float64
	for rows.Next() {
		if err = rows.Scan(&v); err != nil {
			return nil, 0, fmt.Errorf("load %s %q: scan: %w", kind, name, err)
		}
		values = append(values, v)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("load %s %q: %w", kind, name, err)
	}

	return values, cols, nil
}
