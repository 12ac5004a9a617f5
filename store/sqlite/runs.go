// SPDX-License-Identifier: MIT
// Package: deckentropy/store/sqlite

package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one recorded estimation: the configuration that produced it and
// its headline numbers. Label2 is 0 for single-position runs.
type Run struct {
	ID        string
	Model     string
	Mode      string
	N         int
	Rounds    int
	Label1    int
	Label2    int
	Density   float64
	Seed      int64
	Trials    int
	Entropy   float64
	CreatedAt time.Time
}

// RecordRun inserts run and returns its ID. A fresh UUID is assigned when
// run.ID is empty; CreatedAt defaults to now.
func (s *Store) RecordRun(ctx context.Context, run Run) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO runs (
		    id, model, mode, n, rounds, label1, label2, density, seed, trials, entropy, created_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Model, run.Mode, run.N, run.Rounds, run.Label1, run.Label2,
		run.Density, run.Seed, run.Trials, run.Entropy, run.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}

	return run.ID, nil
}

// Runs lists every recorded run in insertion order.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, model, mode, n, rounds, label1, label2, density, seed, trials, entropy, created_at
		 FROM runs ORDER BY created_at, rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var createdAt int64
		if err = rows.Scan(
			&r.ID, &r.Model, &r.Mode, &r.N, &r.Rounds, &r.Label1, &r.Label2,
			&r.Density, &r.Seed, &r.Trials, &r.Entropy, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("list runs: scan: %w", err)
		}
		r.CreatedAt = time.UnixMilli(createdAt).UTC()
		out = append(out, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	return out, nil
}
