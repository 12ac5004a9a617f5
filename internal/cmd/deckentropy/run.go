// SPDX-License-Identifier: MIT
// Package: deckentropy/internal/cmd/deckentropy

package deckentropy

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/deckentropy/entropy"
	"github.com/katalvlaran/deckentropy/shuffle"
	"github.com/katalvlaran/deckentropy/store"
	"github.com/katalvlaran/deckentropy/store/sqlite"
	"github.com/sirupsen/logrus"
)

// Run sweeps the shuffle round count from 0 to cfg.MaxRounds, writes one
// "rounds<TAB>entropy<TAB>max" line per step to out, and persists the
// entropy curve plus the distribution of the final step.
func Run(ctx context.Context, cfg Config, log logrus.FieldLogger, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	var db *sqlite.Store
	if cfg.DBPath != "" {
		var err error
		if db, err = sqlite.Open(cfg.DBPath); err != nil {
			return err
		}
		defer db.Close()
	}

	workers := max(cfg.Workers, 1)
	ceiling := entropy.MaxPositionEntropy(cfg.N)
	if cfg.Mode == ModeJoint {
		ceiling = entropy.MaxJointEntropy(cfg.N)
	}
	log = log.WithFields(logrus.Fields{"model": cfg.Model, "mode": cfg.Mode, "n": cfg.N})
	log.WithField("max_rounds", cfg.MaxRounds).Info("sweep started")

	curve := make([]float64, 0, cfg.MaxRounds+1)
	var last sample
	for rounds := 0; rounds <= cfg.MaxRounds; rounds++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s, err := newShuffler(cfg, rounds)
		if err != nil {
			return err
		}
		seed := cfg.Seed + int64(rounds)
		last, err = estimate(cfg, s, entropy.WithSeed(seed), entropy.WithWorkers(workers), entropy.WithLogger(log))
		if err != nil {
			return fmt.Errorf("rounds=%d: %w", rounds, err)
		}
		curve = append(curve, last.entropy)
		fmt.Fprintf(out, "%d\t%.6f\t%.6f\n", rounds, last.entropy, ceiling)
		log.WithFields(logrus.Fields{"rounds": rounds, "entropy": last.entropy, "trials": last.trials}).Debug("step done")

		if db != nil {
			id, err := db.RecordRun(ctx, sqlite.Run{
				Model: cfg.Model, Mode: cfg.Mode, N: cfg.N, Rounds: rounds,
				Label1: cfg.Label, Label2: last.label2, Density: cfg.Density,
				Seed: seed, Trials: last.trials, Entropy: last.entropy,
			})
			if err != nil {
				return err
			}
			log.WithField("run_id", id).Debug("run recorded")
		}
	}

	curveName, distName := seriesNames(cfg)
	if err := store.StoreVector(filepath.Join(cfg.OutDir, curveName+".csv"), curve); err != nil {
		return err
	}
	if err := last.storeCSV(filepath.Join(cfg.OutDir, distName+".csv")); err != nil {
		return err
	}
	if db != nil {
		if err := db.SaveVector(ctx, curveName, curve); err != nil {
			return err
		}
		if err := last.storeDB(ctx, db, distName); err != nil {
			return err
		}
	}
	log.WithField("out_dir", cfg.OutDir).Info("sweep finished")

	return nil
}

// seriesNames returns the base names of the curve and distribution outputs.
func seriesNames(cfg Config) (curve, dist string) {
	return fmt.Sprintf("entropy-%s-%s", cfg.Model, cfg.Mode),
		fmt.Sprintf("distribution-%s-%s", cfg.Model, cfg.Mode)
}

// newShuffler builds the configured model at the given round count.
func newShuffler(cfg Config, rounds int) (shuffle.Shuffler, error) {
	if cfg.Model == ModelCut {
		return shuffle.NewCutStack(rounds, cfg.MinCut, cfg.MaxCut)
	}
	return shuffle.NewRiffle(rounds, cfg.MaxRun, cfg.Bias, shuffle.WithSplitSpread(cfg.Spread))
}

// sample is one sweep step, independent of the estimator mode.
type sample struct {
	entropy  float64
	trials   int
	label2   int
	position *entropy.PositionResult
	joint    *entropy.JointResult
}

func estimate(cfg Config, s shuffle.Shuffler, opts ...entropy.Option) (sample, error) {
	if cfg.Mode == ModeJoint {
		res, err := entropy.Joint(cfg.N, s, cfg.Label, cfg.Label2, cfg.Density, opts...)
		if err != nil {
			return sample{}, err
		}
		return sample{entropy: res.Entropy, trials: res.Trials, label2: cfg.Label2, joint: res}, nil
	}
	res, err := entropy.Position(cfg.N, s, cfg.Label, cfg.Density, opts...)
	if err != nil {
		return sample{}, err
	}
	return sample{entropy: res.Entropy, trials: res.Trials, position: res}, nil
}

func (s sample) storeCSV(path string) error {
	if s.joint != nil {
		return store.StoreMatrix(path, s.joint.Distribution)
	}
	return store.StoreVector(path, s.position.Distribution)
}

func (s sample) storeDB(ctx context.Context, db *sqlite.Store, name string) error {
	if s.joint != nil {
		return db.SaveMatrix(ctx, name, s.joint.Distribution)
	}
	return db.SaveVector(ctx, name, s.position.Distribution)
}
