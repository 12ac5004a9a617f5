// SPDX-License-Identifier: MIT
// Package: deckentropy/internal/cmd/deckentropy

// Package deckentropy parses the sweep command's configuration and runs it.
package deckentropy

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Shuffle models and estimator modes accepted on the command line.
const (
	ModelCut    = "cut"
	ModelRiffle = "riffle"

	ModePosition = "position"
	ModeJoint    = "joint"
)

var (
	// ErrUnknownModel indicates a -model value other than cut or riffle.
	ErrUnknownModel = errors.New("deckentropy: unknown shuffle model")
	// ErrUnknownMode indicates a -mode value other than position or joint.
	ErrUnknownMode = errors.New("deckentropy: unknown estimator mode")
	// ErrInvalidSweep indicates a negative round or worker count, or a riffle
	// spread outside [0, 0.5].
	ErrInvalidSweep = errors.New("deckentropy: invalid sweep setting")
)

// Config holds the sweep command configuration.
type Config struct {
	Model     string  `env:"DECKENTROPY_MODEL" envDefault:"riffle"`
	Mode      string  `env:"DECKENTROPY_MODE" envDefault:"position"`
	N         int     `env:"DECKENTROPY_N" envDefault:"52"`
	MaxRounds int     `env:"DECKENTROPY_MAX_ROUNDS" envDefault:"10"`
	MinCut    int     `env:"DECKENTROPY_MIN_CUT" envDefault:"1"`
	MaxCut    int     `env:"DECKENTROPY_MAX_CUT" envDefault:"10"`
	MaxRun    int     `env:"DECKENTROPY_MAX_RUN" envDefault:"3"`
	Bias      float64 `env:"DECKENTROPY_BIAS" envDefault:"0.5"`
	Spread    float64 `env:"DECKENTROPY_SPREAD" envDefault:"0.0833333333333333"`
	Label     int     `env:"DECKENTROPY_LABEL" envDefault:"1"`
	Label2    int     `env:"DECKENTROPY_LABEL2" envDefault:"2"`
	Density   float64 `env:"DECKENTROPY_DENSITY" envDefault:"100"`
	Seed      int64   `env:"DECKENTROPY_SEED" envDefault:"1"`
	Workers   int     `env:"DECKENTROPY_WORKERS" envDefault:"0"`
	OutDir    string  `env:"DECKENTROPY_OUT_DIR" envDefault:"out"`
	DBPath    string  `env:"DECKENTROPY_DB_PATH"`
	LogLevel  string  `env:"DECKENTROPY_LOG_LEVEL" envDefault:"info"`
}

// ParseConfig parses environment and flags into a Config. Flags win over
// environment values.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.StringVar(&cfg.Model, "model", cfg.Model, "Shuffle model: cut or riffle")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "Estimator: position (one card) or joint (two cards)")
	fs.IntVar(&cfg.N, "n", cfg.N, "Deck size")
	fs.IntVar(&cfg.MaxRounds, "max-rounds", cfg.MaxRounds, "Sweep rounds from 0 to this value")
	fs.IntVar(&cfg.MinCut, "min-cut", cfg.MinCut, "Cut-stack: smallest packet")
	fs.IntVar(&cfg.MaxCut, "max-cut", cfg.MaxCut, "Cut-stack: largest packet")
	fs.IntVar(&cfg.MaxRun, "max-run", cfg.MaxRun, "Riffle: binomial trial count per run")
	fs.Float64Var(&cfg.Bias, "bias", cfg.Bias, "Riffle: binomial success probability")
	fs.Float64Var(&cfg.Spread, "spread", cfg.Spread, "Riffle: split spread as a fraction of the deck")
	fs.IntVar(&cfg.Label, "label", cfg.Label, "Tracked card label")
	fs.IntVar(&cfg.Label2, "label2", cfg.Label2, "Second tracked card label (joint mode)")
	fs.Float64Var(&cfg.Density, "density", cfg.Density, "Trials per outcome cell")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Base random seed")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Worker goroutines (0 = one per CPU)")
	fs.StringVar(&cfg.OutDir, "out-dir", cfg.OutDir, "Directory for CSV output")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "Optional SQLite database recording every run")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return cfg, nil
}

// Validate checks the fields the estimators do not check themselves.
func (c Config) Validate() error {
	switch c.Model {
	case ModelCut, ModelRiffle:
	default:
		return fmt.Errorf("model %q: %w", c.Model, ErrUnknownModel)
	}
	switch c.Mode {
	case ModePosition, ModeJoint:
	default:
		return fmt.Errorf("mode %q: %w", c.Mode, ErrUnknownMode)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("max-rounds %d: %w", c.MaxRounds, ErrInvalidSweep)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidSweep)
	}
	if math.IsNaN(c.Spread) || c.Spread < 0 || c.Spread > 0.5 {
		return fmt.Errorf("spread %v: %w", c.Spread, ErrInvalidSweep)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}
