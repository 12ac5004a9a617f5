package deckentropy

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/deckentropy/store"
	"github.com/katalvlaran/deckentropy/store/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_ParsesDefaultsEnvAndFlags(t *testing.T) {
	fs := flag.NewFlagSet("deckentropy", flag.ContinueOnError)
	t.Setenv("DECKENTROPY_N", "20")
	t.Setenv("DECKENTROPY_MODEL", "cut")

	cfg, err := ParseConfig(fs, []string{"-mode", "joint", "-label2", "7", "-workers", "3"})
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.N)
	assert.Equal(t, ModelCut, cfg.Model)
	assert.Equal(t, ModeJoint, cfg.Mode)
	assert.Equal(t, 7, cfg.Label2)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 100.0, cfg.Density)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseConfig_FlagsOverrideEnv(t *testing.T) {
	fs := flag.NewFlagSet("deckentropy", flag.ContinueOnError)
	t.Setenv("DECKENTROPY_DENSITY", "5")

	cfg, err := ParseConfig(fs, []string{"-density", "9.5"})
	require.NoError(t, err)
	assert.Equal(t, 9.5, cfg.Density)
	assert.Positive(t, cfg.Workers, "0 resolves to the CPU count")
}

func TestParseConfig_Rejects(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want error
	}{
		{"model", []string{"-model", "overhand"}, ErrUnknownModel},
		{"mode", []string{"-mode", "triple"}, ErrUnknownMode},
		{"rounds", []string{"-max-rounds", "-1"}, ErrInvalidSweep},
		{"spread", []string{"-spread", "0.7"}, ErrInvalidSweep},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs := flag.NewFlagSet("deckentropy", flag.ContinueOnError)
			_, err := ParseConfig(fs, tc.args)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	fs := flag.NewFlagSet("deckentropy", flag.ContinueOnError)
	_, err := ParseConfig(fs, []string{"-log-level", "loud"})
	assert.Error(t, err)
}

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		Model: ModelRiffle, Mode: ModePosition, N: 8, MaxRounds: 2,
		MinCut: 1, MaxCut: 3, MaxRun: 2, Bias: 0.5, Spread: 1.0 / 12.0,
		Label: 1, Label2: 8, Density: 10, Seed: 3, Workers: 2,
		OutDir: filepath.Join(dir, "out"), DBPath: filepath.Join(dir, "runs.db"),
		LogLevel: "info",
	}
}

func TestRun_PositionSweep(t *testing.T) {
	cfg := testConfig(t)
	logger, hook := test.NewNullLogger()
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), cfg, logger, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "0\t0.000000\t"), "zero rounds leaves the card in place: %q", lines[0])

	curve, err := store.LoadVector(filepath.Join(cfg.OutDir, "entropy-riffle-position.csv"))
	require.NoError(t, err)
	require.Len(t, curve, 3)
	assert.Equal(t, 0.0, curve[0])
	assert.Positive(t, curve[2])

	dist, err := store.LoadVector(filepath.Join(cfg.OutDir, "distribution-riffle-position.csv"))
	require.NoError(t, err)
	assert.Len(t, dist, cfg.N)

	db, err := sqlite.Open(cfg.DBPath)
	require.NoError(t, err)
	defer db.Close()
	runs, err := db.Runs(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, 2, runs[2].Rounds)
	assert.Equal(t, 80, runs[2].Trials)
	assert.Zero(t, runs[2].Label2)

	saved, err := db.LoadVector(context.Background(), "entropy-riffle-position")
	require.NoError(t, err)
	assert.Equal(t, curve, saved)

	assert.Equal(t, "sweep finished", hook.LastEntry().Message)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
}

func TestRun_JointSweepWritesMatrix(t *testing.T) {
	cfg := testConfig(t)
	cfg.Model, cfg.Mode, cfg.MaxRounds, cfg.DBPath = ModelCut, ModeJoint, 1, ""
	logger, _ := test.NewNullLogger()
	var out bytes.Buffer

	require.NoError(t, Run(context.Background(), cfg, logger, &out))

	m, err := store.LoadMatrix(filepath.Join(cfg.OutDir, "distribution-cut-joint.csv"), cfg.N)
	require.NoError(t, err)
	assert.Equal(t, cfg.N, m.Rows())
	for i := 0; i < cfg.N; i++ {
		v, err := m.At(i, i)
		require.NoError(t, err)
		assert.Zero(t, v)
	}
}

func TestRun_StopsOnCanceledContext(t *testing.T) {
	cfg := testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	logger, _ := test.NewNullLogger()

	err := Run(ctx, cfg, logger, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_SurfacesEstimatorErrors(t *testing.T) {
	cfg := testConfig(t)
	cfg.Label = 99
	logger, _ := test.NewNullLogger()

	err := Run(context.Background(), cfg, logger, &bytes.Buffer{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rounds=0")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("warn", &buf)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = NewLogger("nope", &buf)
	assert.Error(t, err)
}
