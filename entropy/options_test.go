package entropy_test

import (
	"testing"

	"github.com/katalvlaran/deckentropy/entropy"
	"github.com/katalvlaran/deckentropy/shuffle"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptions_PanicOnMeaninglessValues follows the option-constructor rule.
func TestOptions_PanicOnMeaninglessValues(t *testing.T) {
	assert.Panics(t, func() { entropy.WithWorkers(0) })
	assert.Panics(t, func() { entropy.WithRand(nil) })
	assert.Panics(t, func() { entropy.WithLogger(nil) })
	assert.NotPanics(t, func() { entropy.WithSeed(0) })
}

// TestWithLogger_EmitsRunDiagnostics captures the debug entries of a run.
func TestWithLogger_EmitsRunDiagnostics(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := entropy.Position(8, shuffle.Identity, 1, 2, entropy.WithLogger(logger))
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "trials started", entries[0].Message)
	assert.Equal(t, 16, entries[0].Data["trials"])
	assert.Equal(t, "Position", entries[0].Data["method"])
	assert.Equal(t, "trials finished", entries[1].Message)
	assert.Contains(t, entries[1].Data, "elapsed")
}
