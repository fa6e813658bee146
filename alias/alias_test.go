package alias_test

import (
	"testing"

	"github.com/linehan/mqtc/alias"
	"github.com/linehan/mqtc/rng"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmpty(t *testing.T) {
	_, err := alias.New(nil)
	require.ErrorIs(t, err, alias.ErrEmptyDistribution)
}

func TestNewRejectsUnnormalized(t *testing.T) {
	_, err := alias.New([]float64{0.1, 0.1})
	require.ErrorIs(t, err, alias.ErrNotNormalized)
}

func TestNewAcceptsWithinTolerance(t *testing.T) {
	_, err := alias.New([]float64{0.5, 0.5 + 9e-6})
	require.NoError(t, err)
}

// TestSampleConvergesToDistribution reproduces the "alias law" property:
// empirical frequency converges to p as N grows.
func TestSampleConvergesToDistribution(t *testing.T) {
	p := []float64{0.1, 0.6, 0.2, 0.1}
	tbl, err := alias.New(p)
	require.NoError(t, err)

	src := rng.New(99)
	const n = 200000
	counts := make([]int, len(p))
	for i := 0; i < n; i++ {
		counts[tbl.Sample(src)]++
	}
	for i, want := range p {
		got := float64(counts[i]) / float64(n)
		require.InDelta(t, want, got, 0.01)
	}
}

func TestProbabilitiesIsDefensiveCopy(t *testing.T) {
	tbl, err := alias.New([]float64{1.0})
	require.NoError(t, err)
	probs := tbl.Probabilities()
	probs[0] = -1
	require.NotEqual(t, probs[0], tbl.Probabilities()[0])
}

func TestSingleOutcomeAlwaysSampled(t *testing.T) {
	tbl, err := alias.New([]float64{1.0})
	require.NoError(t, err)
	src := rng.New(7)
	for i := 0; i < 1000; i++ {
		require.Equal(t, 0, tbl.Sample(src))
	}
}
