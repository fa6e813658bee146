package search_test

import (
	"context"
	"testing"

	"github.com/linehan/mqtc/matrix"
	"github.com/linehan/mqtc/search"
	"github.com/stretchr/testify/require"
)

func denseFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	n := len(rows)
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}
	return m
}

// Scenario S1: n=2, trivial trees have no quartets to disagree on, so
// Extrema returns (0,0) and every tree scores a perfect 1 by convention.
func TestScenarioS1Trivial(t *testing.T) {
	d := denseFrom(t, [][]float64{
		{0, 1},
		{1, 0},
	})
	r, err := search.NewRunner(2, d, search.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, 1.0, r.BestCost())

	champion, err := r.Run(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, 2, champion.N())
}

// Scenario S2: n=4 with a block distance matrix where only topology 01|23
// is consistent. Enough generations should find the perfect embedding and
// halt early.
func TestScenarioS2PerfectQuartet(t *testing.T) {
	d := denseFrom(t, [][]float64{
		{0, 0, 1, 1},
		{0, 0, 1, 1},
		{1, 1, 0, 0},
		{1, 1, 0, 0},
	})
	r, err := search.NewRunner(4, d, search.WithSeed(99))
	require.NoError(t, err)

	champion, err := r.Run(context.Background(), 500)
	require.NoError(t, err)
	require.True(t, champion.IsTernary())
	require.GreaterOrEqual(t, r.BestCost(), 1-1e-6)
}

// Scenario S3: a symmetric ultrametric on n=5 has a nontrivial (0,1)
// initial score, and more generations should never make the champion worse.
func TestScenarioS3MonotoneChampion(t *testing.T) {
	d := denseFrom(t, [][]float64{
		{0, 1, 2, 3, 4},
		{1, 0, 1, 2, 3},
		{2, 1, 0, 1, 2},
		{3, 2, 1, 0, 1},
		{4, 3, 2, 1, 0},
	})
	r, err := search.NewRunner(5, d, search.WithSeed(2024))
	require.NoError(t, err)
	initial := r.BestCost()
	require.GreaterOrEqual(t, initial, 0.0)
	require.LessOrEqual(t, initial, 1.0)

	_, err = r.Run(context.Background(), 200)
	require.NoError(t, err)
	require.GreaterOrEqual(t, r.BestCost(), initial)
}

// Property 7: best_cost is non-decreasing generation over generation.
func TestMonotoneChampionAcrossGenerations(t *testing.T) {
	d := denseFrom(t, [][]float64{
		{0, 3, 4, 5, 6},
		{3, 0, 5, 6, 7},
		{4, 5, 0, 3, 4},
		{5, 6, 3, 0, 5},
		{6, 7, 4, 5, 0},
	})
	r, err := search.NewRunner(5, d, search.WithSeed(7))
	require.NoError(t, err)

	last := r.BestCost()
	for g := 0; g < 20; g++ {
		_, err := r.Run(context.Background(), 1)
		require.NoError(t, err)
		require.GreaterOrEqual(t, r.BestCost(), last)
		last = r.BestCost()
	}
}

func TestRunHonorsContextCancellation(t *testing.T) {
	d := denseFrom(t, [][]float64{
		{0, 1, 2, 3},
		{1, 0, 2, 3},
		{2, 2, 0, 1},
		{3, 3, 1, 0},
	})
	r, err := search.NewRunner(4, d, search.WithSeed(5))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx, 1000)
	require.ErrorIs(t, err, context.Canceled)
}

func TestInitialScaledHasOneEntryPerPopulationMember(t *testing.T) {
	d := denseFrom(t, [][]float64{
		{0, 1, 2, 3},
		{1, 0, 2, 3},
		{2, 2, 0, 1},
		{3, 3, 1, 0},
	})
	r, err := search.NewRunner(4, d, search.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, r.InitialScaled(), search.NTrees)
}
