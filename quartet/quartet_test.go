package quartet_test

import (
	"testing"

	"github.com/linehan/mqtc/matrix"
	"github.com/linehan/mqtc/qtree"
	"github.com/linehan/mqtc/quartet"
	"github.com/stretchr/testify/require"
)

func symmetricMatrix(t *testing.T, n int, fill func(i, j int) float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			require.NoError(t, m.Set(i, j, fill(min(i, j), max(i, j))))
		}
	}
	return m
}

func TestBinomialMatchesKnownValues(t *testing.T) {
	cases := []struct{ n, k int; want uint64 }{
		{5, 2, 10},
		{10, 4, 210},
		{0, 0, 1},
		{3, 0, 1},
		{3, 1, 3},
		{3, 5, 0},
	}
	for _, c := range cases {
		require.Equal(t, c.want, quartet.Binomial(c.n, c.k), "C(%d,%d)", c.n, c.k)
	}
}

func TestExtremaBelowFourItemsIsZero(t *testing.T) {
	m := symmetricMatrix(t, 3, func(i, j int) float64 { return 1 })
	cmax, cmin, err := quartet.Extrema(m)
	require.NoError(t, err)
	require.Zero(t, cmax)
	require.Zero(t, cmin)
	require.Equal(t, 1.0, quartet.Scaled(0, cmax, cmin))
}

func TestScaledBoundsAreZeroAndOne(t *testing.T) {
	require.Equal(t, 1.0, quartet.Scaled(2, 10, 2))
	require.Equal(t, 0.0, quartet.Scaled(10, 10, 2))
}

func TestCostIsDeterministicAndNonNegative(t *testing.T) {
	n := 8
	d := symmetricMatrix(t, n, func(i, j int) float64 { return float64((i+1)*(j+1)%7 + 1) })

	tr, err := qtree.NewTree(n, qtree.WithSeed(55))
	require.NoError(t, err)

	c1 := quartet.Cost(tr, d)
	c2 := quartet.Cost(tr, d)
	require.Equal(t, c1, c2)
	require.GreaterOrEqual(t, c1, 0.0)
}

func TestCostLiesWithinExtrema(t *testing.T) {
	n := 9
	d := symmetricMatrix(t, n, func(i, j int) float64 { return float64(i*7+j*3+1) })

	tr, err := qtree.NewTree(n, qtree.WithSeed(901))
	require.NoError(t, err)

	cmax, cmin, err := quartet.Extrema(d)
	require.NoError(t, err)

	cost := quartet.Cost(tr, d)
	require.LessOrEqual(t, cost, cmax+1e-6)
	require.GreaterOrEqual(t, cost, cmin-1e-6)

	score := quartet.Scaled(cost, cmax, cmin)
	require.GreaterOrEqual(t, score, 0.0-1e-9)
	require.LessOrEqual(t, score, 1.0+1e-9)
}
