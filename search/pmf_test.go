package search_test

import (
	"testing"

	"github.com/linehan/mqtc/search"
	"github.com/stretchr/testify/require"
)

func TestSufficientKMatchesFormulaAndFloor(t *testing.T) {
	require.Equal(t, 2, search.SufficientK(1))  // 5*1-16 = -11, floored to 2
	require.Equal(t, 2, search.SufficientK(3))  // 5*3-16 = -1, floored to 2
	require.Equal(t, 4, search.SufficientK(4))  // 5*4-16 = 4
	require.Equal(t, 34, search.SufficientK(10)) // 5*10-16 = 34
}

func TestBuildPMFSumsToOne(t *testing.T) {
	for _, limit := range []int{2, 5, 34, 100} {
		p := search.BuildPMF(limit)
		require.Len(t, p, limit)
		var sum float64
		for _, v := range p {
			sum += v
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestBuildPMFDecreasesWithinTail(t *testing.T) {
	p := search.BuildPMF(50)
	// p(k) = 1/((k+2)*log2(k+2)^2) is monotonically decreasing in k.
	for k := 1; k < len(p)-1; k++ {
		require.Greater(t, p[k], p[k+1])
	}
}
