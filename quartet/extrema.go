package quartet

import "fmt"

// Extrema computes the maximum and minimum achievable tree cost over d
// by enumerating every quartet {i,j,k,l} and summing, respectively, the
// max and min of its three pairings' combined distance. These bound
// every tree's unscaled Cost and normalize it into Scaled's [0,1] score.
//
// n<4 has no quartets to enumerate: Extrema returns (0,0), the
// convention Scaled's cmax==cmin guard turns into a score of 1 (a tree
// over fewer than 4 items has no topology left to get wrong).
//
// Complexity: Θ(n⁴).
func Extrema(d DistanceMatrix) (cmax, cmin float64, err error) {
	n := d.Dim()
	if n < 4 {
		return 0, 0, nil
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				for l := k + 1; l < n; l++ {
					ijkl, ikjl, iljk, err := quartetPairings(d, i, j, k, l)
					if err != nil {
						return 0, 0, err
					}
					cmax += max3(ijkl, ikjl, iljk)
					cmin += min3(ijkl, ikjl, iljk)
				}
			}
		}
	}
	return cmax, cmin, nil
}

func quartetPairings(d DistanceMatrix, i, j, k, l int) (ijkl, ikjl, iljk float64, err error) {
	dij, err := d.At(i, j)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("quartet: extrema lookup (%d,%d): %w", i, j, err)
	}
	dkl, err := d.At(k, l)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("quartet: extrema lookup (%d,%d): %w", k, l, err)
	}
	dik, err := d.At(i, k)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("quartet: extrema lookup (%d,%d): %w", i, k, err)
	}
	djl, err := d.At(j, l)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("quartet: extrema lookup (%d,%d): %w", j, l, err)
	}
	dil, err := d.At(i, l)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("quartet: extrema lookup (%d,%d): %w", i, l, err)
	}
	djk, err := d.At(j, k)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("quartet: extrema lookup (%d,%d): %w", j, k, err)
	}
	return dij + dkl, dik + djl, dil + djk, nil
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// Scaled normalizes an unscaled cost onto [0,1] given the tree's
// max/min extrema: S(T) = (cmax-cost)/(cmax-cmin). When cmax==cmin (no
// quartets exist to disagree on, n<4) the tree is trivially a perfect
// match and Scaled returns 1.
//
// Complexity: O(1).
func Scaled(cost, cmax, cmin float64) float64 {
	if cmax == cmin {
		return 1
	}
	return (cmax - cost) / (cmax - cmin)
}
