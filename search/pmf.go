// Package search implements the generational hill climber: a population of
// candidate ternary trees (package qtree), scored against a distance matrix
// by package quartet, mutated by k-mutations drawn from a fat-tailed
// distribution sampled through package alias.
package search

import "math"

// SufficientK returns the minimum k such that any ternary tree on n leaves
// is reachable from any other by a k-mutation (Cilibrasi 2011). Mirrors
// the original src/cluster/main.c's sufficient_k, clamped to a floor of 2
// so that tiny n never yields a degenerate or negative bound.
//
// Complexity: O(1).
func SufficientK(n int) int {
	k := 5*n - 16
	if k < 2 {
		return 2
	}
	return k
}

// BuildPMF constructs the k-mutation probability mass function over
// {0,...,limit-1}: p(k) = 1/((k+2)*log2(k+2)^2) for k in [1,limit), with
// p(0) set to the normalization remainder 1 - sum(p(1..limit-1)). This is
// the shifted, maximally fat-tailed distribution described in the
// original's build_pmf — it sits at the exact edge of convergence for
// series of the form sum(1/(k*log(k)^c)), so p(k) decreases in k yet keeps
// a heavy tail over large k without diverging.
//
// Complexity: O(limit).
func BuildPMF(limit int) []float64 {
	p := make([]float64, limit)
	var sum float64
	for k := 1; k < limit; k++ {
		kf := float64(k)
		l := math.Log2(kf + 2.0)
		p[k] = 1.0 / ((kf + 2.0) * l * l)
		sum += p[k]
	}
	p[0] = 1.0 - sum
	return p
}
