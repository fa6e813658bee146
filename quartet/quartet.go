// Package quartet scores a ternary tree (package qtree) against an n×n
// distance matrix using the quartet-topology cost function: for every
// internal node, the three leaf partitions it separates (left subtree,
// right subtree, everything else) each contribute a weighted sum of
// cross-partition distances, and the tree's total cost sums this over
// every internal node.
package quartet

import (
	"errors"
	"fmt"

	"github.com/linehan/mqtc/qtree"
)

// DistanceMatrix is the minimal read-only view quartet needs over a
// distance matrix, decoupling it from any concrete storage type the way
// the teacher's tsp package takes a matrix.Matrix rather than a
// concrete matrix.Dense.
type DistanceMatrix interface {
	At(i, j int) (float64, error)
	Dim() int
}

// ErrIdenticalLeafValues indicates the same item index was found on both
// sides of a partition — a malformed tree, since every item must appear
// as exactly one leaf. Corresponds to the original's "CHAOS REIGNS" abort.
var ErrIdenticalLeafValues = errors.New("quartet: identical leaf value on both sides of a partition")

// Cost computes the unscaled tree cost C(T): the sum, over every
// internal node n, of the cross-partition distance sums between n's
// left subtree leaves, right subtree leaves, and the leaves outside n's
// subtree entirely, each weighted by the number of item pairs in the
// third partition (C(size,2)).
//
// Panics with ErrIdenticalLeafValues if one item value appears on both
// sides of a partition, mirroring the original's abort() on a malformed
// tree, and panics with the lookup error if a leaf value lies outside d:
// both are programmer-error invariant violations, not runtime conditions
// a caller can recover from.
//
// Complexity: O(n^2) per internal node in the worst case (highly
// unbalanced trees), O(n log n) amortized for balanced ones; n-2
// internal nodes total.
func Cost(t *qtree.Tree, d DistanceMatrix) float64 {
	var total float64
	t.Walk(func(h qtree.NodeHandle, _ int) {
		if !h.IsInternal() {
			return
		}
		total += nodeCost(t, h, d)
	})
	return total
}

func nodeCost(t *qtree.Tree, n qtree.NodeHandle, d DistanceMatrix) float64 {
	left := t.LeafValues(n.Left())
	right := t.LeafValues(n.Right())
	outside := t.LeafValuesExcluding(n)

	countL, countR, countP := len(left), len(right), len(outside)
	comboL := Binomial(countL, 2)
	comboR := Binomial(countR, 2)
	comboP := Binomial(countP, 2)

	distLR := crossDistance(left, right, d)
	distPL := crossDistance(outside, left, d)
	distPR := crossDistance(outside, right, d)

	return float64(comboP)*distLR + float64(comboR)*distPL + float64(comboL)*distPR
}

func crossDistance(a, b []int, d DistanceMatrix) float64 {
	var sum float64
	for _, i := range a {
		for _, j := range b {
			if i == j {
				panic(fmt.Errorf("%w: value %d", ErrIdenticalLeafValues, i))
			}
			v, err := d.At(i, j)
			if err != nil {
				panic(fmt.Errorf("quartet: distance lookup (%d,%d): %w", i, j, err))
			}
			sum += v
		}
	}
	return sum
}
