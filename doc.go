// Command and library mqtc reconstructs an unrooted ternary tree over n
// labelled items from an n×n pairwise distance matrix, maximising a
// quartet-topology score S(T) in [0,1].
//
// The search is a generational stochastic hill climber: a small population
// of random ternary trees is repeatedly mutated by shape-preserving
// operators (leaf interchange, subtree interchange, subtree transfer)
// composed k at a time, k drawn from a fat-tailed distribution over an
// alias sampler, and accepted or rejected by a Metropolis-style rule on
// the unscaled quartet cost.
//
// Packages, dependency order:
//
//	rng/      — process-local uniform source, coin/die adapters
//	alias/    — Vose/Walker O(1) discrete-distribution sampler
//	matrix/   — dense distance-matrix storage and validators
//	qtree/    — the ternary-tree entity and its mutation operators
//	quartet/  — the quartet cost function and its [0,1] normalisation
//	search/   — the k-mutation PMF and the generational hill climber
//	matrixio/ — whitespace-delimited distance-matrix reader
//	render/   — minimal ASCII rendering of a champion tree
//	runlog/   — the four append-only reporting log streams
//	cmd/mqtc/ — the command-line entry point
//
//	go get github.com/linehan/mqtc
package mqtc
