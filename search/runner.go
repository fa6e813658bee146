package search

import (
	"context"
	"errors"
	"math"

	"github.com/linehan/mqtc/alias"
	"github.com/linehan/mqtc/qtree"
	"github.com/linehan/mqtc/quartet"
	"github.com/linehan/mqtc/rng"
)

// NTrees is the fixed population size the search loop maintains, per spec
// section 4.H.
const NTrees = 3

// defaultHaltEpsilon resolves the spec's Open Question about the
// best_cost==1.0 halt condition: floating-point equality is replaced with
// an epsilon tolerance, so a champion within 1e-6 of a perfect embedding
// halts the search instead of looping until generations run out.
const defaultHaltEpsilon = 1e-6

// ErrInvalidN mirrors qtree.ErrInvalidN for the runner's own constructor
// boundary, so callers needn't reach into qtree to check a Runner-level error.
var ErrInvalidN = errors.New("search: n must be >= 1")

// Logger receives the four spec-mandated append-only event streams as the
// search progresses: the constructed PMF (once), and a k/cost/best_cost
// value for every proposal. Implemented by package runlog; nil is a valid
// Logger-less Runner (all four methods become no-ops).
type Logger interface {
	LogAlias(pmf []float64)
	LogMutate(k int)
	LogCost(scaled float64)
	LogFitness(bestCost float64)
}

// RunnerOption configures a Runner before its population is built.
type RunnerOption func(*runnerConfig)

type runnerConfig struct {
	seed        int64
	haltEpsilon float64
	log         Logger
}

// WithSeed fixes the Runner's random source, for deterministic tests.
// Default: a fresh process-seeded source (seed 0 maps to wall-clock, as in
// package rng).
func WithSeed(seed int64) RunnerOption {
	return func(c *runnerConfig) { c.seed = seed }
}

// WithHaltEpsilon overrides the default 1e-6 tolerance the Runner uses to
// decide a champion counts as a perfect embedding (scaled cost >= 1-eps).
func WithHaltEpsilon(eps float64) RunnerOption {
	return func(c *runnerConfig) { c.haltEpsilon = eps }
}

// WithLogger attaches the four append-only event streams of spec section 6.
func WithLogger(log Logger) RunnerOption {
	return func(c *runnerConfig) { c.log = log }
}

// Runner holds the population, champion, and sampling machinery that
// together implement the generational hill climber of spec section 4.H.
type Runner struct {
	n           int
	data        quartet.DistanceMatrix
	cmax, cmin  float64
	population  []*qtree.Tree
	champion    *qtree.Tree
	bestCost    float64
	initScaled  []float64
	sufficientK int
	table       *alias.Table
	src         *rng.Source
	haltEpsilon float64
	log         Logger
}

// NewRunner builds the initial population of NTrees independent random
// trees over data, computes the dataset's cost extrema once, and
// constructs the alias sampler over the k-mutation PMF bounded by
// SufficientK(n).
//
// Complexity: O(n^4) for extrema enumeration (once), O(n log n) per tree
// for the initial population.
func NewRunner(n int, data quartet.DistanceMatrix, opts ...RunnerOption) (*Runner, error) {
	if n < 1 {
		return nil, ErrInvalidN
	}

	cfg := runnerConfig{haltEpsilon: defaultHaltEpsilon}
	for _, opt := range opts {
		opt(&cfg)
	}

	cmax, cmin, err := quartet.Extrema(data)
	if err != nil {
		return nil, err
	}

	sufficientK := SufficientK(n)
	pmf := BuildPMF(sufficientK)
	table, err := alias.New(pmf)
	if err != nil {
		return nil, err
	}
	if cfg.log != nil {
		cfg.log.LogAlias(pmf)
	}

	src := rng.New(cfg.seed)

	population := make([]*qtree.Tree, NTrees)
	initScaled := make([]float64, NTrees)
	var champion *qtree.Tree
	bestCost := -1.0

	for i := 0; i < NTrees; i++ {
		treeSeed := int64(0)
		if cfg.seed != 0 {
			treeSeed = int64(src.Roll(1<<31)) + 1
		}
		tr, err := qtree.NewTree(n, qtree.WithSeed(treeSeed))
		if err != nil {
			return nil, err
		}
		population[i] = tr

		scaled := quartet.Scaled(quartet.Cost(tr, data), cmax, cmin)
		initScaled[i] = scaled
		if scaled > bestCost {
			bestCost = scaled
			champion = tr
		}
	}

	return &Runner{
		n:           n,
		data:        data,
		cmax:        cmax,
		cmin:        cmin,
		population:  population,
		champion:    champion.Copy(),
		bestCost:    bestCost,
		initScaled:  initScaled,
		sufficientK: sufficientK,
		table:       table,
		src:         src,
		haltEpsilon: cfg.haltEpsilon,
		log:         cfg.log,
	}, nil
}

// Run drives the hill climber for up to generations rounds, proposing one
// mutated candidate per population member per round in index order (spec
// section 5: this ordering is part of the observable contract), refreshing
// the champion whenever any member beats bestCost, and halting early once
// bestCost is within haltEpsilon of a perfect embedding.
//
// ctx is a Go-idiomatic addition absent from the original (spec section 5:
// "cancellation: not supported internally"); honoring ctx.Done() lets a
// caller abort a long run without changing search semantics otherwise. A
// cancellation returns the champion as built so far alongside ctx.Err().
//
// Complexity: O(generations * NTrees * k) mutation work plus
// O(generations * NTrees * cost-eval) scoring work.
func (r *Runner) Run(ctx context.Context, generations int) (*qtree.Tree, error) {
	for g := 0; g < generations; g++ {
		select {
		case <-ctx.Done():
			return r.champion, ctx.Err()
		default:
		}

		for j := 0; j < len(r.population); j++ {
			k := r.table.Sample(r.src) + 1
			if r.log != nil {
				r.log.LogMutate(k)
			}

			r.population[j] = r.propose(r.population[j], k)

			scaled := quartet.Scaled(quartet.Cost(r.population[j], r.data), r.cmax, r.cmin)
			if r.log != nil {
				r.log.LogCost(scaled)
			}

			if scaled > r.bestCost {
				r.bestCost = scaled
				r.champion = r.population[j].Copy()
			}
			if r.log != nil {
				r.log.LogFitness(r.bestCost)
			}
		}

		if r.bestCost >= 1-r.haltEpsilon {
			break
		}
	}
	return r.champion, nil
}

// propose implements the mmc2 acceptance rule (spec section 9's Open
// Question, resolved in favor of the copy-then-test-once variant wired
// into the original's driver): copy t, apply a fresh k-mutation to the
// copy, then accept the copy over t with probability max(0, 1-C(t')/C(t)).
// A zero-cost t would make the ratio a division by zero, so that case is
// short-circuited to an unconditional accept of the candidate (spec
// section 7's error-taxonomy row for C(T)=0).
func (r *Runner) propose(t *qtree.Tree, k int) *qtree.Tree {
	candidate := t.Copy()
	candidate.ComposeKMutation(r.src, k)

	costT := quartet.Cost(t, r.data)
	if costT == 0 {
		return candidate
	}

	costCandidate := quartet.Cost(candidate, r.data)
	if r.src.ClosedUnit() < acceptProbability(costT, costCandidate) {
		return candidate
	}
	return t
}

// acceptProbability is the mmc2 rule's accept probability for a candidate
// costing costCandidate against a current tree costing costT: a strict
// improvement only, linear in how much the candidate improves.
func acceptProbability(costT, costCandidate float64) float64 {
	return math.Max(0, 1-costCandidate/costT)
}

// Champion returns the best tree found so far.
func (r *Runner) Champion() *qtree.Tree { return r.champion }

// BestCost returns the champion's scaled cost S(T).
func (r *Runner) BestCost() float64 { return r.bestCost }

// InitialScaled returns the scaled cost of every population member as
// constructed, in population-index order, for the "init:<S0> <S1> ..."
// reporting line.
func (r *Runner) InitialScaled() []float64 {
	out := make([]float64, len(r.initScaled))
	copy(out, r.initScaled)
	return out
}

// SufficientK reports the k-mutation upper bound this Runner was built
// with (SufficientK(n)).
func (r *Runner) SufficientK() int { return r.sufficientK }
