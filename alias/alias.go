// Package alias implements Vose/Walker's O(1) alias method for sampling an
// arbitrary discrete probability distribution, used to draw the k in each
// proposed k-mutation from the search's fat-tailed PMF.
package alias

import (
	"errors"
	"fmt"

	"github.com/linehan/mqtc/rng"
)

// ErrEmptyDistribution indicates a zero-length probability vector.
var ErrEmptyDistribution = errors.New("alias: empty distribution")

// ErrNotNormalized indicates the probability vector does not sum to 1
// within tolerance.
var ErrNotNormalized = errors.New("alias: probabilities do not sum to 1")

// tolerance bounds how far Σp may drift from 1 before New rejects it.
const tolerance = 1e-5

// Table is a constructed alias sampler over m outcomes {0,...,m-1}.
type Table struct {
	prob  []float64 // prob[i]: probability of returning i directly on a hit at i
	alias []int     // alias[i]: fallback outcome on a miss at i
}

// New builds a Table from p, a probability vector summing to 1 within
// 1e-5. Construction follows the classical small/large partition:
//  1. scale every p[i] by m to form q[i]
//  2. partition indices into small (q[i]<1) and large (q[i]>=1)
//  3. pair small against large until one list drains, redistributing the
//     large entry's excess mass
//  4. drain whichever list remains with prob[i]=1
//
// Complexity: O(m) time and space.
func New(p []float64) (*Table, error) {
	m := len(p)
	if m == 0 {
		return nil, ErrEmptyDistribution
	}

	sum := 0.0
	for _, v := range p {
		sum += v
	}
	if sum < 1-tolerance || sum > 1+tolerance {
		return nil, fmt.Errorf("alias: sum=%g: %w", sum, ErrNotNormalized)
	}

	q := make([]float64, m)
	for i, v := range p {
		q[i] = v * float64(m)
	}

	var small, large []int
	for i, v := range q {
		if v < 1.0 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	prob := make([]float64, m)
	al := make([]int, m)

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		prob[s] = q[s]
		al[s] = l

		q[l] = (q[l] + q[s]) - 1.0
		if q[l] < 1.0 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	for _, l := range large {
		prob[l] = 1.0
	}
	for _, s := range small {
		prob[s] = 1.0
	}

	return &Table{prob: prob, alias: al}, nil
}

// Len returns the number of outcomes the table samples over.
func (t *Table) Len() int { return len(t.prob) }

// Probabilities returns the constructed per-index hit probability table,
// in index order. This is the alias table's prob[] array, not the input
// distribution p.
func (t *Table) Probabilities() []float64 {
	out := make([]float64, len(t.prob))
	copy(out, t.prob)
	return out
}

// Sample draws one outcome in [0,Len()) using src: one die roll, one coin
// flip.
//
// Complexity: O(1).
func (t *Table) Sample(src *rng.Source) int {
	i := src.Roll(len(t.prob))
	if src.Flip(t.prob[i]) {
		return i
	}
	return t.alias[i]
}
