// Package rng provides the single-threaded uniform random source used
// throughout the tree search: a process-local generator exposing the three
// unit intervals the search needs ([0,1], [0,1), (0,1)) plus the biased
// coin and uniform die built on top of it.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A *Source must not be shared
//     across goroutines; callers that need independent streams should
//     construct one Source per goroutine.
package rng

import (
	"math"
	"math/rand"
	"time"
)

// Source wraps a deterministic *math/rand.Rand and adds the unit-interval
// and coin/die adapters the search driver depends on. Not safe for
// concurrent use, matching the core search loop's single-actor model.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded from seed. seed==0 seeds from the wall clock
// (time.Now().UnixNano()), matching "seeded once from a wall-clock value"
// for production use; any nonzero seed is used verbatim, for deterministic
// tests.
//
// Complexity: O(1).
func New(seed int64) *Source {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return &Source{r: rand.New(rand.NewSource(s))}
}

// ClosedUnit returns a uniform double on [0,1], inclusive of both endpoints.
// Built from a 53-bit-inclusive integer draw so that 1.0 is reachable,
// unlike the half-open Float64 the standard library exposes directly.
//
// Complexity: O(1).
func (s *Source) ClosedUnit() float64 {
	const mantissaSteps = 1 << 53
	return float64(s.r.Int63n(mantissaSteps+1)) / float64(mantissaSteps)
}

// HalfOpenUnit returns a uniform double on [0,1).
//
// Complexity: O(1).
func (s *Source) HalfOpenUnit() float64 {
	return s.r.Float64()
}

// OpenUnit returns a uniform double on (0,1), resampling on a zero draw.
//
// Complexity: O(1) expected.
func (s *Source) OpenUnit() float64 {
	for {
		if v := s.r.Float64(); v != 0 {
			return v
		}
	}
}

// Flip returns true ("heads") with probability bias, false otherwise.
// bias is clamped into [0,1] defensively; callers are expected to pass
// valid probabilities.
//
// Complexity: O(1).
func (s *Source) Flip(bias float64) bool {
	bias = math.Max(0, math.Min(1, bias))
	return s.HalfOpenUnit() < bias
}

// Fair flips a fair coin: Flip(0.5).
//
// Complexity: O(1).
func (s *Source) Fair() bool {
	return s.Flip(0.5)
}

// Roll returns a uniform integer in [0,m) by floor-scaling a half-open
// unit draw. Panics if m<=0: callers never roll a zero-sided die.
//
// Complexity: O(1).
func (s *Source) Roll(m int) int {
	if m <= 0 {
		panic("rng: Roll requires m > 0")
	}
	return int(s.HalfOpenUnit() * float64(m))
}
