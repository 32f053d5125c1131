package nsga2

import "github.com/cpmech/gosl/rnd"

// Mutator applies per-gene Bernoulli(p) bit-flip mutation, growing a
// population of size N into a pool of size 2N by appending N mutated
// copies. It tracks how many of its per-gene attempts actually flipped a
// bit, for diagnostics.
type Mutator struct {
	// Rate is the per-gene flip probability. Zero means "use 1/n",
	// resolved lazily against each individual's length in Mutate.
	Rate float64

	successfulMutations int
	mutationAttempts    int
}

// NewMutator returns a Mutator with the given per-gene flip rate. Pass 0 to
// use the default of 1/n (n = individual length), resolved per call.
func NewMutator(rate float64) *Mutator {
	return &Mutator{Rate: rate}
}

// Mutate returns a new pool of size 2N: the N individuals of population
// followed by one mutated copy of each. population itself is not modified.
func (m *Mutator) Mutate(population Population) Population {
	n := len(population)
	pool := make(Population, n, 2*n)
	copy(pool, population)
	for _, parent := range population {
		pool = append(pool, m.mutateOne(parent))
	}
	return pool
}

func (m *Mutator) mutateOne(parent Individual) Individual {
	p := m.Rate
	if p == 0 {
		p = 1.0 / float64(len(parent))
	}
	child := make(Individual, len(parent))
	for i, bit := range parent {
		m.mutationAttempts++
		if rnd.FlipCoin(p) {
			m.successfulMutations++
			child[i] = 1 - bit
		} else {
			child[i] = bit
		}
	}
	return child
}

// MutationRatio returns the fraction of individual mutation attempts that
// actually flipped a bit so far, for diagnostics. Returns 0 if no attempt
// has been made yet.
func (m *Mutator) MutationRatio() float64 {
	if m.mutationAttempts == 0 {
		return 0
	}
	return float64(m.successfulMutations) / float64(m.mutationAttempts)
}
