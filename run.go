package nsga2

// ObjectiveFunc is a pure, deterministic callable mapping a genome to its
// objective vector. It is a plain func type rather than an interface so
// that closures, stateless functions and parameterized functors (e.g.
// benchmark.MLOTZFunctor) are all admissible.
type ObjectiveFunc func(x Individual) Objective

// Run executes the NSGA-II evolutionary loop:
//
//	init_population(n, N) with i.i.d. uniform random bits
//	iter <- 0
//	while not terminate(population, iter):
//	    pool <- mutate(population)                 # grow to 2N
//	    fronts <- non_dominated_sort(pool)
//	    population <- select(pool, fronts)         # shrink to N
//	    iter <- iter + 1
//	return population
//
// terminate is called once per iteration before mutation, including
// iteration 0 on the initial random population. prms.CalcDerived must have
// been called first (it seeds the run's PRNG).
func Run(prms *Parameters, f ObjectiveFunc, terminate Criterion) Population {
	mutator := NewMutator(prms.MutationRate)
	population := initPopulation(prms.IndividualSize, prms.PopulationSize)

	iter := 0
	for !terminate(population, iter) {
		pool := mutator.Mutate(population)

		objCache := make(map[int]Objective, len(pool))
		objAt := func(i int) Objective {
			if v, ok := objCache[i]; ok {
				return v
			}
			v := f(pool[i])
			objCache[i] = v
			return v
		}

		fronts := NonDominatedSort(len(pool), objAt)
		population = Select(pool, fronts, prms.PopulationSize, objAt, prms.IterativeTrim)
		iter++
	}
	return population
}

func initPopulation(n, size int) Population {
	pop := make(Population, size)
	for i := range pop {
		pop[i] = NewRandomIndividual(n)
	}
	return pop
}
