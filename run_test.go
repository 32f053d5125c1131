package nsga2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lotzk mirrors benchmark.LOTZK locally to avoid an import cycle between
// this package and benchmark, which imports nsga2.
func lotzk(k int, x Individual) int {
	n := len(x)
	switch k {
	case 0:
		i := 0
		for i < n && x[i] != 0 {
			i++
		}
		return i
	case 1:
		i := 0
		for i < n && x[n-1-i] == 0 {
			i++
		}
		return i
	default:
		panic("bad k")
	}
}

func mlotzkLocal(m, k int, x Individual) int {
	n2 := 2 * len(x) / m
	lo := (k / 2) * n2
	return lotzk(k%2, x.Slice(lo, lo+n2))
}

func mlotzLocal(m int, x Individual) Objective {
	v := make(Objective, m)
	for k := 0; k < m; k++ {
		v[k] = float64(mlotzkLocal(m, k, x))
	}
	return v
}

func isOnMLOTZFront(m int, x Individual) bool {
	n2 := 2 * len(x) / m
	for slice := 0; slice < m/2; slice++ {
		lo := slice * n2
		s := x.Slice(lo, lo+n2)
		if lotzk(0, s)+lotzk(1, s) != len(s) {
			return false
		}
	}
	return true
}

func TestRunConvergesToParetoFront(t *testing.T) {
	prms := &Parameters{
		IndividualSize: 12,
		ObjectiveSize:  4,
		PopulationSize: 36,
		MaxIters:       500,
		Seed:           1,
		MutationRate:   0,
		IterativeTrim:  false,
		Verbose:        false,
	}
	prms.CalcDerived()

	objective := func(x Individual) Objective { return mlotzLocal(prms.ObjectiveSize, x) }
	onFront := func(x Individual) bool { return isOnMLOTZFront(prms.ObjectiveSize, x) }
	terminate := func(pop Population, iter int) bool {
		return CountOnParetoFront(pop, onFront) == len(pop) || iter >= prms.MaxIters
	}

	final := Run(prms, objective, terminate)
	require.Len(t, final, prms.PopulationSize)
	for _, x := range final {
		assert.True(t, onFront(x), "individual not on mLOTZ Pareto front: %s", x.String())
	}
}

func TestRunConvergesToParetoFrontWithIterativeTrim(t *testing.T) {
	prms := &Parameters{
		IndividualSize: 12,
		ObjectiveSize:  4,
		PopulationSize: 36,
		MaxIters:       500,
		Seed:           3,
		MutationRate:   0,
		IterativeTrim:  true,
		Verbose:        false,
	}
	prms.CalcDerived()

	objective := func(x Individual) Objective { return mlotzLocal(prms.ObjectiveSize, x) }
	onFront := func(x Individual) bool { return isOnMLOTZFront(prms.ObjectiveSize, x) }
	terminate := func(pop Population, iter int) bool {
		return CountOnParetoFront(pop, onFront) == len(pop) || iter >= prms.MaxIters
	}

	var final Population
	assert.NotPanics(t, func() {
		final = Run(prms, objective, terminate)
	})
	require.Len(t, final, prms.PopulationSize)
	for _, x := range final {
		assert.True(t, onFront(x), "individual not on mLOTZ Pareto front: %s", x.String())
	}
}

func TestRunRespectsMaxIters(t *testing.T) {
	prms := &Parameters{
		IndividualSize: 8,
		ObjectiveSize:  2,
		PopulationSize: 10,
		MaxIters:       3,
		Seed:           2,
	}
	prms.CalcDerived()

	objective := func(x Individual) Objective { return mlotzLocal(prms.ObjectiveSize, x) }
	terminate := MaxIterations(prms.MaxIters)

	final := Run(prms, objective, terminate)
	assert.Len(t, final, prms.PopulationSize)
}
