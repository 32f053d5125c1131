// Package benchmark implements the LOTZ and mLOTZ pseudo-Boolean test
// functions used as the reference objective for the NSGA-II evolutionary
// loop in the parent package.
package benchmark

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/nsga2"
)

// LOTZK returns the k-th axis of the bi-objective LOTZ function over x: k=0
// is the count of leading ones, k=1 is the count of trailing zeros. Panics
// for any other k.
func LOTZK(k int, x nsga2.Individual) int {
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
		chk.Panic("invalid objective index for LOTZ: k=%d", k)
		return 0
	}
}

// LOTZ returns the bi-objective LOTZ value of x: [leading ones, trailing
// zeros].
func LOTZ(x nsga2.Individual) nsga2.Objective {
	return nsga2.Objective{float64(LOTZK(0, x)), float64(LOTZK(1, x))}
}

// MLOTZK returns the k-th coordinate of the m-objective mLOTZ value of x,
// 0 <= k < m. x is partitioned into m/2 contiguous slices of equal length
// 2*len(x)/m; slice k/2 contributes its leading-ones count at even k and its
// trailing-zeros count at odd k.
func MLOTZK(m, k int, x nsga2.Individual) int {
	n2 := 2 * len(x) / m
	lo := (k / 2) * n2
	return LOTZK(k%2, x.Slice(lo, lo+n2))
}

// MLOTZ returns the m-objective mLOTZ value of x. Requires m even and
// len(x) divisible by m/2.
func MLOTZ(m int, x nsga2.Individual) nsga2.Objective {
	n := len(x)
	if m%2 != 0 {
		chk.Panic("mlotz: objective size must be even: m=%d", m)
	}
	if n%(m/2) != 0 {
		chk.Panic("mlotz: individual length must be divisible by m/2: n=%d, m=%d", n, m)
	}
	v := make(nsga2.Objective, m)
	for k := 0; k < m; k++ {
		v[k] = float64(MLOTZK(m, k, x))
	}
	return v
}

// MLOTZFunctor returns a closure computing MLOTZ(m, x), suitable for use as
// a pure, deterministic objective function in the evolution driver.
func MLOTZFunctor(m int) func(x nsga2.Individual) nsga2.Objective {
	return func(x nsga2.Individual) nsga2.Objective {
		return MLOTZ(m, x)
	}
}

// IsLOTZParetoFront reports whether x lies on the Pareto front of the LOTZ
// function: its leading-ones count plus its trailing-zeros count equals its
// length, i.e. x matches the pattern 1^a 0^b with a+b == len(x).
func IsLOTZParetoFront(x nsga2.Individual) bool {
	return LOTZK(0, x)+LOTZK(1, x) == len(x)
}

// IsMLOTZParetoFront reports whether x lies on the Pareto front of the
// m-objective mLOTZ function: every one of its m/2 slices independently
// satisfies the LOTZ Pareto-front characterization.
func IsMLOTZParetoFront(m int, x nsga2.Individual) bool {
	if m%2 != 0 {
		chk.Panic("mlotz: objective size must be even: m=%d", m)
	}
	n := len(x)
	if n%(m/2) != 0 {
		chk.Panic("mlotz: individual length must be divisible by m/2: n=%d, m=%d", n, m)
	}
	n2 := 2 * n / m
	for slice := 0; slice < m/2; slice++ {
		lo := slice * n2
		if !IsLOTZParetoFront(x.Slice(lo, lo+n2)) {
			return false
		}
	}
	return true
}
