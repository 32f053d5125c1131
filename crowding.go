package nsga2

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// crowdingEpsilon guards the per-axis range against division by zero when
// every individual in a front shares the same value on that axis.
const crowdingEpsilon = 1e-8

// CrowdingDistance computes a diversity score for every index in front, given
// objAt to fetch (and cache) each individual's objective vector. Boundary
// elements on every axis receive +Inf; fronts of size 1 or 2 are entirely
// +Inf.
func CrowdingDistance(front []int, objAt func(i int) Objective) map[int]float64 {
	scores := make(map[int]float64, len(front))
	for _, i := range front {
		scores[i] = 0
	}
	if len(front) <= 2 {
		for _, i := range front {
			scores[i] = math.Inf(1)
		}
		return scores
	}

	cache := make(map[int]Objective, len(front))
	for _, i := range front {
		cache[i] = objAt(i)
	}
	m := len(cache[front[0]])

	sorted := make([]int, len(front))
	copy(sorted, front)

	for k := 0; k < m; k++ {
		sort.Slice(sorted, func(a, b int) bool {
			return cache[sorted[a]][k] < cache[sorted[b]][k]
		})

		first, last := sorted[0], sorted[len(sorted)-1]
		scores[first] = math.Inf(1)
		scores[last] = math.Inf(1)

		axis := make([]float64, len(sorted))
		for i, idx := range sorted {
			axis[i] = cache[idx][k]
		}
		d := floats.Max(axis) - floats.Min(axis) + crowdingEpsilon

		for j := 1; j < len(sorted)-1; j++ {
			idx := sorted[j]
			if math.IsInf(scores[idx], 1) {
				continue
			}
			scores[idx] += (cache[sorted[j+1]][k] - cache[sorted[j-1]][k]) / d
		}
	}
	return scores
}
