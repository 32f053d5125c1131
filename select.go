package nsga2

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/rnd"
)

// trimKey orders first by crowding distance ascending, then by a random
// tie-break rank drawn at insertion time from the run's seeded PRNG, so that
// ties in crowding distance are broken deterministically for a given seed
// rather than by map/slice iteration order.
type trimKey struct {
	dist float64
	tie  float64
}

func trimKeyLess(a, b trimKey) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.tie < b.tie
}

// Select reduces pool (size 2N, or any size >= n) down to exactly n
// individuals using environmental selection: whole fronts are admitted in
// rank order while they fit, then the splitting front is trimmed by crowding
// distance. objAt supplies (and lets the caller cache) each index's
// objective vector. iterativeTrim selects between two equivalent trimming
// strategies: the "simple" sort-and-truncate strategy (false) or the
// heap/linked-list-based iterative trim (true).
func Select(pool Population, fronts [][]int, n int, objAt func(i int) Objective, iterativeTrim bool) Population {
	if n <= 0 {
		chk.Panic("select: target size must be positive: n=%d", n)
	}

	admitted := make([]int, 0, n)
	frontIdx := 0
	for ; frontIdx < len(fronts); frontIdx++ {
		front := fronts[frontIdx]
		if len(admitted)+len(front) > n {
			break
		}
		admitted = append(admitted, front...)
	}

	if len(admitted) == n {
		return gather(pool, admitted)
	}
	if frontIdx >= len(fronts) {
		chk.Panic("select: fronts do not cover the requested target size: n=%d, admitted=%d", n, len(admitted))
	}

	splitting := fronts[frontIdx]
	remaining := n - len(admitted)

	var chosen []int
	if iterativeTrim {
		chosen = selectIterativeTrim(splitting, remaining, objAt)
	} else {
		chosen = selectSimple(splitting, remaining, objAt)
	}
	admitted = append(admitted, chosen...)

	if len(admitted) != n {
		chk.Panic("select: post-condition violated: len(new_population)=%d != n=%d", len(admitted), n)
	}
	return gather(pool, admitted)
}

func gather(pool Population, indices []int) Population {
	out := make(Population, len(indices))
	for i, idx := range indices {
		out[i] = pool[idx].Copy()
	}
	return out
}

// selectSimple computes crowding distance over the splitting front, sorts it
// descending, and takes the top `remaining` indices.
func selectSimple(front []int, remaining int, objAt func(i int) Objective) []int {
	scores := CrowdingDistance(front, objAt)
	sorted := make([]int, len(front))
	copy(sorted, front)
	sort.SliceStable(sorted, func(a, b int) bool {
		return scores[sorted[a]] > scores[sorted[b]]
	})
	return sorted[:remaining]
}

// selectIterativeTrim maintains the front in an indexed min-heap keyed by
// crowding distance and a doubly-linked list of positions sorted by
// crowding distance descending; it repeatedly extracts the minimum, splices
// it out of the list, and recomputes the (up to two) now-adjacent
// neighbors' crowding distance, pushing the update into the heap via
// DecreaseKey. Boundary elements (distance +Inf) are never recomputed, so
// their infinite distance guarantees they survive until only they remain.
//
// The recompute mirrors modified_nsga2.cpp's crowding_distance_select
// exactly: a spliced-in neighbor is no longer adjacent to the other in any
// per-axis sorted order, so there is no well-defined per-axis diff to fall
// back on. Instead the neighbor's new score is the diff of its (now
// adjacent) neighbors' own previously-computed crowding-distance scores,
// normalized by the fixed range d taken once from the initial
// descending-sorted front (first entry is the maximum score, last is the
// minimum). Because d and the participating scores only shrink towards
// that range as nodes are removed, this recurrence never raises a key,
// unlike a per-axis objective recompute would on a front with tied or
// duplicate objective values.
func selectIterativeTrim(front []int, remaining int, objAt func(i int) Objective) []int {
	scores := CrowdingDistance(front, objAt)

	sortedDesc := make([]int, len(front))
	copy(sortedDesc, front)
	sort.SliceStable(sortedDesc, func(a, b int) bool {
		return scores[sortedDesc[a]] > scores[sortedDesc[b]]
	})

	positions := NewPositionList(sortedDesc)
	pq := NewIndexedHeap[trimKey, int](trimKeyLess)
	for _, idx := range front {
		pq.Push(trimKey{dist: scores[idx], tie: rnd.Float64(0, 1)}, idx)
	}

	// Fixed for the whole trim: the border elements' +Inf score guarantees
	// this never changes, since they are always removed last.
	d := scores[sortedDesc[len(sortedDesc)-1]] - scores[sortedDesc[0]]

	recompute := func(a, b int) float64 {
		return (scores[b] - scores[a]) / d
	}

	for pq.Len() > remaining {
		_, idx := pq.ExtractMin()
		prev, next, hasPrev, hasNext := positions.At(idx)
		positions.Remove(idx)
		if !hasPrev || !hasNext {
			continue
		}

		// positions have been spliced already, so prev's next (and next's
		// prev) is now the other side directly; only prev's prev and next's
		// next still need fetching to know the new diff window.
		prevPrev, _, prevHasPrev, _ := positions.At(prev)
		if prevHasPrev && !math.IsInf(scores[prev], 1) {
			newDist := recompute(prevPrev, next)
			scores[prev] = newDist
			pq.DecreaseKey(prev, trimKey{dist: newDist, tie: pq.GetKey(prev).tie})
		}

		_, nextNext, _, nextHasNext := positions.At(next)
		if nextHasNext && !math.IsInf(scores[next], 1) {
			newDist := recompute(prev, nextNext)
			scores[next] = newDist
			pq.DecreaseKey(next, trimKey{dist: newDist, tie: pq.GetKey(next).tie})
		}
	}

	kept := make([]int, 0, remaining)
	for pq.Len() > 0 {
		_, idx := pq.ExtractMin()
		kept = append(kept, idx)
	}
	return kept
}
