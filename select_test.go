package nsga2

import (
	"testing"

	"github.com/cpmech/gosl/rnd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func objectivePool() ([]Objective, func(i int) Objective) {
	objs := []Objective{
		{4, 3}, // front 0
		{3, 4}, // front 0
		{2, 1}, // front 1
		{1, 2}, // front 1
		{0, 0}, // front 2
	}
	return objs, func(i int) Objective { return objs[i] }
}

func poolOf(n int) Population {
	pool := make(Population, n)
	// 4-bit big-endian encoding of i, so every individual keeps bits in
	// {0,1} and renders to a distinct String.
	for i := range pool {
		pool[i] = Individual{byte(i >> 3 & 1), byte(i >> 2 & 1), byte(i >> 1 & 1), byte(i & 1)}
	}
	return pool
}

func TestSelectAdmitsExactlyN(t *testing.T) {
	rnd.Init(1)
	_, objAt := objectivePool()
	pool := poolOf(5)
	fronts := NonDominatedSort(5, objAt)

	for _, iterative := range []bool{false, true} {
		got := Select(pool, fronts, 3, objAt, iterative)
		assert.Len(t, got, 3, "iterativeTrim=%v", iterative)
	}
}

func TestSelectNoIndexTwice(t *testing.T) {
	rnd.Init(1)
	objs, objAt := objectivePool()
	pool := poolOf(len(objs))
	fronts := NonDominatedSort(len(objs), objAt)

	got := Select(pool, fronts, 3, objAt, false)
	seen := make(map[string]bool)
	for _, ind := range got {
		key := ind.String()
		require.False(t, seen[key], "individual appeared twice: %s", key)
		seen[key] = true
	}
}

func TestSelectAdmitsFromRankNoWorseThanSplitting(t *testing.T) {
	rnd.Init(1)
	objs, objAt := objectivePool()
	pool := poolOf(len(objs))
	fronts := NonDominatedSort(len(objs), objAt)

	// splitting front is rank 1 (indices 2,3): front 0 has 2, so selecting
	// 3 must take all of front 0 plus exactly one of front 1's members.
	got := Select(pool, fronts, 3, objAt, false)
	require.Len(t, got, 3)
	names := make([]string, len(got))
	for i, ind := range got {
		names[i] = ind.String()
	}
	assert.Contains(t, names, pool[0].String())
	assert.Contains(t, names, pool[1].String())
	assert.NotContains(t, names, pool[4].String())
}

func TestSelectWholeFrontsFitExactly(t *testing.T) {
	rnd.Init(1)
	objs, objAt := objectivePool()
	pool := poolOf(len(objs))
	fronts := NonDominatedSort(len(objs), objAt)

	got := Select(pool, fronts, 2, objAt, false)
	assert.Len(t, got, 2)
}

func TestSelectSimpleAndIterativeTrimAgreeOnSize(t *testing.T) {
	rnd.Init(42)
	objs := []Objective{
		{0, 10}, {2, 8}, {4, 6}, {6, 4}, {8, 2}, {10, 0},
	}
	objAt := func(i int) Objective { return objs[i] }
	pool := poolOf(len(objs))
	fronts := NonDominatedSort(len(objs), objAt)
	require.Len(t, fronts, 1, "all points on one mutually non-dominated front")

	simple := Select(pool, fronts, 4, objAt, false)
	iterative := Select(pool, fronts, 4, objAt, true)
	assert.Len(t, simple, 4)
	assert.Len(t, iterative, 4)
}

func TestSelectIterativeTrimDuplicateObjectivesDoNotPanic(t *testing.T) {
	rnd.Init(7)
	// all 9 individuals share the same objective vector: a per-axis
	// recompute of a spliced neighbor's crowding distance would diff raw
	// objective coordinates that carry no relation to its previous score,
	// tripping DecreaseKey's "never raise a key" precondition. Regression
	// test for that failure mode.
	objs := make([]Objective, 9)
	for i := range objs {
		objs[i] = Objective{3, 3}
	}
	objAt := func(i int) Objective { return objs[i] }
	pool := poolOf(len(objs))
	fronts := NonDominatedSort(len(objs), objAt)
	require.Len(t, fronts, 1, "equal objectives are mutually non-dominating")

	assert.NotPanics(t, func() {
		got := Select(pool, fronts, 4, objAt, true)
		assert.Len(t, got, 4)
	})
}

func TestSelectIterativeTrimTiedAndDistinctObjectivesDoNotPanic(t *testing.T) {
	rnd.Init(11)
	// small non-negative integer objectives with heavy ties, mirroring the
	// value range benchmark.MLOTZ produces.
	objs := []Objective{
		{3, 0}, {2, 1}, {2, 1}, {1, 2}, {1, 2}, {1, 2}, {0, 3}, {0, 3},
	}
	objAt := func(i int) Objective { return objs[i] }
	pool := poolOf(len(objs))
	fronts := NonDominatedSort(len(objs), objAt)
	require.Len(t, fronts, 1, "all points lie on the same LOTZ-style front")

	assert.NotPanics(t, func() {
		got := Select(pool, fronts, 5, objAt, true)
		assert.Len(t, got, 5)
	})
}
