package nsga2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionListSentinels(t *testing.T) {
	l := NewPositionList([]int{10, 20, 30})
	prev, next, hasPrev, hasNext := l.At(10)
	assert.False(t, hasPrev)
	assert.True(t, hasNext)
	assert.Equal(t, 10, prev)
	assert.Equal(t, 20, next)

	_, _, hasPrev, hasNext = l.At(30)
	assert.True(t, hasPrev)
	assert.False(t, hasNext)
}

func TestPositionListRemoveMiddleSplicesNeighbors(t *testing.T) {
	l := NewPositionList([]int{10, 20, 30})
	l.Remove(20)
	_, next, _, hasNext := l.At(10)
	assert.True(t, hasNext)
	assert.Equal(t, 30, next)
	prev, _, hasPrev, _ := l.At(30)
	assert.True(t, hasPrev)
	assert.Equal(t, 10, prev)
}

func TestPositionListRemoveHeadPromotesNext(t *testing.T) {
	l := NewPositionList([]int{10, 20, 30})
	l.Remove(10)
	_, _, hasPrev, _ := l.At(20)
	assert.False(t, hasPrev)
}

func TestPositionListRemoveTailPromotesPrev(t *testing.T) {
	l := NewPositionList([]int{10, 20, 30})
	l.Remove(30)
	_, _, _, hasNext := l.At(20)
	assert.False(t, hasNext)
}

func TestPositionListAccessAfterRemovePanics(t *testing.T) {
	l := NewPositionList([]int{10, 20})
	l.Remove(10)
	assert.Panics(t, func() {
		l.At(10)
	})
}
