package nsga2

import "github.com/cpmech/gosl/chk"

// position is one node of a PositionList: its own index, and the indices of
// its neighbors in sorted order. The sentinel convention is prev==self for
// the head and next==self for the tail.
type position struct {
	prev, self, next int
}

func (p position) hasPrev() bool { return p.prev != p.self }
func (p position) hasNext() bool { return p.next != p.self }

// PositionList is a fixed-capacity doubly-linked list stored in maps keyed
// by population index, built once from a front already sorted in the
// caller's desired order (e.g. crowding distance, descending). It supports
// indexed access by map lookup and one-shot Remove; it never grows.
// Accessing a removed index is a fatal error.
type PositionList struct {
	nodes   map[int]position
	deleted map[int]bool
}

// NewPositionList builds a position list over sortedFront, a slice of
// population indices already in the desired sorted order.
func NewPositionList(sortedFront []int) *PositionList {
	n := len(sortedFront)
	l := &PositionList{
		nodes:   make(map[int]position, n),
		deleted: make(map[int]bool, n),
	}
	for i, idx := range sortedFront {
		pos := position{prev: idx, self: idx, next: idx}
		if i > 0 {
			pos.prev = sortedFront[i-1]
		}
		if i < n-1 {
			pos.next = sortedFront[i+1]
		}
		l.nodes[idx] = pos
	}
	return l
}

func (l *PositionList) checkLive(x int) position {
	if l.deleted[x] {
		chk.Panic("position list: access to removed position %d", x)
	}
	pos, ok := l.nodes[x]
	if !ok {
		chk.Panic("position list: unknown position %d", x)
	}
	return pos
}

// At returns the current neighbor links of x.
func (l *PositionList) At(x int) (prev, next int, hasPrev, hasNext bool) {
	pos := l.checkLive(x)
	return pos.prev, pos.next, pos.hasPrev(), pos.hasNext()
}

// Remove splices x out of the list, reconnecting its neighbors (or
// terminating the list at the new boundary if x was a head or tail).
func (l *PositionList) Remove(x int) {
	pos := l.checkLive(x)

	hasPrev, hasNext := pos.hasPrev(), pos.hasNext()
	switch {
	case hasPrev && hasNext:
		prev := l.nodes[pos.prev]
		next := l.nodes[pos.next]
		prev.next = pos.next
		next.prev = pos.prev
		l.nodes[pos.prev] = prev
		l.nodes[pos.next] = next
	case hasPrev:
		prev := l.nodes[pos.prev]
		prev.next = prev.self
		l.nodes[pos.prev] = prev
	case hasNext:
		next := l.nodes[pos.next]
		next.prev = next.self
		l.nodes[pos.next] = next
	}
	l.deleted[x] = true
}
