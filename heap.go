package nsga2

import "github.com/cpmech/gosl/chk"

// heapNode is a (key, id) pair stored in an IndexedHeap.
type heapNode[K any, I comparable] struct {
	key K
	id  I
}

// IndexedHeap is a binary min-heap over (key, id) pairs, ordered by a
// caller-supplied less function and indexed by a hashable external id of
// type I. A side map from id to heap position supports DecreaseKey in
// O(log n).
//
// The key type is generic over any comparable-by-less type (rather than
// constrained to cmp.Ordered) so that environmental selection (select.go)
// can key on a (crowding distance, random tie-break rank) pair.
type IndexedHeap[K any, I comparable] struct {
	less    func(a, b K) bool
	nodes   []heapNode[K, I]
	indices map[I]int
}

// NewIndexedHeap allocates an empty indexed min-heap ordered by less.
func NewIndexedHeap[K any, I comparable](less func(a, b K) bool) *IndexedHeap[K, I] {
	return &IndexedHeap[K, I]{less: less, indices: make(map[I]int)}
}

// NewIndexedHeapOrdered allocates an indexed min-heap over a naturally
// ordered key type (float64, int, ...).
func NewIndexedHeapOrdered[K float64 | int, I comparable]() *IndexedHeap[K, I] {
	return NewIndexedHeap[K, I](func(a, b K) bool { return a < b })
}

// Len returns the number of elements currently in the heap.
func (h *IndexedHeap[K, I]) Len() int {
	return len(h.nodes)
}

// Push inserts (key, id). Panics if id is already present.
func (h *IndexedHeap[K, I]) Push(key K, id I) {
	if _, ok := h.indices[id]; ok {
		chk.Panic("heap: id already present: %v", id)
	}
	idx := len(h.nodes)
	h.nodes = append(h.nodes, heapNode[K, I]{key: key, id: id})
	h.indices[id] = idx
	h.siftUp(idx)
}

// ExtractMin removes and returns the (key, id) pair with the smallest key.
// Panics if the heap is empty.
func (h *IndexedHeap[K, I]) ExtractMin() (key K, id I) {
	n := len(h.nodes)
	if n == 0 {
		chk.Panic("heap: extract_min on empty heap")
	}
	min := h.nodes[0]
	delete(h.indices, min.id)
	last := h.nodes[n-1]
	h.nodes = h.nodes[:n-1]
	if n > 1 {
		h.nodes[0] = last
		h.indices[last.id] = 0
		h.siftDown(0)
	}
	return min.key, min.id
}

// GetKey returns the key currently associated with id. Panics if absent.
func (h *IndexedHeap[K, I]) GetKey(id I) K {
	idx, ok := h.indices[id]
	if !ok {
		chk.Panic("heap: unknown id: %v", id)
	}
	return h.nodes[idx].key
}

// Has returns whether id is currently present in the heap.
func (h *IndexedHeap[K, I]) Has(id I) bool {
	_, ok := h.indices[id]
	return ok
}

// DecreaseKey lowers the key of id to newKey. Precondition: newKey <=
// current key under h's less function; raising a key is disallowed and
// panics.
func (h *IndexedHeap[K, I]) DecreaseKey(id I, newKey K) {
	idx, ok := h.indices[id]
	if !ok {
		chk.Panic("heap: unknown id: %v", id)
	}
	if h.less(h.nodes[idx].key, newKey) {
		chk.Panic("heap: decrease_key would raise the key: id=%v", id)
	}
	h.nodes[idx].key = newKey
	h.siftUp(idx)
}

func (h *IndexedHeap[K, I]) swap(i, j int) {
	h.indices[h.nodes[i].id] = j
	h.indices[h.nodes[j].id] = i
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
}

func (h *IndexedHeap[K, I]) siftUp(index int) {
	for index > 0 {
		parent := (index - 1) / 2
		if !h.less(h.nodes[index].key, h.nodes[parent].key) {
			break
		}
		h.swap(parent, index)
		index = parent
	}
}

func (h *IndexedHeap[K, I]) siftDown(i int) {
	n := len(h.nodes)
	for {
		c1, c2 := 2*i+1, 2*i+2
		smallest := i
		if c1 < n && h.less(h.nodes[c1].key, h.nodes[smallest].key) {
			smallest = c1
		}
		if c2 < n && h.less(h.nodes[c2].key, h.nodes[smallest].key) {
			smallest = c2
		}
		if smallest == i {
			break
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// HasHeapProperty reports whether the min-heap invariant currently holds.
// Exposed for tests, as in the original's has_heap_property.
func (h *IndexedHeap[K, I]) HasHeapProperty() bool {
	n := len(h.nodes)
	for i := 0; i < n; i++ {
		c1, c2 := 2*i+1, 2*i+2
		if c1 < n && h.less(h.nodes[c1].key, h.nodes[i].key) {
			return false
		}
		if c2 < n && h.less(h.nodes[c2].key, h.nodes[i].key) {
			return false
		}
	}
	return true
}
