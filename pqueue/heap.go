package pqueue

// Item is the constraint every element of a Heap must satisfy: it must be
// able to remember its own slot, the way soniakeys/graph's rNode remembers
// its heap index in rNode.fx. This is what lets Heap support O(log n)
// erase-by-value and in-place priority updates instead of only Push/Pop.
type Item interface {
	// HeapIndex returns the element's last-known slot in the heap's
	// backing array, or -1 if it is not currently stored in one.
	HeapIndex() int
	// SetHeapIndex records the element's current slot.
	SetHeapIndex(i int)
}

// Heap is an indexed d-ary priority container. The zero value is not
// usable; construct with New. Lower priority (per less) sits closer to the
// root — for a min-heap, less(a, b) should report whether a has strictly
// smaller priority than b.
type Heap[T Item] struct {
	data []T
	less func(a, b T) bool
	d    int
}

// Option configures a Heap at construction.
type Option[T Item] func(*Heap[T])

// WithBranching sets the branching factor (default 2, i.e. a binary heap).
func WithBranching[T Item](d int) Option[T] {
	return func(h *Heap[T]) {
		if d >= 2 {
			h.d = d
		}
	}
}

// WithCapacity preallocates the backing array.
func WithCapacity[T Item](n int) Option[T] {
	return func(h *Heap[T]) {
		if n > 0 {
			h.data = make([]T, 0, n)
		}
	}
}

// New constructs an empty Heap ordered by less.
func New[T Item](less func(a, b T) bool, opts ...Option[T]) *Heap[T] {
	h := &Heap[T]{less: less, d: 2}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Len reports the number of elements currently stored.
func (h *Heap[T]) Len() int { return len(h.data) }

// Peek returns the root element without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

// Push inserts v and restores the heap invariant immediately.
func (h *Heap[T]) Push(v T) {
	idx := len(h.data)
	v.SetHeapIndex(idx)
	h.data = append(h.data, v)
	h.siftUp(idx)
}

// Pop removes and returns the root element.
func (h *Heap[T]) Pop() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	var zero T
	h.data[last] = zero
	h.data = h.data[:last]
	top.SetHeapIndex(-1)
	if len(h.data) > 0 {
		h.data[0].SetHeapIndex(0)
		h.siftDown(0)
	}
	return top, true
}

// EmplaceNoSort appends v without restoring the heap invariant: a fast
// path for enqueuing every child of one expansion (the solver kernels in
// this module use Push instead); callers must follow a batch of EmplaceNoSort calls
// with Reheapify (on each inserted index, innermost first, or simply on
// the last one when children were emplaced in priority order) before the
// next Pop/Peek. It returns the slot the element was placed in.
func (h *Heap[T]) EmplaceNoSort(v T) int {
	idx := len(h.data)
	v.SetHeapIndex(idx)
	h.data = append(h.data, v)
	return idx
}

// Reheapify repairs the heap invariant around idx, sifting up or down as
// needed. Safe to call after EmplaceNoSort or after mutating an element's
// priority in place.
func (h *Heap[T]) Reheapify(idx int) {
	if idx < 0 || idx >= len(h.data) {
		return
	}
	if idx > 0 && h.less(h.data[idx], h.data[h.parent(idx)]) {
		h.siftUp(idx)
		return
	}
	h.siftDown(idx)
}

// Erase removes the element currently at idx (as reported by its own
// HeapIndex), restoring the heap invariant. This is the "erase by value"
// operation: callers locate idx via item.HeapIndex() rather than a linear
// scan.
func (h *Heap[T]) Erase(idx int) (T, bool) {
	if idx < 0 || idx >= len(h.data) {
		var zero T
		return zero, false
	}
	removed := h.data[idx]
	last := len(h.data) - 1
	h.data[idx] = h.data[last]
	var zero T
	h.data[last] = zero
	h.data = h.data[:last]
	removed.SetHeapIndex(-1)
	if idx < len(h.data) {
		h.data[idx].SetHeapIndex(idx)
		h.Reheapify(idx)
	}
	return removed, true
}

// Snapshot returns a copy of the heap's backing storage in heap (not
// sorted) order. Intended for diagnostics and tests; mutating the result
// has no effect on the heap.
func (h *Heap[T]) Snapshot() []T {
	out := make([]T, len(h.data))
	copy(out, h.data)
	return out
}

// Wipe drops the backing array without sifting or clearing element heap
// indices. Use this instead of repeated Pop when the heap's storage lives
// in a pool that is about to be Reset anyway — avoids paying for a
// teardown the pool is going to discard a moment later.
func (h *Heap[T]) Wipe() {
	h.data = nil
}

// Find performs a tree-descent search for the first element (in heap
// storage order) satisfying pred, pruning subtrees whose root already
// fails prune when prune is non-nil (pass nil to search exhaustively).
// LowerBound and UpperBound are built on top of this.
func (h *Heap[T]) Find(pred func(T) bool, prune func(T) bool) (int, bool) {
	return h.descend(0, pred, prune)
}

func (h *Heap[T]) descend(i int, pred, prune func(T) bool) (int, bool) {
	if i < 0 || i >= len(h.data) {
		return -1, false
	}
	if prune != nil && prune(h.data[i]) {
		return -1, false
	}
	if pred(h.data[i]) {
		return i, true
	}
	first := h.firstChild(i)
	for c := first; c < first+h.d && c < len(h.data); c++ {
		if idx, ok := h.descend(c, pred, prune); ok {
			return idx, true
		}
	}
	return -1, false
}

// LowerBound returns the first element e (heap order) for which
// !less(e, target) holds, i.e. the first element not ordered strictly
// before target.
func (h *Heap[T]) LowerBound(target T) (T, bool) {
	idx, ok := h.Find(func(e T) bool { return !h.less(e, target) }, nil)
	if !ok {
		var zero T
		return zero, false
	}
	return h.data[idx], true
}

// UpperBound returns the first element e (heap order) for which
// less(target, e) holds, i.e. the first element ordered strictly after
// target.
func (h *Heap[T]) UpperBound(target T) (T, bool) {
	idx, ok := h.Find(func(e T) bool { return h.less(target, e) }, nil)
	if !ok {
		var zero T
		return zero, false
	}
	return h.data[idx], true
}

func (h *Heap[T]) parent(i int) int     { return (i - 1) / h.d }
func (h *Heap[T]) firstChild(i int) int { return i*h.d + 1 }

func (h *Heap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
	h.data[i].SetHeapIndex(i)
	h.data[j].SetHeapIndex(j)
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := h.parent(i)
		if !h.less(h.data[i], h.data[p]) {
			break
		}
		h.swap(i, p)
		i = p
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		best := i
		first := h.firstChild(i)
		for c := first; c < first+h.d && c < n; c++ {
			if h.less(h.data[c], h.data[best]) {
				best = c
			}
		}
		if best == i {
			return
		}
		h.swap(i, best)
		i = best
	}
}
