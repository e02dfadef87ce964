package pool

import "sort"

type homoBlock[T any] struct {
	data []T
}

// Homogeneous is a fixed-size slab allocator backed by an explicit free
// list: every element is the same size (T is fixed per instantiation, so
// the source's debug_assert on matching size/alignment across calls is
// enforced structurally by the type system rather than at runtime).
// Alloc first tries the free list; on exhaustion it grows a new block and
// pushes every slot in it onto the free list before satisfying the
// request. Used by the managed-node arenas (A*, F*, JPS, the graveyard
// family, MG*) whose
// nodes are freed individually via Expunge as the open/closed sets churn.
type Homogeneous[T any] struct {
	blocks   []homoBlock[T]
	starts   []int
	free     []int32
	minElems int
	maxElems int
}

// NewHomogeneous constructs a Homogeneous pool sized for T.
func NewHomogeneous[T any](blockBytes int) *Homogeneous[T] {
	elemSize := sizeOf[T]()
	if blockBytes <= 0 {
		blockBytes = defaultMinBlockBytes
	}
	return &Homogeneous[T]{
		minElems: clampInt(blockBytes/elemSize, 1, 1<<20),
		maxElems: clampInt(defaultMaxBlockBytes/elemSize, 1, 1<<20),
	}
}

// Alloc returns a fresh index and a pointer to the element backing it.
func (h *Homogeneous[T]) Alloc() (int, *T) {
	if len(h.free) == 0 {
		h.growBlock()
	}
	idx := int(h.free[len(h.free)-1])
	h.free = h.free[:len(h.free)-1]
	return idx, h.at(idx)
}

// Free returns idx to the free list for reuse by a future Alloc.
func (h *Homogeneous[T]) Free(idx int) error {
	if idx < 0 || idx >= h.capacity() {
		return ErrInvalidIndex
	}
	h.free = append(h.free, int32(idx))
	return nil
}

func (h *Homogeneous[T]) growBlock() {
	prevCap := h.capacity()
	n := h.minElems
	if prevCap > 0 {
		n = clampInt(prevCap+prevCap/2, h.minElems, h.maxElems)
	}
	start := prevCap
	h.blocks = append(h.blocks, homoBlock[T]{data: make([]T, n)})
	h.starts = append(h.starts, start)
	for i := 0; i < n; i++ {
		h.free = append(h.free, int32(start+i))
	}
}

func (h *Homogeneous[T]) capacity() int {
	if len(h.blocks) == 0 {
		return 0
	}
	last := len(h.blocks) - 1
	return h.starts[last] + len(h.blocks[last].data)
}

func (h *Homogeneous[T]) at(idx int) *T {
	i := sort.Search(len(h.starts), func(i int) bool { return h.starts[i] > idx }) - 1
	return &h.blocks[i].data[idx-h.starts[i]]
}

// Get resolves a previously allocated index back to its element. It does
// not validate that idx is currently live (callers are expected to track
// liveness the way the node arena's reference counts do).
func (h *Homogeneous[T]) Get(idx int) *T { return h.at(idx) }

// Reset rebuilds the free list from every owned block, as if every
// element were just freed, without shrinking any block.
func (h *Homogeneous[T]) Reset() error {
	h.free = h.free[:0]
	cap := h.capacity()
	for i := 0; i < cap; i++ {
		h.free = append(h.free, int32(i))
	}
	return nil
}

// Release drops every owned block. The next Alloc grows a fresh one.
func (h *Homogeneous[T]) Release() error {
	h.blocks = nil
	h.starts = nil
	h.free = nil
	return nil
}
