package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathmaze/pqueue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scalarItem struct {
	v   int
	idx int
}

func (s *scalarItem) HeapIndex() int     { return s.idx }
func (s *scalarItem) SetHeapIndex(i int) { s.idx = i }

func lessScalar(a, b *scalarItem) bool { return a.v < b.v }

func TestPushPopOrdering(t *testing.T) {
	h := pqueue.New(lessScalar)
	vals := []int{5, 3, 8, 1, 9, 2}
	for _, v := range vals {
		h.Push(&scalarItem{v: v})
	}
	var out []int
	for h.Len() > 0 {
		top, ok := h.Pop()
		require.True(t, ok)
		out = append(out, top.v)
	}
	assert.True(t, sortedAsc(out), "expected ascending pops, got %v", out)
}

func TestEraseByValueReverseOrder(t *testing.T) {
	h := pqueue.New(lessScalar)
	rng := rand.New(rand.NewSource(42))
	items := make([]*scalarItem, 100)
	for i := range items {
		items[i] = &scalarItem{v: rng.Intn(10000)}
		h.Push(items[i])
	}
	for i := len(items) - 1; i >= 0; i-- {
		_, ok := h.Erase(items[i].HeapIndex())
		require.True(t, ok)
		assertHeapProperty(t, h)
	}
	assert.Equal(t, 0, h.Len())
}

func TestEmplaceNoSortThenReheapify(t *testing.T) {
	h := pqueue.New(lessScalar)
	parent := &scalarItem{v: 10}
	h.Push(parent)
	children := []*scalarItem{{v: 50}, {v: 2}, {v: 30}}
	var lastIdx int
	for _, c := range children {
		lastIdx = h.EmplaceNoSort(c)
	}
	h.Reheapify(lastIdx)
	for i := len(children) - 2; i >= 0; i-- {
		h.Reheapify(children[i].HeapIndex())
	}
	top, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, 2, top.v)
}

func TestWipeDropsBackingArray(t *testing.T) {
	h := pqueue.New(lessScalar)
	h.Push(&scalarItem{v: 1})
	h.Wipe()
	assert.Equal(t, 0, h.Len())
}

func sortedAsc(v []int) bool {
	for i := 1; i < len(v); i++ {
		if v[i] < v[i-1] {
			return false
		}
	}
	return true
}

func assertHeapProperty(t *testing.T, h *pqueue.Heap[*scalarItem]) {
	t.Helper()
	data := h.Snapshot()
	for i := 1; i < len(data); i++ {
		parent := (i - 1) / 2
		assert.False(t, data[i].v < data[parent].v, "heap property violated at %d/%d", i, parent)
		assert.Equal(t, i, data[i].idx, "stale heap index after erase")
	}
}
