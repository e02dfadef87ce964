// Package pqueue implements the indexed d-ary heap that A*, JPS, G*,
// G-best-first, MG* and Dijkstra use as their open set (F*, SMA* and the
// iterative-deepening family do not use it).
//
// Unlike container/heap, elements know their own position: a Heap[T]
// requires T to implement Item (HeapIndex/SetHeapIndex), the same pattern
// soniakeys/graph's AStar uses with rNode.fx, generalised to a configurable
// branching factor and extended with a lazy-insert / batch-repair path
// (EmplaceNoSort then Reheapify) for enqueuing several elements before
// restoring the heap invariant. The kernels in this module enqueue with
// Push.
package pqueue
