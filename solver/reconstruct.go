package solver

import "github.com/katalvlaran/pathmaze/node"

// ParentOf resolves idx's parent arena index, or node.NoParent at a root.
type ParentOf func(idx int32) int32

// VertexOf resolves idx's linear maze index.
type VertexOf func(idx int32) int64

// ReconstructRecursive walks parent pointers from goal to the root, then
// fills the result on the way back out of the recursion — the "first
// pass counts depth, second pass fills in reverse" rbacktrack, expressed
// as plain recursion since Go already gives us the call stack for free.
// Used when depth isn't known ahead of time (A*, F*, JPS, G-best-first,
// GBFS, GDFS).
func ReconstructRecursive(parentOf ParentOf, vertexOf VertexOf, goal int32) Path {
	if goal == node.NoParent {
		return nil
	}
	return append(ReconstructRecursive(parentOf, vertexOf, parentOf(goal)), vertexOf(goal))
}

// ReconstructDepthKnown fills the result in one pass when the caller
// already knows the path length (depth edges, so depth+1 vertices) — the
// explicit edge-count depth BFS, DFS, G*, SMA* and MG* keep per node.
func ReconstructDepthKnown(parentOf ParentOf, vertexOf VertexOf, goal int32, depth int) Path {
	path := make(Path, depth+1)
	idx := goal
	for i := depth; i >= 0; i-- {
		path[i] = vertexOf(idx)
		idx = parentOf(idx)
	}
	return path
}

// ReconstructNoReverse fills the result in forward order without the
// recursive reversal: used by reverse-equivalence searches (gbfs with
// ReverseEquivalence) that swapped start/end internally, so walking
// goal-to-root in encounter order already yields the caller's
// start-to-end order.
func ReconstructNoReverse(parentOf ParentOf, vertexOf VertexOf, goal int32) Path {
	var path Path
	for idx := goal; idx != node.NoParent; idx = parentOf(idx) {
		path = append(path, vertexOf(idx))
	}
	return path
}

// ReconstructFromTrail is the index-set ibacktrack used by the iterative-
// deepening family: their explicit DFS stack trail already *is* the path
// in start-to-end order, so this just copies it into a fresh Path.
func ReconstructFromTrail(trail []int64) Path {
	out := make(Path, len(trail))
	copy(out, trail)
	return out
}
