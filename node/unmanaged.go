package node

// NoParent is the sentinel Parent value marking a root node (BFS/DFS's
// start vertex, Dijkstra's source).
const NoParent int32 = -1

// Unmanaged[S] is a search-node record for the algorithms that never free
// individual nodes mid-query (BFS, DFS, Dijkstra, flood/floodfill): every
// visited vertex gets exactly one record, Parent threads the reverse path
// back to the root by arena index, and the whole arena is torn down in
// one shot (pool.Monotonic.Reset/Release) once the query finishes. S is
// the algorithm-specific payload — Dijkstra's running distance, flood's
// depth counter, or struct{} for plain BFS/DFS.
type Unmanaged[S any] struct {
	BNode
	Parent int32
	Score  S
}

// NewUnmanaged builds a node record in place. It does not touch the
// pool; callers pass the pointer pool.Monotonic.Alloc just handed back.
func NewUnmanaged[S any](n *Unmanaged[S], vertex int64, parent int32, score S) {
	n.Vertex = vertex
	n.Parent = parent
	n.Score = score
}
