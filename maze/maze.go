package maze

// Edge is a weighted neighbour returned by Maze.Neighbours: To is the
// target's linear index, Weight its traversal cost.
type Edge struct {
	To     int64
	Weight float64
}

// Maze is the search space every solver kernel traverses. Both Grid and
// Graph implement it; a kernel never cares which backs a given query.
type Maze interface {
	// Count reports the total number of addressable cells/vertices,
	// including inactive ones.
	Count() int64
	// Contains reports whether v is a valid linear index into this maze.
	Contains(v int64) bool
	// IsActive reports whether v is passable (land, not a wall/obstacle).
	IsActive(v int64) bool
	// Neighbours appends v's passable neighbours to dst and returns the
	// extended slice, letting callers reuse a scratch buffer across
	// calls instead of allocating one per expansion.
	Neighbours(v int64, dst []Edge) []Edge
}

// GridLike is implemented by every Grid[W] instantiation. It lets a
// caller that only has a Maze interface value (and doesn't know, or
// care, what W is) tell a Grid-backed maze apart from a Graph-backed one
// — e.g. the solver façade's capacity-estimation rule, which differs
// between the two — without a type switch over every possible cell type.
type GridLike interface {
	gridMarker()
}

var (
	_ Maze     = (*Grid[bool])(nil)
	_ Maze     = (*Graph)(nil)
	_ GridLike = (*Grid[bool])(nil)
)
