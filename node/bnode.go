package node

// BNode is the coordinate bookkeeping every search node carries,
// regardless of which pool it's allocated from: the linear maze index the
// node represents. Solver kernels work in this int64 index space
// internally; conversion to/from a multi-dimensional coord.Coord happens
// only at the maze boundary and on final path output.
type BNode struct {
	Vertex int64
}
