// Package maze defines the Maze abstraction the solver kernels search
// over, and the two concrete implementations: Grid (a K-dimensional
// lattice of active/inactive cells, axis- and diagonal-neighbour aware,
// adapted from gridgraph.GridGraph) and Graph (an explicit adjacency
// map, adapted from core.Graph, built from a Grid by a parallel
// conversion and then optionally pruned, a sequential pass that
// collapses degree-2 corridors into single weighted edges — the grid's
// "convert the open-space interior into a graph and simplify it" step
// from the original Design Notes).
//
// Every Maze implementation is addressed purely by int64 linear index;
// coord.Coord only appears at the boundary (constructing a Grid, or
// converting a solved path back to coordinates for the caller), because
// Go slices — needed to represent an arbitrary-arity coordinate — are not
// comparable and cannot be map keys.
package maze
