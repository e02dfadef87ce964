// Package uninformed implements the solvers that carry no heuristic:
// BFS, DFS, Dijkstra (as a reverse, on-demand single-source-multi-target
// search), and the feasibility-only flood/floodfill pair. BFS and DFS
// use node.Unmanaged in a pool.Monotonic — nodes are never freed
// individually, the whole arena is torn down in one shot when the query
// ends — matching §4.6's "BFS/DFS: identical shape to A*/G* but with
// queue/stack and unmanaged nodes in monotonic pool." Dijkstra keeps its
// nodes in a map, and flood/floodfill keep no nodes at all.
package uninformed
