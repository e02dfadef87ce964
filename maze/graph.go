package maze

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Graph is an explicit adjacency-map maze: every vertex is a dense int64
// in [0, Count), and its neighbours are stored directly rather than
// derived from a coordinate lattice. Adapted from core.Graph, narrowed
// from core's string-keyed, mutex-guarded multigraph down to the
// read-mostly, index-keyed shape the solver kernels need.
type Graph struct {
	n        int64
	adj      [][]Edge
	directed bool
	pruned   bool
}

// NewGraph returns an empty Graph over n vertices (0..n-1), ready for
// AddEdge calls.
func NewGraph(n int64, directed bool) *Graph {
	return &Graph{n: n, adj: make([][]Edge, n), directed: directed}
}

// AddEdge adds a weighted edge from -> to. For an undirected graph it
// also adds the reverse edge.
func (g *Graph) AddEdge(from, to int64, weight float64) {
	g.adj[from] = append(g.adj[from], Edge{To: to, Weight: weight})
	if !g.directed {
		g.adj[to] = append(g.adj[to], Edge{To: from, Weight: weight})
	}
}

// NewGraphFromAdjacency builds a Graph directly from a precomputed
// adjacency list (index i holds i's outgoing edges, already symmetric if
// the source graph was undirected).
func NewGraphFromAdjacency(adj [][]Edge, directed bool) *Graph {
	n := int64(len(adj))
	cp := make([][]Edge, n)
	for i := range adj {
		cp[i] = append([]Edge(nil), adj[i]...)
	}
	return &Graph{n: n, adj: cp, directed: directed}
}

// NewGraphFromGrid converts the active interior of a Grid into a Graph by
// expanding every active cell's neighbours in parallel, bounded to
// min(runtime.NumCPU(), 6) workers sharing a mutex-guarded adjacency
// slice — the Go-idiomatic replacement for the source's raw-thread +
// std::mutex grid-to-graph conversion. The result is undirected and
// unpruned; call Prune to collapse corridor cells.
func NewGraphFromGrid[W comparable](g *Grid[W]) (*Graph, error) {
	n := g.Count()
	adj := make([][]Edge, n)
	var mu sync.Mutex

	workers := runtime.NumCPU()
	if workers > 6 {
		workers = 6
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + int64(workers) - 1) / int64(workers)
	if chunk < 1 {
		chunk = 1
	}

	var eg errgroup.Group
	for start := int64(0); start < n; start += chunk {
		start := start
		end := start + chunk
		if end > n {
			end = n
		}
		eg.Go(func() error {
			var scratch []Edge
			local := make(map[int64][]Edge, end-start)
			for v := start; v < end; v++ {
				if !g.IsActive(v) {
					continue
				}
				scratch = scratch[:0]
				scratch = g.Neighbours(v, scratch)
				local[v] = append([]Edge(nil), scratch...)
			}
			mu.Lock()
			for v, edges := range local {
				adj[v] = edges
			}
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &Graph{n: n, adj: adj, directed: false}, nil
}

// Count implements Maze.
func (g *Graph) Count() int64 { return g.n }

// Contains implements Maze.
func (g *Graph) Contains(v int64) bool { return v >= 0 && v < g.n }

// IsActive implements Maze.
func (g *Graph) IsActive(v int64) bool { return g.Contains(v) && len(g.adj[v]) > 0 }

// Neighbours implements Maze.
func (g *Graph) Neighbours(v int64, dst []Edge) []Edge {
	if !g.Contains(v) {
		return dst
	}
	return append(dst, g.adj[v]...)
}

// Prune collapses every degree-2 corridor vertex into a single weighted
// edge between its two endpoints, shrinking the graph the solver kernels
// actually search over without changing any shortest path through it.
// Pruning is single-shot (ErrAlreadyPruned on a second call) and
// undefined for directed graphs (ErrDirectedUnsupported), since collapsing
// a corridor assumes the walk through it is reversible.
func (g *Graph) Prune() error {
	if g.directed {
		return ErrDirectedUnsupported
	}
	if g.pruned {
		return ErrAlreadyPruned
	}
	removed := make([]bool, g.n)
	for v := int64(0); v < g.n; v++ {
		if removed[v] || len(g.adj[v]) != 2 {
			continue
		}
		a, b := g.adj[v][0], g.adj[v][1]
		weight := a.Weight + b.Weight
		g.replaceEdge(a.To, v, Edge{To: b.To, Weight: weight})
		g.replaceEdge(b.To, v, Edge{To: a.To, Weight: weight})
		g.adj[v] = nil
		removed[v] = true
	}
	g.pruned = true
	return nil
}

// replaceEdge rewrites, within at's adjacency list, the edge that used to
// point at oldTo so that it points at newEdge.To/Weight instead.
func (g *Graph) replaceEdge(at, oldTo int64, newEdge Edge) {
	for i := range g.adj[at] {
		if g.adj[at][i].To == oldTo {
			g.adj[at][i] = newEdge
			return
		}
	}
}
