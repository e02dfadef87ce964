package uninformed

import (
	"log/slog"

	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/pqueue"
	"github.com/katalvlaran/pathmaze/solver"
)

// noDijkstraParent marks the reverse-search root (end): no vertex id is
// ever negative, so -1 is an unambiguous sentinel.
const noDijkstraParent = int64(-1)

type dijkstraNode struct {
	vertex  int64
	parent  int64
	dist    float64
	heapIdx int
}

func (n *dijkstraNode) HeapIndex() int     { return n.heapIdx }
func (n *dijkstraNode) SetHeapIndex(i int) { n.heapIdx = i }

// DijkstraOption configures a Dijkstra query.
type DijkstraOption func(*dijkstraOptions)

type dijkstraOptions struct {
	maze   maze.Maze
	start  int64
	end    int64
	logger *slog.Logger
}

func (o dijkstraOptions) Bounds() (maze.Maze, int64, int64) { return o.maze, o.start, o.end }

// WithDijkstraLogger overrides the default *slog.Logger.
func WithDijkstraLogger(l *slog.Logger) DijkstraOption {
	return func(o *dijkstraOptions) { o.logger = l }
}

// Dijkstra returns the minimum-weight path from start to end in m, or
// nil if none exists. Per the source, the search is rooted at end and
// relaxes toward start, building a predecessor map keyed by vertex that
// get then walks from start to end; the map is local to the call and is
// not kept for later queries. This assumes traversable edges are symmetric, true
// of every Maze implementation in this module (Grid and undirected
// Graph).
func Dijkstra(m maze.Maze, start, end int64, opts ...DijkstraOption) (solver.Path, error) {
	o := dijkstraOptions{maze: m, start: start, end: end}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = solver.Logger(o.logger)
	return solver.Run(o, runDijkstra, nil, false)
}

func runDijkstra(o dijkstraOptions) (solver.Path, error) {
	nodes := make(map[int64]*dijkstraNode, solver.EstimateCapacity(o.maze, o.start, o.end))
	less := func(a, b *dijkstraNode) bool { return a.dist < b.dist }
	open := pqueue.New(less)

	root := &dijkstraNode{vertex: o.end, parent: noDijkstraParent, dist: 0}
	nodes[o.end] = root
	open.Push(root)

	var scratch []maze.Edge
	for open.Len() > 0 {
		cur, _ := open.Pop()
		if cur.vertex == o.start {
			break
		}
		scratch = o.maze.Neighbours(cur.vertex, scratch[:0])
		for _, e := range scratch {
			nd := cur.dist + e.Weight
			existing, ok := nodes[e.To]
			if !ok {
				n := &dijkstraNode{vertex: e.To, parent: cur.vertex, dist: nd, heapIdx: -1}
				nodes[e.To] = n
				open.Push(n)
				continue
			}
			if nd >= existing.dist {
				continue
			}
			existing.dist = nd
			existing.parent = cur.vertex
			if existing.heapIdx >= 0 {
				open.Reheapify(existing.heapIdx)
			} else {
				open.Push(existing)
			}
		}
	}

	path, ok := get(nodes, o.start, o.end)
	if !ok {
		o.logger.Debug("dijkstra: no path found", "start", o.start, "end", o.end)
		return nil, nil
	}
	return path, nil
}

// get answers "path from v to end" on demand from an already-relaxed
// predecessor map — the source's get(coord) entry point.
func get(nodes map[int64]*dijkstraNode, v, end int64) (solver.Path, bool) {
	var path solver.Path
	for {
		n, ok := nodes[v]
		if !ok {
			return nil, false
		}
		path = append(path, v)
		if v == end {
			return path, true
		}
		v = n.parent
	}
}
