package astarfam

import (
	"log/slog"

	"github.com/katalvlaran/pathmaze/bitset"
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/node"
	"github.com/katalvlaran/pathmaze/pool"
	"github.com/katalvlaran/pathmaze/pqueue"
	"github.com/katalvlaran/pathmaze/solver"
)

// Heuristic is solver.Heuristic, re-exported so callers of this package
// never need to import solver directly just to name the type.
type Heuristic = solver.Heuristic

var zeroHeuristic = solver.ZeroHeuristic

type astarItem struct {
	idx     int32
	f, g    float64
	heapIdx int
}

func (a *astarItem) HeapIndex() int     { return a.heapIdx }
func (a *astarItem) SetHeapIndex(i int) { a.heapIdx = i }

// lower f wins; ties broken toward higher g, per §4.6.
func lessAStar(a, b *astarItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.g > b.g
}

// AStarOption configures an A* query.
type AStarOption func(*astarOptions)

type astarOptions struct {
	maze      maze.Maze
	start     int64
	end       int64
	heuristic Heuristic
	weight    float64
	logger    *slog.Logger
	pool      *pool.Homogeneous[node.Managed[float64]]
	noCleanup bool
}

func (o astarOptions) Bounds() (maze.Maze, int64, int64) { return o.maze, o.start, o.end }

// WithAStarHeuristic sets the per-vertex heuristic-to-goal function.
func WithAStarHeuristic(h Heuristic) AStarOption { return func(o *astarOptions) { o.heuristic = h } }

// WithAStarWeight scales the heuristic term (fScore = g + weight*h).
// Weight 1 (the default) is admissible-preserving; weight > 1 trades
// optimality for speed (weighted A*).
func WithAStarWeight(w float64) AStarOption { return func(o *astarOptions) { o.weight = w } }

// WithAStarLogger overrides the default *slog.Logger.
func WithAStarLogger(l *slog.Logger) AStarOption { return func(o *astarOptions) { o.logger = l } }

// WithAStarPool supplies a caller-owned pool instead of a fresh one.
func WithAStarPool(p *pool.Homogeneous[node.Managed[float64]]) AStarOption {
	return func(o *astarOptions) { o.pool = p }
}

// WithAStarNoCleanup skips the façade's post-query pool reset.
func WithAStarNoCleanup(v bool) AStarOption { return func(o *astarOptions) { o.noCleanup = v } }

// AStar returns the minimum-cost path from start to end in m. Optimal
// when the supplied heuristic is admissible and edge weights are
// non-negative.
func AStar(m maze.Maze, start, end int64, opts ...AStarOption) (solver.Path, error) {
	o := astarOptions{maze: m, start: start, end: end, heuristic: zeroHeuristic, weight: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.heuristic == nil {
		o.heuristic = zeroHeuristic
	}
	if o.pool == nil {
		o.pool = pool.NewHomogeneous[node.Managed[float64]](0)
	}
	o.logger = solver.Logger(o.logger)

	return solver.Run(o, runAStar, []pool.Resetter{o.pool}, o.noCleanup)
}

func runAStar(o astarOptions) (solver.Path, error) {
	capacity := solver.EstimateCapacity(o.maze, o.start, o.end)
	closed := bitset.New(uint64(capacity))
	bestG := make(map[int64]float64, capacity)
	open := pqueue.New(lessAStar)

	startIdx := node.NewManaged(o.pool, o.start, node.NoParent, 0.0)
	bestG[o.start] = 0
	open.Push(&astarItem{idx: startIdx, f: o.weight * o.heuristic(o.start), g: 0, heapIdx: -1})

	parentOf := func(idx int32) int32 { return o.pool.Get(int(idx)).Parent }
	vertexOf := func(idx int32) int64 { return o.pool.Get(int(idx)).Vertex }

	var scratch []maze.Edge
	for open.Len() > 0 {
		item, _ := open.Pop()
		rec := o.pool.Get(int(item.idx))
		if closed.Contains(uint64(rec.Vertex)) || item.g > bestG[rec.Vertex] {
			continue // stale entry superseded before it was popped
		}
		closed.Emplace(uint64(rec.Vertex))
		if rec.Vertex == o.end {
			return solver.ReconstructRecursive(parentOf, vertexOf, item.idx), nil
		}

		childAdded := false
		scratch = o.maze.Neighbours(rec.Vertex, scratch[:0])
		for _, e := range scratch {
			if closed.Contains(uint64(e.To)) {
				continue
			}
			ng := item.g + e.Weight
			if bg, ok := bestG[e.To]; ok && ng >= bg {
				continue
			}
			bestG[e.To] = ng
			childIdx := node.NewManaged(o.pool, e.To, item.idx, ng)
			childAdded = true
			open.Push(&astarItem{idx: childIdx, f: ng + o.weight*o.heuristic(e.To), g: ng, heapIdx: -1})
		}
		if !childAdded {
			node.Expunge(o.pool, item.idx)
		}
	}
	o.logger.Debug("astar: no path found", "start", o.start, "end", o.end)
	return nil, nil
}
