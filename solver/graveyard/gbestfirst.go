package graveyard

import (
	"log/slog"

	"github.com/katalvlaran/pathmaze/bitset"
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/node"
	"github.com/katalvlaran/pathmaze/pool"
	"github.com/katalvlaran/pathmaze/pqueue"
	"github.com/katalvlaran/pathmaze/solver"
)

type gbfItem struct {
	idx     int32
	h       float64
	heapIdx int
}

func (g *gbfItem) HeapIndex() int     { return g.heapIdx }
func (g *gbfItem) SetHeapIndex(i int) { g.heapIdx = i }

func lessGBestFirst(a, b *gbfItem) bool { return a.h < b.h }

// GBestFirstOption configures a G-best-first query.
type GBestFirstOption func(*gbfOptions)

type gbfOptions struct {
	maze      maze.Maze
	start     int64
	end       int64
	heuristic solver.Heuristic
	logger    *slog.Logger
	pool      *pool.Homogeneous[node.Managed[float64]]
	noCleanup bool
}

func (o gbfOptions) Bounds() (maze.Maze, int64, int64) { return o.maze, o.start, o.end }

// WithGBestFirstHeuristic sets the per-vertex heuristic-to-goal function.
func WithGBestFirstHeuristic(h solver.Heuristic) GBestFirstOption {
	return func(o *gbfOptions) { o.heuristic = h }
}

// WithGBestFirstLogger overrides the default *slog.Logger.
func WithGBestFirstLogger(l *slog.Logger) GBestFirstOption {
	return func(o *gbfOptions) { o.logger = l }
}

// WithGBestFirstPool supplies a caller-owned pool instead of a fresh one.
func WithGBestFirstPool(p *pool.Homogeneous[node.Managed[float64]]) GBestFirstOption {
	return func(o *gbfOptions) { o.pool = p }
}

// WithGBestFirstNoCleanup skips the façade's post-query pool reset.
func WithGBestFirstNoCleanup(v bool) GBestFirstOption {
	return func(o *gbfOptions) { o.noCleanup = v }
}

// GBestFirst is greedy best-first search (ordering purely by h, ignoring
// g) over node.Managed records, sharing the expunge-on-dead-end pattern
// with GStar/GBFS/GDFS. Not optimality-preserving: it trades the
// guarantee for speed by never reconsidering the heuristic's promise once
// a cheaper-looking node is available.
func GBestFirst(m maze.Maze, start, end int64, opts ...GBestFirstOption) (solver.Path, error) {
	o := gbfOptions{maze: m, start: start, end: end, heuristic: solver.ZeroHeuristic}
	for _, opt := range opts {
		opt(&o)
	}
	if o.heuristic == nil {
		o.heuristic = solver.ZeroHeuristic
	}
	if o.pool == nil {
		o.pool = pool.NewHomogeneous[node.Managed[float64]](0)
	}
	o.logger = solver.Logger(o.logger)

	return solver.Run(o, runGBestFirst, []pool.Resetter{o.pool}, o.noCleanup)
}

func runGBestFirst(o gbfOptions) (solver.Path, error) {
	capacity := solver.EstimateCapacity(o.maze, o.start, o.end)
	closed := bitset.New(uint64(capacity))
	open := pqueue.New(lessGBestFirst)

	startIdx := node.NewManaged(o.pool, o.start, node.NoParent, o.heuristic(o.start))
	open.Push(&gbfItem{idx: startIdx, h: o.heuristic(o.start), heapIdx: -1})

	parentOf := func(idx int32) int32 { return o.pool.Get(int(idx)).Parent }
	vertexOf := func(idx int32) int64 { return o.pool.Get(int(idx)).Vertex }

	var scratch []maze.Edge
	for open.Len() > 0 {
		item, _ := open.Pop()
		rec := o.pool.Get(int(item.idx))
		if closed.Contains(uint64(rec.Vertex)) {
			continue
		}
		closed.Emplace(uint64(rec.Vertex))
		if rec.Vertex == o.end {
			open.Wipe()
			return solver.ReconstructRecursive(parentOf, vertexOf, item.idx), nil
		}

		childAdded := false
		scratch = o.maze.Neighbours(rec.Vertex, scratch[:0])
		for _, e := range scratch {
			if closed.Contains(uint64(e.To)) {
				continue
			}
			h := o.heuristic(e.To)
			childIdx := node.NewManaged(o.pool, e.To, item.idx, h)
			childAdded = true
			open.Push(&gbfItem{idx: childIdx, h: h, heapIdx: -1})
		}
		if !childAdded {
			node.Expunge(o.pool, item.idx)
		}
	}
	o.logger.Debug("gbestfirst: no path found", "start", o.start, "end", o.end)
	return nil, nil
}
