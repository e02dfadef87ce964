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

// gScoreDepth is G*'s node payload: g is the running path cost (used for
// ordering, exactly like A*), depth is the running edge count — tracked
// separately from g because g need not be an integer edge count on a
// weighted maze, but the depth-known reconstruction below needs an exact
// one.
type gScoreDepth struct {
	g     float64
	depth int32
}

type gstarItem struct {
	idx     int32
	f       float64
	g       float64
	heapIdx int
}

func (g *gstarItem) HeapIndex() int     { return g.heapIdx }
func (g *gstarItem) SetHeapIndex(i int) { g.heapIdx = i }

func lessGStar(a, b *gstarItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.g > b.g
}

// GStarOption configures a G* query.
type GStarOption func(*gstarOptions)

type gstarOptions struct {
	maze      maze.Maze
	start     int64
	end       int64
	heuristic solver.Heuristic
	weight    float64
	logger    *slog.Logger
	pool      *pool.Homogeneous[node.Managed[gScoreDepth]]
	noCleanup bool
}

func (o gstarOptions) Bounds() (maze.Maze, int64, int64) { return o.maze, o.start, o.end }

// WithGStarHeuristic sets the per-vertex heuristic-to-goal function.
func WithGStarHeuristic(h solver.Heuristic) GStarOption {
	return func(o *gstarOptions) { o.heuristic = h }
}

// WithGStarWeight scales the heuristic term.
func WithGStarWeight(w float64) GStarOption { return func(o *gstarOptions) { o.weight = w } }

// WithGStarLogger overrides the default *slog.Logger.
func WithGStarLogger(l *slog.Logger) GStarOption { return func(o *gstarOptions) { o.logger = l } }

// WithGStarPool supplies a caller-owned pool instead of a fresh one.
func WithGStarPool(p *pool.Homogeneous[node.Managed[gScoreDepth]]) GStarOption {
	return func(o *gstarOptions) { o.pool = p }
}

// WithGStarNoCleanup skips the façade's post-query pool reset.
func WithGStarNoCleanup(v bool) GStarOption { return func(o *gstarOptions) { o.noCleanup = v } }

// GStar is A*'s search shape over node.Managed records: on an expansion
// that adds no child, the expanded node is Expunge'd immediately (rather
// than waiting for the façade's bulk pool reset), collapsing the chain of
// now-childless dead ancestors as far upward as it reaches. The live
// parent graph is therefore, at all times, exactly the nodes with at
// least one live successor plus the entries still sitting in open.
func GStar(m maze.Maze, start, end int64, opts ...GStarOption) (solver.Path, error) {
	o := gstarOptions{maze: m, start: start, end: end, heuristic: solver.ZeroHeuristic, weight: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.heuristic == nil {
		o.heuristic = solver.ZeroHeuristic
	}
	if o.pool == nil {
		o.pool = pool.NewHomogeneous[node.Managed[gScoreDepth]](0)
	}
	o.logger = solver.Logger(o.logger)

	return solver.Run(o, runGStar, []pool.Resetter{o.pool}, o.noCleanup)
}

func runGStar(o gstarOptions) (solver.Path, error) {
	capacity := solver.EstimateCapacity(o.maze, o.start, o.end)
	closed := bitset.New(uint64(capacity))
	bestG := make(map[int64]float64, capacity)
	open := pqueue.New(lessGStar)

	startIdx := node.NewManaged(o.pool, o.start, node.NoParent, gScoreDepth{g: 0, depth: 0})
	bestG[o.start] = 0
	open.Push(&gstarItem{idx: startIdx, f: o.weight * o.heuristic(o.start), g: 0, heapIdx: -1})

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
			open.Wipe()
			return solver.ReconstructDepthKnown(parentOf, vertexOf, item.idx, int(rec.Score.depth)), nil
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
			childIdx := node.NewManaged(o.pool, e.To, item.idx, gScoreDepth{g: ng, depth: rec.Score.depth + 1})
			childAdded = true
			open.Push(&gstarItem{idx: childIdx, f: ng + o.weight*o.heuristic(e.To), g: ng, heapIdx: -1})
		}
		if !childAdded {
			node.Expunge(o.pool, item.idx)
		}
	}
	o.logger.Debug("gstar: no path found", "start", o.start, "end", o.end)
	return nil, nil
}
