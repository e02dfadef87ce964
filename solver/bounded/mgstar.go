package bounded

import (
	"log/slog"

	"github.com/katalvlaran/pathmaze/bitset"
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/node"
	"github.com/katalvlaran/pathmaze/pool"
	"github.com/katalvlaran/pathmaze/pqueue"
	"github.com/katalvlaran/pathmaze/solver"
)

// mgScore is MG*'s node payload: g is the running path cost, depth the
// running edge count, kept separate for the same reason G*'s
// gScoreDepth does (see solver/graveyard) — ReconstructDepthKnown needs
// an exact edge count, which g alone doesn't guarantee on a weighted maze.
type mgScore struct {
	g     float64
	depth int32
}

type mgItem struct {
	idx     int32
	f, g    float64
	heapIdx int
}

func (m *mgItem) HeapIndex() int     { return m.heapIdx }
func (m *mgItem) SetHeapIndex(i int) { m.heapIdx = i }

// lower f wins; ties broken toward lower g, per §4.6's "lower g in
// SMA*/MG*" (the opposite tie-break from A*/G*'s "higher g").
func lessMG(a, b *mgItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.g < b.g
}

// MGStarOption configures an MG* query.
type MGStarOption func(*mgOptions)

type mgOptions struct {
	maze        maze.Maze
	start       int64
	end         int64
	heuristic   solver.Heuristic
	weight      float64
	memoryLimit int
	logger      *slog.Logger
	pool        *pool.Homogeneous[node.Managed[mgScore]]
	noCleanup   bool
}

func (o mgOptions) Bounds() (maze.Maze, int64, int64) { return o.maze, o.start, o.end }

// WithMGStarHeuristic sets the per-vertex heuristic-to-goal function.
func WithMGStarHeuristic(h solver.Heuristic) MGStarOption {
	return func(o *mgOptions) { o.heuristic = h }
}

// WithMGStarWeight scales the heuristic term.
func WithMGStarWeight(w float64) MGStarOption { return func(o *mgOptions) { o.weight = w } }

// WithMGStarMemoryLimit caps open.size+closed.size (§4.6's
// memory_usage()). A non-positive limit (the default) disables the
// bound entirely — MG* then behaves like G* with an anytime re-seed.
func WithMGStarMemoryLimit(n int) MGStarOption { return func(o *mgOptions) { o.memoryLimit = n } }

// WithMGStarLogger overrides the default *slog.Logger.
func WithMGStarLogger(l *slog.Logger) MGStarOption { return func(o *mgOptions) { o.logger = l } }

// WithMGStarPool supplies a caller-owned pool instead of a fresh one.
func WithMGStarPool(p *pool.Homogeneous[node.Managed[mgScore]]) MGStarOption {
	return func(o *mgOptions) { o.pool = p }
}

// WithMGStarNoCleanup skips the façade's post-query pool reset.
func WithMGStarNoCleanup(v bool) MGStarOption { return func(o *mgOptions) { o.noCleanup = v } }

// MGStar is memory-bounded G*: a managed-node arena and open heap exactly
// like solver/graveyard.GStar, but desaturated under a memory_usage()
// ceiling instead of letting the arena grow unbounded. Rather than
// keeping a separate deferred "lossless expunct stack" tier, this
// implementation reclaims every childless node the instant its
// expansion finishes adding nothing new — identical to GStar's own
// expunge-on-dead-end discipline — so by the time desaturation ever
// needs to run, every reclaimable node is already gone and only a lossy
// worst-open-entry drop remains to do (see DESIGN.md).
//
// On reaching the goal, MG* does not return immediately: per §4.6 it
// keeps exploring (seeding a fresh start node back into open, budget
// permitting) and retains the cheapest solution seen, returning it once
// open is exhausted.
func MGStar(m maze.Maze, start, end int64, opts ...MGStarOption) (solver.Path, error) {
	o := mgOptions{maze: m, start: start, end: end, heuristic: solver.ZeroHeuristic, weight: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.heuristic == nil {
		o.heuristic = solver.ZeroHeuristic
	}
	if o.pool == nil {
		o.pool = pool.NewHomogeneous[node.Managed[mgScore]](0)
	}
	o.logger = solver.Logger(o.logger)

	return solver.Run(o, runMGStar, []pool.Resetter{o.pool}, o.noCleanup)
}

func runMGStar(o mgOptions) (solver.Path, error) {
	capacity := solver.EstimateCapacity(o.maze, o.start, o.end)
	closed := bitset.New(uint64(capacity))
	closedCount := 0
	open := pqueue.New(lessMG)
	bestCost := make(map[int64]float64, capacity)

	parentOf := func(idx int32) int32 { return o.pool.Get(int(idx)).Parent }
	vertexOf := func(idx int32) int64 { return o.pool.Get(int(idx)).Vertex }

	memUsage := func() int { return open.Len() + closedCount }

	// regressLossy forcibly discards idx — a still-live, not-yet-expanded
	// open entry — under memory pressure, clearing the closed-set
	// membership of every ancestor this frees in turn: the "bitwise
	// regression" that lets a later, cheaper route re-reach those
	// vertices. Walking up only ever finds live ancestors: a node with a
	// live successor can never have been freed already (node.Managed's
	// core invariant, mirrored here instead of reused from node.Expunge
	// because that call has no hook to clear a caller-owned bitset).
	regressLossy := func(idx int32) {
		for idx != node.NoParent {
			n := o.pool.Get(int(idx))
			n.Dead = true
			if n.Successors > 0 {
				return
			}
			if closed.Contains(uint64(n.Vertex)) {
				closed.Erase(uint64(n.Vertex))
				closedCount--
			}
			// The dropped g-cost record must not linger: a later route
			// reaching n.Vertex at the same cost the freed node once held
			// would otherwise be mistaken for non-improving and skipped,
			// even though no open/closed record of that cost survives.
			delete(bestCost, n.Vertex)
			parent := n.Parent
			_ = o.pool.Free(int(idx))
			if parent == node.NoParent {
				return
			}
			pn := o.pool.Get(int(parent))
			if pn.Successors > 0 {
				pn.Successors--
			}
			idx = parent
		}
	}

	worst := func() (*mgItem, bool) {
		snap := open.Snapshot()
		if len(snap) == 0 {
			return nil, false
		}
		w := snap[0]
		for _, it := range snap[1:] {
			if it.f > w.f || (it.f == w.f && it.g > w.g) {
				w = it
			}
		}
		return w, true
	}

	desaturate := func() {
		for o.memoryLimit > 0 && memUsage() > o.memoryLimit {
			w, ok := worst()
			if !ok {
				return
			}
			open.Erase(w.HeapIndex())
			regressLossy(w.idx)
		}
	}

	pushStart := func() {
		idx := node.NewManaged(o.pool, o.start, node.NoParent, mgScore{g: 0, depth: 0})
		bestCost[o.start] = 0
		open.Push(&mgItem{idx: idx, f: o.weight * o.heuristic(o.start), g: 0, heapIdx: -1})
	}
	pushStart()
	desaturate()

	var best solver.Path
	bestG := -1.0

	var scratch []maze.Edge
	for open.Len() > 0 {
		item, _ := open.Pop()
		rec := o.pool.Get(int(item.idx))

		if rec.Vertex == o.end {
			if bestG < 0 || rec.Score.g < bestG {
				bestG = rec.Score.g
				best = solver.ReconstructDepthKnown(parentOf, vertexOf, item.idx, int(rec.Score.depth))
			}
			node.Expunge(o.pool, item.idx)
			if o.memoryLimit <= 0 || memUsage()+1 <= o.memoryLimit {
				pushStart()
				desaturate()
			}
			continue
		}

		// A vertex can sit in open multiple times (a cheaper route found
		// after an earlier, costlier push of the same vertex); the later
		// pop of a stale duplicate contributes nothing and must not be
		// re-expanded.
		if item.g > bestCost[rec.Vertex] {
			node.Expunge(o.pool, item.idx)
			continue
		}

		// Re-expanding an already-closed vertex happens only for a
		// reseeded start (bestCost reset to 0 on every pushStart); guard
		// the counter so that case doesn't double-count closedCount and
		// desync it from the bitset's true population, which would skew
		// desaturate()'s eviction threshold.
		if !closed.Contains(uint64(rec.Vertex)) {
			closed.Emplace(uint64(rec.Vertex))
			closedCount++
		}

		childAdded := false
		scratch = o.maze.Neighbours(rec.Vertex, scratch[:0])
		for _, e := range scratch {
			if closed.Contains(uint64(e.To)) {
				continue
			}
			ng := rec.Score.g + e.Weight
			if bc, ok := bestCost[e.To]; ok && ng >= bc {
				continue
			}
			bestCost[e.To] = ng
			childIdx := node.NewManaged(o.pool, e.To, item.idx, mgScore{g: ng, depth: rec.Score.depth + 1})
			childAdded = true
			open.Push(&mgItem{idx: childIdx, f: ng + o.weight*o.heuristic(e.To), g: ng, heapIdx: -1})
			desaturate()
		}
		if !childAdded {
			node.Expunge(o.pool, item.idx)
		}
	}
	if best != nil {
		return best, nil
	}
	o.logger.Debug("mgstar: no path found", "start", o.start, "end", o.end)
	return nil, nil
}
