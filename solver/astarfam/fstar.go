package astarfam

import (
	"log/slog"
	"math"
	"sort"

	"github.com/katalvlaran/pathmaze/bitset"
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/node"
	"github.com/katalvlaran/pathmaze/pool"
	"github.com/katalvlaran/pathmaze/solver"
)

type fstarItem struct {
	idx  int32
	f, g float64
}

// fstarLess orders the same way A*'s heap does: lower f wins, ties
// broken toward higher g.
func fstarLess(a, b fstarItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.g > b.g
}

func insertSortedFStar(buf []fstarItem, item fstarItem) []fstarItem {
	i := sort.Search(len(buf), func(i int) bool { return !fstarLess(buf[i], item) })
	buf = append(buf, fstarItem{})
	copy(buf[i+1:], buf[i:])
	buf[i] = item
	return buf
}

// FStarOption configures an F* query.
type FStarOption func(*fstarOptions)

type fstarOptions struct {
	maze      maze.Maze
	start     int64
	end       int64
	heuristic Heuristic
	weight    float64
	logger    *slog.Logger
	pool      *pool.Homogeneous[node.Managed[float64]]
	noCleanup bool
}

func (o fstarOptions) Bounds() (maze.Maze, int64, int64) { return o.maze, o.start, o.end }

// WithFStarHeuristic sets the per-vertex heuristic-to-goal function.
func WithFStarHeuristic(h Heuristic) FStarOption { return func(o *fstarOptions) { o.heuristic = h } }

// WithFStarWeight scales the heuristic term.
func WithFStarWeight(w float64) FStarOption { return func(o *fstarOptions) { o.weight = w } }

// WithFStarLogger overrides the default *slog.Logger.
func WithFStarLogger(l *slog.Logger) FStarOption { return func(o *fstarOptions) { o.logger = l } }

// WithFStarPool supplies a caller-owned pool instead of a fresh one.
func WithFStarPool(p *pool.Homogeneous[node.Managed[float64]]) FStarOption {
	return func(o *fstarOptions) { o.pool = p }
}

// WithFStarNoCleanup skips the façade's post-query pool reset.
func WithFStarNoCleanup(v bool) FStarOption { return func(o *fstarOptions) { o.noCleanup = v } }

// FStar runs the double-buffered threshold-sweep search: instead of a
// single priority queue, it repeatedly sweeps a whole "open" bucket at
// threshold T into a "next" bucket, raising T to the smallest f that
// exceeded it. Per §4.6 this relies on neighbour enumeration yielding
// monotonically increasing f so the inner per-node scan can stop at the
// first over-threshold neighbour — inherited as-is from the source,
// which flags the same reliance.
func FStar(m maze.Maze, start, end int64, opts ...FStarOption) (solver.Path, error) {
	o := fstarOptions{maze: m, start: start, end: end, heuristic: zeroHeuristic, weight: 1}
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

	return solver.Run(o, runFStar, []pool.Resetter{o.pool}, o.noCleanup)
}

func runFStar(o fstarOptions) (solver.Path, error) {
	capacity := solver.EstimateCapacity(o.maze, o.start, o.end)
	closed := bitset.New(uint64(capacity))
	bestG := make(map[int64]float64, capacity)

	parentOf := func(idx int32) int32 { return o.pool.Get(int(idx)).Parent }
	vertexOf := func(idx int32) int64 { return o.pool.Get(int(idx)).Vertex }

	startIdx := node.NewManaged(o.pool, o.start, node.NoParent, 0.0)
	bestG[o.start] = 0
	open := []fstarItem{{idx: startIdx, f: o.weight * o.heuristic(o.start), g: 0}}
	threshold := open[0].f

	var scratch []maze.Edge
	for len(open) > 0 {
		var next []fstarItem
		nextThreshold := math.Inf(1)

		for _, item := range open {
			rec := o.pool.Get(int(item.idx))
			if closed.Contains(uint64(rec.Vertex)) {
				continue
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
				nf := ng + o.weight*o.heuristic(e.To)
				if nf > threshold {
					if nf < nextThreshold {
						nextThreshold = nf
					}
					break
				}
				bestG[e.To] = ng
				childIdx := node.NewManaged(o.pool, e.To, item.idx, ng)
				childAdded = true
				next = insertSortedFStar(next, fstarItem{idx: childIdx, f: nf, g: ng})
			}
			if !childAdded {
				node.Expunge(o.pool, item.idx)
			}
		}
		open = next
		threshold = nextThreshold
	}
	o.logger.Debug("fstar: no path found", "start", o.start, "end", o.end)
	return nil, nil
}
