package bounded

import (
	"log/slog"
	"math"
	"sort"

	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/node"
	"github.com/katalvlaran/pathmaze/solver"
)

// smaRecord is SMA*'s node representation: a plain, individually
// erasable map entry rather than a pool.Homogeneous slot, per §4.6's
// "parent pointers are indices so nodes are relocatable and erasable
// from all_nodes" — a homogeneous arena's slots are only ever recycled
// in bulk or via the managed-node successor-count protocol, neither of
// which fits a structure that must erase an arbitrary live entry the
// instant memory pressure demands it.
type smaRecord struct {
	vertex     int64
	parent     int32
	g          float64
	f          float64
	depth      int32
	children   []int32
	neighbours []maze.Edge
	nextIdx    int
}

// SMAStarOption configures an SMA* query.
type SMAStarOption func(*smaOptions)

type smaOptions struct {
	maze        maze.Maze
	start       int64
	end         int64
	heuristic   solver.Heuristic
	weight      float64
	memoryLimit int
	logger      *slog.Logger
}

func (o smaOptions) Bounds() (maze.Maze, int64, int64) { return o.maze, o.start, o.end }

// WithSMAStarHeuristic sets the per-vertex heuristic-to-goal function.
func WithSMAStarHeuristic(h solver.Heuristic) SMAStarOption {
	return func(o *smaOptions) { o.heuristic = h }
}

// WithSMAStarWeight scales the heuristic term (fScore = g + weight*h).
func WithSMAStarWeight(w float64) SMAStarOption { return func(o *smaOptions) { o.weight = w } }

// WithSMAStarMemoryLimit caps all_nodes.size + open.size (§8's scenario
// 5 instrumentation target). A non-positive limit (the default) disables
// the bound entirely — SMA* then behaves like ordinary A*.
func WithSMAStarMemoryLimit(n int) SMAStarOption { return func(o *smaOptions) { o.memoryLimit = n } }

// WithSMAStarLogger overrides the default *slog.Logger.
func WithSMAStarLogger(l *slog.Logger) SMAStarOption { return func(o *smaOptions) { o.logger = l } }

// SMAStar is memory-bounded A*: when all_nodes.size+open.size would
// exceed the configured limit, the worst (highest f) open entry is
// dropped and its score backed up through its parent chain, trading
// optimality for a hard ceiling on memory use. With no limit configured
// it is plain A* over a map-backed node table.
func SMAStar(m maze.Maze, start, end int64, opts ...SMAStarOption) (solver.Path, error) {
	o := smaOptions{maze: m, start: start, end: end, heuristic: solver.ZeroHeuristic, weight: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.heuristic == nil {
		o.heuristic = solver.ZeroHeuristic
	}
	o.logger = solver.Logger(o.logger)

	return solver.Run(o, runSMAStar, nil, true)
}

func runSMAStar(o smaOptions) (solver.Path, error) {
	allNodes := make(map[int32]*smaRecord)
	var openIDs []int32
	var nextID int32

	less := func(a, b *smaRecord) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.g < b.g // SMA*/MG* tie-break toward lower g, per §4.6
	}
	insertOpen := func(id int32) {
		rec := allNodes[id]
		i := sort.Search(len(openIDs), func(i int) bool { return !less(allNodes[openIDs[i]], rec) })
		openIDs = append(openIDs, 0)
		copy(openIDs[i+1:], openIDs[i:])
		openIDs[i] = id
	}
	removeOpenAt := func(i int) int32 {
		id := openIDs[i]
		openIDs = append(openIDs[:i], openIDs[i+1:]...)
		return id
	}
	isAncestor := func(id int32, v int64) bool {
		for id != node.NoParent {
			rec := allNodes[id]
			if rec.vertex == v {
				return true
			}
			id = rec.parent
		}
		return false
	}
	memUsage := func() int { return len(allNodes) + len(openIDs) }

	removeChild := func(parent int32, child int32) {
		p, ok := allNodes[parent]
		if !ok {
			return
		}
		for i, c := range p.children {
			if c == child {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}

	// regress walks id's ancestor chain exactly like node.Expunge/reclaim
	// does over a pool.Homogeneous arena (see node/managed.go): a node with no
	// live children and no ungenerated neighbours left is "complete" per
	// §4.6 and is deleted outright — its contribution to a live ancestor
	// is indistinguishable from an ∞ fScore, so dropping it rather than
	// tracking a separate forgotten-floor value is sufficient. A node
	// that still has live children instead has its fScore backed up to
	// the minimum over them, and propagation continues upward only while
	// that value actually changes. Ancestors reached this way are never
	// themselves in openIDs (an ancestor was, by construction, already
	// popped for expansion), so no open-set resort is ever needed here.
	var regress func(id int32)
	regress = func(id int32) {
		for id != node.NoParent {
			rec, ok := allNodes[id]
			if !ok {
				return
			}
			if len(rec.children) == 0 && rec.nextIdx >= len(rec.neighbours) {
				parent := rec.parent
				delete(allNodes, id)
				removeChild(parent, id)
				id = parent
				continue
			}
			if len(rec.children) == 0 {
				return
			}
			best := math.Inf(1)
			for _, c := range rec.children {
				if child, ok := allNodes[c]; ok && child.f < best {
					best = child.f
				}
			}
			if best == rec.f {
				return
			}
			rec.f = best
			id = rec.parent
		}
	}

	removeWorst := func() {
		if len(openIDs) == 0 {
			return
		}
		id := removeOpenAt(len(openIDs) - 1)
		rec := allNodes[id]
		delete(allNodes, id)
		regress(rec.parent)
	}

	desaturate := func() {
		for o.memoryLimit > 0 && memUsage() > o.memoryLimit && len(openIDs) > 0 {
			removeWorst()
		}
	}

	parentOf := func(id int32) int32 { return allNodes[id].parent }
	vertexOf := func(id int32) int64 { return allNodes[id].vertex }

	nextID++
	startID := nextID
	allNodes[startID] = &smaRecord{vertex: o.start, parent: node.NoParent, g: 0, f: o.weight * o.heuristic(o.start)}
	insertOpen(startID)
	desaturate()

	for len(openIDs) > 0 {
		id := removeOpenAt(0)
		rec := allNodes[id]
		if rec.vertex == o.end {
			return solver.ReconstructDepthKnown(parentOf, vertexOf, id, int(rec.depth)), nil
		}

		if rec.neighbours == nil {
			rec.neighbours = o.maze.Neighbours(rec.vertex, nil)
		}
		for rec.nextIdx < len(rec.neighbours) {
			e := rec.neighbours[rec.nextIdx]
			rec.nextIdx++
			if isAncestor(id, e.To) {
				continue
			}
			ng := rec.g + e.Weight
			nf := math.Max(ng+o.weight*o.heuristic(e.To), rec.f) // SMA*'s f is monotone along any path
			nextID++
			childID := nextID
			allNodes[childID] = &smaRecord{vertex: e.To, parent: id, g: ng, f: nf, depth: rec.depth + 1}
			rec.children = append(rec.children, childID)
			insertOpen(childID)
			desaturate() // may itself evict the child just added, or any other open entry
		}
		if len(rec.children) == 0 {
			// rec ended this expansion with no surviving child — either
			// it produced none, or every one it produced was since
			// desaturated away. Either way it is "complete" per §4.6,
			// and regress reclaims it (and any now-childless ancestor
			// chain) outright rather than tracking an explicit ∞ fScore.
			regress(id)
		}
	}
	o.logger.Debug("smastar: no path found", "start", o.start, "end", o.end)
	return nil, nil
}
