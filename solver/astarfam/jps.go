package astarfam

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/pathmaze/bitset"
	"github.com/katalvlaran/pathmaze/coord"
	"github.com/katalvlaran/pathmaze/heuristic"
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/node"
	"github.com/katalvlaran/pathmaze/pool"
	"github.com/katalvlaran/pathmaze/pqueue"
	"github.com/katalvlaran/pathmaze/solver"
)

// ErrJPSRequiresGrid2D is returned when JPS is asked to run on a grid
// whose arity isn't 2. The source enforces "maze is a 2D grid" with a
// compile-time static_assert; Go's type system already rules out a Graph
// at compile time (JPS takes a *maze.Grid[W], not a maze.Maze), so only
// the dimensionality check needs a runtime guard.
var ErrJPSRequiresGrid2D = errors.New("jps: grid must be 2-dimensional")

const sqrt2 = math.Sqrt2

type jpsItem struct {
	idx     int32
	f, g    float64
	heapIdx int
}

func (j *jpsItem) HeapIndex() int     { return j.heapIdx }
func (j *jpsItem) SetHeapIndex(i int) { j.heapIdx = i }

func lessJPS(a, b *jpsItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.g > b.g
}

// the eight compass directions; ZZ (the start node) tries all of them on a
// diagonal grid. axisDirections is the subset used on a non-diagonal one.
var jpsDirections = [8][2]int32{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

var jpsAxisDirections = [4][2]int32{
	{0, -1}, {-1, 0}, {1, 0}, {0, 1},
}

// JPSOption configures a JPS query.
type JPSOption func(*jpsOptions)

type jpsOptions struct {
	start, end int64
	heuristic  heuristic.Func
	logger     *slog.Logger
	noCleanup  bool
}

// WithJPSHeuristic overrides the default octile heuristic.
func WithJPSHeuristic(h heuristic.Func) JPSOption { return func(o *jpsOptions) { o.heuristic = h } }

// WithJPSLogger overrides the default *slog.Logger.
func WithJPSLogger(l *slog.Logger) JPSOption { return func(o *jpsOptions) { o.logger = l } }

// WithJPSNoCleanup skips the façade's post-query pool reset.
func WithJPSNoCleanup(v bool) JPSOption { return func(o *jpsOptions) { o.noCleanup = v } }

type jpsQuery struct {
	m          maze.Maze
	start, end int64
}

func (q jpsQuery) Bounds() (maze.Maze, int64, int64) { return q.m, q.start, q.end }

// JPS finds the minimum-cost path between two cells of a uniform-cost 2D
// grid using jump-point search: instead of expanding every cell, it
// "jumps" along a direction until a forced neighbour, the goal, or a wall
// is found. The returned path is the full cell-by-cell sequence (jump
// points are expanded back into single steps) so it satisfies the same
// "every adjacent pair is an active neighbour" invariant every other
// solver's path does.
func JPS[W comparable](g *maze.Grid[W], start, end int64, opts ...JPSOption) (solver.Path, error) {
	if g.Size().K() != 2 {
		return nil, ErrJPSRequiresGrid2D
	}
	o := jpsOptions{start: start, end: end, heuristic: heuristic.Octile}
	for _, opt := range opts {
		opt(&o)
	}
	if o.heuristic == nil {
		o.heuristic = heuristic.Octile
	}
	o.logger = solver.Logger(o.logger)

	p := pool.NewHomogeneous[node.Managed[float64]](0)
	invoke := func(jpsQuery) (solver.Path, error) { return runJPS(g, o, p) }
	return solver.Run(jpsQuery{m: g, start: start, end: end}, invoke, []pool.Resetter{p}, o.noCleanup)
}

func runJPS[W comparable](g *maze.Grid[W], o jpsOptions, p *pool.Homogeneous[node.Managed[float64]]) (solver.Path, error) {
	size := g.Size()
	xy := func(v int64) (int32, int32) {
		c, _ := coord.ToND(uint64(v), size)
		return int32(c[0]), int32(c[1])
	}
	idx := func(x, y int32) (int64, bool) {
		if x < 0 || y < 0 || uint32(x) >= size[0] || uint32(y) >= size[1] {
			return 0, false
		}
		c, err := coord.To1D(coord.Coord{uint32(x), uint32(y)}, size)
		if err != nil {
			return 0, false
		}
		return int64(c), true
	}
	open := func(x, y int32) bool {
		v, ok := idx(x, y)
		return ok && g.IsActive(v)
	}
	diagonal := g.Diagonal()
	// canStep reports whether a single unit move (dx,dy) from (cx,cy) is a
	// legal step: the destination must be open, and a diagonal move is
	// additionally only legal on a diagonal grid and when both of its
	// axis-aligned components are themselves open (no corner-cutting),
	// mirroring Grid.cornerClear.
	canStep := func(cx, cy, dx, dy int32) bool {
		if !open(cx+dx, cy+dy) {
			return false
		}
		if dx != 0 && dy != 0 {
			return diagonal && open(cx+dx, cy) && open(cx, cy+dy)
		}
		return true
	}
	endX, endY := xy(o.end)
	h := func(v int64) float64 {
		vc, _ := coord.ToND(uint64(v), size)
		ec, _ := coord.ToND(uint64(o.end), size)
		return o.heuristic(vc, ec)
	}

	var jump func(cx, cy, dx, dy int32) (int64, bool)
	jump = func(cx, cy, dx, dy int32) (int64, bool) {
		nx, ny := cx+dx, cy+dy
		if !canStep(cx, cy, dx, dy) {
			return 0, false
		}
		nIdx, _ := idx(nx, ny)
		if nx == endX && ny == endY {
			return nIdx, true
		}
		switch {
		case dx != 0 && dy != 0:
			if (open(nx-dx, ny+dy) && !open(nx-dx, ny)) || (open(nx+dx, ny-dy) && !open(nx, ny-dy)) {
				return nIdx, true
			}
			if _, ok := jump(nx, ny, dx, 0); ok {
				return nIdx, true
			}
			if _, ok := jump(nx, ny, 0, dy); ok {
				return nIdx, true
			}
			return jump(nx, ny, dx, dy)
		case dx != 0:
			if (open(nx, ny+1) && !open(nx-dx, ny+1)) || (open(nx, ny-1) && !open(nx-dx, ny-1)) {
				return nIdx, true
			}
			return jump(nx, ny, dx, 0)
		default:
			if (open(nx+1, ny) && !open(nx+1, ny-dy)) || (open(nx-1, ny) && !open(nx-1, ny-dy)) {
				return nIdx, true
			}
			return jump(nx, ny, 0, dy)
		}
	}

	capacity := solver.EstimateCapacity(g, o.start, o.end)
	closed := bitset.New(uint64(capacity))
	bestG := make(map[int64]float64, capacity)
	openSet := pqueue.New(lessJPS)

	startIdx := node.NewManaged(p, o.start, node.NoParent, 0.0)
	bestG[o.start] = 0
	openSet.Push(&jpsItem{idx: startIdx, f: h(o.start), g: 0, heapIdx: -1})

	parentOf := func(i int32) int32 { return p.Get(int(i)).Parent }
	vertexOf := func(i int32) int64 { return p.Get(int(i)).Vertex }

	for openSet.Len() > 0 {
		item, _ := openSet.Pop()
		rec := p.Get(int(item.idx))
		if closed.Contains(uint64(rec.Vertex)) || item.g > bestG[rec.Vertex] {
			continue
		}
		closed.Emplace(uint64(rec.Vertex))
		if rec.Vertex == o.end {
			jumpPath := solver.ReconstructRecursive(parentOf, vertexOf, item.idx)
			return expandJPSSegments(idx, xy, jumpPath)
		}

		cx, cy := xy(rec.Vertex)
		childAdded := false
		dirs := jpsDirections[:]
		if !diagonal {
			dirs = jpsAxisDirections[:]
		}
		for _, d := range dirs {
			targetIdx, ok := jump(cx, cy, d[0], d[1])
			if !ok {
				continue
			}
			if closed.Contains(uint64(targetIdx)) {
				continue
			}
			tx, ty := xy(targetIdx)
			n := int32(math.Max(math.Abs(float64(tx-cx)), math.Abs(float64(ty-cy))))
			var step float64 = 1
			if d[0] != 0 && d[1] != 0 {
				step = sqrt2
			}
			ng := item.g + float64(n)*step
			if bg, ok := bestG[targetIdx]; ok && ng >= bg {
				continue
			}
			bestG[targetIdx] = ng
			childIdx := node.NewManaged(p, targetIdx, item.idx, ng)
			childAdded = true
			openSet.Push(&jpsItem{idx: childIdx, f: ng + h(targetIdx), g: ng, heapIdx: -1})
		}
		if !childAdded {
			node.Expunge(p, item.idx)
		}
	}
	o.logger.Debug("jps: no path found", "start", o.start, "end", o.end)
	return nil, nil
}

// expandJPSSegments turns a chain of jump points into the full
// cell-by-cell sequence, since consecutive jump points lie on a straight
// line but are not themselves adjacent.
func expandJPSSegments(idx func(x, y int32) (int64, bool), xy func(v int64) (int32, int32), jumpPath solver.Path) (solver.Path, error) {
	if len(jumpPath) == 0 {
		return nil, nil
	}
	out := solver.Path{jumpPath[0]}
	for i := 0; i+1 < len(jumpPath); i++ {
		fx, fy := xy(jumpPath[i])
		tx, ty := xy(jumpPath[i+1])
		dx, dy := sign32(tx-fx), sign32(ty-fy)
		cx, cy := fx, fy
		for cx != tx || cy != ty {
			cx += dx
			cy += dy
			v, ok := idx(cx, cy)
			if !ok {
				return nil, errors.New("jps: segment expansion left the grid")
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func sign32(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
