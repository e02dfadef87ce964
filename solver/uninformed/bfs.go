package uninformed

import (
	"log/slog"

	"github.com/katalvlaran/pathmaze/bitset"
	"github.com/katalvlaran/pathmaze/container"
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/node"
	"github.com/katalvlaran/pathmaze/pool"
	"github.com/katalvlaran/pathmaze/solver"
)

// BFSOption configures a BFS query.
type BFSOption func(*bfsOptions)

type bfsOptions struct {
	maze      maze.Maze
	start     int64
	end       int64
	logger    *slog.Logger
	pool      *pool.Monotonic[node.Unmanaged[int32]]
	noCleanup bool
}

func (o bfsOptions) Bounds() (maze.Maze, int64, int64) { return o.maze, o.start, o.end }

// WithBFSLogger overrides the default *slog.Logger.
func WithBFSLogger(l *slog.Logger) BFSOption { return func(o *bfsOptions) { o.logger = l } }

// WithBFSPool supplies a caller-owned pool instead of a fresh one,
// letting a caller reuse the same arena across repeated queries.
func WithBFSPool(p *pool.Monotonic[node.Unmanaged[int32]]) BFSOption {
	return func(o *bfsOptions) { o.pool = p }
}

// WithBFSNoCleanup skips the façade's post-query pool reset.
func WithBFSNoCleanup(v bool) BFSOption { return func(o *bfsOptions) { o.noCleanup = v } }

// BFS returns the shortest (fewest-edges) path from start to end in m,
// or nil if none exists.
func BFS(m maze.Maze, start, end int64, opts ...BFSOption) (solver.Path, error) {
	o := bfsOptions{maze: m, start: start, end: end}
	for _, opt := range opts {
		opt(&o)
	}
	if o.pool == nil {
		o.pool = pool.NewMonotonic[node.Unmanaged[int32]](0)
	}
	o.logger = solver.Logger(o.logger)

	return solver.Run(o, runBFS, []pool.Resetter{o.pool}, o.noCleanup)
}

func runBFS(o bfsOptions) (solver.Path, error) {
	capacity := solver.EstimateCapacity(o.maze, o.start, o.end)
	closed := bitset.New(uint64(capacity))
	queue := container.NewQueue[int32](capacity)

	startIdx, startNode := o.pool.Alloc()
	node.NewUnmanaged(startNode, o.start, node.NoParent, 0)
	closed.Emplace(uint64(o.start))
	queue.Push(int32(startIdx))

	var scratch []maze.Edge
	for queue.Len() > 0 {
		curIdx, _ := queue.Pop()
		cur := o.pool.Get(int(curIdx))
		if cur.Vertex == o.end {
			return solver.ReconstructDepthKnown(o.parentOf(), o.vertexOf(), curIdx, int(cur.Score)), nil
		}
		scratch = o.maze.Neighbours(cur.Vertex, scratch[:0])
		for _, e := range scratch {
			if closed.Contains(uint64(e.To)) {
				continue
			}
			closed.Emplace(uint64(e.To))
			childIdx, child := o.pool.Alloc()
			node.NewUnmanaged(child, e.To, curIdx, cur.Score+1)
			queue.Push(int32(childIdx))
		}
	}
	o.logger.Debug("bfs: no path found", "start", o.start, "end", o.end)
	return nil, nil
}

func (o bfsOptions) parentOf() solver.ParentOf {
	return func(idx int32) int32 { return o.pool.Get(int(idx)).Parent }
}

func (o bfsOptions) vertexOf() solver.VertexOf {
	return func(idx int32) int64 { return o.pool.Get(int(idx)).Vertex }
}
