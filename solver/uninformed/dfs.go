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

// DFSOption configures a DFS query.
type DFSOption func(*dfsOptions)

type dfsOptions struct {
	maze      maze.Maze
	start     int64
	end       int64
	logger    *slog.Logger
	pool      *pool.Monotonic[node.Unmanaged[int32]]
	noCleanup bool
}

func (o dfsOptions) Bounds() (maze.Maze, int64, int64) { return o.maze, o.start, o.end }

// WithDFSLogger overrides the default *slog.Logger.
func WithDFSLogger(l *slog.Logger) DFSOption { return func(o *dfsOptions) { o.logger = l } }

// WithDFSPool supplies a caller-owned pool instead of a fresh one.
func WithDFSPool(p *pool.Monotonic[node.Unmanaged[int32]]) DFSOption {
	return func(o *dfsOptions) { o.pool = p }
}

// WithDFSNoCleanup skips the façade's post-query pool reset.
func WithDFSNoCleanup(v bool) DFSOption { return func(o *dfsOptions) { o.noCleanup = v } }

// DFS returns *a* path from start to end in m, not necessarily shortest,
// or nil if none exists.
func DFS(m maze.Maze, start, end int64, opts ...DFSOption) (solver.Path, error) {
	o := dfsOptions{maze: m, start: start, end: end}
	for _, opt := range opts {
		opt(&o)
	}
	if o.pool == nil {
		o.pool = pool.NewMonotonic[node.Unmanaged[int32]](0)
	}
	o.logger = solver.Logger(o.logger)

	return solver.Run(o, runDFS, []pool.Resetter{o.pool}, o.noCleanup)
}

func runDFS(o dfsOptions) (solver.Path, error) {
	capacity := solver.EstimateCapacity(o.maze, o.start, o.end)
	closed := bitset.New(uint64(capacity))
	stack := container.NewStack[int32](capacity)

	startIdx, startNode := o.pool.Alloc()
	node.NewUnmanaged(startNode, o.start, node.NoParent, 0)
	closed.Emplace(uint64(o.start))
	stack.Push(int32(startIdx))

	var scratch []maze.Edge
	for stack.Len() > 0 {
		curIdx, _ := stack.Pop()
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
			stack.Push(int32(childIdx))
		}
	}
	o.logger.Debug("dfs: no path found", "start", o.start, "end", o.end)
	return nil, nil
}

func (o dfsOptions) parentOf() solver.ParentOf {
	return func(idx int32) int32 { return o.pool.Get(int(idx)).Parent }
}

func (o dfsOptions) vertexOf() solver.VertexOf {
	return func(idx int32) int64 { return o.pool.Get(int(idx)).Vertex }
}
