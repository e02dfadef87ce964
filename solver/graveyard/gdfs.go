package graveyard

import (
	"log/slog"

	"github.com/katalvlaran/pathmaze/bitset"
	"github.com/katalvlaran/pathmaze/container"
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/node"
	"github.com/katalvlaran/pathmaze/pool"
	"github.com/katalvlaran/pathmaze/solver"
)

// GDFSOption configures a GDFS query.
type GDFSOption func(*gdfsOptions)

type gdfsOptions struct {
	maze      maze.Maze
	start     int64
	end       int64
	logger    *slog.Logger
	pool      *pool.Homogeneous[node.Managed[struct{}]]
	noCleanup bool
}

func (o gdfsOptions) Bounds() (maze.Maze, int64, int64) { return o.maze, o.start, o.end }

// WithGDFSLogger overrides the default *slog.Logger.
func WithGDFSLogger(l *slog.Logger) GDFSOption { return func(o *gdfsOptions) { o.logger = l } }

// WithGDFSPool supplies a caller-owned pool instead of a fresh one.
func WithGDFSPool(p *pool.Homogeneous[node.Managed[struct{}]]) GDFSOption {
	return func(o *gdfsOptions) { o.pool = p }
}

// WithGDFSNoCleanup skips the façade's post-query pool reset.
func WithGDFSNoCleanup(v bool) GDFSOption { return func(o *gdfsOptions) { o.noCleanup = v } }

// GDFS is depth-first search over node.Managed records with the
// expunge-on-dead-end pattern, sharing GBFS's shape but for a LIFO
// stack. Like plain DFS, not optimality-preserving.
func GDFS(m maze.Maze, start, end int64, opts ...GDFSOption) (solver.Path, error) {
	o := gdfsOptions{maze: m, start: start, end: end}
	for _, opt := range opts {
		opt(&o)
	}
	if o.pool == nil {
		o.pool = pool.NewHomogeneous[node.Managed[struct{}]](0)
	}
	o.logger = solver.Logger(o.logger)

	return solver.Run(o, runGDFS, []pool.Resetter{o.pool}, o.noCleanup)
}

func runGDFS(o gdfsOptions) (solver.Path, error) {
	capacity := solver.EstimateCapacity(o.maze, o.start, o.end)
	closed := bitset.New(uint64(capacity))
	stack := container.NewStack[int32](capacity)

	startIdx := node.NewManaged(o.pool, o.start, node.NoParent, struct{}{})
	closed.Emplace(uint64(o.start))
	stack.Push(startIdx)

	parentOf := func(idx int32) int32 { return o.pool.Get(int(idx)).Parent }
	vertexOf := func(idx int32) int64 { return o.pool.Get(int(idx)).Vertex }

	var scratch []maze.Edge
	for stack.Len() > 0 {
		curIdx, _ := stack.Pop()
		cur := o.pool.Get(int(curIdx))
		if cur.Vertex == o.end {
			return solver.ReconstructRecursive(parentOf, vertexOf, curIdx), nil
		}

		childAdded := false
		scratch = o.maze.Neighbours(cur.Vertex, scratch[:0])
		for _, e := range scratch {
			if closed.Contains(uint64(e.To)) {
				continue
			}
			closed.Emplace(uint64(e.To))
			childIdx := node.NewManaged(o.pool, e.To, curIdx, struct{}{})
			childAdded = true
			stack.Push(childIdx)
		}
		if !childAdded {
			node.Expunge(o.pool, curIdx)
		}
	}
	o.logger.Debug("gdfs: no path found", "start", o.start, "end", o.end)
	return nil, nil
}
