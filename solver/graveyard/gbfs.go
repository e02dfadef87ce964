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

// GBFSOption configures a GBFS query.
type GBFSOption func(*gbfsOptions)

type gbfsOptions struct {
	maze               maze.Maze
	start              int64
	end                int64
	reverseEquivalence bool
	logger             *slog.Logger
	pool               *pool.Homogeneous[node.Managed[int32]]
	noCleanup          bool
}

func (o gbfsOptions) Bounds() (maze.Maze, int64, int64) { return o.maze, o.start, o.end }

// WithGBFSReverseEquivalence swaps start/end internally before searching
// and reconstructs without reversing the walk — valid whenever the maze's
// edges are symmetric (an undirected Graph, or any Grid), since a
// breadth-first search rooted at end and one rooted at start explore the
// same component in the same shape.
func WithGBFSReverseEquivalence(v bool) GBFSOption {
	return func(o *gbfsOptions) { o.reverseEquivalence = v }
}

// WithGBFSLogger overrides the default *slog.Logger.
func WithGBFSLogger(l *slog.Logger) GBFSOption { return func(o *gbfsOptions) { o.logger = l } }

// WithGBFSPool supplies a caller-owned pool instead of a fresh one.
func WithGBFSPool(p *pool.Homogeneous[node.Managed[int32]]) GBFSOption {
	return func(o *gbfsOptions) { o.pool = p }
}

// WithGBFSNoCleanup skips the façade's post-query pool reset.
func WithGBFSNoCleanup(v bool) GBFSOption { return func(o *gbfsOptions) { o.noCleanup = v } }

// GBFS is breadth-first search over node.Managed records with the
// expunge-on-dead-end pattern: a vertex whose expansion adds no new
// child is Expunge'd immediately rather than waiting for the façade's
// bulk pool reset.
func GBFS(m maze.Maze, start, end int64, opts ...GBFSOption) (solver.Path, error) {
	o := gbfsOptions{maze: m, start: start, end: end}
	for _, opt := range opts {
		opt(&o)
	}
	if o.pool == nil {
		o.pool = pool.NewHomogeneous[node.Managed[int32]](0)
	}
	o.logger = solver.Logger(o.logger)

	return solver.Run(o, runGBFS, []pool.Resetter{o.pool}, o.noCleanup)
}

func runGBFS(o gbfsOptions) (solver.Path, error) {
	searchStart, searchEnd := o.start, o.end
	if o.reverseEquivalence {
		searchStart, searchEnd = o.end, o.start
	}

	capacity := solver.EstimateCapacity(o.maze, searchStart, searchEnd)
	closed := bitset.New(uint64(capacity))
	queue := container.NewQueue[int32](capacity)

	startIdx := node.NewManaged(o.pool, searchStart, node.NoParent, int32(0))
	closed.Emplace(uint64(searchStart))
	queue.Push(startIdx)

	parentOf := func(idx int32) int32 { return o.pool.Get(int(idx)).Parent }
	vertexOf := func(idx int32) int64 { return o.pool.Get(int(idx)).Vertex }

	var scratch []maze.Edge
	for queue.Len() > 0 {
		curIdx, _ := queue.Pop()
		cur := o.pool.Get(int(curIdx))
		if cur.Vertex == searchEnd {
			if o.reverseEquivalence {
				return solver.ReconstructNoReverse(parentOf, vertexOf, curIdx), nil
			}
			return solver.ReconstructRecursive(parentOf, vertexOf, curIdx), nil
		}

		childAdded := false
		scratch = o.maze.Neighbours(cur.Vertex, scratch[:0])
		for _, e := range scratch {
			if closed.Contains(uint64(e.To)) {
				continue
			}
			closed.Emplace(uint64(e.To))
			childIdx := node.NewManaged(o.pool, e.To, curIdx, cur.Score+1)
			childAdded = true
			queue.Push(childIdx)
		}
		if !childAdded {
			node.Expunge(o.pool, curIdx)
		}
	}
	o.logger.Debug("gbfs: no path found", "start", o.start, "end", o.end)
	return nil, nil
}
