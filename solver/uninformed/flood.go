package uninformed

import (
	"log/slog"

	"github.com/katalvlaran/pathmaze/bitset"
	"github.com/katalvlaran/pathmaze/container"
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/solver"
)

// FloodOption configures a Flood/FloodFill query.
type FloodOption func(*floodOptions)

type floodOptions struct {
	maze   maze.Maze
	start  int64
	end    int64
	logger *slog.Logger
}

func (o floodOptions) Bounds() (maze.Maze, int64, int64) { return o.maze, o.start, o.end }

// WithFloodLogger overrides the default *slog.Logger.
func WithFloodLogger(l *slog.Logger) FloodOption { return func(o *floodOptions) { o.logger = l } }

// Flood reports feasibility only: it returns Path{end} if end is
// reachable from start, or nil otherwise — no parent pointers are kept.
// The name distinguishes it from FloodFill only by convention (the
// source pairs "flood" with octile/diagonal neighbours and "floodfill"
// with axis-only ones); both run the identical closed-set reachability
// search here, since neighbour style is a property of the Maze itself
// (Grid's diagonal flag), not of the search.
func Flood(m maze.Maze, start, end int64, opts ...FloodOption) (solver.Path, error) {
	return runFeasibility(m, start, end, opts...)
}

// FloodFill is Flood's axis-only-conventional counterpart; see Flood.
func FloodFill(m maze.Maze, start, end int64, opts ...FloodOption) (solver.Path, error) {
	return runFeasibility(m, start, end, opts...)
}

func runFeasibility(m maze.Maze, start, end int64, opts ...FloodOption) (solver.Path, error) {
	o := floodOptions{maze: m, start: start, end: end}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = solver.Logger(o.logger)
	return solver.Run(o, runFlood, nil, false)
}

func runFlood(o floodOptions) (solver.Path, error) {
	capacity := solver.EstimateCapacity(o.maze, o.start, o.end)
	closed := bitset.New(uint64(capacity))
	queue := container.NewQueue[int64](capacity)

	closed.Emplace(uint64(o.start))
	queue.Push(o.start)

	var scratch []maze.Edge
	for queue.Len() > 0 {
		cur, _ := queue.Pop()
		if cur == o.end {
			return solver.Path{o.end}, nil
		}
		scratch = o.maze.Neighbours(cur, scratch[:0])
		for _, e := range scratch {
			if closed.Contains(uint64(e.To)) {
				continue
			}
			closed.Emplace(uint64(e.To))
			queue.Push(e.To)
		}
	}
	o.logger.Debug("flood: infeasible", "start", o.start, "end", o.end)
	return nil, nil
}
