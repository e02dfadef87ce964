package iterdeep

import (
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/solver"
)

// IDBestFirstOption configures an ID-best-first/EID-best-first query.
type IDBestFirstOption func(*idBestFirstOptions)

type idBestFirstOptions struct {
	maze      maze.Maze
	start     int64
	end       int64
	heuristic solver.Heuristic
}

func (o idBestFirstOptions) Bounds() (maze.Maze, int64, int64) { return o.maze, o.start, o.end }

// WithIDBestFirstHeuristic sets the per-vertex heuristic-to-goal function.
func WithIDBestFirstHeuristic(h solver.Heuristic) IDBestFirstOption {
	return func(o *idBestFirstOptions) { o.heuristic = h }
}

func newIDBestFirstOptions(m maze.Maze, start, end int64, opts []IDBestFirstOption) idBestFirstOptions {
	o := idBestFirstOptions{maze: m, start: start, end: end, heuristic: solver.ZeroHeuristic}
	for _, opt := range opts {
		opt(&o)
	}
	if o.heuristic == nil {
		o.heuristic = solver.ZeroHeuristic
	}
	return o
}

// scoreHeuristicOnly ignores g: the bound compares purely on h, the
// "ignore accumulated cost, just trust the estimate" greedy analogue to
// IDA*'s g+h.
func scoreHeuristicOnly(_, h float64) float64 { return h }

// IDBestFirst is iterative-deepening best-first search: IDA*'s
// bound-raising engine with the score function swapped to pure h,
// trading IDA*'s optimality guarantee for greedier, often shallower
// exploration — same trade G-best-first makes over G*.
func IDBestFirst(m maze.Maze, start, end int64, opts ...IDBestFirstOption) (solver.Path, error) {
	o := newIDBestFirstOptions(m, start, end, opts)
	return solver.Run(o, func(o idBestFirstOptions) (solver.Path, error) {
		return run(o.maze, o.start, o.end, o.heuristic, scoreHeuristicOnly, false)
	}, nil, true)
}

// EIDBestFirst is IDBestFirst augmented with the same per-pass
// transposition table EIDA*/EIDDFS use.
func EIDBestFirst(m maze.Maze, start, end int64, opts ...IDBestFirstOption) (solver.Path, error) {
	o := newIDBestFirstOptions(m, start, end, opts)
	return solver.Run(o, func(o idBestFirstOptions) (solver.Path, error) {
		return run(o.maze, o.start, o.end, o.heuristic, scoreHeuristicOnly, true)
	}, nil, true)
}
