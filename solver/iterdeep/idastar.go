package iterdeep

import (
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/solver"
)

// IDAStarOption configures an IDA*/EIDA* query.
type IDAStarOption func(*idaStarOptions)

type idaStarOptions struct {
	maze      maze.Maze
	start     int64
	end       int64
	heuristic solver.Heuristic
	weight    float64
}

func (o idaStarOptions) Bounds() (maze.Maze, int64, int64) { return o.maze, o.start, o.end }

// WithIDAStarHeuristic sets the per-vertex heuristic-to-goal function.
func WithIDAStarHeuristic(h solver.Heuristic) IDAStarOption {
	return func(o *idaStarOptions) { o.heuristic = h }
}

// WithIDAStarWeight scales the heuristic term (score = g + weight*h).
func WithIDAStarWeight(w float64) IDAStarOption { return func(o *idaStarOptions) { o.weight = w } }

func newIDAStarOptions(m maze.Maze, start, end int64, opts []IDAStarOption) idaStarOptions {
	o := idaStarOptions{maze: m, start: start, end: end, heuristic: solver.ZeroHeuristic, weight: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.heuristic == nil {
		o.heuristic = solver.ZeroHeuristic
	}
	return o
}

// IDAStar is iterative-deepening A*: repeated bounded depth-first passes,
// the bound raised each iteration to the smallest score seen over the
// previous bound, using an explicit DFS stack with a linear open-path
// scan in place of a closed set or node allocator (IDA* paths are short
// enough that this is cheap, per §4.6).
func IDAStar(m maze.Maze, start, end int64, opts ...IDAStarOption) (solver.Path, error) {
	o := newIDAStarOptions(m, start, end, opts)
	return solver.Run(o, func(o idaStarOptions) (solver.Path, error) {
		score := func(g, h float64) float64 { return g + o.weight*h }
		return run(o.maze, o.start, o.end, o.heuristic, score, false)
	}, nil, true)
}

// EIDAStar is IDA* augmented with a per-pass transposition table: a
// vertex already seen this pass at an equal-or-better score is not
// re-expanded, trading memory for fewer redundant re-explorations of the
// same index along different paths.
func EIDAStar(m maze.Maze, start, end int64, opts ...IDAStarOption) (solver.Path, error) {
	o := newIDAStarOptions(m, start, end, opts)
	return solver.Run(o, func(o idaStarOptions) (solver.Path, error) {
		score := func(g, h float64) float64 { return g + o.weight*h }
		return run(o.maze, o.start, o.end, o.heuristic, score, true)
	}, nil, true)
}
