package iterdeep

import (
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/solver"
)

// IDDFSOption configures an IDDFS/EIDDFS query.
type IDDFSOption func(*iddfsOptions)

type iddfsOptions struct {
	maze  maze.Maze
	start int64
	end   int64
}

func (o iddfsOptions) Bounds() (maze.Maze, int64, int64) { return o.maze, o.start, o.end }

func newIDDFSOptions(m maze.Maze, start, end int64, opts []IDDFSOption) iddfsOptions {
	o := iddfsOptions{maze: m, start: start, end: end}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// scoreDepth ignores the heuristic entirely, so the bound-raising loop in
// run simply raises the depth limit by whatever the maze's own edge
// weights produce — one unit per edge in a unit-cost maze, matching
// classic IDDFS's integer depth limit.
func scoreDepth(g, _ float64) float64 { return g }

// IDDFS is depth-first search under a depth limit raised by one pass at
// a time: unit-cost depth-limited search, reusing IDA*'s bound-raising
// engine with the heuristic term dropped.
func IDDFS(m maze.Maze, start, end int64, opts ...IDDFSOption) (solver.Path, error) {
	o := newIDDFSOptions(m, start, end, opts)
	return solver.Run(o, func(o iddfsOptions) (solver.Path, error) {
		return run(o.maze, o.start, o.end, solver.ZeroHeuristic, scoreDepth, false)
	}, nil, true)
}

// EIDDFS is IDDFS augmented with the same per-pass transposition table
// EIDA* uses.
func EIDDFS(m maze.Maze, start, end int64, opts ...IDDFSOption) (solver.Path, error) {
	o := newIDDFSOptions(m, start, end, opts)
	return solver.Run(o, func(o iddfsOptions) (solver.Path, error) {
		return run(o.maze, o.start, o.end, solver.ZeroHeuristic, scoreDepth, true)
	}, nil, true)
}
