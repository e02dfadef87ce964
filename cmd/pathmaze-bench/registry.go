package main

import (
	"fmt"

	"github.com/katalvlaran/pathmaze/heuristic"
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/solver"
	"github.com/katalvlaran/pathmaze/solver/astarfam"
	"github.com/katalvlaran/pathmaze/solver/bounded"
	"github.com/katalvlaran/pathmaze/solver/graveyard"
	"github.com/katalvlaran/pathmaze/solver/iterdeep"
	"github.com/katalvlaran/pathmaze/solver/uninformed"
)

// solverFunc is the common shape every registry entry is adapted to,
// regardless of how many options the underlying kernel actually takes.
// Kernels with no heuristic (BFS/DFS/Dijkstra/Flood/GBFS/GDFS/IDDFS/
// EIDDFS) simply ignore the h parameter.
type solverFunc func(m maze.Maze, start, end int64, h solver.Heuristic) (solver.Path, error)

var registry = map[string]solverFunc{
	"bfs":      func(m maze.Maze, s, e int64, _ solver.Heuristic) (solver.Path, error) { return uninformed.BFS(m, s, e) },
	"dfs":      func(m maze.Maze, s, e int64, _ solver.Heuristic) (solver.Path, error) { return uninformed.DFS(m, s, e) },
	"dijkstra": func(m maze.Maze, s, e int64, _ solver.Heuristic) (solver.Path, error) { return uninformed.Dijkstra(m, s, e) },
	"flood":    func(m maze.Maze, s, e int64, _ solver.Heuristic) (solver.Path, error) { return uninformed.Flood(m, s, e) },
	"floodfill": func(m maze.Maze, s, e int64, _ solver.Heuristic) (solver.Path, error) {
		return uninformed.FloodFill(m, s, e)
	},
	"astar": func(m maze.Maze, s, e int64, h solver.Heuristic) (solver.Path, error) {
		return astarfam.AStar(m, s, e, astarfam.WithAStarHeuristic(h))
	},
	"fstar": func(m maze.Maze, s, e int64, h solver.Heuristic) (solver.Path, error) {
		return astarfam.FStar(m, s, e, astarfam.WithFStarHeuristic(h))
	},
	"jps": runJPS,
	"gstar": func(m maze.Maze, s, e int64, h solver.Heuristic) (solver.Path, error) {
		return graveyard.GStar(m, s, e, graveyard.WithGStarHeuristic(h))
	},
	"gbestfirst": func(m maze.Maze, s, e int64, h solver.Heuristic) (solver.Path, error) {
		return graveyard.GBestFirst(m, s, e, graveyard.WithGBestFirstHeuristic(h))
	},
	"gbfs": func(m maze.Maze, s, e int64, _ solver.Heuristic) (solver.Path, error) { return graveyard.GBFS(m, s, e) },
	"gdfs": func(m maze.Maze, s, e int64, _ solver.Heuristic) (solver.Path, error) { return graveyard.GDFS(m, s, e) },
	"idastar": func(m maze.Maze, s, e int64, h solver.Heuristic) (solver.Path, error) {
		return iterdeep.IDAStar(m, s, e, iterdeep.WithIDAStarHeuristic(h))
	},
	"eidastar": func(m maze.Maze, s, e int64, h solver.Heuristic) (solver.Path, error) {
		return iterdeep.EIDAStar(m, s, e, iterdeep.WithIDAStarHeuristic(h))
	},
	"iddfs":  func(m maze.Maze, s, e int64, _ solver.Heuristic) (solver.Path, error) { return iterdeep.IDDFS(m, s, e) },
	"eiddfs": func(m maze.Maze, s, e int64, _ solver.Heuristic) (solver.Path, error) { return iterdeep.EIDDFS(m, s, e) },
	"idbestfirst": func(m maze.Maze, s, e int64, h solver.Heuristic) (solver.Path, error) {
		return iterdeep.IDBestFirst(m, s, e, iterdeep.WithIDBestFirstHeuristic(h))
	},
	"eidbestfirst": func(m maze.Maze, s, e int64, h solver.Heuristic) (solver.Path, error) {
		return iterdeep.EIDBestFirst(m, s, e, iterdeep.WithIDBestFirstHeuristic(h))
	},
	"smastar": func(m maze.Maze, s, e int64, h solver.Heuristic) (solver.Path, error) {
		return bounded.SMAStar(m, s, e, bounded.WithSMAStarHeuristic(h))
	},
	"mgstar": func(m maze.Maze, s, e int64, h solver.Heuristic) (solver.Path, error) {
		return bounded.MGStar(m, s, e, bounded.WithMGStarHeuristic(h))
	},
}

// runJPS adapts astarfam.JPS, which needs a concrete 2-D
// *maze.Grid[bool] and its own coordinate-pair heuristic.Func rather
// than the vertex-indexed solver.Heuristic every other entry uses.
func runJPS(m maze.Maze, start, end int64, _ solver.Heuristic) (solver.Path, error) {
	g, ok := m.(*maze.Grid[bool])
	if !ok {
		return nil, fmt.Errorf("pathmaze-bench: jps requires a 2-D bool grid maze, got %T", m)
	}
	if g.Size().K() != 2 {
		return nil, fmt.Errorf("pathmaze-bench: jps requires a 2-D grid, got K=%d", g.Size().K())
	}
	return astarfam.JPS(g, start, end, astarfam.WithJPSHeuristic(heuristic.Octile))
}
