package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/pathmaze/coord"
	"github.com/katalvlaran/pathmaze/generate"
	"github.com/katalvlaran/pathmaze/gppc"
	"github.com/katalvlaran/pathmaze/heuristic"
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/solver"
	"github.com/katalvlaran/pathmaze/solver/uninformed"
	"github.com/samber/lo"
)

// maxGenerateAttempts bounds the reachable-start/end retry loop in
// buildGeneratedGrid — generate.ObstacleGrid documents that it gives no
// connectivity guarantee, so a scenario's first draw can land start or
// end on an obstacle, or simply disconnected from each other.
const maxGenerateAttempts = 8

// Result is one scenario's outcome: RunID tags it for log correlation
// across a batch (§6's "benchmark driver" external collaborator).
type Result struct {
	Name       string
	RunID      string
	Solver     string
	PathLength int
	Elapsed    time.Duration
	Err        error
}

func runScenario(sc ScenarioConfig) Result {
	res := Result{Name: sc.Name, RunID: uuid.NewString(), Solver: sc.Solver}

	fn, ok := registry[sc.Solver]
	if !ok {
		names := lo.Keys(registry)
		sort.Strings(names)
		res.Err = fmt.Errorf("pathmaze-bench: unknown solver %q (valid: %s)", sc.Solver, strings.Join(names, ", "))
		return res
	}

	var (
		m          maze.Maze
		start, end int64
		err        error
	)
	if sc.GPPCMap != "" {
		m, start, end, err = loadGPPCScenario(sc)
	} else {
		m, start, end, err = buildGeneratedGrid(sc)
	}
	if err != nil {
		res.Err = err
		return res
	}

	h := buildHeuristic(m, end, heuristic.Octile)
	t0 := time.Now()
	path, err := fn(m, start, end, h)
	res.Elapsed = time.Since(t0)
	if err != nil {
		res.Err = err
		return res
	}
	res.PathLength = len(path)
	return res
}

// buildHeuristic adapts a coordinate-pair heuristic.Func into the
// vertex-indexed solver.Heuristic every kernel but JPS expects, the same
// way every package's own test suite does (see e.g.
// solver/astarfam/astarfam_test.go's gridHeuristic). Graph-backed mazes
// have no coordinate space to measure in, so they fall back to
// solver.ZeroHeuristic — still correct, just uninformed.
func buildHeuristic(m maze.Maze, end int64, fn heuristic.Func) solver.Heuristic {
	g, ok := m.(*maze.Grid[bool])
	if !ok {
		return solver.ZeroHeuristic
	}
	size := g.Size()
	ec, err := coord.ToND(uint64(end), size)
	if err != nil {
		return solver.ZeroHeuristic
	}
	return func(v int64) float64 {
		vc, err := coord.ToND(uint64(v), size)
		if err != nil {
			return 0
		}
		return fn(vc, ec)
	}
}

// buildGeneratedGrid draws an obstacle grid for sc, retrying with a
// perturbed seed (per generate.ObstacleGrid's own suggestion) until the
// fixed start=0/end=last-cell pair is both active and mutually
// reachable, or the attempt budget runs out.
func buildGeneratedGrid(sc ScenarioConfig) (maze.Maze, int64, int64, error) {
	if sc.Width <= 0 || sc.Height <= 0 {
		return nil, 0, 0, fmt.Errorf("pathmaze-bench: scenario %q needs a positive width and height", sc.Name)
	}
	size := coord.Coord{uint32(sc.Width), uint32(sc.Height)}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		g, err := generate.ObstacleGrid(size, sc.Density, false, sc.Seed+uint64(attempt))
		if err != nil {
			return nil, 0, 0, fmt.Errorf("pathmaze-bench: %w", err)
		}
		end := g.Count() - 1
		if !g.IsActive(0) || !g.IsActive(end) {
			continue
		}
		if path, err := uninformed.BFS(g, 0, end); err == nil && path != nil {
			return g, 0, end, nil
		}
	}
	return nil, 0, 0, fmt.Errorf("pathmaze-bench: scenario %q: no reachable start/end pair found in %d attempts at density %.2f",
		sc.Name, maxGenerateAttempts, sc.Density)
}

func loadGPPCScenario(sc ScenarioConfig) (maze.Maze, int64, int64, error) {
	mapFile, err := os.Open(sc.GPPCMap)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("pathmaze-bench: %w", err)
	}
	defer mapFile.Close()
	g, err := gppc.LoadMap(mapFile)
	if err != nil {
		return nil, 0, 0, err
	}

	scenFile, err := os.Open(sc.GPPCScen)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("pathmaze-bench: %w", err)
	}
	defer scenFile.Close()
	rows, err := gppc.LoadScenarios(scenFile)
	if err != nil {
		return nil, 0, 0, err
	}
	if len(rows) == 0 {
		return nil, 0, 0, fmt.Errorf("pathmaze-bench: %s has no scenario rows", sc.GPPCScen)
	}

	size := g.Size()
	start, err := rows[0].StartVertex(size)
	if err != nil {
		return nil, 0, 0, err
	}
	end, err := rows[0].GoalVertex(size)
	if err != nil {
		return nil, 0, 0, err
	}
	return g, start, end, nil
}
