package solver_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pathmaze/coord"
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/node"
	"github.com/katalvlaran/pathmaze/pool"
	"github.com/katalvlaran/pathmaze/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuery struct {
	m          maze.Maze
	start, end int64
}

func (q fakeQuery) Bounds() (maze.Maze, int64, int64) { return q.m, q.start, q.end }

func open5x5(t *testing.T) *maze.Grid[bool] {
	t.Helper()
	active := make([]bool, 25)
	for i := range active {
		active[i] = true
	}
	g, err := maze.NewBoolGrid(coord.Coord{5, 5}, active, false)
	require.NoError(t, err)
	return g
}

func TestRunStartEqualsEndShortcut(t *testing.T) {
	g := open5x5(t)
	q := fakeQuery{m: g, start: 6, end: 6}
	called := false
	path, err := solver.Run(q, func(fakeQuery) (solver.Path, error) {
		called = true
		return nil, nil
	}, nil, false)
	require.NoError(t, err)
	assert.Equal(t, solver.Path{6}, path)
	assert.False(t, called, "algorithm must not be invoked on the start==end shortcut")
}

func TestRunInactiveEndpointIsEmptyNotError(t *testing.T) {
	active := make([]bool, 25)
	for i := range active {
		active[i] = true
	}
	active[0] = false
	g, err := maze.NewBoolGrid(coord.Coord{5, 5}, active, false)
	require.NoError(t, err)
	q := fakeQuery{m: g, start: 0, end: 6}
	path, err := solver.Run(q, func(fakeQuery) (solver.Path, error) {
		t.Fatal("must not invoke the algorithm for an inactive endpoint")
		return nil, nil
	}, nil, false)
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestRunNilMaze(t *testing.T) {
	q := fakeQuery{m: nil, start: 0, end: 1}
	_, err := solver.Run(q, func(fakeQuery) (solver.Path, error) { return nil, nil }, nil, false)
	assert.ErrorIs(t, err, solver.ErrMazeNil)
}

type failingResetter struct{ msg string }

func (f failingResetter) Reset() error   { return errors.New(f.msg) }
func (f failingResetter) Release() error { return nil }

func TestRunJoinsTeardownErrors(t *testing.T) {
	g := open5x5(t)
	q := fakeQuery{m: g, start: 0, end: 24}
	_, err := solver.Run(q, func(fakeQuery) (solver.Path, error) {
		return solver.Path{0, 24}, nil
	}, []pool.Resetter{failingResetter{msg: "boom a"}, failingResetter{msg: "boom b"}}, false)
	require.Error(t, err)
	assert.ErrorContains(t, err, "boom a")
	assert.ErrorContains(t, err, "boom b")
}

func TestRunNoCleanupSkipsTeardown(t *testing.T) {
	g := open5x5(t)
	q := fakeQuery{m: g, start: 0, end: 24}
	path, err := solver.Run(q, func(fakeQuery) (solver.Path, error) {
		return solver.Path{0, 24}, nil
	}, []pool.Resetter{failingResetter{msg: "must not run"}}, true)
	require.NoError(t, err)
	assert.Equal(t, solver.Path{0, 24}, path)
}

func TestEstimateCapacityGridVsGraph(t *testing.T) {
	g := open5x5(t)
	assert.Equal(t, 24, solver.EstimateCapacity(g, 3, 24))

	adj := make([][]maze.Edge, 100)
	gr := maze.NewGraphFromAdjacency(adj, false)
	assert.Equal(t, 10, solver.EstimateCapacity(gr, 0, 1))
}

func TestReconstructRecursiveAndNoReverse(t *testing.T) {
	// Chain: 0 <- 1 <- 2 <- 3 (parent indices), vertices == arena index*10.
	parent := map[int32]int32{0: node.NoParent, 1: 0, 2: 1, 3: 2}
	vertex := map[int32]int64{0: 0, 1: 10, 2: 20, 3: 30}
	parentOf := func(i int32) int32 { return parent[i] }
	vertexOf := func(i int32) int64 { return vertex[i] }

	forward := solver.ReconstructRecursive(parentOf, vertexOf, 3)
	assert.Equal(t, solver.Path{0, 10, 20, 30}, forward)

	depthKnown := solver.ReconstructDepthKnown(parentOf, vertexOf, 3, 3)
	assert.Equal(t, solver.Path{0, 10, 20, 30}, depthKnown)

	noReverse := solver.ReconstructNoReverse(parentOf, vertexOf, 3)
	assert.Equal(t, solver.Path{30, 20, 10, 0}, noReverse)
}

func TestReconstructFromTrail(t *testing.T) {
	trail := []int64{0, 5, 9}
	got := solver.ReconstructFromTrail(trail)
	assert.Equal(t, solver.Path{0, 5, 9}, got)
	trail[0] = 99
	assert.Equal(t, int64(0), got[0], "ReconstructFromTrail must copy, not alias")
}
