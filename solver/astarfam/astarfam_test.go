package astarfam_test

import (
	"testing"

	"github.com/katalvlaran/pathmaze/coord"
	"github.com/katalvlaran/pathmaze/heuristic"
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/solver/astarfam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open5x5(t *testing.T) (*maze.Grid[bool], int64, int64) {
	t.Helper()
	active := make([]bool, 25)
	for i := range active {
		active[i] = true
	}
	g, err := maze.NewBoolGrid(coord.Coord{5, 5}, active, false)
	require.NoError(t, err)
	start, err := coord.To1D(coord.Coord{0, 0}, coord.Coord{5, 5})
	require.NoError(t, err)
	end, err := coord.To1D(coord.Coord{4, 4}, coord.Coord{5, 5})
	require.NoError(t, err)
	return g, int64(start), int64(end)
}

func diagonal5x5(t *testing.T) (*maze.Grid[bool], int64, int64) {
	t.Helper()
	active := make([]bool, 25)
	for i := range active {
		active[i] = true
	}
	g, err := maze.NewBoolGrid(coord.Coord{5, 5}, active, true)
	require.NoError(t, err)
	start, err := coord.To1D(coord.Coord{0, 0}, coord.Coord{5, 5})
	require.NoError(t, err)
	end, err := coord.To1D(coord.Coord{4, 4}, coord.Coord{5, 5})
	require.NoError(t, err)
	return g, int64(start), int64(end)
}

func gridHeuristic(g *maze.Grid[bool], end int64, fn heuristic.Func) astarfam.Heuristic {
	size := g.Size()
	ec, _ := coord.ToND(uint64(end), size)
	return func(v int64) float64 {
		vc, _ := coord.ToND(uint64(v), size)
		return fn(vc, ec)
	}
}

func assertValidPath(t *testing.T, m maze.Maze, p []int64, start, end int64) {
	t.Helper()
	require.NotEmpty(t, p)
	assert.Equal(t, start, p[0])
	assert.Equal(t, end, p[len(p)-1])
	for i := 0; i+1 < len(p); i++ {
		edges := m.Neighbours(p[i], nil)
		found := false
		for _, e := range edges {
			if e.To == p[i+1] {
				found = true
				break
			}
		}
		assert.True(t, found, "p[%d]=%d -> p[%d]=%d is not an active neighbour edge", i, p[i], i+1, p[i+1])
	}
}

func TestAStarOpenFieldOptimalLengthWithManhattanHeuristic(t *testing.T) {
	g, start, end := open5x5(t)
	h := gridHeuristic(g, end, heuristic.Manhattan)
	path, err := astarfam.AStar(g, start, end, astarfam.WithAStarHeuristic(h))
	require.NoError(t, err)
	assertValidPath(t, g, path, start, end)
	assert.Len(t, path, 9)
}

func TestAStarWithoutHeuristicDegradesToDijkstraOrdering(t *testing.T) {
	g, start, end := open5x5(t)
	path, err := astarfam.AStar(g, start, end)
	require.NoError(t, err)
	assertValidPath(t, g, path, start, end)
	assert.Len(t, path, 9)
}

func TestAStarTwoDisjointComponentsNoPath(t *testing.T) {
	g := maze.NewGraph(4, false)
	g.AddEdge(0, 1, 1)
	g.AddEdge(2, 3, 1)
	path, err := astarfam.AStar(g, 0, 3)
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestFStarOpenFieldOptimalLength(t *testing.T) {
	g, start, end := open5x5(t)
	h := gridHeuristic(g, end, heuristic.Manhattan)
	path, err := astarfam.FStar(g, start, end, astarfam.WithFStarHeuristic(h))
	require.NoError(t, err)
	assertValidPath(t, g, path, start, end)
	assert.Len(t, path, 9)
}

func TestFStarTwoDisjointComponentsNoPath(t *testing.T) {
	g := maze.NewGraph(4, false)
	g.AddEdge(0, 1, 1)
	g.AddEdge(2, 3, 1)
	path, err := astarfam.FStar(g, 0, 3)
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestJPSOpenDiagonalFieldReachesGoal(t *testing.T) {
	g, start, end := diagonal5x5(t)
	path, err := astarfam.JPS(g, start, end)
	require.NoError(t, err)
	assertValidPath(t, g, path, start, end)
	// A free diagonal field lets JPS cut straight across: 4 diagonal steps.
	assert.Len(t, path, 5)
}

func TestJPSRejectsNon2DGrid(t *testing.T) {
	g, err := maze.NewBoolGrid(coord.Coord{3, 3, 3}, make([]bool, 27), true)
	require.NoError(t, err)
	_, err = astarfam.JPS(g, 0, 1)
	assert.ErrorIs(t, err, astarfam.ErrJPSRequiresGrid2D)
}

func TestJPSUWallCorridorForcesDetour(t *testing.T) {
	active := make([]bool, 9)
	for i := range active {
		active[i] = true
	}
	block := func(x, y int) {
		idx, err := coord.To1D(coord.Coord{uint32(x), uint32(y)}, coord.Coord{3, 3})
		require.NoError(t, err)
		active[idx] = false
	}
	block(1, 0)
	block(1, 2)
	g, err := maze.NewBoolGrid(coord.Coord{3, 3}, active, false)
	require.NoError(t, err)
	start, _ := coord.To1D(coord.Coord{0, 0}, coord.Coord{3, 3})
	end, _ := coord.To1D(coord.Coord{2, 0}, coord.Coord{3, 3})

	path, err := astarfam.JPS(g, int64(start), int64(end))
	require.NoError(t, err)
	assertValidPath(t, g, path, int64(start), int64(end))
	assert.Len(t, path, 5)
}

func TestJPSStartEqualsEndShortcut(t *testing.T) {
	g, start, _ := open5x5(t)
	path, err := astarfam.JPS(g, start, start)
	require.NoError(t, err)
	assert.Equal(t, []int64{start}, []int64(path))
}
