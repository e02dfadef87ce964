package uninformed_test

import (
	"testing"

	"github.com/katalvlaran/pathmaze/coord"
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/solver/uninformed"
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

func TestBFSOpenFieldOptimalLength(t *testing.T) {
	g, start, end := open5x5(t)
	path, err := uninformed.BFS(g, start, end)
	require.NoError(t, err)
	assertValidPath(t, g, path, start, end)
	assert.Len(t, path, 9) // 8 edges, Manhattan-optimal in an open 5x5 grid
}

func TestDFSOpenFieldValidButNotNecessarilyOptimal(t *testing.T) {
	g, start, end := open5x5(t)
	path, err := uninformed.DFS(g, start, end)
	require.NoError(t, err)
	assertValidPath(t, g, path, start, end)
}

func TestDijkstraOpenFieldOptimalLength(t *testing.T) {
	g, start, end := open5x5(t)
	path, err := uninformed.Dijkstra(g, start, end)
	require.NoError(t, err)
	assertValidPath(t, g, path, start, end)
	assert.Len(t, path, 9)
}

func TestStartEqualsEndShortcut(t *testing.T) {
	g, start, _ := open5x5(t)
	path, err := uninformed.BFS(g, start, start)
	require.NoError(t, err)
	assert.Equal(t, []int64{start}, []int64(path))
}

func TestTwoDisjointComponentsNoPath(t *testing.T) {
	g := maze.NewGraph(4, false)
	g.AddEdge(0, 1, 1)
	g.AddEdge(2, 3, 1)
	path, err := uninformed.BFS(g, 0, 3)
	require.NoError(t, err)
	assert.Nil(t, path)

	path, err = uninformed.Dijkstra(g, 0, 3)
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestUWallCorridorForcesDetour(t *testing.T) {
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

	path, err := uninformed.BFS(g, int64(start), int64(end))
	require.NoError(t, err)
	assertValidPath(t, g, path, int64(start), int64(end))
	// Must detour through the only opening at (1,1): (0,0)(0,1)(1,1)(2,1)(2,0)
	assert.Len(t, path, 5)
}

func TestFloodFeasibility(t *testing.T) {
	g, start, end := open5x5(t)
	path, err := uninformed.Flood(g, start, end)
	require.NoError(t, err)
	assert.Equal(t, []int64{end}, []int64(path))

	disjoint := maze.NewGraph(4, false)
	disjoint.AddEdge(0, 1, 1)
	disjoint.AddEdge(2, 3, 1)
	path, err = uninformed.FloodFill(disjoint, 0, 3)
	require.NoError(t, err)
	assert.Nil(t, path)
}
