package maze_test

import (
	"testing"

	"github.com/katalvlaran/pathmaze/coord"
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 5x5 open grid, all active.
func open5x5(t *testing.T, diagonal bool) *maze.Grid[bool] {
	t.Helper()
	active := make([]bool, 25)
	for i := range active {
		active[i] = true
	}
	g, err := maze.NewBoolGrid(coord.Coord{5, 5}, active, diagonal)
	require.NoError(t, err)
	return g
}

func TestGridAxisNeighbourCounts(t *testing.T) {
	g := open5x5(t, false)
	// Corner cell (0,0) -> linear index 0: two neighbours.
	edges := g.Neighbours(0, nil)
	assert.Len(t, edges, 2)
	// Centre cell (2,2) -> linear index 12: four neighbours.
	idx, err := coord.To1D(coord.Coord{2, 2}, coord.Coord{5, 5})
	require.NoError(t, err)
	edges = g.Neighbours(int64(idx), nil)
	assert.Len(t, edges, 4)
}

func TestGridDiagonalNeighbourCounts(t *testing.T) {
	g := open5x5(t, true)
	idx, err := coord.To1D(coord.Coord{2, 2}, coord.Coord{5, 5})
	require.NoError(t, err)
	edges := g.Neighbours(int64(idx), nil)
	assert.Len(t, edges, 8)
}

// 3x3 grid with a wall at (1,0) and (1,2), leaving a U-shaped corridor
// open only through (1,1).
func uWall3x3(t *testing.T) *maze.Grid[bool] {
	t.Helper()
	active := make([]bool, 9)
	for i := range active {
		active[i] = true
	}
	blockAt := func(x, y int) {
		idx, err := coord.To1D(coord.Coord{uint32(x), uint32(y)}, coord.Coord{3, 3})
		require.NoError(t, err)
		active[idx] = false
	}
	blockAt(1, 0)
	blockAt(1, 2)
	g, err := maze.NewBoolGrid(coord.Coord{3, 3}, active, false)
	require.NoError(t, err)
	return g
}

func TestGridCornerCuttingSuppressed(t *testing.T) {
	active := []bool{
		true, false,
		false, true,
	}
	g, err := maze.NewBoolGrid(coord.Coord{2, 2}, active, true)
	require.NoError(t, err)
	// (0,0) and (1,1) are diagonal but both orthogonal neighbours (0,1)
	// and (1,0) are blocked, so the diagonal move must be suppressed.
	edges := g.Neighbours(0, nil)
	assert.Empty(t, edges)
}

func TestGridIsTransitory(t *testing.T) {
	g := uWall3x3(t)
	centre, err := coord.To1D(coord.Coord{1, 1}, coord.Coord{3, 3})
	require.NoError(t, err)
	// (1,1) has exactly two active axis neighbours, (0,1) and (2,1),
	// which sit on opposite sides: a corridor cell.
	assert.True(t, g.IsTransitory(int64(centre)))

	left, err := coord.To1D(coord.Coord{0, 0}, coord.Coord{3, 3})
	require.NoError(t, err)
	assert.False(t, g.IsTransitory(int64(left)))
}

func TestGridIsTransitoryBendIsTransitory(t *testing.T) {
	// L-shaped corridor: (0,0)-(1,0)-(1,1), everything else blocked.
	// (1,0) has exactly two active axis neighbours, (0,0) and (1,1), which
	// sit on adjacent (not opposite) sides — a bend, still transitory.
	active := []bool{
		true, true, false,
		false, true, false,
		false, false, false,
	}
	g, err := maze.NewBoolGrid(coord.Coord{3, 3}, active, false)
	require.NoError(t, err)

	bend, err := coord.To1D(coord.Coord{1, 0}, coord.Coord{3, 3})
	require.NoError(t, err)
	assert.True(t, g.IsTransitory(int64(bend)), "a degree-2 bend cell must be transitory")
}
