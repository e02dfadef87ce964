package generate_test

import (
	"testing"

	"github.com/katalvlaran/pathmaze/coord"
	"github.com/katalvlaran/pathmaze/generate"
	"github.com/katalvlaran/pathmaze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBacktrackGraphIsConnectedSpanningTree(t *testing.T) {
	size := coord.Coord{6, 6}
	g, err := generate.BacktrackGraph(size, 42)
	require.NoError(t, err)

	n, err := coord.Product(size)
	require.NoError(t, err)

	edgeEnds := 0
	for v := int64(0); v < int64(n); v++ {
		edgeEnds += len(g.Neighbours(v, nil))
	}
	// a spanning tree over n vertices has exactly n-1 edges, each
	// counted twice in an undirected adjacency dump.
	assert.Equal(t, int(n-1)*2, edgeEnds)

	visited := make([]bool, n)
	stack := []int64{0}
	visited[0] = true
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range g.Neighbours(v, nil) {
			if !visited[e.To] {
				visited[e.To] = true
				count++
				stack = append(stack, e.To)
			}
		}
	}
	assert.Equal(t, int(n), count, "every cell must be reachable from the origin")
}

func TestBacktrackGraphDifferentSeedsDiffer(t *testing.T) {
	size := coord.Coord{8, 8}
	a, err := generate.BacktrackGraph(size, 1)
	require.NoError(t, err)
	b, err := generate.BacktrackGraph(size, 2)
	require.NoError(t, err)

	sameEverywhere := true
	n, _ := coord.Product(size)
	for v := int64(0); v < int64(n); v++ {
		if len(a.Neighbours(v, nil)) != len(b.Neighbours(v, nil)) {
			sameEverywhere = false
			break
		}
	}
	assert.False(t, sameEverywhere, "two different seeds should carve visibly different trees")
}

func TestPrimGraphIsConnectedSpanningTree(t *testing.T) {
	size := coord.Coord{7, 5}
	g, err := generate.PrimGraph(size, 13)
	require.NoError(t, err)

	n, err := coord.Product(size)
	require.NoError(t, err)

	edgeEnds := 0
	for v := int64(0); v < int64(n); v++ {
		edgeEnds += len(g.Neighbours(v, nil))
	}
	assert.Equal(t, int(n-1)*2, edgeEnds)

	visited := make([]bool, n)
	stack := []int64{0}
	visited[0] = true
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range g.Neighbours(v, nil) {
			if !visited[e.To] {
				visited[e.To] = true
				count++
				stack = append(stack, e.To)
			}
		}
	}
	assert.Equal(t, int(n), count, "every cell must be reachable from the origin")
}

func TestPrimGraphDifferentSeedsDiffer(t *testing.T) {
	size := coord.Coord{8, 8}
	a, err := generate.PrimGraph(size, 1)
	require.NoError(t, err)
	b, err := generate.PrimGraph(size, 2)
	require.NoError(t, err)

	sameEverywhere := true
	n, _ := coord.Product(size)
	for v := int64(0); v < int64(n); v++ {
		if len(a.Neighbours(v, nil)) != len(b.Neighbours(v, nil)) {
			sameEverywhere = false
			break
		}
	}
	assert.False(t, sameEverywhere, "two different seeds should carve visibly different trees")
}

func TestRandomSpanningGraphIsConnected(t *testing.T) {
	const n = 50
	g, err := generate.RandomSpanningGraph(n, 0.02, 7)
	require.NoError(t, err)

	visited := make([]bool, n)
	stack := []int64{0}
	visited[0] = true
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range g.Neighbours(v, nil) {
			if !visited[e.To] {
				visited[e.To] = true
				count++
				stack = append(stack, e.To)
			}
		}
	}
	assert.Equal(t, n, count)
}

func TestRandomSpanningGraphRejectsNonPositiveCount(t *testing.T) {
	_, err := generate.RandomSpanningGraph(0, 0, 1)
	assert.Error(t, err)
}

func TestObstacleGridApproximatesDensity(t *testing.T) {
	size := coord.Coord{40, 40}
	g, err := generate.ObstacleGrid(size, 0.3, false, 99)
	require.NoError(t, err)

	active := 0
	total, err := coord.Product(size)
	require.NoError(t, err)
	for v := int64(0); v < int64(total); v++ {
		if g.IsActive(v) {
			active++
		}
	}
	ratio := float64(active) / float64(total)
	assert.InDelta(t, 0.7, ratio, 0.1)
}

func TestRenderSmallGridShapeAndMarkers(t *testing.T) {
	size := coord.Coord{3, 2}
	active := []bool{true, true, false, true, true, true}
	g, err := maze.NewBoolGrid(size, active, false)
	require.NoError(t, err)

	out, err := generate.Render(g, 0, 5)
	require.NoError(t, err)
	assert.Contains(t, out, "S")
	assert.Contains(t, out, "E")
	assert.Contains(t, out, "#")
}

func TestRenderRejectsOversizedGrid(t *testing.T) {
	size := coord.Coord{1, 101}
	active := make([]bool, 101)
	for i := range active {
		active[i] = true
	}
	g, err := maze.NewBoolGrid(size, active, false)
	require.NoError(t, err)

	_, err = generate.Render(g, -1, -1)
	assert.Error(t, err)
}
