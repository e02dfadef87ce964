package generate

import (
	"container/heap"
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/pathmaze/coord"
	"github.com/katalvlaran/pathmaze/maze"
)

// BacktrackGraph carves a "perfect maze" — a randomized spanning tree —
// over the full K-dimensional lattice of size: exactly one path connects
// any two cells. seed makes the carve reproducible across runs, matching
// the benchmark CLI's need to replay a scenario.
func BacktrackGraph(size coord.Coord, seed uint64) (*maze.Graph, error) {
	n, err := coord.Product(size)
	if err != nil {
		return nil, fmt.Errorf("generate: BacktrackGraph: %w", err)
	}
	g := maze.NewGraph(int64(n), false)
	visited := make([]bool, n)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	visited[0] = true
	stack := []uint64{0}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		cc, err := coord.ToND(cur, size)
		if err != nil {
			return nil, fmt.Errorf("generate: BacktrackGraph: %w", err)
		}
		neighbours := latticeNeighbours(cc, size)
		rng.Shuffle(len(neighbours), func(i, j int) { neighbours[i], neighbours[j] = neighbours[j], neighbours[i] })

		advanced := false
		for _, nc := range neighbours {
			ni, err := coord.To1D(nc, size)
			if err != nil {
				return nil, fmt.Errorf("generate: BacktrackGraph: %w", err)
			}
			if visited[ni] {
				continue
			}
			g.AddEdge(int64(cur), int64(ni), 1)
			visited[ni] = true
			stack = append(stack, ni)
			advanced = true
			break
		}
		if !advanced {
			stack = stack[:len(stack)-1]
		}
	}
	return g, nil
}

// latticeNeighbours returns c's axis-aligned neighbours within size,
// i.e. the 2K-neighbourhood of a Grid with diagonal disabled.
func latticeNeighbours(c, size coord.Coord) []coord.Coord {
	out := make([]coord.Coord, 0, 2*c.K())
	for axis := 0; axis < c.K(); axis++ {
		if c[axis] > 0 {
			nc := c.Clone()
			nc[axis]--
			out = append(out, nc)
		}
		if c[axis]+1 < size[axis] {
			nc := c.Clone()
			nc[axis]++
			out = append(out, nc)
		}
	}
	return out
}

// RandomSpanningGraph builds a random spanning tree over n vertices
// (guaranteeing connectivity), then adds each remaining possible edge
// independently with probability extraEdgeProb to introduce cycles —
// pass 0 for a pure tree.
func RandomSpanningGraph(n int64, extraEdgeProb float64, seed uint64) (*maze.Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("generate: RandomSpanningGraph: vertex count must be positive, got %d", n)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x2545f4914f6cdd1d))
	g := maze.NewGraph(n, false)

	order := rng.Perm(int(n))
	for i := 1; i < len(order); i++ {
		child := int64(order[i])
		parent := int64(order[rng.IntN(i)])
		g.AddEdge(parent, child, 1+rng.Float64()*4)
	}
	if extraEdgeProb > 0 {
		for a := int64(0); a < n; a++ {
			for b := a + 1; b < n; b++ {
				if rng.Float64() < extraEdgeProb {
					g.AddEdge(a, b, 1+rng.Float64()*4)
				}
			}
		}
	}
	return g, nil
}

// ObstacleGrid fills a grid of the given size with independent random
// obstacles: each cell is active (passable) with probability
// 1-density. The result is not guaranteed connected — callers that need
// a reachable start/end pair should retry with a fresh seed or fall back
// to BacktrackGraph.
func ObstacleGrid(size coord.Coord, density float64, diagonal bool, seed uint64) (*maze.Grid[bool], error) {
	n, err := coord.Product(size)
	if err != nil {
		return nil, fmt.Errorf("generate: ObstacleGrid: %w", err)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0xbf58476d1ce4e5b9))
	active := make([]bool, n)
	for i := range active {
		active[i] = rng.Float64() >= density
	}
	return maze.NewBoolGrid(size, active, diagonal)
}

// PrimGraph carves a perfect maze over the lattice of the given size via
// randomized Prim's algorithm: grow a frontier of candidate edges out of
// the visited set, always taking the cheapest (randomly weighted)
// candidate next. This produces a different texture of spanning tree
// than BacktrackGraph's randomized-DFS carve — shorter dead ends, more
// evenly branching — while keeping the same "exactly one path between
// any two cells" guarantee.
func PrimGraph(size coord.Coord, seed uint64) (*maze.Graph, error) {
	n, err := coord.Product(size)
	if err != nil {
		return nil, fmt.Errorf("generate: PrimGraph: %w", err)
	}
	g := maze.NewGraph(int64(n), false)
	rng := rand.New(rand.NewPCG(seed, seed^0x94d049bb133111eb))
	visited := make([]bool, n)

	pq := &frontierPQ{}
	heap.Init(pq)

	pushFrontier := func(from uint64) error {
		fc, err := coord.ToND(from, size)
		if err != nil {
			return err
		}
		for _, nc := range latticeNeighbours(fc, size) {
			to, err := coord.To1D(nc, size)
			if err != nil {
				return err
			}
			if !visited[to] {
				heap.Push(pq, frontierEdge{from: from, to: to, weight: rng.Float64()})
			}
		}
		return nil
	}

	visited[0] = true
	if err := pushFrontier(0); err != nil {
		return nil, fmt.Errorf("generate: PrimGraph: %w", err)
	}
	for pq.Len() > 0 {
		e := heap.Pop(pq).(frontierEdge)
		if visited[e.to] {
			continue
		}
		g.AddEdge(int64(e.from), int64(e.to), 1)
		visited[e.to] = true
		if err := pushFrontier(e.to); err != nil {
			return nil, fmt.Errorf("generate: PrimGraph: %w", err)
		}
	}
	return g, nil
}

// frontierEdge is a candidate edge in PrimGraph's growing frontier,
// ordered by weight exactly as prim_kruskal.Prim orders its own
// edgePQ — adapted here to int64 lattice indices and a randomized
// weight instead of a pre-existing graph's edge weights.
type frontierEdge struct {
	from, to uint64
	weight   float64
}

type frontierPQ []frontierEdge

func (pq frontierPQ) Len() int            { return len(pq) }
func (pq frontierPQ) Less(i, j int) bool  { return pq[i].weight < pq[j].weight }
func (pq frontierPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(frontierEdge)) }
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]
	return e
}
