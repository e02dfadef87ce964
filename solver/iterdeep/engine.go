package iterdeep

import (
	"math"

	"github.com/katalvlaran/pathmaze/maze"
	"github.com/katalvlaran/pathmaze/solver"
)

// scoreFunc combines a frame's accumulated cost g and heuristic estimate
// h into the value compared against the pass's bound. IDA* uses
// g + weight*h; IDDFS uses g alone (ignoring h); ID-best-first uses h
// alone (ignoring g).
type scoreFunc func(g, h float64) float64

type frame struct {
	vertex     int64
	g          float64
	neighbours []maze.Edge
	idx        int
	entered    bool
}

// run drives the outer bound-raising loop shared by every kernel in this
// package: it repeatedly calls pass with a rising bound until pass either
// finds the goal or reports no finite next bound (exhausted).
func run(m maze.Maze, start, end int64, h solver.Heuristic, score scoreFunc, useTable bool) (solver.Path, error) {
	bound := score(0, h(start))
	for {
		var table map[int64]float64
		if useTable {
			table = make(map[int64]float64)
		}
		trail, found, next := pass(m, start, end, bound, h, score, table)
		if found {
			return solver.ReconstructFromTrail(trail), nil
		}
		if math.IsInf(next, 1) {
			return nil, nil
		}
		bound = next
	}
}

// pass performs one bounded depth-first traversal using an explicit
// stack of frames instead of recursion. table, when non-nil, implements
// the "E" variants' transposition-table pruning: a frame whose score is
// no better than the best already recorded for its vertex this pass is
// abandoned without exploring its children.
func pass(m maze.Maze, start, end int64, bound float64, h solver.Heuristic, score scoreFunc, table map[int64]float64) (trail []int64, found bool, nextBound float64) {
	nextBound = math.Inf(1)
	trail = []int64{start}
	frames := []frame{{vertex: start, g: 0}}

	for len(frames) > 0 {
		top := &frames[len(frames)-1]

		if !top.entered {
			top.entered = true
			f := score(top.g, h(top.vertex))
			if f > bound {
				if f < nextBound {
					nextBound = f
				}
				frames = frames[:len(frames)-1]
				trail = trail[:len(trail)-1]
				continue
			}
			if table != nil {
				if best, ok := table[top.vertex]; ok && f >= best {
					frames = frames[:len(frames)-1]
					trail = trail[:len(trail)-1]
					continue
				}
				table[top.vertex] = f
			}
			if top.vertex == end {
				return trail, true, nextBound
			}
			top.neighbours = m.Neighbours(top.vertex, nil)
		}

		advanced := false
		for top.idx < len(top.neighbours) {
			e := top.neighbours[top.idx]
			top.idx++
			if onTrail(trail, e.To) {
				continue
			}
			frames = append(frames, frame{vertex: e.To, g: top.g + e.Weight})
			trail = append(trail, e.To)
			advanced = true
			break
		}
		if !advanced {
			frames = frames[:len(frames)-1]
			trail = trail[:len(trail)-1]
		}
	}
	return nil, false, nextBound
}

func onTrail(trail []int64, v int64) bool {
	for _, t := range trail {
		if t == v {
			return true
		}
	}
	return false
}
