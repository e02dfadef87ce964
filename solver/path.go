package solver

import "github.com/katalvlaran/pathmaze/coord"

// Path is a sequence of linear maze indices from start to end, inclusive.
// A nil or empty Path means no solution (or, for a feasibility solver,
// infeasible).
type Path []int64

// ToCoord decodes every index in p back to a coord.Coord for a grid of
// the given size. It is a convenience for Grid-backed queries;
// Graph-backed queries have no coordinate space to decode into.
func (p Path) ToCoord(size coord.Coord) ([]coord.Coord, error) {
	out := make([]coord.Coord, len(p))
	for i, idx := range p {
		c, err := coord.ToND(uint64(idx), size)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
