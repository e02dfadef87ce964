package gppc

import "github.com/katalvlaran/pathmaze/coord"

// StartVertex returns s's start position as a linear index into a grid
// of the given size, matching LoadMap's {width, height} convention.
func (s Scenario) StartVertex(size coord.Coord) (int64, error) {
	v, err := coord.To1D(coord.Coord{uint32(s.StartX), uint32(s.StartY)}, size)
	return int64(v), err
}

// GoalVertex returns s's goal position as a linear index into a grid of
// the given size, matching LoadMap's {width, height} convention.
func (s Scenario) GoalVertex(size coord.Coord) (int64, error) {
	v, err := coord.To1D(coord.Coord{uint32(s.GoalX), uint32(s.GoalY)}, size)
	return int64(v), err
}
