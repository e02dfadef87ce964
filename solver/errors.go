package solver

import "errors"

// ErrMazeNil is returned when a query's Maze is nil. Out-of-bounds or
// inactive start/end are precondition violations, not errors: the
// façade returns an empty path for those (see Run).
var ErrMazeNil = errors.New("solver: maze is nil")
