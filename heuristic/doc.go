// Package heuristic provides the pure distance functions the heuristic
// solvers (A*, F*, JPS, the graveyard family, the iterative-deepening
// family) use to estimate remaining cost from a cell to the goal.
//
// Every function takes two coord.Coord values of matching arity and
// returns a float64 estimate. None of them allocate or retain state, so a
// Heuristic value is safe to share across concurrent solver invocations
// (though a single solver invocation itself is single-threaded, per the
// module's concurrency model).
package heuristic
