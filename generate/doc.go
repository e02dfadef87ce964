// Package generate builds mazes for benchmarks and tests instead of
// requiring a GPPC file on disk: a randomized-backtracker spanning graph
// over a grid lattice ("perfect maze", unique path between any two
// cells), a randomized-Prim spanning graph over the same lattice, a
// general random spanning graph with optional extra edges, and an
// independent-obstacle grid field. None of the example repos in this
// corpus ship a maze generator, so this package reaches for stdlib
// math/rand/v2 rather than an invented dependency — see DESIGN.md.
package generate
