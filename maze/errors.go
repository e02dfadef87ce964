package maze

import "errors"

// Sentinel errors for maze construction and queries.
var (
	// ErrEmptySize indicates a Grid was constructed with a zero-length or
	// zero-extent size vector.
	ErrEmptySize = errors.New("maze: size must have at least one positive dimension")
	// ErrOutOfBounds indicates a coordinate or linear index fell outside
	// the maze's addressable space.
	ErrOutOfBounds = errors.New("maze: index out of bounds")
	// ErrDirectedUnsupported indicates Prune was called on a Graph built
	// from directed edges; corridor-collapsing assumes a reversible walk
	// and is not defined for one-way passages.
	ErrDirectedUnsupported = errors.New("maze: pruning a directed graph is not supported")
	// ErrAlreadyPruned indicates Prune was called a second time on the
	// same Graph. Pruning is single-shot: a second pass over an already
	// simplified graph is very likely a caller bug, not a no-op.
	ErrAlreadyPruned = errors.New("maze: graph has already been pruned")
)
