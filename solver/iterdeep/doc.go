// Package iterdeep implements the iterative-deepening family: IDA*,
// IDDFS, and ID-best-first, plus their "E" (transposition-table
// augmented) variants EIDA*, EIDDFS, and EID-best-first. All six share
// one engine (see pass in engine.go): an explicit DFS stack of
// (vertex, g, neighbours, idx) frames — rather than recursion — searched
// under a progressively raised bound, with a linear scan of the current
// open path standing in for a closed set (no node allocator is needed:
// paths this family explores are short enough that O(depth) duplicate
// checks are cheap, per §4.6). The three un-augmented kernels differ only
// in how a frame's score is computed from (g, h); the "E" variants add a
// per-pass transposition table that prunes re-expansion of an index
// already seen this pass at an equal-or-better score.
package iterdeep
