// Package bitset implements the "existence set": a dense, amortised-growth
// set of linear maze indices. Most solver kernels in this module use one
// as their closed set instead of a map[int64]struct{}, trading a little
// memory for O(1) membership tests with no hashing; Dijkstra, SMA* and the
// iterative-deepening family keep no bitset.
//
// Two backing widths are supported: the default packs one bit per index
// (Width1, the common case — "has this index been closed?"); WithWidth8
// instead allocates one byte per index, letting a caller stash a small
// per-cell generation stamp or direction tag alongside membership. No
// solver kernel in this module uses Width8; all of them, JPS included,
// use the default Width1.
package bitset
