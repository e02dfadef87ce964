// Package pool implements the three memory resources the solver kernels
// allocate node records and backing storage from: Monotonic (bump, no
// per-object free), Homogeneous (fixed-size slab with an explicit free
// list, for managed nodes that are freed incrementally via Expunge), and
// Heterogeneous (variable-size, coalescing). No solver kernel in this
// module allocates from Heterogeneous: the open sets, stacks and heaps
// are backed by plain slices.
//
// Translation note (see DESIGN.md "Design Notes" / §9 of the original
// spec): the source exposes these as C++ pmr memory_resources handing out
// raw pointers. A raw pointer into a pool that may grow its backing
// storage is unsound in Go (growth reallocates), so every pool here hands
// out an arena-relative index instead — an int that Get resolves back to
// a *T valid until the next Reset/Release. This is exactly the
// redesign the spec's own Design Notes section calls for: "represent as
// arena-relative indices rather than raw pointers."
//
// All three resources expose Reset (rewind/repopulate, keep the
// underlying blocks) and Release (free the blocks, return to the initial
// state), matching the source's contract and this module's deferred
// cleanup in the solver façade, which attempts every Reset and joins
// their errors.
package pool
