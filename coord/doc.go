// Package coord defines the fixed-arity coordinate tuple shared by every
// maze abstraction in this module, along with the pure numeric helpers
// (linearisation, integer power, overflow-safe multiply, min/max/clamp,
// duration formatting) that the rest of the solver core builds on.
//
// A Coordinate is a K-dimensional tuple of non-negative indices. Since Go
// generics cannot parameterize an array length by a type parameter, Coord
// is slice-backed; its arity K is simply len(Coord). Linearisation is
// row-major with stride 1 on dimension 0: index 0 varies fastest.
//
// Complexity: Product/To1D/ToND are all O(K); To1D and ToND special-case
// K ∈ {1,2,3,4} to avoid the general loop's slice bounds checks.
package coord
