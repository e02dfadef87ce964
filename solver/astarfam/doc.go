// Package astarfam implements the heuristic-search kernels: A*, F*
// (a double-buffered threshold sweep), and JPS (grid-only jump-point
// search). All three use node.Managed records in a pool.Homogeneous
// arena; a record is only Expunge'd once its expansion adds no child,
// per §4.6's G*/A* expansion template. Stale open-set entries —
// superseded by a cheaper path to the same vertex before they're popped —
// are left alone rather than actively freed (a lazy-deletion priority
// queue, skipped on pop) to avoid freeing a record some other live entry
// still parents through; the whole arena is reclaimed in bulk by the
// façade's post-query pool Reset regardless.
package astarfam
