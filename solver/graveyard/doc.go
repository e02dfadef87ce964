// Package graveyard implements the "graveyard-optimised" kernels: G*,
// G-best-first, GBFS, and GDFS. All four share §4.6's expunge-on-dead-end
// discipline (a node.Managed record is only Expunge'd once its expansion
// adds no child) over node.Managed records in a pool.Homogeneous arena,
// differing only in the open set's shape and ordering: a heap ordered by
// (f,g) for G*, a heap ordered by h alone for G-best-first, a FIFO queue
// for GBFS, and a LIFO stack for GDFS.
package graveyard
