// Package container provides the thin Stack and Queue wrappers the solver
// kernels share: a slice-backed LIFO for DFS-shaped searches (DFS, GDFS)
// and a slice-backed FIFO for BFS-shaped searches (BFS, GBFS,
// flood/floodfill), with identical Push/Front-or-Top/Pop shapes so a solver can be re-templated from one to the other by swapping
// the container type alone — mirroring the source's pmr stack/queue pair.
package container
