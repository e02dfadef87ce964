// Package pathmaze is a graph-search toolkit: two maze representations
// (a K-dimensional lattice grid and a general sparse graph), a shared
// memory-pool/node-arena layer, and twenty search kernels spanning
// uninformed traversal, heuristic best-first search, graveyard-optimised
// variants, iterative-deepening families, and memory-bounded anytime
// search.
//
// Everything is organized under subpackages:
//
//	maze/             — Grid and Graph maze representations, the shared Maze interface
//	coord/             — K-dimensional coordinate arithmetic and linearization
//	node/              — managed (pooled) and unmanaged search-node records
//	pool/              — the arena allocator backing every "managed" kernel
//	pqueue/             — an indexed d-ary min-heap used by every priority-ordered kernel
//	bitset/             — a dense existence set for closed/visited tracking
//	heuristic/          — coordinate-pair distance heuristics (Manhattan, Octile, ...)
//	solver/             — the shared query façade, path reconstruction, and logging
//	solver/uninformed/  — BFS, DFS, Dijkstra, flood fill
//	solver/astarfam/    — A*, F*, Jump Point Search
//	solver/graveyard/   — G*, GBestFirst, GBFS, GDFS
//	solver/iterdeep/    — IDA*, EIDA*, IDDFS, EIDDFS, IDBestFirst, EIDBestFirst
//	solver/bounded/     — SMA*, MG* (memory-bounded anytime search)
//	generate/           — synthetic maze/graph generators for benchmarks and tests
//	gppc/               — Moving AI Lab GPPC .map/.map.scen file loaders
//	cmd/pathmaze-bench/ — a CLI that runs named solvers over generated or GPPC mazes
package pathmaze
