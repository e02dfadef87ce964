// Package node defines the record types the solver kernels allocate from
// a pool package arena: BNode (bare coordinate + search bookkeeping,
// embedded in both node kinds), Unmanaged[S] (parent referenced by a
// stable pool index, freed only in bulk — BFS/DFS), and Managed[S]
// (parent referenced by index plus a live successor count, so a node can
// be expunged the moment its last child drops it — A*/F*/JPS, the
// graveyard family, and MG*). Dijkstra, flood/floodfill, SMA* and the
// iterative-deepening family use none of these records.
//
// The source's managed_node<Derived> is a CRTP base transformingthe
// "unlink from parent, decrement its successor count, recurse if it hits
// zero" chain via virtual dispatch. Go has no CRTP; Managed is a concrete
// struct parameterised only by the algorithm-specific score payload S, and
// Expunge is a free function taking the owning Homogeneous[Managed[S]]
// pool explicitly, per the arena-relative-index redesign in DESIGN.md.
package node
