// Package bounded implements the two memory-bounded kernels, SMA* and
// MG*: both trade the unbounded open/closed sets every other family uses
// for an explicit memory ceiling, sacrificing optimality (and, for SMA*,
// the managed-node arena itself) when that ceiling is too tight to hold
// the whole frontier.
//
// SMA* keeps its own node table as a plain map (§4.6 calls for
// relocatable, individually erasable records, which the pool package's
// arenas don't support — see DESIGN.md) and a sorted "multiset" open
// list; exceeding the limit drops the worst (highest f) entry and backs
// its score up through its parent. MG* instead reuses the
// node.Managed/pool.Homogeneous arena the graveyard family uses: every
// childless node is reclaimed as soon as its expansion adds nothing, so
// its desaturation step only ever drops the worst live open entry.
package bounded
