package node

import "github.com/katalvlaran/pathmaze/pool"

// Managed[S] is a search-node record for the algorithms that free
// individual nodes mid-query as the open/closed sets churn (A*, F*, JPS,
// the graveyard family, MG*): Parent
// threads the path by arena index exactly like Unmanaged, but Successors
// counts how many live child nodes currently reference this one as their
// parent, and Dead marks that the node itself has been logically removed
// (closed, pruned, or evicted for memory, depending on the kernel). A
// node is only returned to the pool once it is both Dead and has no
// remaining Successors — see Expunge and ForgetOne.
type Managed[S any] struct {
	BNode
	Parent     int32
	Successors uint16
	Dead       bool
	Score      S
}

// NewManaged allocates a node from p, links it to parent (NoParent for a
// root), and bumps the parent's live-successor count. It returns the new
// node's arena index.
func NewManaged[S any](p *pool.Homogeneous[Managed[S]], vertex int64, parent int32, score S) int32 {
	idx, n := p.Alloc()
	n.BNode = BNode{Vertex: vertex}
	n.Parent = parent
	n.Successors = 0
	n.Dead = false
	n.Score = score
	if parent != NoParent {
		p.Get(int(parent)).Successors++
	}
	return int32(idx)
}

// ForgetOne decrements idx's live-successor count by one — call this when
// one of its children is reparented or destroyed without going through
// Expunge — and frees the upward chain if idx was already Dead and has
// just dropped to zero successors.
func ForgetOne[S any](p *pool.Homogeneous[Managed[S]], idx int32) {
	if idx == NoParent {
		return
	}
	n := p.Get(int(idx))
	if n.Successors > 0 {
		n.Successors--
	}
	reclaim(p, idx)
}

// Expunge marks idx Dead and, if it has no live successors, returns it
// (and as much of its now-childless ancestor chain as qualifies) to the
// pool. Call this when a kernel removes idx from its closed/open set for
// good — the A* family's "pop from the heap, it's never coming back."
func Expunge[S any](p *pool.Homogeneous[Managed[S]], idx int32) {
	if idx == NoParent {
		return
	}
	p.Get(int(idx)).Dead = true
	reclaim(p, idx)
}

// reclaim walks from idx toward the root, freeing every node that is both
// Dead and childless, decrementing each freed node's parent in turn.
func reclaim[S any](p *pool.Homogeneous[Managed[S]], idx int32) {
	for idx != NoParent {
		n := p.Get(int(idx))
		if !n.Dead || n.Successors > 0 {
			return
		}
		parent := n.Parent
		_ = p.Free(int(idx))
		if parent == NoParent {
			return
		}
		pn := p.Get(int(parent))
		if pn.Successors > 0 {
			pn.Successors--
		}
		idx = parent
	}
}
