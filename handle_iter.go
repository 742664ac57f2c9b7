package ingwaz

import (
	"github.com/aukilabs/ingwaz/geometry"
)

// handleIter walks the index node graph and yields every reachable live
// handle at most once. It is an explicit work-stack state machine rather
// than a recursive walk so that callers can stop consuming it at any point
// without leaving partially descended state behind.
//
// Each traversal gets a fresh handleIter; they are not restartable.
type handleIter[U geometry.Scalar] struct {
	search    geometry.Area[U]
	pending   []Handle
	nodeStack []*node[U]
	seen      map[Handle]struct{}
}

// newHandleIter starts a pre-order walk rooted at n. Subtrees whose region
// does not intersect search are pruned as they are pushed; passing n's own
// region walks everything.
func newHandleIter[U geometry.Scalar](n *node[U], search geometry.Area[U]) *handleIter[U] {
	return &handleIter[U]{
		search:    search,
		nodeStack: []*node[U]{n},
	}
}

// descend is the query fast path. It moves the walk's starting point from
// the root to the smallest node whose region still wholly contains req,
// buffering the kept handles of every node it steps out of: an entry kept
// at an ancestor may still overlap req, so those handles stay candidates.
// Candidates are not guaranteed to intersect req; the consumer filters each
// one against its stored region.
//
// Must be called on a fresh iterator, before the first next.
func (it *handleIter[U]) descend(req geometry.Area[U]) {
	if len(it.nodeStack) != 1 || len(it.pending) != 0 {
		return
	}

	n := it.nodeStack[0]
	if !n.region.Contains(req) {
		return
	}

	for n.children != nil {
		stepped := false
		for _, child := range n.children {
			if child.region.Contains(req) {
				it.pending = append(it.pending, n.handles...)
				n = child
				stepped = true
				break
			}
		}
		if !stepped {
			break
		}
	}

	it.nodeStack[0] = n

	// A buffered ancestor handle could in principle be met again through
	// the subtree walk; the seen set makes each handle come out once.
	it.seen = make(map[Handle]struct{}, len(it.pending))
}

// next yields the next handle, or ok=false once the walk is exhausted.
// Exhausted iterators keep returning ok=false.
func (it *handleIter[U]) next() (Handle, bool) {
	for {
		for len(it.pending) > 0 {
			h := it.pending[len(it.pending)-1]
			it.pending = it.pending[:len(it.pending)-1]
			if it.mark(h) {
				return h, true
			}
		}

		if len(it.nodeStack) == 0 {
			return Handle{}, false
		}

		n := it.nodeStack[len(it.nodeStack)-1]
		it.nodeStack = it.nodeStack[:len(it.nodeStack)-1]

		if n.children != nil {
			for _, child := range n.children {
				if child.region.Intersects(it.search) {
					it.nodeStack = append(it.nodeStack, child)
				}
			}
		}

		it.pending = append(it.pending, n.handles...)
	}
}

// mark records h as yielded. Without a descend there is nothing to
// deduplicate, so the nil seen set admits everything.
func (it *handleIter[U]) mark(h Handle) bool {
	if it.seen == nil {
		return true
	}
	if _, ok := it.seen[h]; ok {
		return false
	}
	it.seen[h] = struct{}{}
	return true
}
