package qtree

import "github.com/linehan/mqtc/rng"

// promote splices out n's parent, attaching n directly to its
// grandparent in the parent's former slot. n's parent must have exactly
// one child (n itself) and must not be the tree root. Returns the
// removed parent node, which the caller discards.
func promote(n *node) *node {
	par := n.p
	grand := par.p
	if isLeftChild(par) {
		grand.l = n
	} else {
		grand.r = n
	}
	n.p = grand
	return par
}

// LeafInterchange swaps the tree positions of two leaves a and b,
// leaving every other node untouched. A no-op if a and b are the same
// node, nil, or unparented.
//
// Complexity: O(1).
func (t *Tree) LeafInterchange(a, b NodeHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	leafInterchange(a.n, b.n)
}

func leafInterchange(a, b *node) {
	if a == nil || b == nil || a == b {
		return
	}
	if a.p == nil || b.p == nil {
		return
	}

	aPar, bPar := a.p, b.p
	aLeft, bLeft := isLeftChild(a), isLeftChild(b)

	if aLeft {
		aPar.l = b
	} else {
		aPar.r = b
	}
	if bLeft {
		bPar.l = a
	} else {
		bPar.r = a
	}

	a.p = bPar
	b.p = aPar
}

// SubtreeInterchange swaps the subtrees rooted at a and b. Declines
// (no-op) when a and b are identical, either is the tree root, or
// neither is disjoint from the other (one is an ancestor of the other,
// which would disconnect the tree). Siblings sharing a parent are
// swapped between that parent's left and right slots, which leaves the
// unrooted shape unchanged.
//
// Complexity: O(1); disjointness/sibling checks walk to the root, O(depth).
func (t *Tree) SubtreeInterchange(a, b NodeHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	subtreeInterchange(a.n, b.n)
}

func subtreeInterchange(a, b *node) {
	if a == nil || b == nil || areEqual(a, b) {
		return
	}
	if isRoot(a) || isRoot(b) {
		return
	}

	if areSiblings(a, b) {
		if isLeftChild(a) {
			a.p.l, a.p.r = b, a
		} else {
			a.p.l, a.p.r = a, b
		}
		return
	}

	if !areDisjoint(a, b) {
		return
	}

	aPar, bPar := a.p, b.p

	if isLeftChild(a) {
		aPar.l = b
	} else {
		aPar.r = b
	}
	if isLeftChild(b) {
		bPar.l = a
	} else {
		bPar.r = a
	}

	a.p = bPar
	b.p = aPar
}

// SubtreeTransfer detaches the subtree rooted at a and grafts it onto
// the edge above b, so a becomes a new sibling of b. The slot a
// vacated is closed up: a's former sibling is promoted into a's
// parent's place, unless that parent was the tree root, in which case
// the sibling's own children are copied up into the root to avoid
// growing an extra sentinel level.
//
// Declines (no-op) under the same conditions as SubtreeInterchange: a
// and b equal, either is the root, or the two are non-disjoint.
// Transferring onto a sibling degenerates to the same swap
// SubtreeInterchange performs for sibling operands.
//
// Complexity: O(1); disjointness/sibling checks walk to the root.
func (t *Tree) SubtreeTransfer(a, b NodeHandle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	subtreeTransfer(a.n, b.n)
}

func subtreeTransfer(a, b *node) {
	if a == nil || b == nil || areEqual(a, b) {
		return
	}
	if isRoot(a) || isRoot(b) {
		return
	}

	if areSiblings(a, b) {
		if isLeftChild(a) {
			a.p.l, a.p.r = b, a
		} else {
			a.p.l, a.p.r = a, b
		}
		return
	}

	if !areDisjoint(a, b) {
		return
	}

	grafted := addBefore(b)

	par := a.p
	a.p = grafted
	if grafted.l == nil {
		grafted.l = a
	} else {
		grafted.r = a
	}

	var sib *node
	if par.l == a {
		par.l = nil
		sib = par.r
	} else {
		par.r = nil
		sib = par.l
	}

	if isRoot(par) {
		if isInternal(sib) {
			par.l = sib.l
			par.r = sib.r
			par.l.p = par
			par.r.p = par
		}
	} else {
		promote(sib)
	}
}

// MutationKind names one of the three shape-preserving elementary
// mutations a composed step may draw.
type MutationKind int

const (
	MutationLeafInterchange MutationKind = iota
	MutationSubtreeInterchange
	MutationSubtreeTransfer
)

// ComposeKMutation applies k elementary mutations to t in place, each
// drawn uniformly from the three operators and applied to operands
// selected fresh from t's current shape — mirroring the inner loop of
// the copy-then-test-once acceptance rule, which never inspects cost
// between steps. Returns the sequence of kinds actually drawn, for
// logging.
//
// Complexity: O(k) operator applications, each O(1) amortized.
func (t *Tree) ComposeKMutation(src *rng.Source, k int) []MutationKind {
	t.mu.Lock()
	defer t.mu.Unlock()

	kinds := make([]MutationKind, k)
	for i := 0; i < k; i++ {
		kind := MutationKind(src.Roll(3))
		kinds[i] = kind
		switch kind {
		case MutationLeafInterchange:
			a := randomLeafLocked(t.root, src)
			b := randomLeafLocked(t.root, src)
			leafInterchange(a, b)
		case MutationSubtreeInterchange:
			a := randomNodeLocked(t.root, src)
			b := randomNodeLocked(t.root, src)
			subtreeInterchange(a, b)
		case MutationSubtreeTransfer:
			a := randomNodeLocked(t.root, src)
			b := randomNodeLocked(t.root, src)
			subtreeTransfer(a, b)
		}
		if !isTernary(t.root) {
			panic("qtree: mutation broke the ternary shape invariant")
		}
	}
	return kinds
}

func randomNodeLocked(root *node, src *rng.Source) *node {
	var picked *node
	i := 1
	walkInorder(root, &i, func(h NodeHandle, ordinal int) {
		if src.Flip(1.0 / float64(ordinal)) {
			picked = h.n
		}
	})
	return picked
}

func randomLeafLocked(root *node, src *rng.Source) *node {
	n := root
	for n != nil && !isLeaf(n) {
		if src.Fair() {
			n = n.l
		} else {
			n = n.r
		}
	}
	return n
}
