package qtree

import "github.com/linehan/mqtc/rng"

// NodeHandle is an opaque reference to a node within a specific Tree,
// returned by its traversal and selection methods. The zero value is
// invalid; test with Valid before use.
type NodeHandle struct {
	n *node
}

// Valid reports whether h refers to an actual node.
func (h NodeHandle) Valid() bool { return h.n != nil }

// IsLeaf reports whether h holds an item value.
func (h NodeHandle) IsLeaf() bool { return isLeaf(h.n) }

// IsInternal reports whether h roots a subtree of two or more items. The
// sentinel root is not internal.
func (h NodeHandle) IsInternal() bool { return isInternal(h.n) }

// IsRoot reports whether h is the tree's sentinel root.
func (h NodeHandle) IsRoot() bool { return isRoot(h.n) }

// Value returns the item index at h and true, or (0, false) if h is not a leaf.
func (h NodeHandle) Value() (int, bool) {
	if !isLeaf(h.n) {
		return 0, false
	}
	return h.n.value, true
}

// Equal reports whether h and o refer to the same node.
func (h NodeHandle) Equal(o NodeHandle) bool { return h.n == o.n }

// Left, Right, Parent return the corresponding link, or an invalid handle.
func (h NodeHandle) Left() NodeHandle   { return NodeHandle{n: deref(h.n, func(n *node) *node { return n.l })} }
func (h NodeHandle) Right() NodeHandle  { return NodeHandle{n: deref(h.n, func(n *node) *node { return n.r })} }
func (h NodeHandle) Parent() NodeHandle { return NodeHandle{n: deref(h.n, func(n *node) *node { return n.p })} }

func deref(n *node, f func(*node) *node) *node {
	if n == nil {
		return nil
	}
	return f(n)
}

// Root returns the tree's sentinel root handle.
func (t *Tree) Root() NodeHandle {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return NodeHandle{n: t.root}
}

// IsTernary reports whether the tree currently satisfies its shape
// invariant: for L leaves, exactly L-2 internal nodes (0 if L<=2).
func (t *Tree) IsTernary() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return isTernary(t.root)
}

// Walk performs an inorder traversal from the tree root, applying fn at
// every node (leaf and internal) in left-subtree, self, right-subtree
// order — the same shape callers of ynode_traverse_inorder relied on to
// accumulate values deterministically. The ordinal passed to fn starts
// at 1, matching the original's reservoir-sampling convention.
func (t *Tree) Walk(fn func(h NodeHandle, ordinal int)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i := 1
	walkInorder(t.root, &i, fn)
}

func walkInorder(n *node, i *int, fn func(NodeHandle, int)) {
	if n == nil {
		return
	}
	walkInorder(n.l, i, fn)
	fn(NodeHandle{n: n}, *i)
	*i++
	walkInorder(n.r, i, fn)
}

// LeafValues returns the item values of every leaf under h, in inorder.
func (t *Tree) LeafValues(h NodeHandle) []int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []int
	collectLeaves(h.n, nil, &out)
	return out
}

// LeafValuesExcluding returns every leaf value in the whole tree except
// those whose path passes through excl's subtree.
func (t *Tree) LeafValuesExcluding(excl NodeHandle) []int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []int
	collectLeaves(t.root, excl.n, &out)
	return out
}

func collectLeaves(n, excl *node, out *[]int) {
	if n == nil {
		return
	}
	if isLeaf(n) {
		if excl == nil || !isSubtreeOf(n, excl) {
			*out = append(*out, n.value)
		}
		return
	}
	collectLeaves(n.l, excl, out)
	collectLeaves(n.r, excl, out)
}

// CountLeaves reports the number of leaves under h.
func (t *Tree) CountLeaves(h NodeHandle) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return countLeaves(h.n)
}

// CountLeavesExcluding reports the number of leaves in the whole tree
// excluding excl's subtree.
func (t *Tree) CountLeavesExcluding(excl NodeHandle) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return countLeavesExcluding(t.root, excl.n)
}

// Sibling returns the handle's sibling, or an invalid handle at the root
// or for an unparented node.
func (t *Tree) Sibling(h NodeHandle) NodeHandle {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if h.n == nil || h.n.p == nil {
		return NodeHandle{}
	}
	if h.n.p.l == h.n {
		return NodeHandle{n: h.n.p.r}
	}
	return NodeHandle{n: h.n.p.l}
}

// RandomNode selects a uniformly random node (leaf or internal) from the
// whole tree via reservoir sampling over the inorder traversal: the i-th
// node examined replaces the current pick with probability 1/i.
func (t *Tree) RandomNode(src *rng.Source) NodeHandle {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var picked *node
	i := 1
	walkInorder(t.root, &i, func(h NodeHandle, ordinal int) {
		if src.Flip(1.0 / float64(ordinal)) {
			picked = h.n
		}
	})
	return NodeHandle{n: picked}
}

// RandomLeaf selects a random leaf by descending from the root, choosing
// the left or right branch on a fair coin at every internal node until a
// leaf is reached. The result is not uniform over leaves when the tree is
// unbalanced: a shallow leaf is picked more often than a deep one.
func (t *Tree) RandomLeaf(src *rng.Source) NodeHandle {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := t.root
	for n != nil && !isLeaf(n) {
		if src.Fair() {
			n = n.l
		} else {
			n = n.r
		}
	}
	return NodeHandle{n: n}
}

// Path returns the {L,R}+ path from the tree root to h, root-to-node order.
func (t *Tree) Path(h NodeHandle) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var rev []byte
	for p := h.n; p != nil && p.p != nil; p = p.p {
		if isLeftChild(p) {
			rev = append(rev, 'L')
		} else {
			rev = append(rev, 'R')
		}
	}
	out := make([]byte, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}
	return string(out)
}
