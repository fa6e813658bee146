package qtree

import "github.com/linehan/mqtc/rng"

// NewTree builds a fresh ternary tree over the n items {0,...,n-1},
// inserting each one at a time through the sentinel root. An item sent
// into a full internal node sinks down a fair-coin-chosen branch until it
// reaches an open or convertible leaf slot; there is no ordering
// criterion (the tree carries no value-comparison direction, only
// shape), so the resulting topology depends entirely on the random
// source. See insert for the exact rule, grounded in the original
// ynode_insert's random-sink fallback.
//
// Complexity: O(n log n) expected descent cost across all insertions.
func NewTree(n int, opts ...TreeOption) (*Tree, error) {
	if n < 1 {
		return nil, ErrInvalidN
	}

	cfg := treeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	src := rng.New(cfg.seed)

	t := &Tree{root: newNode(internalValue), n: n}
	for v := 0; v < n; v++ {
		insert(t.root, v, src)
	}
	return t, nil
}

// insert places value into the tree rooted at n, following the same
// random-sink rule as the original C source: internal nodes with no
// usable value-comparison direction (all internal nodes carry the same
// sentinel) instead choose a branch by fair coin whenever both children
// are already occupied. A leaf receiving a second value is converted to
// an internal node carrying the leaf's old value and the new one as its
// two children, again ordered by a fair coin.
func insert(n *node, value int, src *rng.Source) {
	switch {
	case isInternal(n) || isRoot(n):
		switch {
		case isFull(n):
			if src.Fair() {
				insert(n.l, value, src)
			} else {
				insert(n.r, value, src)
			}
		case n.l == nil && n.r == nil:
			if src.Fair() {
				addLeft(n, value)
			} else {
				addRight(n, value)
			}
		case n.l == nil:
			addLeft(n, value)
		default:
			addRight(n, value)
		}
	default:
		if src.Fair() {
			addLeftLevel(n, value)
		} else {
			addRightLevel(n, value)
		}
	}
}

func addLeft(n *node, value int) *node {
	n.l = newNode(value)
	n.l.p = n
	return n.l
}

func addRight(n *node, value int) *node {
	n.r = newNode(value)
	n.r.p = n
	return n.r
}

// addLeftLevel converts leaf n into an internal node, installing value as
// a new left child and demoting its old value to the right child.
func addLeftLevel(n *node, value int) *node {
	old := n.value
	n.l = newNode(value)
	n.r = newNode(old)
	n.value = internalValue
	n.l.p = n
	n.r.p = n
	return n.l
}

// addRightLevel is addLeftLevel with the two new children mirrored.
func addRightLevel(n *node, value int) *node {
	old := n.value
	n.r = newNode(value)
	n.l = newNode(old)
	n.value = internalValue
	n.r.p = n
	n.l.p = n
	return n.r
}

// addBefore splices a fresh internal node between a and its parent,
// taking a's former slot and reattaching a as its single child. Used by
// SubtreeTransfer to graft a detached subtree at an existing edge.
func addBefore(a *node) *node {
	par := a.p
	created := newNode(internalValue)
	a.p = created
	created.p = par

	if par.l == a {
		created.l = a
		par.l = created
	} else {
		created.r = a
		par.r = created
	}
	return created
}

// InsertOnPath grafts a as the child reached by following path (a
// {L,R}+ string) from the tree root — the inverse of Path, used to
// reinstall a node a caller detached earlier via its recorded path.
func (t *Tree) InsertOnPath(a NodeHandle, path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(path) == 0 || a.n == nil {
		return
	}
	n := t.root
	for i := 0; i < len(path)-1; i++ {
		if path[i] == 'L' {
			n = n.l
		} else {
			n = n.r
		}
	}
	if path[len(path)-1] == 'L' {
		n.l = a.n
	} else {
		n.r = a.n
	}
	a.n.p = n
}
