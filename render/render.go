// Package render formats a champion tree (package qtree) for the final
// report described in spec section 6: item indices at leaves, a "." at
// every internal node, with no attempt at the original's full ASCII-art
// box layout (spec section 1 lists ASCII tree pretty-printing as an
// external collaborator, interface only — this package supplies the
// minimal interface the reporting contract actually requires).
package render

import (
	"strconv"
	"strings"

	"github.com/linehan/mqtc/qtree"
)

// Tree renders t as a parenthesized pre-order expression: internal nodes
// print as "." followed by their two children in parentheses; leaves
// print their item index. Grounded in the shape the original's
// ynode_print/tt_print family reports (item indices at leaves, a
// placeholder at internal nodes), without reproducing that family's
// proportional-spacing box-drawing algorithm.
//
// Complexity: O(n).
func Tree(t *qtree.Tree) string {
	var b strings.Builder
	root := t.Root()
	b.WriteString(".(")
	writeNode(&b, t, root.Left())
	b.WriteString(",")
	writeNode(&b, t, root.Right())
	b.WriteString(")")
	return b.String()
}

func writeNode(b *strings.Builder, t *qtree.Tree, h qtree.NodeHandle) {
	if !h.Valid() {
		return
	}
	if v, ok := h.Value(); ok {
		b.WriteString(strconv.Itoa(v))
		return
	}
	b.WriteString(".(")
	writeNode(b, t, h.Left())
	b.WriteString(",")
	writeNode(b, t, h.Right())
	b.WriteString(")")
}
