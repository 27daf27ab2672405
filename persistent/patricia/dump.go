package patricia

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the node structure of t as an indented tree, for debugging.
// Keys of leaves are printed with fmtKey; if fmtKey is nil, they are printed in hex.
func (t Trie[V]) Dump(fmtKey func(uint32) string) string {
	if fmtKey == nil {
		fmtKey = func(k uint32) string {
			return fmt.Sprintf("%#08x", k)
		}
	}
	printer := treeprint.New()
	if t.root == nil {
		printer.AddNode("∅")
	} else {
		dumpNode(printer, t.root, fmtKey)
	}
	return printer.String()
}

func dumpNode[V any](printer treeprint.Tree, n *node[V], fmtKey func(uint32) string) {
	if n.isLeaf() {
		if _, isUnit := any(n.value).(struct{}); isUnit {
			printer.AddNode(fmtKey(n.prefix))
		} else {
			printer.AddNode(fmt.Sprintf("%s ↦ %v", fmtKey(n.prefix), n.value))
		}
		return
	}
	b := printer.AddBranch(fmt.Sprintf("%#08x/%#08x", n.prefix, n.mask))
	dumpNode(b, n.left, fmtKey)
	dumpNode(b, n.right, fmtKey)
}
