package btree

import (
	"cmp"
	"iter"

	"github.com/xlab/treeprint"
)

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables holding clones of nodes.

- We use a programming-style reminiscent of functional programming (see remarks on
  re-balancing) where it makes things easier to understand.

- A new modified incarnation of a tree always is reflected by a new tree.root.

*/

const defaultDegree = 4

// Tree is an in-memory B-tree. An empty instance is usable as an empty tree, i.e.
// this is legal:
//
//     tree := btree.Tree[int,int]{}.With(1, 42)
//
// returning a tree containing a single node ⟨1⟩ associated with value 42.
//
type Tree[K cmp.Ordered, T any] struct {
	root          *xnode[K, T]
	depth         uint
	size          int
	lowWaterMark  uint // minimum number of items of non-root nodes
	highWaterMark uint // maximum number of items of any node
}

// Immutable constructs a B-tree with options, if you need any.
// Use it like this:
//
//     tree := btree.Immutable[int, string](Degree(16))
//     tree = tree.With(42, "Galaxy")
//     value, found := tree.Find(42)   // returns "Galaxy"
//
func Immutable[K cmp.Ordered, T any](opts ...Option) Tree[K, T] {
	var tree Tree[K, T]
	tree.lowWaterMark, tree.highWaterMark = watermarks(defaultDegree)
	for _, option := range opts {
		option(&tree.lowWaterMark, &tree.highWaterMark)
	}
	return tree
}

// Option is a type to help initializing B-trees at creation time.
type Option func(low, high *uint)

// Degree is an option to set the minimum number of children an inner node of the tree
// owns. The lower bound for the degree is 2.
//
// Use it like this:
//
//     tree := btree.Immutable[int, string](Degree(16))
//
func Degree(n int) Option {
	return func(low, high *uint) {
		*low, *high = watermarks(n)
	}
}

func watermarks(degree int) (uint, uint) {
	degree = max(2, degree)
	return uint(degree - 1), uint(2*degree - 1)
}

// marks returns the water marks of a tree, replacing them with defaults for
// zero-value trees.
func (tree Tree[K, T]) marks() (uint, uint) {
	if tree.highWaterMark == 0 {
		return watermarks(defaultDegree)
	}
	return tree.lowWaterMark, tree.highWaterMark
}

// --- API -------------------------------------------------------------------

// Len returns the number of keys in tree.
func (tree Tree[K, T]) Len() int {
	return tree.size
}

// Find locates a key in a tree, if present, and returns the value associated with the key.
// If `key` is not found, the zero value for type T will be returned, together with found=false.
func (tree Tree[K, T]) Find(key K) (T, bool) {
	var found bool
	var path slotPath[K, T] = make([]slot[K, T], 0, tree.depth)
	if found, path = tree.findKeyAndPath(key, path); found {
		return path.last().item().value, true
	}
	var none T
	return none, false
}

// With returns a copy of a tree with a new key inserted, which is associated with `value`.
// If an entry for key is already present in tree, the associated value will be replaced
// (in a new incarnation of the tree, nevertheless).
func (tree Tree[K, T]) With(key K, value T) Tree[K, T] {
	var path slotPath[K, T] = make([]slot[K, T], 0, tree.depth)
	var found bool
	if found, path = tree.findKeyAndPath(key, path); found {
		return tree.replacing(key, value, path)
	}
	tracer().Debugf("insert: slot path = %s", path)
	item := xitem[K, T]{key, value}
	newTree := tree
	newTree.lowWaterMark, newTree.highWaterMark = tree.marks()
	newTree.size++
	if tree.root == nil { // virgin tree => insert first node and return
		newTree.root = (&xnode[K, T]{}).withInsertedItem(item, 0)
		newTree.depth = 1
		return newTree
	}
	leafSlot := path.last()
	assertThat(leafSlot.node.isLeaf(), "attempt to insert item at non-leaf")
	cow := leafSlot.node.withInsertedItem(item, leafSlot.index) // copy-on-write
	tracer().Debugf("insert: created copy of (leaf + key@%d) = %s", leafSlot.index, cow)
	newRoot := path.dropLast().foldR(splitAndClone[K, T](newTree.highWaterMark),
		slot[K, T]{node: cow, index: leafSlot.index},
	)
	if newRoot.node.overfull(newTree.highWaterMark) {
		tracer().Debugf("insert: splitting root %s", newRoot.node)
		top := &xnode[K, T]{children: []*xnode[K, T]{newRoot.node}}
		newRoot.node = top.withSplitChild(0, newRoot.node)
		newTree.depth++
	}
	newTree.root = newRoot.node
	return newTree
}

// WithDeleted returns a copy of a tree with key deleted, if present, together with its
// associated value. If key is not found, tree is returned unchanged.
func (tree Tree[K, T]) WithDeleted(key K) Tree[K, T] {
	var path slotPath[K, T] = make([]slot[K, T], 0, tree.depth)
	var found bool
	if found, path = tree.findKeyAndPath(key, path); !found {
		return tree // no need for modification
	}
	tracer().Debugf("deletion: slot path = %s", path)
	newTree := tree
	newTree.lowWaterMark, newTree.highWaterMark = tree.marks()
	newTree.size--
	del := path.last()
	var leafSlot slot[K, T]
	if del.node.isLeaf() {
		cow := del.node.withDeletedItem(del.index) // copy-on-write
		tracer().Debugf("created copy of leaf w/out deleted item: %v", cow)
		leafSlot = slot[K, T]{node: cow, index: del.index}
	} else { // for inner node:
		// replace item with rightmost item of left subtree, continue with path to that leaf
		path = del.predecessorPath(path)
		l := path.last()
		cow := l.node.withDeletedItem(l.index) // remove predecessor from its leaf
		tracer().Debugf("moved predecessor %v up, leaf is now %v", l.item().key, cow)
		leafSlot = slot[K, T]{node: cow, index: l.index}
	}
	// balance from leaf-node upwards, starting at the leaf where we deleted an item
	tracer().Debugf("after delete: path = %v", path)
	newRoot := path.dropLast().foldR(balance[K, T](newTree.lowWaterMark),
		leafSlot,
	)
	newTree.root = newRoot.node
	if newRoot.len() == 0 { // catch border cases where root is empty after deletion
		if newRoot.node.isLeaf() {
			newTree.root = nil
			newTree.depth = 0
		} else {
			newTree.root = newRoot.node.children[0]
			newTree.depth--
		}
	}
	return newTree
}

// Min returns the smallest key of tree, together with its value.
func (tree Tree[K, T]) Min() (K, T, bool) {
	if tree.root == nil {
		var k K
		var v T
		return k, v, false
	}
	node := tree.root
	for !node.isLeaf() {
		node = node.children[0]
	}
	return node.items[0].key, node.items[0].value, true
}

// Max returns the largest key of tree, together with its value.
func (tree Tree[K, T]) Max() (K, T, bool) {
	if tree.root == nil {
		var k K
		var v T
		return k, v, false
	}
	node := tree.root
	for !node.isLeaf() {
		node = node.children[len(node.children)-1]
	}
	last := node.items[len(node.items)-1]
	return last.key, last.value, true
}

// All returns an iterator over all key/value pairs of tree, in ascending key order.
func (tree Tree[K, T]) All() iter.Seq2[K, T] {
	return func(yield func(K, T) bool) {
		if tree.root != nil {
			tree.root.walk(yield)
		}
	}
}

// Dump renders the node structure of tree, for debugging.
func (tree Tree[K, T]) Dump() string {
	p := treeprint.New()
	if tree.root == nil {
		p.AddNode("∅")
	} else {
		dumpNode(p, tree.root)
	}
	return p.String()
}

func dumpNode[K cmp.Ordered, T any](p treeprint.Tree, node *xnode[K, T]) {
	if node.isLeaf() {
		p.AddNode(node.String())
		return
	}
	branch := p.AddBranch(node.String())
	for _, ch := range node.children {
		dumpNode(branch, ch)
	}
}
