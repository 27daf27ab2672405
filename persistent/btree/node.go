package btree

import (
	"cmp"
	"fmt"
	"sort"
	"strings"
)

// xitem is a key/value entry of a node.
type xitem[K cmp.Ordered, T any] struct {
	key   K
	value T
}

// xnode is a node of a B-tree. Leafs have no children, inner nodes own exactly
// len(items)+1 children. Nodes are never modified once they are part of a tree.
type xnode[K cmp.Ordered, T any] struct {
	items    []xitem[K, T]
	children []*xnode[K, T]
}

func (node *xnode[K, T]) String() string {
	var sb strings.Builder
	sb.WriteRune('[')
	for i, item := range node.items {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(fmt.Sprint(item.key))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (node *xnode[K, T]) isLeaf() bool {
	return len(node.children) == 0
}

func (node *xnode[K, T]) overfull(highWaterMark uint) bool {
	return uint(len(node.items)) > highWaterMark
}

func (node *xnode[K, T]) underfull(lowWaterMark uint) bool {
	return uint(len(node.items)) < lowWaterMark
}

func (node *xnode[K, T]) clone() *xnode[K, T] {
	cow := &xnode[K, T]{items: make([]xitem[K, T], len(node.items))}
	copy(cow.items, node.items)
	if !node.isLeaf() {
		cow.children = make([]*xnode[K, T], len(node.children))
		copy(cow.children, node.children)
	}
	return cow
}

// findSlot returns the index of key in node.items, or the index where key would
// have to be inserted. For inner nodes, this is also the index of the child to descend to.
func (node *xnode[K, T]) findSlot(key K) (bool, int) {
	items, itemcnt := node.items, len(node.items)
	slotinx := sort.Search(itemcnt, func(i int) bool {
		return cmp.Compare(items[i].key, key) >= 0 // smallest i for which this is true
	})
	return slotinx < itemcnt && cmp.Compare(items[slotinx].key, key) == 0, slotinx
}

func (node *xnode[K, T]) withReplacedValue(value T, at int) *xnode[K, T] {
	assertThat(at < len(node.items), "given item index out of range: %d ≤ %d", len(node.items), at)
	cow := node.clone()
	cow.items[at].value = value
	return cow
}

// withInsertedItem inserts an item into a leaf.
func (node *xnode[K, T]) withInsertedItem(item xitem[K, T], at int) *xnode[K, T] {
	assertThat(at <= len(node.items), "given item index out of range: %d < %d", len(node.items), at)
	assertThat(node.isLeaf(), "attempt to insert item w/out child into inner node")
	cow := &xnode[K, T]{items: make([]xitem[K, T], 0, len(node.items)+1)}
	cow.items = append(cow.items, node.items[:at]...)
	cow.items = append(cow.items, item)
	cow.items = append(cow.items, node.items[at:]...)
	return cow
}

// withDeletedItem removes an item from a leaf.
func (node *xnode[K, T]) withDeletedItem(at int) *xnode[K, T] {
	assertThat(at < len(node.items), "given item index out of range: %d ≤ %d", len(node.items), at)
	assertThat(node.isLeaf(), "attempt to delete item from inner node")
	cow := &xnode[K, T]{items: make([]xitem[K, T], 0, len(node.items)-1)}
	cow.items = append(cow.items, node.items[:at]...)
	cow.items = append(cow.items, node.items[at+1:]...)
	return cow
}

// withSplitChild returns a copy of node, where child replaces node.children[at]
// after having been split in two halves around its median item. The median moves
// up into the copy of node.
//
// It's legal to pass in a node without items and a single child (in order to create
// a new Tree.root).
//
func (node *xnode[K, T]) withSplitChild(at int, child *xnode[K, T]) *xnode[K, T] {
	half := len(child.items) / 2
	median := child.items[half]
	tracer().Debugf("split: child %s at median %v", child, median.key)
	siblingL := &xnode[K, T]{items: append([]xitem[K, T]{}, child.items[:half]...)}
	siblingR := &xnode[K, T]{items: append([]xitem[K, T]{}, child.items[half+1:]...)}
	if !child.isLeaf() {
		siblingL.children = append([]*xnode[K, T]{}, child.children[:half+1]...)
		siblingR.children = append([]*xnode[K, T]{}, child.children[half+1:]...)
	}
	cow := &xnode[K, T]{
		items:    make([]xitem[K, T], 0, len(node.items)+1),
		children: make([]*xnode[K, T], 0, len(node.children)+1),
	}
	cow.items = append(cow.items, node.items[:at]...)
	cow.items = append(cow.items, median)
	cow.items = append(cow.items, node.items[at:]...)
	cow.children = append(cow.children, node.children[:at]...)
	cow.children = append(cow.children, siblingL, siblingR)
	cow.children = append(cow.children, node.children[at+1:]...)
	return cow
}

// withCutRight returns a copy of node without its rightmost item and child.
func (node *xnode[K, T]) withCutRight() (*xnode[K, T], xitem[K, T], *xnode[K, T]) {
	assertThat(len(node.items) > 0, "attempt to cut right item from empty node")
	cow := node.clone()
	item := cow.items[len(cow.items)-1]
	cow.items = cow.items[:len(cow.items)-1]
	var rnode *xnode[K, T]
	if !cow.isLeaf() {
		rnode = cow.children[len(cow.children)-1]
		cow.children = cow.children[:len(cow.children)-1]
	}
	return cow, item, rnode
}

// withCutLeft returns a copy of node without its leftmost item and child.
func (node *xnode[K, T]) withCutLeft() (*xnode[K, T], xitem[K, T], *xnode[K, T]) {
	assertThat(len(node.items) > 0, "attempt to cut left item from empty node")
	cow := node.clone()
	item := cow.items[0]
	cow.items = cow.items[1:]
	var lnode *xnode[K, T]
	if !cow.isLeaf() {
		lnode = cow.children[0]
		cow.children = cow.children[1:]
	}
	return cow, item, lnode
}

// concat creates a new node from the items and children of left, a separator
// item and the items and children of right.
func concat[K cmp.Ordered, T any](left *xnode[K, T], sep xitem[K, T], right *xnode[K, T]) *xnode[K, T] {
	n := &xnode[K, T]{items: make([]xitem[K, T], 0, len(left.items)+len(right.items)+1)}
	n.items = append(n.items, left.items...)
	n.items = append(n.items, sep)
	n.items = append(n.items, right.items...)
	if !left.isLeaf() {
		n.children = make([]*xnode[K, T], 0, len(left.children)+len(right.children))
		n.children = append(n.children, left.children...)
		n.children = append(n.children, right.children...)
	}
	return n
}

// walk visits the items of the subtree at node in-order, until yield returns false.
func (node *xnode[K, T]) walk(yield func(K, T) bool) bool {
	for i, item := range node.items {
		if !node.isLeaf() && !node.children[i].walk(yield) {
			return false
		}
		if !yield(item.key, item.value) {
			return false
		}
	}
	if !node.isLeaf() {
		return node.children[len(node.items)].walk(yield)
	}
	return true
}
