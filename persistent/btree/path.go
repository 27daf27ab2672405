package btree

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// --- Slot ------------------------------------------------------------------

// slot holds a step of a path.
type slot[K cmp.Ordered, T any] struct {
	node  *xnode[K, T]
	index int
}

func (s slot[K, T]) String() string {
	return strconv.Itoa(s.index) + "@" + s.node.String()
}

func (s slot[K, T]) item() xitem[K, T] {
	return s.node.items[s.index]
}

func (s slot[K, T]) len() int {
	if s.node == nil {
		return 0
	}
	return len(s.node.items)
}

// leftSibling returns the child of s.node left of the child at s.index, or nil.
func (s slot[K, T]) leftSibling() *xnode[K, T] {
	if s.node == nil || s.node.isLeaf() || s.index == 0 {
		return nil
	}
	return s.node.children[s.index-1]
}

// rightSibling returns the child of s.node right of the child at s.index, or nil.
func (s slot[K, T]) rightSibling() *xnode[K, T] {
	if s.node == nil || s.node.isLeaf() || s.index >= len(s.node.children)-1 {
		return nil
	}
	return s.node.children[s.index+1]
}

// predecessorPath extends a path ending in an inner-node slot s to the leaf holding
// the predecessor of s.item(). The inner node is replaced in the path by a copy,
// in which the predecessor substitutes the item at s.index.
func (s slot[K, T]) predecessorPath(path slotPath[K, T]) slotPath[K, T] {
	assertThat(!s.node.isLeaf(), "attempt to find predecessor path for leaf")
	assertThat(path.last().node == s.node, "slot is not at the end of path")
	cow := s.node.clone()
	path[len(path)-1].node = cow
	node := s.node.children[s.index]
	for !node.isLeaf() {
		path = append(path, slot[K, T]{node: node, index: len(node.children) - 1})
		node = node.children[len(node.children)-1]
	}
	leaf := slot[K, T]{node: node, index: len(node.items) - 1}
	cow.items[s.index] = leaf.item()
	return append(path, leaf)
}

// --- Path ------------------------------------------------------------------

type slotPath[K cmp.Ordered, T any] []slot[K, T]

func (path slotPath[K, T]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath[K, T]) last() slot[K, T] {
	if len(path) == 0 {
		return slot[K, T]{}
	}
	return path[len(path)-1]
}

func (path slotPath[K, T]) foldR(f func(slot[K, T], slot[K, T]) slot[K, T], zero slot[K, T]) slot[K, T] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

func (path slotPath[K, T]) dropLast() slotPath[K, T] {
	if len(path) == 0 {
		return path
	}
	return path[:len(path)-1]
}
