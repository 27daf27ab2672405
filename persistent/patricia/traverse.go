package patricia

import (
	"iter"

	"github.com/npillmayer/intcoll/maybe"
)

// maxDepth is the maximum number of branches on a path from the root to a leaf.
const maxDepth = 32

// walk calls yield for every leaf of t, in ascending key order or, if backward is
// set, in descending order. It stops as soon as yield returns false and reports
// whether all leaves have been visited.
//
// walk does not recurse. Pending sub-tries are held on an explicit stack: for every
// branch the walk continues with the near child and pushes the far one. Branches
// with two leaves are handled without touching the stack.
func walk[V any](t *node[V], backward bool, yield func(*node[V]) bool) bool {
	if t == nil {
		return true
	}
	stack := make([]*node[V], 0, maxDepth)
	n := t
	for {
		if n.isLeaf() {
			if !yield(n) {
				return false
			}
		} else {
			near, far := n.left, n.right
			if backward {
				near, far = far, near
			}
			if !near.isLeaf() || !far.isLeaf() {
				stack = append(stack, far)
				n = near
				continue
			}
			if !yield(near) || !yield(far) {
				return false
			}
		}
		if len(stack) == 0 {
			return true
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}
}

// Iterate calls action for every key of t, in ascending order.
func (t Trie[V]) Iterate(action func(key uint32, value V)) {
	walk(t.root, false, func(l *node[V]) bool {
		action(l.prefix, l.value)
		return true
	})
}

// IterateBack calls action for every key of t, in descending order.
func (t Trie[V]) IterateBack(action func(key uint32, value V)) {
	walk(t.root, true, func(l *node[V]) bool {
		action(l.prefix, l.value)
		return true
	})
}

// Fold threads an accumulator through all keys of t, in ascending order, and returns
// the final accumulator.
func Fold[V, S any](t Trie[V], folder func(S, uint32, V) S, initial S) S {
	acc := initial
	walk(t.root, false, func(l *node[V]) bool {
		acc = folder(acc, l.prefix, l.value)
		return true
	})
	return acc
}

// FoldBack is like Fold, but visits the keys in descending order.
func FoldBack[V, S any](t Trie[V], folder func(S, uint32, V) S, initial S) S {
	acc := initial
	walk(t.root, true, func(l *node[V]) bool {
		acc = folder(acc, l.prefix, l.value)
		return true
	})
	return acc
}

// TryPick applies chooser to the keys of t in ascending order and returns the first
// result which is not Nothing. If no such result exists, TryPick returns Nothing.
func TryPick[V, R any](t Trie[V], chooser func(uint32, V) maybe.Maybe[R]) maybe.Maybe[R] {
	result := maybe.Nothing[R]()
	walk(t.root, false, func(l *node[V]) bool {
		if r := chooser(l.prefix, l.value); !r.IsNothing() {
			result = r
			return false
		}
		return true
	})
	return result
}

// All returns an iterator over all key-payload pairs of t, in ascending key order.
// The iterator may be used any number of times.
func (t Trie[V]) All() iter.Seq2[uint32, V] {
	return func(yield func(uint32, V) bool) {
		walk(t.root, false, func(l *node[V]) bool {
			return yield(l.prefix, l.value)
		})
	}
}

// Backward returns an iterator over all key-payload pairs of t, in descending key order.
func (t Trie[V]) Backward() iter.Seq2[uint32, V] {
	return func(yield func(uint32, V) bool) {
		walk(t.root, true, func(l *node[V]) bool {
			return yield(l.prefix, l.value)
		})
	}
}

// Keys returns an iterator over all keys of t, in ascending order.
func (t Trie[V]) Keys() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		walk(t.root, false, func(l *node[V]) bool {
			return yield(l.prefix)
		})
	}
}
