package patricia

import "iter"

// Trie is an immutable persistent Patricia trie, mapping uint32 keys to payloads of
// type V. The zero value is the empty trie and ready to use:
//
//     t := patricia.Trie[string]{}.Insert(42, "Galaxy")
//     v, found := t.Find(42)   // returns "Galaxy", true
//
// Tries are values. Every modifying operation returns a new trie and leaves the
// receiver unchanged.
type Trie[V any] struct {
	root *node[V]
}

// Empty returns the empty trie.
func Empty[V any]() Trie[V] {
	return Trie[V]{}
}

// Singleton returns a trie containing exactly one key.
func Singleton[V any](key uint32, value V) Trie[V] {
	return Trie[V]{root: leaf(key, value)}
}

// FromSeq builds a trie by inserting every key-value pair of seq, from left to right.
// For duplicate keys the last value wins.
func FromSeq[V any](seq iter.Seq2[uint32, V]) Trie[V] {
	if seq == nil {
		return Trie[V]{}
	}
	var root *node[V]
	for k, v := range seq {
		root = insert(root, k, v, true)
	}
	return Trie[V]{root: root}
}

// IsEmpty returns true for the trie without any keys.
func (t Trie[V]) IsEmpty() bool {
	return t.root == nil
}

// Contains returns true if key is present in t.
func (t Trie[V]) Contains(key uint32) bool {
	return lookup(t.root, key) != nil
}

// Find returns the payload associated with key. If key is not present, the zero
// value of V is returned, together with found=false.
func (t Trie[V]) Find(key uint32) (V, bool) {
	if l := lookup(t.root, key); l != nil {
		return l.value, true
	}
	var none V
	return none, false
}

// Insert returns a trie with key associated to value, replacing an existing
// association for key.
func (t Trie[V]) Insert(key uint32, value V) Trie[V] {
	return Trie[V]{root: insert(t.root, key, value, true)}
}

// InsertNew returns a trie containing key. If key is already present, t is returned
// unchanged (see Same).
func (t Trie[V]) InsertNew(key uint32, value V) Trie[V] {
	return Trie[V]{root: insert(t.root, key, value, false)}
}

// Remove returns a trie without key. If key is not present, t is returned
// unchanged (see Same).
func (t Trie[V]) Remove(key uint32) Trie[V] {
	return Trie[V]{root: remove(t.root, key)}
}

// Merge returns the union of t and other. For keys present in both tries, the
// payload from t is kept.
func (t Trie[V]) Merge(other Trie[V]) Trie[V] {
	return Trie[V]{root: merge(t.root, other.root)}
}

// Same returns true if t and other are the very same incarnation of a trie.
// Insert and Remove return the same incarnation if they did not change anything.
func (t Trie[V]) Same(other Trie[V]) bool {
	return t.root == other.root
}

// Equal compares two tries structurally. Payloads are compared by eq; a nil eq
// compares keys only.
func (t Trie[V]) Equal(other Trie[V], eq func(V, V) bool) bool {
	return equal(t.root, other.root, eq)
}

// Count returns the number of keys in t. Tries do not store their size, so Count
// is O(n).
func (t Trie[V]) Count() int {
	n := 0
	walk(t.root, false, func(*node[V]) bool {
		n++
		return true
	})
	return n
}

// Min returns the smallest key of t and its payload, or found=false for the empty trie.
func (t Trie[V]) Min() (key uint32, value V, found bool) {
	if t.root == nil {
		return
	}
	l := leftmost(t.root)
	return l.prefix, l.value, true
}

// Max returns the largest key of t and its payload, or found=false for the empty trie.
func (t Trie[V]) Max() (key uint32, value V, found bool) {
	if t.root == nil {
		return
	}
	r := rightmost(t.root)
	return r.prefix, r.value, true
}
