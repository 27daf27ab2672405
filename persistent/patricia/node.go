package patricia

/*
Remarks:
--------

- Nodes are never modified after construction. Every operation returning a node
  either returns one of its inputs unchanged, or a freshly allocated node.

- Operations signal “nothing changed” by returning their input node, so callers
  may test for changes with pointer comparison and keep sharing their own node.

- A nil node is the empty trie. Inner nodes never have a nil child.

- Recursion depth of all node operations is bounded by the key width (32 bits
  plus a leaf level).

*/

// node is a node of a Patricia trie. A node with mask 0 is a leaf, holding its key
// in prefix. Otherwise it is a branch, where all keys share prefix above the single
// bit in mask, keys with the mask-bit cleared live in left and the others in right.
type node[V any] struct {
	prefix      uint32
	mask        uint32
	left, right *node[V]
	value       V
}

func leaf[V any](key uint32, value V) *node[V] {
	return &node[V]{prefix: key, value: value}
}

func (n *node[V]) isLeaf() bool {
	return n.mask == 0
}

// branch is a smart constructor for inner nodes, pruning empty children.
func branch[V any](prefix, m uint32, left, right *node[V]) *node[V] {
	if left == nil {
		return right
	} else if right == nil {
		return left
	}
	return &node[V]{prefix: prefix, mask: m, left: left, right: right}
}

// join combines two tries t0 and t1 with prefixes p0 and p1 into a new branch.
// The prefixes must differ above the branching bits of both tries.
func join[V any](p0 uint32, t0 *node[V], p1 uint32, t1 *node[V]) *node[V] {
	m := branchingBit(p0, p1)
	tracer().Debugf("join %#08x and %#08x at bit %#08x", p0, p1, m)
	if zeroBit(p0, m) {
		return &node[V]{prefix: maskPrefix(p0, m), mask: m, left: t0, right: t1}
	}
	return &node[V]{prefix: maskPrefix(p0, m), mask: m, left: t1, right: t0}
}

// lookup returns the leaf for key, or nil.
func lookup[V any](t *node[V], key uint32) *node[V] {
	for t != nil {
		if t.isLeaf() {
			if t.prefix == key {
				return t
			}
			return nil
		}
		if !matchPrefix(key, t.prefix, t.mask) {
			return nil
		}
		if zeroBit(key, t.mask) {
			t = t.left
		} else {
			t = t.right
		}
	}
	return nil
}

// insert returns a trie containing key. If key is already present, its payload will
// be replaced with value if overwrite is set; otherwise t is returned unchanged.
func insert[V any](t *node[V], key uint32, value V, overwrite bool) *node[V] {
	if t == nil {
		return leaf(key, value)
	}
	if t.isLeaf() {
		if t.prefix == key {
			if !overwrite {
				return t
			}
			return leaf(key, value)
		}
		return join(key, leaf(key, value), t.prefix, t)
	}
	if !matchPrefix(key, t.prefix, t.mask) {
		return join(key, leaf(key, value), t.prefix, t)
	}
	if zeroBit(key, t.mask) {
		l := insert(t.left, key, value, overwrite)
		if l == t.left {
			return t
		}
		return &node[V]{prefix: t.prefix, mask: t.mask, left: l, right: t.right}
	}
	r := insert(t.right, key, value, overwrite)
	if r == t.right {
		return t
	}
	return &node[V]{prefix: t.prefix, mask: t.mask, left: t.left, right: r}
}

// remove returns a trie without key. If key is not present, t is returned.
func remove[V any](t *node[V], key uint32) *node[V] {
	switch {
	case t == nil:
		return nil
	case t.isLeaf():
		if t.prefix == key {
			return nil
		}
		return t
	case !matchPrefix(key, t.prefix, t.mask):
		return t
	case zeroBit(key, t.mask):
		l := remove(t.left, key)
		if l == t.left {
			return t
		}
		return branch(t.prefix, t.mask, l, t.right)
	}
	r := remove(t.right, key)
	if r == t.right {
		return t
	}
	return branch(t.prefix, t.mask, t.left, r)
}

// merge returns the union of a and b. For keys present in both, the payload of a wins.
// Sub-tries shared between a and b are not visited.
func merge[V any](a, b *node[V]) *node[V] {
	switch {
	case a == b:
		return a
	case a == nil:
		return b
	case b == nil:
		return a
	case b.isLeaf():
		return insert(a, b.prefix, b.value, false)
	case a.isLeaf():
		return insert(b, a.prefix, a.value, true)
	}
	// a and b are branches
	switch {
	case a.mask == b.mask && a.prefix == b.prefix:
		l, r := merge(a.left, b.left), merge(a.right, b.right)
		if l == a.left && r == a.right {
			return a
		}
		return &node[V]{prefix: a.prefix, mask: a.mask, left: l, right: r}
	case a.mask > b.mask && matchPrefix(b.prefix, a.prefix, a.mask):
		tracer().Debugf("merge: %#08x/%#08x contains %#08x", a.prefix, a.mask, b.prefix)
		if zeroBit(b.prefix, a.mask) {
			l := merge(a.left, b)
			if l == a.left {
				return a
			}
			return &node[V]{prefix: a.prefix, mask: a.mask, left: l, right: a.right}
		}
		r := merge(a.right, b)
		if r == a.right {
			return a
		}
		return &node[V]{prefix: a.prefix, mask: a.mask, left: a.left, right: r}
	case b.mask > a.mask && matchPrefix(a.prefix, b.prefix, b.mask):
		tracer().Debugf("merge: %#08x/%#08x contains %#08x", b.prefix, b.mask, a.prefix)
		if zeroBit(a.prefix, b.mask) {
			return &node[V]{prefix: b.prefix, mask: b.mask, left: merge(a, b.left), right: b.right}
		}
		return &node[V]{prefix: b.prefix, mask: b.mask, left: b.left, right: merge(a, b.right)}
	}
	// prefixes disagree
	return join(a.prefix, a, b.prefix, b)
}

// equal compares two tries structurally.
func equal[V any](a, b *node[V], eq func(V, V) bool) bool {
	switch {
	case a == b:
		return true
	case a == nil || b == nil:
		return false
	case a.prefix != b.prefix || a.mask != b.mask:
		return false
	case a.isLeaf():
		return eq == nil || eq(a.value, b.value)
	}
	return equal(a.left, b.left, eq) && equal(a.right, b.right, eq)
}

// leftmost returns the leaf with the smallest key of a non-empty trie.
func leftmost[V any](t *node[V]) *node[V] {
	for !t.isLeaf() {
		t = t.left
	}
	return t
}

// rightmost returns the leaf with the largest key of a non-empty trie.
func rightmost[V any](t *node[V]) *node[V] {
	for !t.isLeaf() {
		t = t.right
	}
	return t
}
