package patricia

import (
	"errors"
	"fmt"

	popcount "github.com/hideo55/go-popcount"
)

// ErrCorrupt is returned by Check for tries violating a structural invariant.
var ErrCorrupt = errors.New("patricia: trie invariant violated")

// Check validates the structural invariants of t:
//
//   - every branching mask has exactly one bit set
//   - no branch has an empty child
//   - the prefix of a branch has its branching bit and all lower bits cleared
//   - all keys below a branch share its prefix; keys in the left sub-trie have the
//     branching bit cleared, keys in the right sub-trie have it set
//   - branching bits strictly decrease from the root to the leaves
//
// Tries built by this package always pass the check; it is meant for tests and
// debugging.
func (t Trie[V]) Check() error {
	return check(t.root)
}

func check[V any](n *node[V]) error {
	if n == nil || n.isLeaf() {
		return nil
	}
	if popcount.Count(uint64(n.mask)) != 1 {
		return fmt.Errorf("%w: mask %#08x is not a single bit", ErrCorrupt, n.mask)
	}
	if n.left == nil || n.right == nil {
		return fmt.Errorf("%w: branch %#08x/%#08x has an empty child", ErrCorrupt, n.prefix, n.mask)
	}
	if maskPrefix(n.prefix, n.mask) != n.prefix {
		return fmt.Errorf("%w: prefix %#08x has bits at or below mask %#08x", ErrCorrupt, n.prefix, n.mask)
	}
	for _, child := range []*node[V]{n.left, n.right} {
		if !child.isLeaf() && child.mask >= n.mask {
			return fmt.Errorf("%w: child mask %#08x not below mask %#08x", ErrCorrupt, child.mask, n.mask)
		}
	}
	if err := checkSide(n, n.left, true); err != nil {
		return err
	}
	if err := checkSide(n, n.right, false); err != nil {
		return err
	}
	if err := check(n.left); err != nil {
		return err
	}
	return check(n.right)
}

func checkSide[V any](n, child *node[V], left bool) (err error) {
	walk(child, false, func(l *node[V]) bool {
		if !matchPrefix(l.prefix, n.prefix, n.mask) {
			err = fmt.Errorf("%w: key %#08x does not match prefix %#08x/%#08x", ErrCorrupt,
				l.prefix, n.prefix, n.mask)
		} else if zeroBit(l.prefix, n.mask) != left {
			err = fmt.Errorf("%w: key %#08x on wrong side of mask %#08x", ErrCorrupt, l.prefix, n.mask)
		}
		return err == nil
	})
	return
}
