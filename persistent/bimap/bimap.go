package bimap

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/intcoll"
	"github.com/npillmayer/intcoll/maybe"
	"github.com/npillmayer/intcoll/persistent/btree"
	"github.com/npillmayer/intcoll/persistent/intmap"
	"github.com/npillmayer/intcoll/persistent/intset"
	"github.com/npillmayer/intcoll/persistent/patricia"
)

// ErrInconsistent is returned by Check if the two sides of a bimap disagree.
var ErrInconsistent = errors.New("bimap sides are inconsistent")

// Bimap is an immutable one-to-one map between keys of integer type K and values
// of type V. The zero value is an empty bimap.
type Bimap[K patricia.Integer, V cmp.Ordered] struct {
	forward intmap.Map[K, V]
	inverse btree.Tree[V, K]
}

// Option configures a bimap at creation time.
type Option = btree.Option

// InverseDegree sets the degree of the B-tree holding the value → key side.
func InverseDegree(n int) Option {
	return btree.Degree(n)
}

// --- Construction ----------------------------------------------------------

// Empty returns an empty bimap.
func Empty[K patricia.Integer, V cmp.Ordered](opts ...Option) Bimap[K, V] {
	return Bimap[K, V]{inverse: btree.Immutable[V, K](opts...)}
}

// Singleton returns a bimap with a single pair k ↔ v.
func Singleton[K patricia.Integer, V cmp.Ordered](k K, v V) Bimap[K, V] {
	return Empty[K, V]().Add(k, v)
}

// OfPairs returns a bimap of a slice of pairs, added from left to right.
// Later pairs replace earlier ones sharing their key or value.
func OfPairs[K patricia.Integer, V cmp.Ordered](pairs []intcoll.Pair[K, V], opts ...Option) Bimap[K, V] {
	b := Empty[K, V](opts...)
	for _, p := range pairs {
		b = b.Add(p.Decompose())
	}
	return b
}

// FromSeq returns a bimap of the pairs produced by seq, added in sequence.
// If seq is nil, FromSeq returns an error wrapping intcoll.ErrNilArgument.
func FromSeq[K patricia.Integer, V cmp.Ordered](seq iter.Seq2[K, V], opts ...Option) (Bimap[K, V], error) {
	if seq == nil {
		return Bimap[K, V]{}, fmt.Errorf("bimap.FromSeq: %w", intcoll.ErrNilArgument)
	}
	b := Empty[K, V](opts...)
	for k, v := range seq {
		b = b.Add(k, v)
	}
	return b, nil
}

// --- Queries ---------------------------------------------------------------

// IsEmpty returns true for an empty bimap.
func (b Bimap[K, V]) IsEmpty() bool {
	return b.forward.IsEmpty()
}

// Count returns the number of pairs of b.
func (b Bimap[K, V]) Count() int {
	return b.inverse.Len()
}

// ContainsKey returns true if k is bound to a value.
func (b Bimap[K, V]) ContainsKey(k K) bool {
	return b.forward.ContainsKey(k)
}

// ContainsValue returns true if v is bound to a key.
func (b Bimap[K, V]) ContainsValue(v V) bool {
	_, found := b.inverse.Find(v)
	return found
}

// Find returns the value bound to k. If there is none, an error wrapping
// intcoll.ErrKeyNotFound is returned.
func (b Bimap[K, V]) Find(k K) (V, error) {
	v, err := b.forward.Find(k)
	if err != nil {
		return v, fmt.Errorf("bimap.Find: key %v: %w", k, intcoll.ErrKeyNotFound)
	}
	return v, nil
}

// FindValue returns the key bound to v. If there is none, an error wrapping
// intcoll.ErrKeyNotFound is returned.
func (b Bimap[K, V]) FindValue(v V) (K, error) {
	k, found := b.inverse.Find(v)
	if !found {
		return k, fmt.Errorf("bimap.FindValue: value %v: %w", v, intcoll.ErrKeyNotFound)
	}
	return k, nil
}

// TryFind returns the value bound to k, or Nothing.
func (b Bimap[K, V]) TryFind(k K) maybe.Maybe[V] {
	return b.forward.TryFind(k)
}

// TryFindValue returns the key bound to v, or Nothing.
func (b Bimap[K, V]) TryFindValue(v V) maybe.Maybe[K] {
	k, found := b.inverse.Find(v)
	return maybe.Of(k, found)
}

// --- New incarnations ------------------------------------------------------

// Add binds k to v. Existing pairs involving either k or v are removed first.
func (b Bimap[K, V]) Add(k K, v V) Bimap[K, V] {
	if old, err := b.forward.Find(k); err == nil && old == v {
		return b
	}
	b = b.Remove(k).RemoveValue(v)
	return Bimap[K, V]{
		forward: b.forward.Add(k, v),
		inverse: b.inverse.With(v, k),
	}
}

// TryAdd binds k to v if neither k nor v is bound yet. Otherwise b is returned
// unchanged, even if k is already bound to v.
func (b Bimap[K, V]) TryAdd(k K, v V) Bimap[K, V] {
	if b.ContainsKey(k) || b.ContainsValue(v) {
		tracer().Debugf("try-add: %v ↔ %v conflicts with existing pair", k, v)
		return b
	}
	return Bimap[K, V]{
		forward: b.forward.Add(k, v),
		inverse: b.inverse.With(v, k),
	}
}

// Remove removes the pair with key k. If k is not bound, b is returned.
func (b Bimap[K, V]) Remove(k K) Bimap[K, V] {
	v, err := b.forward.Find(k)
	if err != nil {
		return b
	}
	tracer().Debugf("remove pair %v ↔ %v", k, v)
	return Bimap[K, V]{
		forward: b.forward.Remove(k),
		inverse: b.inverse.WithDeleted(v),
	}
}

// RemoveValue removes the pair with value v. If v is not bound, b is returned.
func (b Bimap[K, V]) RemoveValue(v V) Bimap[K, V] {
	k, found := b.inverse.Find(v)
	if !found {
		return b
	}
	tracer().Debugf("remove pair %v ↔ %v", k, v)
	return Bimap[K, V]{
		forward: b.forward.Remove(k),
		inverse: b.inverse.WithDeleted(v),
	}
}

// Filter returns a bimap with the pairs of b satisfying pred.
func (b Bimap[K, V]) Filter(pred func(K, V) bool) Bimap[K, V] {
	return Fold(b, func(acc Bimap[K, V], k K, v V) Bimap[K, V] {
		if pred(k, v) {
			return acc
		}
		return acc.Remove(k)
	}, b)
}

// Partition splits b into the pairs satisfying pred and the others.
func (b Bimap[K, V]) Partition(pred func(K, V) bool) (Bimap[K, V], Bimap[K, V]) {
	in, out := b, b
	b.Iterate(func(k K, v V) {
		if pred(k, v) {
			out = out.Remove(k)
		} else {
			in = in.Remove(k)
		}
	})
	return in, out
}

// --- Traversal -------------------------------------------------------------

// Iterate calls action for every pair of b, in ascending key order.
func (b Bimap[K, V]) Iterate(action func(K, V)) {
	b.forward.Iterate(action)
}

// Fold threads an accumulator through the pairs of b, in ascending key order.
func Fold[K patricia.Integer, V cmp.Ordered, S any](b Bimap[K, V], folder func(S, K, V) S, initial S) S {
	return intmap.Fold(b.forward, folder, initial)
}

// FoldBack threads an accumulator through the pairs of b, in descending key order.
func FoldBack[K patricia.Integer, V cmp.Ordered, S any](b Bimap[K, V], folder func(S, K, V) S, initial S) S {
	return intmap.FoldBack(b.forward, folder, initial)
}

// All returns an iterator over the pairs of b, in ascending key order.
func (b Bimap[K, V]) All() iter.Seq2[K, V] {
	return b.forward.All()
}

// Keys returns the set of keys of b.
func (b Bimap[K, V]) Keys() intset.Set[K] {
	return b.forward.Keys()
}

// Values returns the values of b in ascending order.
func (b Bimap[K, V]) Values() []V {
	values := make([]V, 0, b.inverse.Len())
	for v := range b.inverse.All() {
		values = append(values, v)
	}
	return values
}

// Pairs returns the pairs of b, in ascending key order.
func (b Bimap[K, V]) Pairs() []intcoll.Pair[K, V] {
	return Fold(b, func(pairs []intcoll.Pair[K, V], k K, v V) []intcoll.Pair[K, V] {
		return append(pairs, intcoll.P(k, v))
	}, make([]intcoll.Pair[K, V], 0, b.Count()))
}

// Equal returns true if b and other consist of the same pairs.
func (b Bimap[K, V]) Equal(other Bimap[K, V]) bool {
	return b.Count() == other.Count() && b.forward.Equal(other.forward, func(v, w V) bool {
		return v == w
	})
}

// Check verifies that both sides of b describe the same one-to-one association.
func (b Bimap[K, V]) Check() error {
	if n, m := b.forward.Count(), b.inverse.Len(); n != m {
		return fmt.Errorf("%w: %d keys, but %d values", ErrInconsistent, n, m)
	}
	for k, v := range b.forward.All() {
		if x, found := b.inverse.Find(v); !found || x != k {
			return fmt.Errorf("%w: key %v → %v does not map back", ErrInconsistent, k, v)
		}
	}
	for v, k := range b.inverse.All() {
		if y, err := b.forward.Find(k); err != nil || y != v {
			return fmt.Errorf("%w: value %v → %v does not map back", ErrInconsistent, v, k)
		}
	}
	return nil
}

func (b Bimap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("bimap[")
	first := true
	b.Iterate(func(k K, v V) {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v↔%v", k, v)
	})
	sb.WriteByte(']')
	return sb.String()
}
