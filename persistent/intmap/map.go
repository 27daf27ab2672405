package intmap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/intcoll"
	"github.com/npillmayer/intcoll/maybe"
	"github.com/npillmayer/intcoll/persistent/intset"
	"github.com/npillmayer/intcoll/persistent/patricia"
)

// Map is an immutable map from integer keys of type K to values of type V.
// The zero value is the empty map.
type Map[K patricia.Integer, V any] struct {
	trie patricia.Trie[V]
}

// Empty returns the empty map.
func Empty[K patricia.Integer, V any]() Map[K, V] {
	return Map[K, V]{}
}

// Singleton returns a map with a single entry k ↦ v.
func Singleton[K patricia.Integer, V any](k K, v V) Map[K, V] {
	return Map[K, V]{trie: patricia.Singleton(patricia.ToKey(k), v)}
}

// FromSeq returns a map of the key/value pairs produced by seq. For duplicate
// keys, the last value wins.
// If seq is nil, FromSeq returns an error wrapping intcoll.ErrNilArgument.
func FromSeq[K patricia.Integer, V any](seq iter.Seq2[K, V]) (Map[K, V], error) {
	if seq == nil {
		return Map[K, V]{}, fmt.Errorf("intmap.FromSeq: %w", intcoll.ErrNilArgument)
	}
	t := patricia.Empty[V]()
	for k, v := range seq {
		t = t.Insert(patricia.ToKey(k), v)
	}
	return Map[K, V]{trie: t}, nil
}

// OfMap copies a Go map.
func OfMap[K patricia.Integer, V any](m map[K]V) Map[K, V] {
	t := patricia.Empty[V]()
	for k, v := range m {
		t = t.Insert(patricia.ToKey(k), v)
	}
	return Map[K, V]{trie: t}
}

// IsEmpty returns true for the empty map.
func (m Map[K, V]) IsEmpty() bool {
	return m.trie.IsEmpty()
}

// Count returns the number of entries of m. Count is O(n).
func (m Map[K, V]) Count() int {
	return m.trie.Count()
}

// ContainsKey returns true if m has an entry for k.
func (m Map[K, V]) ContainsKey(k K) bool {
	return m.trie.Contains(patricia.ToKey(k))
}

// Find returns the value for key k. If m has no entry for k, an error wrapping
// intcoll.ErrKeyNotFound is returned.
func (m Map[K, V]) Find(k K) (V, error) {
	v, ok := m.trie.Find(patricia.ToKey(k))
	if !ok {
		return v, fmt.Errorf("intmap.Find: key %v: %w", k, intcoll.ErrKeyNotFound)
	}
	return v, nil
}

// TryFind returns the value for key k, or Nothing.
func (m Map[K, V]) TryFind(k K) maybe.Maybe[V] {
	v, ok := m.trie.Find(patricia.ToKey(k))
	return maybe.Of(v, ok)
}

// Add returns a map with entry k ↦ v, replacing an existing entry for k.
func (m Map[K, V]) Add(k K, v V) Map[K, V] {
	return Map[K, V]{trie: m.trie.Insert(patricia.ToKey(k), v)}
}

// Remove returns a map without an entry for k. If there is none, m is returned.
func (m Map[K, V]) Remove(k K) Map[K, V] {
	return Map[K, V]{trie: m.trie.Remove(patricia.ToKey(k))}
}

// Union returns a map with the entries of both m and other. For keys present in both
// maps, the value of m wins.
func (m Map[K, V]) Union(other Map[K, V]) Map[K, V] {
	return Map[K, V]{trie: m.trie.Merge(other.trie)}
}

// Filter returns a map with all entries of m satisfying pred. If every entry does,
// m is returned.
func (m Map[K, V]) Filter(pred func(K, V) bool) Map[K, V] {
	t := patricia.Fold(m.trie, func(acc patricia.Trie[V], k uint32, v V) patricia.Trie[V] {
		if pred(patricia.FromKey[K](k), v) {
			return acc
		}
		return acc.Remove(k)
	}, m.trie)
	return Map[K, V]{trie: t}
}

// Partition splits m into the entries satisfying pred and the others.
func (m Map[K, V]) Partition(pred func(K, V) bool) (Map[K, V], Map[K, V]) {
	in, out := m.trie, patricia.Empty[V]()
	rejected := 0
	m.trie.Iterate(func(k uint32, v V) {
		if !pred(patricia.FromKey[K](k), v) {
			in = in.Remove(k)
			out = out.Insert(k, v)
			rejected++
		}
	})
	tracer().Debugf("partition: %d entries rejected", rejected)
	return Map[K, V]{trie: in}, Map[K, V]{trie: out}
}

// MapValues returns a map with the same keys as m and values f(k, v).
func MapValues[K patricia.Integer, V, W any](m Map[K, V], f func(K, V) W) Map[K, W] {
	t := patricia.Fold(m.trie, func(acc patricia.Trie[W], k uint32, v V) patricia.Trie[W] {
		return acc.Insert(k, f(patricia.FromKey[K](k), v))
	}, patricia.Empty[W]())
	return Map[K, W]{trie: t}
}

// Iterate calls action for every entry of m, in ascending key order.
func (m Map[K, V]) Iterate(action func(K, V)) {
	m.trie.Iterate(func(k uint32, v V) {
		action(patricia.FromKey[K](k), v)
	})
}

// IterateBack calls action for every entry of m, in descending key order.
func (m Map[K, V]) IterateBack(action func(K, V)) {
	m.trie.IterateBack(func(k uint32, v V) {
		action(patricia.FromKey[K](k), v)
	})
}

// Fold threads an accumulator through the entries of m, in ascending key order.
func Fold[K patricia.Integer, V, S any](m Map[K, V], folder func(S, K, V) S, initial S) S {
	return patricia.Fold(m.trie, func(acc S, k uint32, v V) S {
		return folder(acc, patricia.FromKey[K](k), v)
	}, initial)
}

// FoldBack threads an accumulator through the entries of m, in descending key order.
func FoldBack[K patricia.Integer, V, S any](m Map[K, V], folder func(S, K, V) S, initial S) S {
	return patricia.FoldBack(m.trie, func(acc S, k uint32, v V) S {
		return folder(acc, patricia.FromKey[K](k), v)
	}, initial)
}

// TryPick applies chooser to the entries of m in ascending key order and returns
// the first result which is not Nothing.
func TryPick[K patricia.Integer, V, R any](m Map[K, V], chooser func(K, V) maybe.Maybe[R]) maybe.Maybe[R] {
	return patricia.TryPick(m.trie, func(k uint32, v V) maybe.Maybe[R] {
		return chooser(patricia.FromKey[K](k), v)
	})
}

// All returns an iterator over the entries of m, in ascending key order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m.trie.All() {
			if !yield(patricia.FromKey[K](k), v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the entries of m, in descending key order.
func (m Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m.trie.Backward() {
			if !yield(patricia.FromKey[K](k), v) {
				return
			}
		}
	}
}

// Keys returns the set of keys of m.
func (m Map[K, V]) Keys() intset.Set[K] {
	return Fold(m, func(s intset.Set[K], k K, _ V) intset.Set[K] {
		return s.Add(k)
	}, intset.Empty[K]())
}

// Values returns the values of m, in ascending order of their keys.
func (m Map[K, V]) Values() []V {
	return Fold(m, func(vals []V, _ K, v V) []V {
		return append(vals, v)
	}, make([]V, 0))
}

// ToMap copies m into a Go map.
func (m Map[K, V]) ToMap() map[K]V {
	return Fold(m, func(gomap map[K]V, k K, v V) map[K]V {
		gomap[k] = v
		return gomap
	}, make(map[K]V))
}

// Equal returns true if m and other have the same keys and eq holds for the values
// of every key. If eq is nil, only keys are compared.
func (m Map[K, V]) Equal(other Map[K, V], eq func(V, V) bool) bool {
	return m.trie.Equal(other.trie, eq)
}

func (m Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("intmap[")
	first := true
	m.Iterate(func(k K, v V) {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", k, v)
	})
	sb.WriteByte(']')
	return sb.String()
}

// Dump renders the trie structure of m, for debugging.
func (m Map[K, V]) Dump() string {
	return m.trie.Dump(func(k uint32) string {
		return fmt.Sprint(patricia.FromKey[K](k))
	})
}
