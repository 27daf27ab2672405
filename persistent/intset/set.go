package intset

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/intcoll"
	"github.com/npillmayer/intcoll/maybe"
	"github.com/npillmayer/intcoll/persistent/patricia"
)

type unit = struct{}

// Set is an immutable set of integers of type K. The zero value is the empty set.
type Set[K patricia.Integer] struct {
	trie patricia.Trie[unit]
}

// --- Construction ----------------------------------------------------------

// Empty returns the empty set.
func Empty[K patricia.Integer]() Set[K] {
	return Set[K]{}
}

// Singleton returns the set {k}.
func Singleton[K patricia.Integer](k K) Set[K] {
	return Set[K]{trie: patricia.Singleton(patricia.ToKey(k), unit{})}
}

// Of returns a set of the given elements. Duplicates are ignored.
func Of[K patricia.Integer](elems ...K) Set[K] {
	return OfSlice(elems)
}

// OfSlice returns a set of the elements of a slice. A nil slice results in the
// empty set.
func OfSlice[K patricia.Integer](elems []K) Set[K] {
	t := patricia.Empty[unit]()
	for _, k := range elems {
		t = t.InsertNew(patricia.ToKey(k), unit{})
	}
	return Set[K]{trie: t}
}

// FromSeq returns a set of the elements produced by seq.
// If seq is nil, FromSeq returns an error wrapping intcoll.ErrNilArgument.
func FromSeq[K patricia.Integer](seq iter.Seq[K]) (Set[K], error) {
	if seq == nil {
		return Set[K]{}, fmt.Errorf("intset.FromSeq: %w", intcoll.ErrNilArgument)
	}
	t := patricia.Empty[unit]()
	for k := range seq {
		t = t.InsertNew(patricia.ToKey(k), unit{})
	}
	return Set[K]{trie: t}, nil
}

// OfKeys returns the set of keys of a Go map.
func OfKeys[K patricia.Integer, V any](m map[K]V) Set[K] {
	t := patricia.Empty[unit]()
	for k := range m {
		t = t.InsertNew(patricia.ToKey(k), unit{})
	}
	return Set[K]{trie: t}
}

// Init returns the set {f(0), …, f(n-1)}.
// If n is negative, Init returns an error wrapping intcoll.ErrOutOfRange.
func Init[K patricia.Integer](n int, f func(int) K) (Set[K], error) {
	if n < 0 {
		return Set[K]{}, fmt.Errorf("intset.Init: count %d: %w", n, intcoll.ErrOutOfRange)
	}
	if f == nil {
		return Set[K]{}, fmt.Errorf("intset.Init: %w", intcoll.ErrNilArgument)
	}
	t := patricia.Empty[unit]()
	for i := 0; i < n; i++ {
		t = t.InsertNew(patricia.ToKey(f(i)), unit{})
	}
	return Set[K]{trie: t}, nil
}

// --- Queries ---------------------------------------------------------------

// IsEmpty returns true for the empty set.
func (s Set[K]) IsEmpty() bool {
	return s.trie.IsEmpty()
}

// Count returns the number of elements of s. Count is O(n).
func (s Set[K]) Count() int {
	return s.trie.Count()
}

// Contains returns true if k is an element of s.
func (s Set[K]) Contains(k K) bool {
	return s.trie.Contains(patricia.ToKey(k))
}

// MinElement returns the smallest element of s.
// For the empty set, an error wrapping intcoll.ErrEmpty is returned.
func (s Set[K]) MinElement() (K, error) {
	k, _, ok := s.trie.Min()
	if !ok {
		return 0, fmt.Errorf("intset.MinElement: %w", intcoll.ErrEmpty)
	}
	return patricia.FromKey[K](k), nil
}

// MaxElement returns the largest element of s.
// For the empty set, an error wrapping intcoll.ErrEmpty is returned.
func (s Set[K]) MaxElement() (K, error) {
	k, _, ok := s.trie.Max()
	if !ok {
		return 0, fmt.Errorf("intset.MaxElement: %w", intcoll.ErrEmpty)
	}
	return patricia.FromKey[K](k), nil
}

// TryMinElement returns the smallest element of s, or Nothing for the empty set.
func (s Set[K]) TryMinElement() maybe.Maybe[K] {
	k, _, ok := s.trie.Min()
	return maybe.Of(patricia.FromKey[K](k), ok)
}

// TryMaxElement returns the largest element of s, or Nothing for the empty set.
func (s Set[K]) TryMaxElement() maybe.Maybe[K] {
	k, _, ok := s.trie.Max()
	return maybe.Of(patricia.FromKey[K](k), ok)
}

// --- New incarnations ------------------------------------------------------

// Add returns s ∪ {k}. If k already is an element of s, s is returned.
func (s Set[K]) Add(k K) Set[K] {
	return Set[K]{trie: s.trie.InsertNew(patricia.ToKey(k), unit{})}
}

// Remove returns s \ {k}. If k is not an element of s, s is returned.
func (s Set[K]) Remove(k K) Set[K] {
	return Set[K]{trie: s.trie.Remove(patricia.ToKey(k))}
}

// Union returns s ∪ other. Sub-tries shared by both sets are not visited.
func (s Set[K]) Union(other Set[K]) Set[K] {
	return Set[K]{trie: s.trie.Merge(other.trie)}
}

// Intersect returns s ∩ other.
func (s Set[K]) Intersect(other Set[K]) Set[K] {
	return s.Filter(other.Contains)
}

// Difference returns s \ other.
func (s Set[K]) Difference(other Set[K]) Set[K] {
	t := patricia.Fold(other.trie, func(acc patricia.Trie[unit], k uint32, _ unit) patricia.Trie[unit] {
		return acc.Remove(k)
	}, s.trie)
	return Set[K]{trie: t}
}

// IsSubset returns true if every element of s is an element of other.
func (s Set[K]) IsSubset(other Set[K]) bool {
	return s.Forall(other.Contains)
}

// Filter returns the set of elements of s for which pred holds.
// Elements are removed from s, so if all of them satisfy pred, s is returned.
func (s Set[K]) Filter(pred func(K) bool) Set[K] {
	t := patricia.Fold(s.trie, func(acc patricia.Trie[unit], k uint32, _ unit) patricia.Trie[unit] {
		if pred(patricia.FromKey[K](k)) {
			return acc
		}
		return acc.Remove(k)
	}, s.trie)
	return Set[K]{trie: t}
}

// Partition splits s into the elements satisfying pred and the others.
func (s Set[K]) Partition(pred func(K) bool) (Set[K], Set[K]) {
	in, out := s.trie, patricia.Empty[unit]()
	rejected := 0
	s.trie.Iterate(func(k uint32, _ unit) {
		if !pred(patricia.FromKey[K](k)) {
			in = in.Remove(k)
			out = out.InsertNew(k, unit{})
			rejected++
		}
	})
	tracer().Debugf("partition: %d elements rejected", rejected)
	return Set[K]{trie: in}, Set[K]{trie: out}
}

// Map returns the set {f(k) | k ∈ s}.
func Map[K, L patricia.Integer](s Set[K], f func(K) L) Set[L] {
	t := patricia.Fold(s.trie, func(acc patricia.Trie[unit], k uint32, _ unit) patricia.Trie[unit] {
		return acc.InsertNew(patricia.ToKey(f(patricia.FromKey[K](k))), unit{})
	}, patricia.Empty[unit]())
	return Set[L]{trie: t}
}

// Choose returns the set of all values x with f(k) = Just(x) for elements k of s.
func Choose[K, L patricia.Integer](s Set[K], f func(K) maybe.Maybe[L]) Set[L] {
	t := patricia.Fold(s.trie, func(acc patricia.Trie[unit], k uint32, _ unit) patricia.Trie[unit] {
		if l, ok := f(patricia.FromKey[K](k)).Get(); ok {
			return acc.InsertNew(patricia.ToKey(l), unit{})
		}
		return acc
	}, patricia.Empty[unit]())
	return Set[L]{trie: t}
}

// --- Traversal -------------------------------------------------------------

// TryPick applies chooser to the elements of s in ascending order and returns the
// first result which is not Nothing, or Nothing if there is none.
func TryPick[K patricia.Integer, R any](s Set[K], chooser func(K) maybe.Maybe[R]) maybe.Maybe[R] {
	return patricia.TryPick(s.trie, func(k uint32, _ unit) maybe.Maybe[R] {
		return chooser(patricia.FromKey[K](k))
	})
}

// Pick is like TryPick, but returns an error wrapping intcoll.ErrKeyNotFound if
// chooser does not produce a result for any element.
func Pick[K patricia.Integer, R any](s Set[K], chooser func(K) maybe.Maybe[R]) (R, error) {
	if r, ok := TryPick(s, chooser).Get(); ok {
		return r, nil
	}
	var none R
	return none, fmt.Errorf("intset.Pick: %w", intcoll.ErrKeyNotFound)
}

// Exists returns true if pred holds for at least one element of s.
func (s Set[K]) Exists(pred func(K) bool) bool {
	return !TryPick(s, func(k K) maybe.Maybe[unit] {
		return maybe.Of(unit{}, pred(k))
	}).IsNothing()
}

// Forall returns true if pred holds for every element of s.
func (s Set[K]) Forall(pred func(K) bool) bool {
	return !s.Exists(func(k K) bool {
		return !pred(k)
	})
}

// Iterate calls action for every element of s, in ascending order.
func (s Set[K]) Iterate(action func(K)) {
	s.trie.Iterate(func(k uint32, _ unit) {
		action(patricia.FromKey[K](k))
	})
}

// IterateBack calls action for every element of s, in descending order.
func (s Set[K]) IterateBack(action func(K)) {
	s.trie.IterateBack(func(k uint32, _ unit) {
		action(patricia.FromKey[K](k))
	})
}

// Fold threads an accumulator through the elements of s, in ascending order.
func Fold[K patricia.Integer, S any](s Set[K], folder func(S, K) S, initial S) S {
	return patricia.Fold(s.trie, func(acc S, k uint32, _ unit) S {
		return folder(acc, patricia.FromKey[K](k))
	}, initial)
}

// FoldBack threads an accumulator through the elements of s, in descending order.
func FoldBack[K patricia.Integer, S any](s Set[K], folder func(S, K) S, initial S) S {
	return patricia.FoldBack(s.trie, func(acc S, k uint32, _ unit) S {
		return folder(acc, patricia.FromKey[K](k))
	}, initial)
}

// All returns an iterator over the elements of s, in ascending order.
func (s Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.trie.Keys() {
			if !yield(patricia.FromKey[K](k)) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of s, in descending order.
func (s Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.trie.Backward() {
			if !yield(patricia.FromKey[K](k)) {
				return
			}
		}
	}
}

// --- Conversion ------------------------------------------------------------

// ToSlice returns the elements of s in ascending order.
func (s Set[K]) ToSlice() []K {
	return Fold(s, func(acc []K, k K) []K {
		return append(acc, k)
	}, make([]K, 0))
}

// ToMap returns the elements of s as a Go map.
func (s Set[K]) ToMap() map[K]struct{} {
	return Fold(s, func(acc map[K]struct{}, k K) map[K]struct{} {
		acc[k] = struct{}{}
		return acc
	}, make(map[K]struct{}))
}

// Elements returns the elements of s, for inspection in debuggers and logs.
func (s Set[K]) Elements() []K {
	return s.ToSlice()
}

// Equal returns true if s and other contain the same elements.
func (s Set[K]) Equal(other Set[K]) bool {
	return s.trie.Equal(other.trie, nil)
}

// Hash returns a hash value derived from the elements of s.
// Equal sets have equal hash values.
func (s Set[K]) Hash() uint64 {
	const prime = 1099511628211
	return patricia.Fold(s.trie, func(h uint64, k uint32, _ unit) uint64 {
		return (h ^ uint64(k)) * prime
	}, 14695981039346656037)
}

func (s Set[K]) String() string {
	var sb strings.Builder
	sb.WriteString("intset[")
	first := true
	s.Iterate(func(k K) {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(fmt.Sprint(k))
	})
	sb.WriteByte(']')
	return sb.String()
}

// Dump renders the trie structure of s, for debugging.
func (s Set[K]) Dump() string {
	return s.trie.Dump(func(k uint32) string {
		return fmt.Sprint(patricia.FromKey[K](k))
	})
}
