package intset

import (
	"errors"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/npillmayer/intcoll"
	"github.com/npillmayer/intcoll/maybe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOfArray(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.intset")
	defer teardown()
	//
	s := Of[int32](5, 3, 11, 2, 17, 4, 12, 14)
	if s.Count() != 8 {
		t.Errorf("expected set to have 8 elements, has %d", s.Count())
	}
	if !s.Contains(11) {
		t.Error("expected set to contain 11")
	}
	if s.Contains(6) {
		t.Error("did not expect set to contain 6")
	}
	assert.Equal(t, []int32{2, 3, 4, 5, 11, 12, 14, 17}, s.ToSlice())
}

func TestSetSingletonRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.intset")
	defer teardown()
	//
	s := Singleton[int32](6).Remove(6)
	if !s.Equal(Empty[int32]()) {
		t.Errorf("expected {6} \\ {6} to be empty, is %v", s)
	}
	if !s.IsEmpty() {
		t.Error("expected set to be empty")
	}
}

func TestSetUnion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.intset")
	defer teardown()
	//
	a := Of[int32](3, 11, 2, 4, 12)
	b := Of[int32](5, 11, 17, 4, 14)
	u := a.Union(b)
	if !u.Equal(Of[int32](5, 3, 11, 2, 17, 4, 12, 14)) {
		t.Logf("\n%s", u.Dump())
		t.Errorf("expected union to be {2 3 4 5 11 12 14 17}, is %v", u)
	}
	// operands are unchanged
	assert.Equal(t, []int32{2, 3, 4, 11, 12}, a.ToSlice())
	assert.Equal(t, []int32{4, 5, 11, 14, 17}, b.ToSlice())
}

func TestSetEmptyList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.intset")
	defer teardown()
	//
	if !OfSlice[uint16](nil).IsEmpty() {
		t.Error("expected set of nil slice to be empty")
	}
	if !Of[int8]().IsEmpty() {
		t.Error("expected set of no elements to be empty")
	}
	var zero Set[uint32]
	if !zero.IsEmpty() || zero.Count() != 0 {
		t.Error("expected zero set to be empty")
	}
	assert.Equal(t, "intset[]", zero.String())
}

func TestSetConstructionErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.intset")
	defer teardown()
	//
	_, err := FromSeq[int32](nil)
	if !errors.Is(err, intcoll.ErrNilArgument) {
		t.Errorf("expected nil sequence to be rejected, error is %v", err)
	}
	_, err = Init(-1, func(i int) int32 { return int32(i) })
	if !errors.Is(err, intcoll.ErrOutOfRange) {
		t.Errorf("expected negative count to be rejected, error is %v", err)
	}
	s, err := Init(5, func(i int) int32 { return int32(i * i) })
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 4, 9, 16}, s.ToSlice())
	s, err = FromSeq(slices.Values([]int32{7, 1, 7}))
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 7}, s.ToSlice())
	s = OfKeys(map[int32]string{3: "c", 1: "a"})
	assert.Equal(t, []int32{1, 3}, s.ToSlice())
}

func TestSetMinMax(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.intset")
	defer teardown()
	//
	var empty Set[int32]
	_, err := empty.MinElement()
	assert.ErrorIs(t, err, intcoll.ErrEmpty)
	_, err = empty.MaxElement()
	assert.ErrorIs(t, err, intcoll.ErrEmpty)
	assert.True(t, empty.TryMinElement().IsNothing())
	//
	s := Of[int32](-7, 3, -100, 42)
	lo, err := s.MinElement()
	require.NoError(t, err)
	hi, err := s.MaxElement()
	require.NoError(t, err)
	if lo != -100 || hi != 42 {
		t.Errorf("expected min/max to be -100/42, are %d/%d", lo, hi)
	}
	assert.Equal(t, int32(42), s.TryMaxElement().WithDefault(0))
}

func TestSetNoOps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.intset")
	defer teardown()
	//
	s := Of[int32](1, 2, 3)
	if !s.Add(2).trie.Same(s.trie) {
		t.Error("expected adding a present element to return the set unchanged")
	}
	if !s.Remove(9).trie.Same(s.trie) {
		t.Error("expected removing an absent element to return the set unchanged")
	}
	if !s.Filter(func(int32) bool { return true }).trie.Same(s.trie) {
		t.Error("expected filter keeping all elements to return the set unchanged")
	}
	if !s.Union(s).trie.Same(s.trie) {
		t.Error("expected union with itself to return the set unchanged")
	}
}

func TestSetAlgebra(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.intset")
	defer teardown()
	//
	a := Of[int32](1, 2, 3, 4, 5, 6)
	b := Of[int32](4, 5, 6, 7, 8)
	assert.Equal(t, []int32{4, 5, 6}, a.Intersect(b).ToSlice())
	assert.Equal(t, []int32{1, 2, 3}, a.Difference(b).ToSlice())
	assert.Equal(t, []int32{7, 8}, b.Difference(a).ToSlice())
	assert.True(t, Of[int32](2, 4).IsSubset(a))
	assert.False(t, b.IsSubset(a))
	assert.True(t, Empty[int32]().IsSubset(b))
	//
	even, odd := a.Partition(func(k int32) bool { return k%2 == 0 })
	assert.Equal(t, []int32{2, 4, 6}, even.ToSlice())
	assert.Equal(t, []int32{1, 3, 5}, odd.ToSlice())
}

func TestSetDerived(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.intset")
	defer teardown()
	//
	s := Of[int16](-2, -1, 0, 1, 2)
	sq := Map(s, func(k int16) uint8 { return uint8(k * k) })
	assert.Equal(t, []uint8{0, 1, 4}, sq.ToSlice())
	pos := Choose(s, func(k int16) maybe.Maybe[int32] {
		return maybe.Of[int32](int32(k)*10, k > 0)
	})
	assert.Equal(t, []int32{10, 20}, pos.ToSlice())
	//
	assert.True(t, s.Exists(func(k int16) bool { return k < 0 }))
	assert.False(t, s.Exists(func(k int16) bool { return k > 2 }))
	assert.True(t, s.Forall(func(k int16) bool { return k >= -2 }))
	assert.True(t, Empty[int16]().Forall(func(int16) bool { return false }))
	//
	first, err := Pick(s, func(k int16) maybe.Maybe[string] {
		if k >= 0 {
			return maybe.Just("found")
		}
		return maybe.Nothing[string]()
	})
	require.NoError(t, err)
	assert.Equal(t, "found", first)
	_, err = Pick(s, func(int16) maybe.Maybe[int] { return maybe.Nothing[int]() })
	assert.ErrorIs(t, err, intcoll.ErrKeyNotFound)
}

func TestSetTraversal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.intset")
	defer teardown()
	//
	s := Of[int32](30, -10, 20, 0)
	sum := Fold(s, func(acc int, k int32) int { return acc + int(k) }, 0)
	assert.Equal(t, 40, sum)
	asc := Fold(s, func(acc []int32, k int32) []int32 { return append(acc, k) }, nil)
	desc := FoldBack(s, func(acc []int32, k int32) []int32 { return append(acc, k) }, nil)
	assert.Equal(t, []int32{-10, 0, 20, 30}, asc)
	assert.Equal(t, []int32{30, 20, 0, -10}, desc)
	var back []int32
	s.IterateBack(func(k int32) { back = append(back, k) })
	assert.Equal(t, desc, back)
	assert.Equal(t, asc, slices.Collect(s.All()))
	assert.Equal(t, desc, slices.Collect(s.Backward()))
	assert.Equal(t, "intset[-10 0 20 30]", s.String())
	assert.Len(t, s.ToMap(), 4)
	assert.Equal(t, asc, s.Elements())
}

func TestSetHash(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.intset")
	defer teardown()
	//
	a := Of[int32](3, 1, 4, 1, 5, 9, 2, 6)
	b := Of[int32](9, 6, 5, 4, 3, 2, 1)
	if a.Hash() != b.Hash() {
		t.Errorf("expected equal sets to have equal hashes, are %x and %x", a.Hash(), b.Hash())
	}
	if a.Hash() == a.Remove(9).Hash() {
		t.Error("expected different sets to have different hashes")
	}
}

func TestSetRandomAgainstMap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.intset")
	defer teardown()
	//
	faker := gofakeit.New(4711)
	s := Empty[int32]()
	ref := make(map[int32]struct{})
	for i := 0; i < 2000; i++ {
		k := int32(faker.Number(-300, 300))
		if faker.Bool() {
			s = s.Add(k)
			ref[k] = struct{}{}
		} else {
			s = s.Remove(k)
			delete(ref, k)
		}
	}
	require.NoError(t, s.trie.Check())
	keys := make([]int32, 0, len(ref))
	for k := range ref {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	assert.Equal(t, keys, s.ToSlice())
	assert.Equal(t, len(ref), s.Count())
}

func TestSetDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.intset")
	defer teardown()
	//
	d := Of[int32](-1, 1).Dump()
	t.Logf("\n%s", d)
	if !strings.Contains(d, "-1") {
		t.Errorf("expected dump to show element -1, is\n%s", d)
	}
}

func TestSetPickSliceResult(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.intset")
	defer teardown()
	//
	s := Of[int32](3, 8, 12)
	r := TryPick(s, func(k int32) maybe.Maybe[[]int32] {
		return maybe.Of([]int32{k, k * 2}, k > 5)
	})
	var pair []int32
	switch m := r.Match(); m {
	case m.Just(&pair):
	case m.Nothing():
		t.Fatal("expected TryPick to find an element > 5")
	}
	assert.Equal(t, []int32{8, 16}, pair)
}

func TestSetIncarnations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.intset")
	defer teardown()
	//
	s := Of[int32](5, 3, 11)
	u := s.Union(s.Add(7))
	assert.Equal(t, []int32{3, 5, 11}, s.ToSlice())
	assert.Equal(t, []int32{3, 5, 7, 11}, u.ToSlice())
}
