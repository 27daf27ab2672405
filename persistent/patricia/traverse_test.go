package patricia

import (
	"sort"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/npillmayer/intcoll/maybe"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedUnique(keys []uint32) []uint32 {
	seen := make(map[uint32]bool)
	var r []uint32
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			r = append(r, k)
		}
	}
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	return r
}

func collect[V any](t Trie[V]) []uint32 {
	var keys []uint32
	t.Iterate(func(k uint32, _ V) {
		keys = append(keys, k)
	})
	return keys
}

func TestTraverseIterateOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.patricia")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	faker := gofakeit.New(42)
	for round := 0; round < 25; round++ {
		keys := randomKeys(faker, faker.Number(0, 400))
		trie := trieOf(keys...)
		expected := sortedUnique(keys)
		// ascending and descending order
		asc := collect(trie)
		require.Equal(t, len(expected), len(asc))
		for i := range expected {
			require.Equal(t, expected[i], asc[i])
		}
		var desc []uint32
		trie.IterateBack(func(k uint32, _ unit) {
			desc = append(desc, k)
		})
		for i := range expected {
			require.Equal(t, expected[len(expected)-1-i], desc[i])
		}
		// count matches iteration
		require.Equal(t, trie.Count(), len(asc))
	}
}

func TestTraverseSignedOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.patricia")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	faker := gofakeit.New(7)
	seen := make(map[int32]bool)
	var signed []int32
	trie := Empty[int32]()
	for i := 0; i < 300; i++ {
		k := faker.Int32()
		if i%2 == 0 {
			k = -k
		}
		if !seen[k] {
			seen[k] = true
			signed = append(signed, k)
		}
		trie = trie.Insert(ToKey(k), k)
	}
	sort.Slice(signed, func(i, j int) bool { return signed[i] < signed[j] })
	i := 0
	trie.Iterate(func(k uint32, v int32) {
		require.Equal(t, signed[i], FromKey[int32](k))
		require.Equal(t, v, FromKey[int32](k))
		i++
	})
	require.Equal(t, len(signed), i)
}

func TestTraverseLeafPairs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "intcoll.patricia")
	defer teardown()
	//
	// 0..7 produces a complete trie where every lowest branch holds two leaves
	trie := trieOf(7, 6, 5, 4, 3, 2, 1, 0)
	t.Logf("trie =\n%s", trie.Dump(nil))
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5, 6, 7}, collect(trie))
	// mixed: a leaf pair next to deeper sub-tries
	trie = trieOf(0x100, 0x101, 0, 1, 2, 3, 0x80000000)
	assert.Equal(t, []uint32{0, 1, 2, 3, 0x100, 0x101, 0x80000000}, collect(trie))
}

func TestTraverseFold(t *testing.T) {
	trie := trieOf(5, 3, 11, 2, 17, 4, 12, 14)
	sum := Fold(trie, func(acc int, k uint32, _ unit) int {
		return acc + int(k)
	}, 0)
	assert.Equal(t, 68, sum)
	asc := Fold(trie, func(acc []uint32, k uint32, _ unit) []uint32 {
		return append(acc, k)
	}, nil)
	assert.Equal(t, []uint32{2, 3, 4, 5, 11, 12, 14, 17}, asc)
	desc := FoldBack(trie, func(acc []uint32, k uint32, _ unit) []uint32 {
		return append(acc, k)
	}, nil)
	assert.Equal(t, []uint32{17, 14, 12, 11, 5, 4, 3, 2}, desc)
	assert.Equal(t, 0, Fold(Empty[unit](), func(acc int, k uint32, _ unit) int { return acc + 1 }, 0))
}

func TestTraverseTryPick(t *testing.T) {
	trie := trieOf(5, 3, 11, 2, 17, 4, 12, 14)
	visited := 0
	firstOver10 := TryPick(trie, func(k uint32, _ unit) maybe.Maybe[uint32] {
		visited++
		if k > 10 {
			return maybe.Just(k * 10)
		}
		return maybe.Nothing[uint32]()
	})
	v, ok := firstOver10.Get()
	if !ok || v != 110 {
		t.Errorf("expected to pick 110, got %v", firstOver10)
	}
	if visited != 5 {
		t.Errorf("expected TryPick to stop after 5 keys, visited %d", visited)
	}
	none := TryPick(trie, func(k uint32, _ unit) maybe.Maybe[string] {
		return maybe.Nothing[string]()
	})
	if !none.IsNothing() {
		t.Error("expected TryPick without match to return Nothing")
	}
}

func TestTraverseIterators(t *testing.T) {
	trie := Empty[string]().Insert(3, "c").Insert(1, "a").Insert(2, "b")
	var s string
	for _, v := range trie.All() {
		s += v
	}
	for _, v := range trie.All() { // restartable
		s += v
	}
	assert.Equal(t, "abcabc", s)
	s = ""
	for _, v := range trie.Backward() {
		s += v
	}
	assert.Equal(t, "cba", s)
	var keys []uint32
	for k := range trie.Keys() {
		keys = append(keys, k)
		if k == 2 {
			break
		}
	}
	assert.Equal(t, []uint32{1, 2}, keys)
}
