/*
Package intset implements immutable persistent sets of integers.

A Set is a value. Adding or removing elements creates a new incarnation of the
set, sharing most of its memory with the original, which stays unchanged:

    s := intset.Of[int32](5, 3, 11)
    t := s.Add(7)       // s still is {3, 5, 11}
    u := s.Union(t)     // {3, 5, 7, 11}

Elements may be of any integer type up to 32 bits wide, signed or unsigned.
Iteration always visits elements in ascending order. Sets are backed by a
Patricia trie (package patricia), which does not store the number of its
elements; Count therefore is O(n).
*/
package intset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'intcoll.intset'.
func tracer() tracing.Trace {
	return tracing.Select("intcoll.intset")
}
