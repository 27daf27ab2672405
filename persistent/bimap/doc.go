/*
Package bimap implements immutable bidirectional maps between integer keys and
ordered values.

A Bimap is a one-to-one association: every key is bound to exactly one value and
every value to exactly one key. Lookups work in both directions. Like all
collections of this module, bimaps are values and every modification returns a new
bimap, leaving the original one untouched.

The forward side (key → value) is an intmap.Map, the inverse side (value → key) is
a persistent B-tree (package btree). Both sides are always updated together.
*/
package bimap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'intcoll.bimap'.
func tracer() tracing.Trace {
	return tracing.Select("intcoll.bimap")
}
