/*
Package intmap implements immutable persistent maps with integer keys.

Maps are values, in the same way as sets of package intset: every modification
returns a new map, leaving the original untouched. Both share all parts of the
underlying Patricia trie which have not been changed.

Keys may be of any integer type up to 32 bits wide; values are arbitrary.
Iteration visits entries in ascending key order.
*/
package intmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'intcoll.intmap'.
func tracer() tracing.Trace {
	return tracing.Select("intcoll.intmap")
}
