/*
Package btree implements a persistent (immutable) in-memory version of B-trees.

Every modification of a tree returns a new incarnation, copying only the nodes on
the path from the root to the modified leaf (copy-on-write). All other nodes are
shared between incarnations.

Keys may be of any ordered type. The tree is used as the inverse side of
bidirectional maps (package bimap), where values of arbitrary ordered type have to
be mapped back to integer keys.

A good introduction to B-trees and their algorithms may be found at
https://algorithmtutor.com/Data-Structures/Tree/B-Trees/.
*/
package btree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'intcoll.btree'.
func tracer() tracing.Trace {
	return tracing.Select("intcoll.btree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("btree: "+msg, msgargs...)
		panic(msg)
	}
}
