/*
Package patricia implements an immutable persistent big-endian Patricia trie
over 32-bit unsigned keys.

A Patricia trie is a binary radix tree over the bits of fixed-width keys. Chains
of single-child nodes are compressed by storing, for every inner node, the
common prefix of all keys below it and a mask denoting the single bit at which
its two sub-tries diverge (the branching bit). Branching on the most significant
differing bit first (“big-endian”) makes an in-order walk of the trie produce
keys in ascending unsigned order. The depth of the trie is bounded by the key
width, not by the number of keys.

Insertion and removal copy the path from the root to the affected leaf and
share everything else with the original. Merging two tries exploits common
prefixes instead of re-inserting every key; merging a trie with a descendant of
itself skips all shared sub-tries.

Keys

Clients seldom want to think in uint32. Any type of Integer may be used as a key
by mapping it with ToKey and FromKey. For signed types ToKey flips the sign bit
of the two's-complement pattern, so that the unsigned order of encoded keys
coincides with the signed order of the client's keys. This is the only place
where signedness is considered; the trie itself only knows unsigned order.

Trie values carry a payload of type V per key. Sets use struct{} as payload.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package patricia

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'intcoll.patricia'.
func tracer() tracing.Trace {
	return tracing.Select("intcoll.patricia")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("patricia: "+msg, msgargs...)
		panic(msg)
	}
}
