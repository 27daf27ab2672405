/*
Package persistent groups immutable persistent collections.

Immutable data structures are data structures which can be copied and modified
efficiently, leaving the original unchanged. *Persistent* immutable data-structures
offer structural sharing, which means that if two data structures are mostly copies
of each other, most of the memory they take up will be shared between them.

Sub-packages:

    patricia   big-endian Patricia tries over 32-bit keys
    intset     sets of integers, backed by Patricia tries
    intmap     maps with integer keys, backed by Patricia tries
    btree      B-trees over ordered keys, copy-on-write
    bimap      one-to-one maps between integers and ordered values

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
