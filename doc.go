/*
Package intcoll offers immutable persistent collections keyed by small integers.

The collections are built on a big-endian Patricia trie (see sub-package
persistent/patricia). Every “modification” of a collection creates a new
incarnation, leaving the original unchanged; unmodified sub-trees are shared
between incarnations. Immutable collections are inherently safe for concurrent
readers. There is no coordination of concurrent writers: each writer derives its
own new version, and reconciling versions (e.g., by a union) is up to the client.

Sub-packages:

   persistent/patricia   // the trie and its traversal engine
   persistent/intset     // immutable sets of integers
   persistent/intmap     // immutable maps from integers to values
   persistent/btree      // immutable B-trees over ordered keys
   persistent/bimap      // immutable one-to-one maps between integers and ordered values

This package holds the error values shared by all collections, and a small
pair type.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package intcoll

import "errors"

// ErrNilArgument is returned if a required argument (a sequence, a function) is nil.
var ErrNilArgument = errors.New("argument must not be nil")

// ErrOutOfRange is returned for structurally invalid numeric arguments, e.g. negative counts.
var ErrOutOfRange = errors.New("argument out of range")

// ErrKeyNotFound is returned by Find- and Pick-style operations if no matching
// element exists. Try-variants of these operations return maybe.Nothing instead.
var ErrKeyNotFound = errors.New("key not found")

// ErrEmpty is returned when asking an empty collection for an element which cannot
// exist, e.g. its minimum.
var ErrEmpty = errors.New("collection is empty")
