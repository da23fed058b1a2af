/*
Package lists is a small library of linked lists, each built around a different discipline
of node ownership:

  - package stack: a LIFO stack where every node is exclusively owned by its predecessor;
  - package persistent/list: an immutable list sharing structure between versions, with
    reference-counted nodes;
  - package dlist: a doubly linked list where the list owns every node and backward links
    are for lookup only.

Package lists itself holds helpers for working with the iterators of these lists, plus
a diagnostic utility for type names.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lists

import (
	"fmt"
	"iter"
	"reflect"
)

// Collect gathers the values of a sequence into a slice.
func Collect[T any](seq iter.Seq[T]) []T {
	var s []T
	for v := range seq {
		s = append(s, v)
	}
	return s
}

// Count returns the number of values a sequence produces.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Equal is true if seq produces exactly the values of want, in order.
func Equal[T comparable](seq iter.Seq[T], want ...T) bool {
	i := 0
	for v := range seq {
		if i >= len(want) || v != want[i] {
			return false
		}
		i++
	}
	return i == len(want)
}

// --- Diagnostics -----------------------------------------------------------

// TypeOf returns a human-readable name of the static type of its argument.
// The argument itself is ignored; this works for interface types, too:
//
//	TypeOf[error](nil)   // "error"
func TypeOf[T any](_ T) string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// TypeName returns a human-readable name of the dynamic type of v.
func TypeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", v)
}
