/*
Package dlist implements a doubly linked list with forward ownership and non-owning
backward links.

The list owns every node. Following the forward links from the front visits every node
exactly once; this forward chain is the only authority on node lifetime. Backward links
(Element.Prev) exist for O(1) removal and for walking backwards from an arbitrary
element; they are lookups and never used to drop a node.

Whole lists are spliced in O(1):

	a.Append(b)   // a = a ++ b, b is empty afterwards

Element handles returned by PushFront and PushBack stay usable for navigation and
removal as long as the element belongs to the list. Ownership of elements moves along
with Append without touching the elements, so Remove is able to reject elements of
another list at amortized O(1) cost.

Views into a list (iterators, mutable views of values) are borrow-checked at runtime,
see package stack for the rules. Reading a value through an element handle
(Element.Value) is a shared borrow of the owning list, just like Front and Back;
navigating with Next and Prev is not. Lists are not safe for concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dlist

import (
	"fmt"

	"github.com/npillmayer/lists/borrow"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.dlist'.
func tracer() tracing.Trace {
	return tracing.Select("lists.dlist")
}

// ErrBorrowConflict is wrapped by the panic raised when an invalidated view is used,
// or when a list is appended to itself.
var ErrBorrowConflict = borrow.ErrBorrowConflict

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("dlist: "+msg, msgargs...)
		tracer().Errorf("%s", msg)
		panic(msg)
	}
}
