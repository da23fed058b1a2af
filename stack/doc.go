/*
Package stack implements a LIFO stack as a singly linked list with exclusive node ownership.

Every node is owned by exactly one predecessor slot: the stack's head, or the node below it.
Nodes are created by Push and detached by Pop. Release detaches all remaining nodes with
an explicit loop, one node at a time, so that releasing a long stack never recurses.

Views into a stack are checked at runtime: read-only iterators may coexist, while a
mutable view (PeekMut, IterMut) is exclusive. Using a view after the stack has been
modified, or after a conflicting view has been taken, panics with an error wrapping
ErrBorrowConflict.

Stacks are not safe for concurrent use. Clients needing concurrent access have to guard
a whole stack with a mutex.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stack

import (
	"github.com/npillmayer/lists/borrow"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.stack'.
func tracer() tracing.Trace {
	return tracing.Select("lists.stack")
}

// ErrBorrowConflict is wrapped by the panic raised when an invalidated view is used.
var ErrBorrowConflict = borrow.ErrBorrowConflict
