package dlist

import "github.com/npillmayer/lists/borrow"

// Element is a node of a list, carrying a value of type T.
type Element[T any] struct {
	value  T
	next   *Element[T] // owning
	prev   *Element[T] // lookup only
	member *membership // resolves to the owning list's membership
}

// Value returns the value carried by e. Reading a value is a shared borrow of the
// list owning e, as with Front and Back: it invalidates live mutable views and
// iterators handing them out.
func (e *Element[T]) Value() T {
	if e.member != nil {
		if b := e.member.resolve().borrows; b != nil {
			b.Share()
		}
	}
	return e.value
}

// Next returns the following element, or nil at the back of the list.
// Navigating between elements does not touch any value and is not borrow-checked.
func (e *Element[T]) Next() *Element[T] {
	return e.next
}

// Prev returns the preceding element, or nil at the front of the list.
func (e *Element[T]) Prev() *Element[T] {
	return e.prev
}

// detach clears all links of e and returns its value.
func (e *Element[T]) detach() T {
	v := e.value
	var zero T
	e.value = zero
	e.next, e.prev, e.member = nil, nil, nil
	return v
}

// --- Membership ------------------------------------------------------------

// membership identifies the list owning an element. When a list's chain is spliced
// onto another list, the donor's membership is forwarded to the receiver's, so that
// all the donor's elements change hands without being visited.
type membership struct {
	into    *membership
	borrows *borrow.Tracker // tracker of the owning list, valid at the root only
}

// resolve follows forwardings to the current membership, compressing the path.
func (m *membership) resolve() *membership {
	root := m
	for root.into != nil {
		root = root.into
	}
	for m != root {
		next := m.into
		m.into = root
		m = next
	}
	return root
}
