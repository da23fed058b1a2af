package dlist

import (
	"iter"

	"github.com/npillmayer/lists/borrow"
)

// Iter walks the values of a list, front to back or back to front, without consuming
// them. Any number of Iters may be active at the same time.
type Iter[T any] struct {
	next     *Element[T]
	backward bool
	tok      borrow.Token
}

// Iter returns a read-only iterator walking l from front to back.
// Taking it invalidates outstanding mutable views.
func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{next: l.head, tok: l.borrows.Share()}
}

// IterBack returns a read-only iterator walking l from back to front, following
// the backward links.
func (l *List[T]) IterBack() *Iter[T] {
	return &Iter[T]{next: l.tail, backward: true, tok: l.borrows.Share()}
}

// Next returns the next value, or false at the end of the walk.
// It panics if the list has been modified since the iterator has been created.
func (it *Iter[T]) Next() (T, bool) {
	it.tok.Check("list iterator")
	if it.next == nil {
		var zero T
		return zero, false
	}
	e := it.next
	if it.backward {
		it.next = e.prev
	} else {
		it.next = e.next
	}
	return e.value, true
}

// All adapts the iterator for range loops.
func (it *Iter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns the values of l, front to back.
func (l *List[T]) All() iter.Seq[T] {
	return l.Iter().All()
}

// Backward returns the values of l, back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return l.IterBack().All()
}

// IterMut walks a list front to back, handing out a mutable view for each value.
// At most one IterMut is usable at a time.
type IterMut[T any] struct {
	next *Element[T]
	tok  borrow.Token
}

// IterMut returns a mutable iterator positioned at the front of l.
// Taking it invalidates every other view into the list.
func (l *List[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{next: l.head, tok: l.borrows.Exclusive()}
}

// Next returns a view of the next value, or false at the back of the list.
func (it *IterMut[T]) Next() (borrow.Mut[T], bool) {
	it.tok.Check("list iterator")
	if it.next == nil {
		return borrow.Mut[T]{}, false
	}
	e := it.next
	it.next = e.next
	return borrow.NewMut(&e.value, it.tok), true
}

// All adapts the iterator for range loops.
func (it *IterMut[T]) All() iter.Seq[borrow.Mut[T]] {
	return func(yield func(borrow.Mut[T]) bool) {
		for m, ok := it.Next(); ok; m, ok = it.Next() {
			if !yield(m) {
				return
			}
		}
	}
}
