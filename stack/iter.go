package stack

import (
	"iter"

	"github.com/npillmayer/lists/borrow"
)

// Iter walks the values of a stack top to bottom, without consuming them.
// Any number of Iters may be active at the same time, each advancing independently.
type Iter[T any] struct {
	next *node[T]
	tok  borrow.Token
}

// Iter returns a read-only iterator positioned at the top of the stack.
// Taking it invalidates outstanding mutable views.
func (s *Stack[T]) Iter() *Iter[T] {
	return &Iter[T]{next: s.head, tok: s.borrows.Share()}
}

// Next returns the next value, or false if the bottom of the stack has been passed.
// It panics if the stack has been modified since the iterator has been created.
func (it *Iter[T]) Next() (T, bool) {
	it.tok.Check("stack iterator")
	if it.next == nil {
		var zero T
		return zero, false
	}
	n := it.next
	it.next = n.next
	return n.value, true
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

// IterMut walks the values of a stack top to bottom, handing out a mutable view for each.
// At most one IterMut is usable at a time.
type IterMut[T any] struct {
	next *node[T]
	tok  borrow.Token
}

// IterMut returns a mutable iterator positioned at the top of the stack.
// Taking it invalidates every other view into the stack.
func (s *Stack[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{next: s.head, tok: s.borrows.Exclusive()}
}

// Next returns a view of the next value, or false if the bottom of the stack has been
// passed. Views of different steps are disjoint and stay usable together, as long as
// the iterator itself stays valid.
func (it *IterMut[T]) Next() (borrow.Mut[T], bool) {
	it.tok.Check("stack iterator")
	if it.next == nil {
		return borrow.Mut[T]{}, false
	}
	n := it.next
	it.next = n.next
	return borrow.NewMut(&n.value, it.tok), true
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

// IntoIter consumes a stack by popping values off it.
type IntoIter[T any] struct {
	stack *Stack[T]
}

// IntoIter returns an iterator which pops values off s, leaving it empty when exhausted.
func (s *Stack[T]) IntoIter() *IntoIter[T] {
	return &IntoIter[T]{stack: s}
}

// Next pops the next value.
func (it *IntoIter[T]) Next() (T, bool) {
	return it.stack.Pop().Get()
}

// All adapts the iterator for range loops.
func (it *IntoIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
