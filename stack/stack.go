package stack

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/lists/borrow"
	"github.com/npillmayer/lists/maybe"
)

// Stack is a LIFO stack of values of type T. The zero value is an empty stack ready to use;
// New is needed for options only.
type Stack[T any] struct {
	head      *node[T] // top of the stack
	length    int
	borrows   borrow.Tracker
	onRelease func(T)
}

// node is owned by its predecessor, or by the stack for the top node.
type node[T any] struct {
	value T
	next  *node[T]
}

// Option is a type to help initializing stacks at creation time.
type Option[T any] func(*Stack[T])

// WithReleaseHook sets a function to be called for every value dropped by Release.
// Values handed out by Pop are owned by the caller and are not reported.
//
//	s := stack.New(stack.WithReleaseHook(func(f *os.File) { f.Close() }))
func WithReleaseHook[T any](f func(T)) Option[T] {
	return func(s *Stack[T]) {
		s.onRelease = f
	}
}

// New creates an empty stack.
func New[T any](opts ...Option[T]) *Stack[T] {
	s := &Stack[T]{}
	for _, option := range opts {
		option(s)
	}
	return s
}

// --- API -------------------------------------------------------------------

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return s.length
}

// IsEmpty is true for a stack without values.
func (s *Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// Push puts value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.borrows.Mutate()
	s.head = &node[T]{value: value, next: s.head}
	s.length++
}

// Pop removes the top value and returns it, or Nothing for an empty stack.
func (s *Stack[T]) Pop() maybe.Maybe[T] {
	if s.head == nil {
		return maybe.Nothing[T]()
	}
	s.borrows.Mutate()
	top := s.head
	s.head, top.next = top.next, nil
	s.length--
	return maybe.Just(top.value)
}

// Peek returns the top value without removing it, or Nothing for an empty stack.
// Peeking counts as a read-only borrow and thus invalidates outstanding mutable views.
func (s *Stack[T]) Peek() maybe.Maybe[T] {
	if s.head == nil {
		return maybe.Nothing[T]()
	}
	s.borrows.Share()
	return maybe.Just(s.head.value)
}

// PeekMut returns a mutable view of the top value, or Nothing for an empty stack.
// The view is invalidated by any other borrow and by any push or pop.
func (s *Stack[T]) PeekMut() maybe.Maybe[borrow.Mut[T]] {
	if s.head == nil {
		return maybe.Nothing[borrow.Mut[T]]()
	}
	return maybe.Just(borrow.NewMut(&s.head.value, s.borrows.Exclusive()))
}

// Release drops all values of the stack, calling the release hook for each of them,
// top to bottom. Nodes are detached one by one in a loop, which keeps releasing a
// long stack from growing the call stack. The stack is empty and usable afterwards.
func (s *Stack[T]) Release() {
	s.borrows.Mutate()
	link := s.head
	s.head = nil
	n := 0
	for link != nil {
		next := link.next
		link.next = nil // detach before dropping
		if s.onRelease != nil {
			s.onRelease(link.value)
		}
		var zero T
		link.value = zero
		link = next
		n++
	}
	s.length = 0
	tracer().Debugf("released %d stack nodes", n)
}

// All returns a read-only sequence of the stack's values, top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return s.Iter().All()
}

// Drain returns a sequence popping values off the stack until it is empty.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return s.IntoIter().All()
}

func (s *Stack[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for link := s.head; link != nil; link = link.next {
		if link != s.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", link.value)
	}
	b.WriteByte(']')
	return b.String()
}
