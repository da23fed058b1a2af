package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/lists/maybe"
)

// ErrReclaimed is wrapped by the panic raised when an iterator walks into nodes which
// have been reclaimed, because every list owning them has been released.
var ErrReclaimed = errors.New("list node has been reclaimed")

// List is an immutable singly linked list. The zero value is an empty list.
type List[T any] struct {
	head      *node[T]
	onRelease func(T)
}

// node is shared by every list and every node linking to it. refs counts these owners;
// a node with refs == 0 has been reclaimed.
type node[T any] struct {
	value T
	next  *node[T]
	refs  int
}

func (n *node[T]) retain() *node[T] {
	if n != nil {
		assertThat(n.refs > 0, "attempt to share a reclaimed node")
		n.refs++
	}
	return n
}

// Option is a type to help initializing lists at creation time.
type Option[T any] func(*List[T])

// WithReleaseHook sets a function to be called for every value whose node is reclaimed.
// Lists derived from a list inherit its hook.
func WithReleaseHook[T any](f func(T)) Option[T] {
	return func(l *List[T]) {
		l.onRelease = f
	}
}

// New creates an empty list.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, option := range opts {
		option(l)
	}
	return l
}

// --- API -------------------------------------------------------------------

// Append returns a new list with value in front of the values of l.
// l is left unchanged and shares all of its nodes with the new list.
func (l *List[T]) Append(value T) *List[T] {
	n := &node[T]{value: value, next: l.head.retain(), refs: 1}
	return &List[T]{head: n, onRelease: l.onRelease}
}

// Tail returns a new list of all values of l except the first one. The tail of an
// empty list is an empty list. No node is created or copied.
func (l *List[T]) Tail() *List[T] {
	if l.head == nil {
		return &List[T]{onRelease: l.onRelease}
	}
	return &List[T]{head: l.head.next.retain(), onRelease: l.onRelease}
}

// Head returns the first value of l, or Nothing for an empty list.
func (l *List[T]) Head() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.value)
}

// Clone returns an additional owner of l's nodes.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{head: l.head.retain(), onRelease: l.onRelease}
}

// IsEmpty is true for a list without values.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len counts the values of l. This is an O(n) operation.
func (l *List[T]) Len() int {
	n := 0
	for link := l.head; link != nil; link = link.next {
		n++
	}
	return n
}

// RefCount returns the number of owners of l's first node (0 for an empty list).
func (l *List[T]) RefCount() int {
	if l.head == nil {
		return 0
	}
	return l.head.refs
}

// SameNodes is true if l and other consist of the identical chain of nodes, i.e. are
// two owners of one list rather than two lists with equal values.
func (l *List[T]) SameNodes(other *List[T]) bool {
	return l.head == other.head
}

// SharesTailWith is true if Tail() of l and Tail() of other are the identical chain
// of nodes. Two lists of length 1 share the empty tail. An empty list has no first
// node, and SharesTailWith is false if either list is empty.
func (l *List[T]) SharesTailWith(other *List[T]) bool {
	if l.head == nil || other.head == nil {
		return false
	}
	return l.head.next == other.head.next
}

// Release gives up l's ownership of its nodes. Nodes are reclaimed front to back, in a
// loop, until a node is reached which is still owned by another list or node; the rest
// of the chain is that other owner's responsibility. l is empty afterwards.
// Releasing an empty (or already released) list is a no-op.
func (l *List[T]) Release() {
	link := l.head
	l.head = nil
	n := 0
	for link != nil {
		assertThat(link.refs > 0, "release of a reclaimed node")
		link.refs--
		if link.refs > 0 {
			tracer().Debugf("release stops at shared node %v (%d owners left)", link.value, link.refs)
			break
		}
		next := link.next
		link.next = nil
		if l.onRelease != nil {
			l.onRelease(link.value)
		}
		var zero T
		link.value = zero
		link = next
		n++
	}
	tracer().Debugf("reclaimed %d list nodes", n)
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for link := l.head; link != nil; link = link.next {
		if link != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", link.value)
	}
	b.WriteByte(')')
	return b.String()
}

// --- Iteration -------------------------------------------------------------

// Iter walks the values of a list front to back. Any number of iterators may walk a
// list at the same time, independently of each other.
type Iter[T any] struct {
	next *node[T]
}

// Iter returns an iterator positioned at the front of l.
func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{next: l.head}
}

// Next returns the next value, or false at the end of the list.
// It panics if the remaining nodes have been reclaimed in the meantime.
func (it *Iter[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	n := it.next
	if n.refs == 0 {
		err := errors.Wrapf(ErrReclaimed, "list iterator")
		tracer().Errorf("%v", err)
		panic(err)
	}
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

// All returns the values of l, front to back.
func (l *List[T]) All() iter.Seq[T] {
	return l.Iter().All()
}

// --- Diagnostics -----------------------------------------------------------

// Link describes a node of a list, for diagnostic purposes.
type Link[T any] struct {
	Value T
	Refs  int // number of owners of the node
	node  *node[T]
}

// ID identifies the node; two links with the same ID denote the same node.
func (k Link[T]) ID() string {
	return fmt.Sprintf("%p", k.node)
}

// Links returns the chain of nodes of l, front to back.
func (l *List[T]) Links() iter.Seq[Link[T]] {
	return func(yield func(Link[T]) bool) {
		for link := l.head; link != nil; link = link.next {
			if !yield(Link[T]{Value: link.value, Refs: link.refs, node: link}) {
				return
			}
		}
	}
}
