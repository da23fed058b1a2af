package dlist

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/lists/borrow"
	"github.com/npillmayer/lists/maybe"
)

// List is a doubly linked list of values of type T. The zero value is an empty list
// ready to use; New is needed for options only. Lists must not be copied.
type List[T any] struct {
	head      *Element[T]
	tail      *Element[T]
	length    int
	members   *membership // nil until the first element is inserted
	borrows   borrow.Tracker
	onRelease func(T)
}

// Option is a type to help initializing lists at creation time.
type Option[T any] func(*List[T])

// WithReleaseHook sets a function to be called for every value dropped by Release.
// Values handed out by PopFront, PopBack and Remove are not reported.
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

func (l *List[T]) token() *membership {
	if l.members == nil {
		l.members = &membership{borrows: &l.borrows}
	}
	return l.members
}

// rebind points l's membership at l's borrow tracker after memberships changed hands.
func (l *List[T]) rebind() {
	if l.members != nil {
		l.members.borrows = &l.borrows
	}
}

func (l *List[T]) owns(e *Element[T]) bool {
	return e != nil && e.member != nil && l.members != nil && e.member.resolve() == l.members
}

// --- Inspection ------------------------------------------------------------

// Len returns the number of elements of l.
func (l *List[T]) Len() int {
	return l.length
}

// IsEmpty is true for a list without elements.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Front returns the first value of l, or Nothing for an empty list.
// This is a read-only borrow and invalidates outstanding mutable views.
func (l *List[T]) Front() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	l.borrows.Share()
	return maybe.Just(l.head.value)
}

// Back returns the last value of l, or Nothing for an empty list.
// This is a read-only borrow and invalidates outstanding mutable views.
func (l *List[T]) Back() maybe.Maybe[T] {
	if l.tail == nil {
		return maybe.Nothing[T]()
	}
	l.borrows.Share()
	return maybe.Just(l.tail.value)
}

// FrontMut returns a mutable view of the first value, or Nothing for an empty list.
func (l *List[T]) FrontMut() maybe.Maybe[borrow.Mut[T]] {
	if l.head == nil {
		return maybe.Nothing[borrow.Mut[T]]()
	}
	return maybe.Just(borrow.NewMut(&l.head.value, l.borrows.Exclusive()))
}

// BackMut returns a mutable view of the last value, or Nothing for an empty list.
func (l *List[T]) BackMut() maybe.Maybe[borrow.Mut[T]] {
	if l.tail == nil {
		return maybe.Nothing[borrow.Mut[T]]()
	}
	return maybe.Just(borrow.NewMut(&l.tail.value, l.borrows.Exclusive()))
}

// FrontElement returns the first element of l, or nil.
func (l *List[T]) FrontElement() *Element[T] {
	return l.head
}

// BackElement returns the last element of l, or nil.
func (l *List[T]) BackElement() *Element[T] {
	return l.tail
}

// Contains is true if e is an element of l.
func (l *List[T]) Contains(e *Element[T]) bool {
	return l.owns(e)
}

// --- Insertion and removal -------------------------------------------------

// PushFront inserts value in front of l and returns its element.
func (l *List[T]) PushFront(value T) *Element[T] {
	l.borrows.Mutate()
	e := &Element[T]{value: value, next: l.head, member: l.token()}
	if l.head == nil {
		l.tail = e
	} else {
		l.head.prev = e
	}
	l.head = e
	l.length++
	return e
}

// PushBack inserts value at the back of l and returns its element.
func (l *List[T]) PushBack(value T) *Element[T] {
	l.borrows.Mutate()
	e := &Element[T]{value: value, prev: l.tail, member: l.token()}
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.length++
	return e
}

// PopFront removes the first element and returns its value, or Nothing for an empty list.
func (l *List[T]) PopFront() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.unlink(l.head))
}

// PopBack removes the last element and returns its value, or Nothing for an empty list.
func (l *List[T]) PopBack() maybe.Maybe[T] {
	if l.tail == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.unlink(l.tail))
}

// Remove removes e from l in O(1) and returns its value. If e is nil, has already been
// removed, or belongs to another list, l is left unchanged and Nothing is returned.
func (l *List[T]) Remove(e *Element[T]) maybe.Maybe[T] {
	if !l.owns(e) {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.unlink(e))
}

// unlink takes e out of the chain. The back-link only locates the forward slot owning e;
// that slot is what releases it.
func (l *List[T]) unlink(e *Element[T]) T {
	l.borrows.Mutate()
	owner := &l.head
	if e.prev != nil {
		owner = &e.prev.next
	}
	assertThat(*owner == e, "forward link of predecessor does not point to element")
	*owner = e.next
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}
	l.length--
	return e.detach()
}

// Append splices all elements of other onto the back of l in O(1), leaving other empty.
// No element is copied or visited; elements keep their identity and now belong to l.
// If l is empty, the contents of l and other are exchanged. If other is empty, Append
// does nothing. Appending a list to itself panics with an error wrapping ErrBorrowConflict.
func (l *List[T]) Append(other *List[T]) {
	if other == l {
		err := errors.Wrapf(ErrBorrowConflict, "list appended to itself")
		tracer().Errorf("%v", err)
		panic(err)
	}
	if other.head == nil {
		return
	}
	l.borrows.Mutate()
	other.borrows.Mutate()
	if l.head == nil {
		l.head, other.head = other.head, l.head
		l.tail, other.tail = other.tail, l.tail
		l.length, other.length = other.length, l.length
		l.members, other.members = other.members, l.members
		l.rebind()
		other.rebind()
		tracer().Debugf("append to empty list: exchanged %d elements", l.length)
		return
	}
	l.tail.next = other.head
	other.head.prev = l.tail
	l.tail = other.tail
	l.length += other.length
	other.members.into = l.token()
	tracer().Debugf("append: spliced %d elements, length now %d", other.length, l.length)
	other.head, other.tail, other.length, other.members = nil, nil, 0, nil
}

// Release drops all elements of l, front to back, calling the release hook for each value.
// The forward chain is walked with a loop, detaching one element at a time, so releasing
// a long list never recurses. l is empty and usable afterwards.
func (l *List[T]) Release() {
	l.borrows.Mutate()
	e := l.head
	l.head, l.tail = nil, nil
	n := 0
	for e != nil {
		next := e.next
		v := e.detach()
		if l.onRelease != nil {
			l.onRelease(v)
		}
		e = next
		n++
	}
	assertThat(n == l.length, "released %d elements, list length was %d", n, l.length)
	l.length = 0
	tracer().Debugf("released %d list elements", n)
}

// --- Consistency -----------------------------------------------------------

// Check verifies the structural invariants of l: link symmetry between neighbours,
// no backward link at the front, no forward link at the back, membership of every
// element, and a length equal to the number of elements reachable from the front.
func (l *List[T]) Check() error {
	if l.head == nil || l.tail == nil {
		if l.head != nil || l.tail != nil || l.length != 0 {
			return errors.Newf("empty list inconsistent: head=%p tail=%p length=%d",
				l.head, l.tail, l.length)
		}
		return nil
	}
	if l.head.prev != nil {
		return errors.New("front element has a backward link")
	}
	if l.tail.next != nil {
		return errors.New("back element has a forward link")
	}
	n := 0
	var last *Element[T]
	for e := l.head; e != nil; e = e.next {
		if n == l.length { // catches cyclic chains as well
			return errors.Newf("more than %d elements reachable from the front", l.length)
		}
		if e.next != nil && e.next.prev != e {
			return errors.Newf("element #%d: next.prev does not point back", n)
		}
		if e.prev != nil && e.prev.next != e {
			return errors.Newf("element #%d: prev.next does not point forward", n)
		}
		if !l.owns(e) {
			return errors.Newf("element #%d does not belong to the list", n)
		}
		last = e
		n++
	}
	if last != l.tail {
		return errors.New("back element is not reachable from the front")
	}
	if n != l.length {
		return errors.Newf("length is %d, but %d elements are reachable", l.length, n)
	}
	return nil
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for e := l.head; e != nil; e = e.next {
		if e != l.head {
			b.WriteString(" ⇄ ")
		}
		fmt.Fprintf(&b, "%v", e.value)
	}
	b.WriteByte(']')
	return b.String()
}
