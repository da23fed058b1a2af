package borrow

import (
	"github.com/cockroachdb/errors"
)

// ErrBorrowConflict is raised (as a panic) when a view into a list is used after it
// has been invalidated by a conflicting borrow or by a structural mutation.
var ErrBorrowConflict = errors.New("borrow conflict")

// Kind is the kind of a borrow.
type Kind uint8

const (
	Shared Kind = iota
	Exclusive
)

func (k Kind) String() string {
	if k == Exclusive {
		return "exclusive"
	}
	return "shared"
}

// Tracker keeps track of the borrows handed out for a list. The zero value is ready to use.
type Tracker struct {
	epoch  uint64 // bumped on structural mutation and on exclusive borrows
	shared uint64 // bumped on shared borrows
}

// Mutate announces a structural mutation. Every outstanding token is invalidated.
func (t *Tracker) Mutate() {
	t.epoch++
}

// Share hands out a shared token. Outstanding exclusive tokens are invalidated.
func (t *Tracker) Share() Token {
	t.shared++
	return Token{tracker: t, kind: Shared, epoch: t.epoch, shared: t.shared}
}

// Exclusive hands out an exclusive token. Every other outstanding token is invalidated.
func (t *Tracker) Exclusive() Token {
	t.epoch++
	return Token{tracker: t, kind: Exclusive, epoch: t.epoch, shared: t.shared}
}

// Token witnesses a borrow. The zero Token is never valid.
type Token struct {
	tracker *Tracker
	kind    Kind
	epoch   uint64
	shared  uint64
}

// Kind returns the kind of borrow this token stands for.
func (tok Token) Kind() Kind {
	return tok.kind
}

// Valid is true as long as no conflicting borrow or mutation happened since the token
// was handed out.
func (tok Token) Valid() bool {
	if tok.tracker == nil || tok.epoch != tok.tracker.epoch {
		return false
	}
	return tok.kind == Shared || tok.shared == tok.tracker.shared
}

// Check panics with an error wrapping ErrBorrowConflict if tok is no longer valid.
// what names the view, for the error message.
func (tok Token) Check(what string) {
	if tok.Valid() {
		return
	}
	err := errors.Wrapf(ErrBorrowConflict, "%s borrow of %s used after it was invalidated",
		tok.kind, what)
	tracer().Errorf("%v", err)
	panic(err)
}

// --- Mutable views ---------------------------------------------------------

// Mut is a checked mutable view of a single value inside a list. It stays usable until
// the list is mutated structurally or another view is taken.
type Mut[T any] struct {
	ptr *T
	tok Token
}

// NewMut creates a view for *ptr, guarded by tok. tok is expected to be exclusive.
func NewMut[T any](ptr *T, tok Token) Mut[T] {
	if tok.kind != Exclusive {
		panic(errors.AssertionFailedf("borrow: mutable view requires an exclusive token"))
	}
	return Mut[T]{ptr: ptr, tok: tok}
}

// Valid reports whether the view may still be used.
func (m Mut[T]) Valid() bool {
	return m.ptr != nil && m.tok.Valid()
}

// Get reads the value.
func (m Mut[T]) Get() T {
	m.tok.Check("value")
	return *m.ptr
}

// Set replaces the value.
func (m Mut[T]) Set(value T) {
	m.tok.Check("value")
	*m.ptr = value
}

// Update lets f modify the value in place. f must not retain the pointer.
func (m Mut[T]) Update(f func(*T)) {
	m.tok.Check("value")
	f(m.ptr)
}
