/*
Package maybe implements an optional value, used by the lists of this module to report
results which may be absent (popping from an empty stack, the head of an empty list, …).

A Maybe is either Just a value or Nothing. Nothing is never confused with the zero
value of T: Just(0) and Nothing[int]() are different things.

Clients may pattern-match a Maybe:

	var v int
	switch m := stack.Pop().Match(); m {
	case m.Just(&v):
		fmt.Printf("popped %d\n", v)
	case m.Nothing():
		fmt.Println("stack is empty")
	}

or use the more Go-like comma-ok form:

	if v, ok := stack.Pop().Get(); ok {
		…
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import "fmt"

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	Get() (T, bool)
	IsJust() bool
	IsNothing() bool
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	String() string
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Of converts a comma-ok pair into a Maybe.
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

// Get returns the value and true for Just, the zero value and false for Nothing.
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// AndThen chains a computation which may fail onto a Maybe.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to the value of x, if present, possibly changing its type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// Equal is true if both a and b are Nothing, or both are Just with equal values.
func Equal[T comparable](a, b Maybe[T]) bool {
	va, oka := a.Get()
	vb, okb := b.Get()
	return oka == okb && va == vb
}

// --- Matching --------------------------------------------------------------

// Matcher supports switch-style pattern matching of Maybe values. Exactly one of
// Just or Nothing returns the matcher itself, the other one returns nil.
// Matchers are pointers, so matching works for any T, comparable or not.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
