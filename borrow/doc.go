/*
Package borrow implements runtime-checked borrowing for the mutable lists of this module.

A Tracker is embedded into a list. Every view into the list (an iterator or a handle to a
single value) carries a Token taken from the tracker. Tokens are invalidated by

  - structural mutation of the list (Tracker.Mutate): all views die;
  - taking an exclusive view (Tracker.Exclusive): all other views die;
  - taking a shared view (Tracker.Share): exclusive views die, shared views survive.

Using a view with an invalidated token panics with an error wrapping ErrBorrowConflict.
Thus at most one mutable view is usable at any time, and mutable and read-only views
never coexist.

Trackers use plain counters and are not safe for concurrent use, neither are the lists
embedding them.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package borrow

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.borrow'.
func tracer() tracing.Trace {
	return tracing.Select("lists.borrow")
}
