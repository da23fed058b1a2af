/*
Package list implements an immutable persistent singly linked list.

Lists are never modified. Append derives a new list with one more value in front,
Tail derives a new list without the first value. Derived lists share all the
nodes of the original, node for node:

	base := list.New[int]().Append(1)
	a := base.Append(2)   // (2 1)
	b := base.Append(3)   // (3 1), sharing node 1 with a and with base

Nodes are reference counted. A node is owned by every list having it as its head and by
its predecessor nodes. Release gives up a list's ownership: it walks the chain and
reclaims nodes as long as it is their last owner, stopping at the first node which is
still shared with another list. Nodes are therefore reclaimed exactly when the last list
referencing them is released, and releasing never recurses.

Lists must be handled by pointer (*List[T]). Use Clone to get an additional owner of
the same chain, not a copy of the struct.

Reference counts are plain integers; lists are safe for concurrent readers only as long
as no goroutine derives or releases lists concurrently.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.plist'.
func tracer() tracing.Trace {
	return tracing.Select("lists.plist")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.list: "+msg, msgargs...)
		tracer().Errorf("%s", msg)
		panic(msg)
	}
}
