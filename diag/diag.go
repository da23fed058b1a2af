/*
Package diag renders the lists of this module as text trees, for debugging and for test
output. Persistent lists are drawn as a forest, making shared nodes visible.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package diag

import (
	"fmt"

	"github.com/npillmayer/lists/dlist"
	"github.com/npillmayer/lists/persistent/list"
	"github.com/npillmayer/lists/stack"
	tp "github.com/xlab/treeprint"
)

// DumpPersistent draws persistent lists, labelled by names. A node already drawn for
// an earlier list is not drawn again; instead a reference to the list it has first been
// drawn for closes the chain. Every node shows its number of owners.
//
//	.
//	├── a
//	│   ├── (1) 2
//	│   └── (3) 1
//	└── b
//	    ├── (1) 3
//	    └── ⤷ a: 1
func DumpPersistent[T any](names []string, lists ...*list.List[T]) string {
	printer := tp.New()
	seen := make(map[string]string) // node ID → name of list it was first drawn for
	for i, l := range lists {
		name := fmt.Sprintf("#%d", i)
		if i < len(names) {
			name = names[i]
		}
		branch := printer.AddBranch(name)
		for link := range l.Links() {
			if first, ok := seen[link.ID()]; ok {
				branch.AddNode(fmt.Sprintf("⤷ %s: %v", first, link.Value))
				break
			}
			seen[link.ID()] = name
			branch.AddNode(fmt.Sprintf("(%d) %v", link.Refs, link.Value))
		}
	}
	return printer.String()
}

// DumpList draws a doubly linked list front to back, showing for every element the
// values its backward and forward links point to.
func DumpList[T any](l *dlist.List[T]) string {
	printer := tp.New()
	branch := printer.AddBranch(fmt.Sprintf("dlist (len=%d)", l.Len()))
	for e := l.FrontElement(); e != nil; e = e.Next() {
		branch.AddNode(fmt.Sprintf("%v  ← %s  → %s", e.Value(), neighbour(e.Prev()), neighbour(e.Next())))
	}
	return printer.String()
}

func neighbour[T any](e *dlist.Element[T]) string {
	if e == nil {
		return "∅"
	}
	return fmt.Sprintf("%v", e.Value())
}

// DumpStack draws a stack top to bottom. This is a read-only borrow of s.
func DumpStack[T any](s *stack.Stack[T]) string {
	printer := tp.New()
	branch := printer.AddBranch(fmt.Sprintf("stack (len=%d)", s.Len()))
	for v := range s.All() {
		branch.AddNode(v)
	}
	return printer.String()
}
