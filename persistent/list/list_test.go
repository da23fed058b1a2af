package list

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/lists/maybe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestListBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.plist")
	defer teardown()
	//
	l := New[int]()
	if l.Head().IsJust() {
		t.Error("expected head of empty list to be Nothing")
	}
	l = l.Append(1).Append(2).Append(3)
	expectHead(t, l, maybe.Just(3))
	l = l.Tail()
	expectHead(t, l, maybe.Just(2))
	l = l.Tail()
	expectHead(t, l, maybe.Just(1))
	l = l.Tail()
	expectHead(t, l, maybe.Nothing[int]())
	l = l.Tail()
	expectHead(t, l, maybe.Nothing[int]())
	if !l.IsEmpty() || l.Len() != 0 {
		t.Error("expected tail of empty list to be empty")
	}
}

func TestListAppendLeavesReceiver(t *testing.T) {
	base := New[string]().Append("x")
	l := base.Append("y")
	if base.Len() != 1 || l.Len() != 2 {
		t.Errorf("expected lengths 1 and 2, have %d and %d", base.Len(), l.Len())
	}
	if base.String() != "(x)" || l.String() != "(y x)" {
		t.Errorf("unexpected lists %s and %s", base, l)
	}
}

func TestListSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.plist")
	defer teardown()
	//
	base := New[int]().Append(1)
	a := base.Append(2)
	b := base.Append(3)
	ta, tb := a.Tail(), b.Tail()
	expectHead(t, a, maybe.Just(2))
	expectHead(t, ta, maybe.Just(1))
	expectHead(t, b, maybe.Just(3))
	expectHead(t, tb, maybe.Just(1))
	if !ta.SameNodes(base) || !tb.SameNodes(base) {
		t.Error("expected tails of a and b to be the very nodes of base")
	}
	if !a.SharesTailWith(b) || !b.SharesTailWith(a) {
		t.Error("expected a and b to share their tail")
	}
	if a.head.next != b.head.next {
		t.Error("expected a and b to share their second node")
	}
	// base's head is owned by base, a's head node, b's head node and both tails
	if base.RefCount() != 5 {
		t.Errorf("expected 5 owners of base's head, have %d", base.RefCount())
	}
	ta.Release()
	tb.Release()
	if base.RefCount() != 3 {
		t.Errorf("expected 3 owners of base's head after releasing tails, have %d", base.RefCount())
	}
}

func TestListSharesTailWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.plist")
	defer teardown()
	//
	x, y := build(1, 2), build(1, 2)
	if x.SharesTailWith(y) {
		t.Error("expected lists with equal values but distinct nodes not to share a tail")
	}
	if !x.SharesTailWith(x) {
		t.Error("expected a list to share its tail with itself")
	}
	empty := New[int]()
	if empty.SharesTailWith(empty) || x.SharesTailWith(empty) || empty.SharesTailWith(x) {
		t.Error("expected no tail sharing involving an empty list")
	}
	p, q := build(7), build(8)
	if !p.SharesTailWith(q) {
		t.Error("expected two one-element lists to share the empty tail")
	}
	// a prepend onto x shares x's head, not x's tail
	z := x.Append(3)
	if z.SharesTailWith(x) {
		t.Errorf("expected %s not to share its tail with %s", z, x)
	}
	z.Release()
	x.Release()
	y.Release()
	p.Release()
	q.Release()
}

func TestListReleaseKeepsSharedSuffix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.plist")
	defer teardown()
	//
	var reclaimed []int
	base := New(WithReleaseHook(func(v int) {
		reclaimed = append(reclaimed, v)
	})).Append(1)
	a := base.Append(2)
	b := base.Append(3)
	a.Release()
	if len(reclaimed) != 1 || reclaimed[0] != 2 {
		t.Errorf("expected only a's own node to be reclaimed, have %v", reclaimed)
	}
	expectHead(t, base, maybe.Just(1))
	tb := b.Tail()
	expectHead(t, tb, maybe.Just(1))
	tb.Release()
	if base.RefCount() != 2 {
		t.Errorf("expected base's head to be owned by base and b, is %d", base.RefCount())
	}
	base.Release()
	if len(reclaimed) != 1 {
		t.Errorf("expected node 1 to survive while b holds it, reclaimed %v", reclaimed)
	}
	b.Release()
	if len(reclaimed) != 3 || reclaimed[1] != 3 || reclaimed[2] != 1 {
		t.Errorf("expected b's release to reclaim [3 1], have %v", reclaimed)
	}
	a.Release() // idempotent
	if len(reclaimed) != 3 {
		t.Errorf("expected repeated release to be a no-op, have %v", reclaimed)
	}
}

func TestListReleaseTailOwner(t *testing.T) {
	count := 0
	l := build(1, 2, 3)
	l.onRelease = func(int) { count++ }
	tail := l.Tail()
	l.Release()
	if count != 1 {
		t.Errorf("expected only head node to be reclaimed, have %d", count)
	}
	if tail.String() != "(2 1)" {
		t.Errorf("expected tail to stay intact, is %s", tail)
	}
	tail.Release()
	if count != 3 {
		t.Errorf("expected all nodes to be reclaimed, have %d", count)
	}
}

func TestListClone(t *testing.T) {
	l := New[int]().Append(1)
	c := l.Clone()
	if !c.SameNodes(l) || l.RefCount() != 2 {
		t.Fatalf("expected clone to share the head, refcount = %d", l.RefCount())
	}
	l.Release()
	expectHead(t, c, maybe.Just(1))
	if c.RefCount() != 1 {
		t.Errorf("expected clone to be sole owner, refcount = %d", c.RefCount())
	}
}

func TestListReleaseLongChain(t *testing.T) {
	const n = 1_000_000
	l := New[int]()
	for i := 0; i < n; i++ {
		next := l.Append(i)
		l.Release() // keep exactly one owner per node
		l = next
	}
	count := 0
	l.onRelease = func(int) { count++ }
	l.Release()
	if count != n {
		t.Errorf("expected %d nodes reclaimed, have %d", n, count)
	}
}

func TestListIterators(t *testing.T) {
	l := New[int]().Append(1).Append(2).Append(3)
	it1, it2 := l.Iter(), l.Iter()
	for _, want := range []int{3, 2, 1} {
		v1, ok1 := it1.Next()
		v2, ok2 := it2.Next()
		if !ok1 || !ok2 || v1 != want || v2 != want {
			t.Errorf("expected both iterators to yield %d, have %d/%v and %d/%v", want, v1, ok1, v2, ok2)
		}
	}
	if _, ok := it1.Next(); ok {
		t.Error("expected iterator to be exhausted")
	}
	var got []int
	for v := range l.All() {
		got = append(got, v)
	}
	if len(got) != 3 || got[0] != 3 || got[2] != 1 {
		t.Errorf("expected range over list to yield [3 2 1], have %v", got)
	}
}

func TestListIteratorAfterReclaim(t *testing.T) {
	l := build(1, 2)
	it := l.Iter()
	it.Next()
	l.Release()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrReclaimed) {
			t.Errorf("expected iterator to panic with ErrReclaimed, have %v", r)
		}
	}()
	it.Next()
}

func TestListLinks(t *testing.T) {
	base := New[int]().Append(1)
	a := base.Append(2)
	var ids []string
	var refs []int
	for k := range a.Links() {
		ids = append(ids, k.ID())
		refs = append(refs, k.Refs)
	}
	if len(ids) != 2 || refs[0] != 1 || refs[1] != 2 {
		t.Errorf("unexpected links: ids=%v refs=%v", ids, refs)
	}
	for k := range base.Links() {
		if k.ID() != ids[1] {
			t.Error("expected base's node to be a's second node")
		}
	}
}

// ---------------------------------------------------------------------------

// build creates a list of values (last value in front) where every node has exactly
// one owner, releasing the intermediate lists.
func build(values ...int) *List[int] {
	l := New[int]()
	for _, v := range values {
		next := l.Append(v)
		l.Release()
		l = next
	}
	return l
}

func expectHead(t *testing.T, l *List[int], want maybe.Maybe[int]) {
	t.Helper()
	if !maybe.Equal(l.Head(), want) {
		t.Errorf("expected head of %s to be %s, is %s", l, want, l.Head())
	}
}
