package diag

import (
	"strings"
	"testing"

	"github.com/npillmayer/lists/dlist"
	"github.com/npillmayer/lists/persistent/list"
	"github.com/npillmayer/lists/stack"
)

func TestDumpPersistentShowsSharing(t *testing.T) {
	base := list.New[int]().Append(1)
	a := base.Append(2)
	b := base.Append(3)
	out := DumpPersistent([]string{"a", "b"}, a, b)
	t.Logf("\n%s", out)
	if !strings.Contains(out, "⤷ a: 1") {
		t.Error("expected b's second node to be drawn as shared with a")
	}
	if strings.Count(out, ") 1") != 1 {
		t.Error("expected shared node 1 to be drawn exactly once")
	}
	if !strings.Contains(out, "(3) 1") {
		t.Error("expected node 1 to show 3 owners")
	}
}

func TestDumpPersistentUnnamed(t *testing.T) {
	out := DumpPersistent(nil, list.New[string]().Append("x"))
	if !strings.Contains(out, "#0") {
		t.Errorf("expected unnamed list to be labelled #0, have\n%s", out)
	}
}

func TestDumpList(t *testing.T) {
	l := dlist.New[string]()
	l.PushBack("a")
	l.PushBack("b")
	out := DumpList(l)
	t.Logf("\n%s", out)
	if !strings.Contains(out, "a  ← ∅  → b") || !strings.Contains(out, "b  ← a  → ∅") {
		t.Error("expected dump to show links of both elements")
	}
}

func TestDumpStack(t *testing.T) {
	s := stack.New[int]()
	s.Push(1)
	s.Push(2)
	out := DumpStack(s)
	top, bottom := strings.Index(out, "── 2"), strings.Index(out, "── 1")
	if !strings.Contains(out, "stack (len=2)") || top < 0 || bottom < top {
		t.Errorf("unexpected stack dump\n%s", out)
	}
}
