package tree

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

// build creates root -> [a -> [a1], b] and returns the ids by name.
func build(t *testing.T) (*Tree[string], map[string]NodeID) {
	t.Helper()
	tr := New[string]()
	ids := map[string]NodeID{}
	for _, name := range []string{"root", "a", "a1", "b"} {
		ids[name] = tr.Add(name)
	}
	mustAttach(t, tr, ids["a"], ids["a1"])
	mustAttach(t, tr, ids["root"], ids["b"])
	mustAttach(t, tr, ids["root"], ids["a"])
	return tr, ids
}

func mustAttach(t *testing.T, tr *Tree[string], parent, child NodeID) {
	t.Helper()
	if err := tr.Attach(parent, child); err != nil {
		t.Fatalf("Attach() = %v", err)
	}
}

func preorder(t *testing.T, tr *Tree[string], root NodeID) []string {
	t.Helper()
	var got []string
	err := tr.Walk(root, func(_ NodeID, v string) error {
		got = append(got, v)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() = %v", err)
	}
	return got
}

func TestAttachPrependsChild(t *testing.T) {
	tr := New[string]()
	root := tr.Add("root")
	a := tr.Add("a")
	b := tr.Add("b")
	mustAttach(t, tr, root, b)
	mustAttach(t, tr, root, a)

	got := tr.Children(root)
	want := []NodeID{a, b}
	if !slices.Equal(got, want) {
		t.Errorf("Children() = %v, want %v", got, want)
	}
	if tr.Parent(a) != root || tr.Parent(b) != root {
		t.Error("children should point back to root")
	}
	if tr.NextSibling(a) != b {
		t.Error("a should be followed by b")
	}
}

func TestAttachErrors(t *testing.T) {
	tr, ids := build(t)
	orphan := tr.Add("orphan")

	tests := []struct {
		name          string
		parent, child NodeID
		want          error
	}{
		{"already parented", orphan, ids["a1"], ErrHasParent},
		{"self", orphan, orphan, ErrCycle},
		{"ancestor", ids["a1"], ids["root"], ErrCycle},
		{"nil parent", NilNode, orphan, ErrInvalidNode},
		{"nil child", orphan, NilNode, ErrInvalidNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := preorder(t, tr, ids["root"])
			err := tr.Attach(tt.parent, tt.child)
			if !errors.Is(err, tt.want) {
				t.Errorf("Attach() = %v, want %v", err, tt.want)
			}
			if after := preorder(t, tr, ids["root"]); !slices.Equal(before, after) {
				t.Errorf("tree changed on failed attach: %v -> %v", before, after)
			}
		})
	}
}

func TestWalkPreorder(t *testing.T) {
	tr, ids := build(t)

	got := preorder(t, tr, ids["root"])
	want := []string{"root", "a", "a1", "b"}
	if !slices.Equal(got, want) {
		t.Errorf("Walk() order = %v, want %v", got, want)
	}
}

func TestWalkStopsOnError(t *testing.T) {
	tr, ids := build(t)
	stop := errors.New("stop")

	var visited []string
	err := tr.Walk(ids["root"], func(_ NodeID, v string) error {
		visited = append(visited, v)
		if v == "a1" {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("Walk() = %v, want %v", err, stop)
	}
	if want := []string{"root", "a", "a1"}; !slices.Equal(visited, want) {
		t.Errorf("visited = %v, want %v", visited, want)
	}
}

func TestWalkNilRoot(t *testing.T) {
	tr := New[int]()
	called := false
	if err := tr.Walk(NilNode, func(NodeID, int) error { called = true; return nil }); err != nil {
		t.Fatalf("Walk(NilNode) = %v", err)
	}
	if called {
		t.Error("Walk(NilNode) should not call fn")
	}
}

func TestDestroyCallsCleanupOncePerNode(t *testing.T) {
	for _, n := range []int{1, 2, 7, 64} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			tr := New[int]()
			ids := make([]NodeID, n)
			for i := range n {
				ids[i] = tr.Add(i)
			}
			// Node i hangs under node (i-1)/2: a binary heap shape.
			for i := n - 1; i > 0; i-- {
				if err := tr.Attach(ids[(i-1)/2], ids[i]); err != nil {
					t.Fatalf("Attach() = %v", err)
				}
			}

			seen := make(map[int]int)
			tr.Destroy(ids[0], func(v int) { seen[v]++ })

			if len(seen) != n {
				t.Errorf("cleanup saw %d distinct nodes, want %d", len(seen), n)
			}
			for v, count := range seen {
				if count != 1 {
					t.Errorf("cleanup(%d) called %d times", v, count)
				}
			}
			if tr.Len() != 0 {
				t.Errorf("Len() = %d after destroy, want 0", tr.Len())
			}
			for _, id := range ids {
				if tr.Contains(id) {
					t.Errorf("node %v still reachable after destroy", id)
				}
			}
		})
	}
}

func TestDestroySubtreeLeavesSiblings(t *testing.T) {
	tr, ids := build(t)

	var released []string
	tr.Destroy(ids["a"], func(v string) { released = append(released, v) })

	slices.Sort(released)
	if want := []string{"a", "a1"}; !slices.Equal(released, want) {
		t.Errorf("released = %v, want %v", released, want)
	}
	if got := preorder(t, tr, ids["root"]); !slices.Equal(got, []string{"root", "b"}) {
		t.Errorf("remaining tree = %v, want [root b]", got)
	}
}

func TestDestroyNoop(t *testing.T) {
	tr := New[string]()
	tr.Destroy(NilNode, func(string) { t.Error("cleanup called for NilNode") })

	id := tr.Add("x")
	tr.Destroy(id, nil)
	tr.Destroy(id, func(string) { t.Error("cleanup called for stale id") })
}

func TestStaleIDRejected(t *testing.T) {
	tr := New[string]()
	old := tr.Add("old")
	tr.Destroy(old, nil)

	fresh := tr.Add("fresh")
	if old == fresh {
		t.Fatal("reused slot must get a new generation")
	}
	if _, ok := tr.Value(old); ok {
		t.Error("Value(stale) should fail")
	}
	if v, ok := tr.Value(fresh); !ok || v != "fresh" {
		t.Errorf("Value(fresh) = %q, %v", v, ok)
	}
	if err := tr.Attach(fresh, old); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("Attach(stale) = %v, want ErrInvalidNode", err)
	}
}

func TestDetach(t *testing.T) {
	tr, ids := build(t)

	if err := tr.Detach(ids["b"]); err != nil {
		t.Fatalf("Detach() = %v", err)
	}
	if !tr.Parent(ids["b"]).IsNil() {
		t.Error("detached node should have no parent")
	}
	if got := preorder(t, tr, ids["root"]); !slices.Equal(got, []string{"root", "a", "a1"}) {
		t.Errorf("tree after detach = %v", got)
	}

	// The detached node can be attached elsewhere.
	mustAttach(t, tr, ids["a1"], ids["b"])
	if got := preorder(t, tr, ids["root"]); !slices.Equal(got, []string{"root", "a", "a1", "b"}) {
		t.Errorf("tree after reattach = %v", got)
	}
	if d := tr.Depth(ids["b"]); d != 3 {
		t.Errorf("Depth(b) = %d, want 3", d)
	}

	if err := tr.Detach(ids["root"]); err != nil {
		t.Errorf("Detach(root) = %v, want nil", err)
	}
}

func BenchmarkBuildAndDestroy(b *testing.B) {
	b.ReportAllocs()
	tr := New[int]()
	for b.Loop() {
		root := tr.Add(0)
		for i := 1; i < 256; i++ {
			_ = tr.Attach(root, tr.Add(i))
		}
		tr.Destroy(root, nil)
	}
}
