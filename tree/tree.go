// Package tree implements a generic n-ary tree stored in an arena.
//
// Nodes are addressed by NodeID rather than by pointer. Each node owns its
// first child; parent and next-sibling links are plain ids, so there is no
// cyclic ownership between nodes and a whole subtree can be released by
// walking ids.
//
// Attaching a child makes it the first child of its parent, shifting the
// existing children one position down the sibling chain:
//
//	t := tree.New[string]()
//	root := t.Add("root")
//	a := t.Add("a")
//	b := t.Add("b")
//	_ = t.Attach(root, b)
//	_ = t.Attach(root, a) // children are now [a, b]
//
// Freed slots are reused. Every id carries a generation counter, so an id
// that outlived its node is rejected instead of aliasing a newer node.
//
// Tree is not safe for concurrent use.
package tree

import "errors"

// Sentinel errors for tree operations.
var (
	// ErrInvalidNode is returned when an id does not name a live node.
	ErrInvalidNode = errors.New("tree: invalid node")

	// ErrHasParent is returned when attaching a node that is already a child.
	ErrHasParent = errors.New("tree: node already has a parent")

	// ErrCycle is returned when an attach would make a node its own ancestor.
	ErrCycle = errors.New("tree: attach would create a cycle")
)

// NodeID identifies a node inside a Tree.
// The zero value is NilNode.
type NodeID struct {
	slot uint32 // 1-based; 0 means nil
	gen  uint32
}

// NilNode is the id of no node.
var NilNode NodeID

// IsNil reports whether id is NilNode.
func (id NodeID) IsNil() bool {
	return id.slot == 0
}

type node[T any] struct {
	value  T
	parent NodeID
	first  NodeID
	next   NodeID
	gen    uint32
	live   bool
}

// Tree is an arena of nodes holding values of type T.
type Tree[T any] struct {
	nodes []node[T]
	free  []uint32
	live  int
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// Len returns the number of live nodes.
func (t *Tree[T]) Len() int {
	return t.live
}

// Add stores v in a new detached node and returns its id.
func (t *Tree[T]) Add(v T) NodeID {
	t.live++
	if n := len(t.free); n > 0 {
		idx := t.free[n-1]
		t.free = t.free[:n-1]
		nd := &t.nodes[idx]
		nd.value = v
		nd.live = true
		return NodeID{slot: idx + 1, gen: nd.gen}
	}
	t.nodes = append(t.nodes, node[T]{value: v, live: true})
	return NodeID{slot: uint32(len(t.nodes)), gen: 0}
}

// Contains reports whether id names a live node of this tree.
func (t *Tree[T]) Contains(id NodeID) bool {
	return t.get(id) != nil
}

// Value returns the value stored at id.
func (t *Tree[T]) Value(id NodeID) (T, bool) {
	nd := t.get(id)
	if nd == nil {
		var zero T
		return zero, false
	}
	return nd.value, true
}

// Parent returns the parent of id, or NilNode.
func (t *Tree[T]) Parent(id NodeID) NodeID {
	if nd := t.get(id); nd != nil {
		return nd.parent
	}
	return NilNode
}

// FirstChild returns the first child of id, or NilNode.
func (t *Tree[T]) FirstChild(id NodeID) NodeID {
	if nd := t.get(id); nd != nil {
		return nd.first
	}
	return NilNode
}

// NextSibling returns the sibling following id, or NilNode.
func (t *Tree[T]) NextSibling(id NodeID) NodeID {
	if nd := t.get(id); nd != nil {
		return nd.next
	}
	return NilNode
}

// Children returns the children of id in sibling order.
func (t *Tree[T]) Children(id NodeID) []NodeID {
	var out []NodeID
	for c := t.FirstChild(id); !c.IsNil(); c = t.NextSibling(c) {
		out = append(out, c)
	}
	return out
}

// Attach makes child the first child of parent. The previous children of
// parent follow it in the sibling chain. The tree is unchanged on error.
func (t *Tree[T]) Attach(parent, child NodeID) error {
	p, c := t.get(parent), t.get(child)
	if p == nil || c == nil {
		return ErrInvalidNode
	}
	if !c.parent.IsNil() {
		return ErrHasParent
	}
	for a := parent; !a.IsNil(); a = t.Parent(a) {
		if a == child {
			return ErrCycle
		}
	}

	c.parent = parent
	c.next = p.first
	p.first = child
	return nil
}

// Detach unlinks id and its subtree from its parent.
// Detaching a node without a parent is a no-op.
func (t *Tree[T]) Detach(id NodeID) error {
	nd := t.get(id)
	if nd == nil {
		return ErrInvalidNode
	}
	if nd.parent.IsNil() {
		return nil
	}

	p := t.get(nd.parent)
	if p.first == id {
		p.first = nd.next
	} else {
		prev := p.first
		for t.NextSibling(prev) != id {
			prev = t.NextSibling(prev)
		}
		t.get(prev).next = nd.next
	}
	nd.parent = NilNode
	nd.next = NilNode
	return nil
}

// Destroy releases root and every node below it. cleanup, if non-nil, is
// called exactly once per released node before its slot is freed. Siblings
// of root are not touched; if root has a parent it is detached first.
// Destroying NilNode or a stale id is a no-op.
func (t *Tree[T]) Destroy(root NodeID, cleanup func(T)) {
	if !t.Contains(root) {
		return
	}
	_ = t.Detach(root)

	stack := []NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := t.get(id)
		for c := nd.first; !c.IsNil(); c = t.NextSibling(c) {
			stack = append(stack, c)
		}
		if cleanup != nil {
			cleanup(nd.value)
		}
		t.release(id)
	}
}

// Walk visits root and its subtree in preorder: a node first, then each
// child's subtree in sibling order. It stops at the first error fn returns.
func (t *Tree[T]) Walk(root NodeID, fn func(NodeID, T) error) error {
	nd := t.get(root)
	if nd == nil {
		return nil
	}
	if err := fn(root, nd.value); err != nil {
		return err
	}
	for c := nd.first; !c.IsNil(); c = t.NextSibling(c) {
		if err := t.Walk(c, fn); err != nil {
			return err
		}
	}
	return nil
}

// Depth returns the number of ancestors of id.
func (t *Tree[T]) Depth(id NodeID) int {
	d := 0
	for p := t.Parent(id); !p.IsNil(); p = t.Parent(p) {
		d++
	}
	return d
}

func (t *Tree[T]) get(id NodeID) *node[T] {
	if id.slot == 0 || int(id.slot) > len(t.nodes) {
		return nil
	}
	nd := &t.nodes[id.slot-1]
	if !nd.live || nd.gen != id.gen {
		return nil
	}
	return nd
}

func (t *Tree[T]) release(id NodeID) {
	nd := &t.nodes[id.slot-1]
	var zero T
	*nd = node[T]{value: zero, gen: nd.gen + 1}
	t.free = append(t.free, id.slot-1)
	t.live--
}
