package ggchart

import (
	"fmt"

	"github.com/gogpu/ggchart/surface"
	"github.com/gogpu/ggchart/tree"
)

// Drawable is the payload of an Item: anything that can render itself onto
// a surface. clip is the full canvas rectangle of the current draw.
type Drawable interface {
	Draw(s surface.Surface, clip Rect) error
}

// Adder is implemented by payloads that need setup when their item joins a
// figure, such as resolving default colors from it. Added runs exactly once
// per attachment; parent is nil for a figure's root item.
type Adder interface {
	Added(parent *Item, fig *Figure)
}

// Releaser is implemented by payloads holding resources. Release is called
// once when the item's tree is destroyed and must not fail.
type Releaser interface {
	Release()
}

// Item is a node of a figure's scene graph.
//
// An item created with NewItem is a detached root. It joins a figure either
// as the figure's root (Figure.SetRootItem) or as a child of an item already
// in the figure (Item.Attach). Items attached under a detached item travel
// with it.
//
// Every item lives in exactly one arena: its own private one while
// detached, the figure's once attached. Moving between arenas keeps the
// *Item pointer stable.
type Item struct {
	payload Drawable
	arena   *tree.Tree[*Item]
	id      tree.NodeID
	figure  *Figure
	added   bool
}

// NewItem creates a detached item carrying payload. A nil payload makes a
// pure grouping node that draws nothing itself.
func NewItem(payload Drawable) *Item {
	it := &Item{payload: payload, arena: tree.New[*Item]()}
	it.id = it.arena.Add(it)
	return it
}

// Payload returns the item's drawable.
func (it *Item) Payload() Drawable {
	return it.payload
}

// Figure returns the figure the item belongs to, or nil.
func (it *Item) Figure() *Figure {
	return it.figure
}

// Released reports whether the item's tree has been destroyed.
// A released item cannot be attached again.
func (it *Item) Released() bool {
	return it.arena == nil
}

// Parent returns the parent item, or nil for a root.
func (it *Item) Parent() *Item {
	if it.arena == nil {
		return nil
	}
	p, _ := it.arena.Value(it.arena.Parent(it.id))
	return p
}

// Children returns the child items in sibling order.
func (it *Item) Children() []*Item {
	if it.arena == nil {
		return nil
	}
	ids := it.arena.Children(it.id)
	out := make([]*Item, 0, len(ids))
	for _, id := range ids {
		c, _ := it.arena.Value(id)
		out = append(out, c)
	}
	return out
}

// Attach makes child the first child of it; existing children follow it.
//
// child must be a detached root: attaching an item that already has a
// parent, is a figure's root, or is an ancestor of it fails with
// ErrAttachConflict and leaves both trees unchanged. If it belongs to a
// figure, child's whole subtree joins that figure and each payload's Added
// hook runs.
func (it *Item) Attach(child *Item) error {
	if child == nil || it.arena == nil || child.arena == nil {
		return fmt.Errorf("%w: nil or released item", ErrInvalidArgument)
	}
	if !child.arena.Parent(child.id).IsNil() || child.figure != nil {
		return ErrAttachConflict
	}

	if child.arena == it.arena {
		// Same arena and no parent: child is the root above it.
		if err := it.arena.Attach(it.id, child.id); err != nil {
			return fmt.Errorf("%w: %w", ErrAttachConflict, err)
		}
		if it.figure != nil {
			it.figure.changed()
		}
		return nil
	}

	id := child.moveTo(it.arena)
	if err := it.arena.Attach(it.id, id); err != nil {
		// Fresh nodes cannot conflict.
		panic("ggchart: attach after move: " + err.Error())
	}
	if it.figure != nil {
		it.figure.adopt(child)
		it.figure.changed()
	}
	return nil
}

// Detach removes it and its subtree from its parent. The subtree leaves
// its figure and becomes a detached root again; Added runs anew when it is
// attached to a figure later. Detaching a root is a no-op.
func (it *Item) Detach() error {
	if it.arena == nil {
		return fmt.Errorf("%w: released item", ErrInvalidArgument)
	}
	if it.arena.Parent(it.id).IsNil() {
		return nil
	}
	if err := it.arena.Detach(it.id); err != nil {
		return err
	}

	fig := it.figure
	it.moveTo(tree.New[*Item]())
	_ = it.arena.Walk(it.id, func(_ tree.NodeID, n *Item) error {
		n.figure = nil
		n.added = false
		return nil
	})
	if fig != nil {
		fig.changed()
	}
	return nil
}

// moveTo moves it and its subtree into dst, preserving sibling order,
// and returns its new id. it must not have a parent.
func (it *Item) moveTo(dst *tree.Tree[*Item]) tree.NodeID {
	src, old := it.arena, it.id
	id := transplant(src, old, dst)
	src.Destroy(old, nil)
	return id
}

func transplant(src *tree.Tree[*Item], id tree.NodeID, dst *tree.Tree[*Item]) tree.NodeID {
	it, _ := src.Value(id)
	nid := dst.Add(it)

	// Attach prepends, so walk the children backwards.
	kids := src.Children(id)
	for i := len(kids) - 1; i >= 0; i-- {
		_ = dst.Attach(nid, transplant(src, kids[i], dst))
	}
	it.arena, it.id = dst, nid
	return nid
}

// release is the cleanup callback used when a figure destroys its tree.
func (it *Item) release() {
	if r, ok := it.payload.(Releaser); ok {
		r.Release()
	}
	it.arena = nil
	it.id = tree.NilNode
	it.figure = nil
	it.added = false
}
