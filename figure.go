package ggchart

import (
	"fmt"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggchart/layout"
	"github.com/gogpu/ggchart/surface"
	"github.com/gogpu/ggchart/tree"
)

// Background and title geometry, in canvas units.
const (
	backgroundInset  = 10.0
	backgroundRadius = 10.0
	titleTop         = 10.0
)

// Figure is the top-level drawable: a background, a tree of items and a
// title.
//
// A Figure owns its item tree exclusively. Replacing the root item or
// closing the figure destroys the tree and releases every payload that
// implements Releaser.
//
// A Figure is not safe for concurrent use.
type Figure struct {
	fill        Color
	stroke      Color
	strokeWidth float64
	rounded     bool
	title       string
	titleColor  Color

	text  *layout.Text
	items *tree.Tree[*Item]
	root  tree.NodeID

	observers []func(*Figure)
	closed    bool
}

// NewFigure creates a figure with a white rounded background, no stroke,
// the title "ggchart" in black and the font "Monospace 9".
func NewFigure(opts ...FigureOption) (*Figure, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	txt := o.text
	if txt == nil {
		var lopts []layout.Option
		if o.shaped {
			lopts = append(lopts, layout.WithShaper(text.NewGoTextShaper()))
		}
		var err error
		txt, err = layout.New(o.font, lopts...)
		if err != nil {
			return nil, fmt.Errorf("%w: font %q: %w", ErrInvalidArgument, o.font, err)
		}
	}

	return &Figure{
		fill:        o.fill,
		stroke:      o.stroke,
		strokeWidth: o.strokeWidth,
		rounded:     o.rounded,
		title:       o.title,
		titleColor:  o.titleColor,
		text:        txt,
		items:       tree.New[*Item](),
	}, nil
}

// Fill returns the background fill color.
func (f *Figure) Fill() Color { return f.fill }

// Stroke returns the background stroke color.
func (f *Figure) Stroke() Color { return f.stroke }

// StrokeWidth returns the background stroke width.
func (f *Figure) StrokeWidth() float64 { return f.strokeWidth }

// RoundedRect reports whether the background is a rounded rectangle.
func (f *Figure) RoundedRect() bool { return f.rounded }

// Title returns the title, or "" when none is set.
func (f *Figure) Title() string { return f.title }

// TitleColor returns the title color.
func (f *Figure) TitleColor() Color { return f.titleColor }

// TextLayout returns the figure's text layout. Payloads use it to measure
// and show text during Draw.
func (f *Figure) TextLayout() *layout.Text { return f.text }

// SetBackground sets the background fill and stroke colors.
func (f *Figure) SetBackground(fill, stroke Color) {
	f.fill, f.stroke = fill, stroke
	f.changed()
}

// SetStrokeWidth sets the background stroke width, clamped to
// [0, MaxStrokeWidth].
func (f *Figure) SetStrokeWidth(w float64) {
	f.strokeWidth = clampStrokeWidth(w)
	f.changed()
}

// SetRoundedRect toggles the rounded background.
func (f *Figure) SetRoundedRect(on bool) {
	f.rounded = on
	f.changed()
}

// SetTitle sets the title. The empty string clears it.
func (f *Figure) SetTitle(s string) {
	f.title = s
	f.changed()
}

// SetTitleColor sets the title color.
func (f *Figure) SetTitleColor(c Color) {
	f.titleColor = c
	f.changed()
}

// OnChange registers fn to run after every property or tree change,
// including items attached to or detached from the figure's tree.
func (f *Figure) OnChange(fn func(*Figure)) {
	if fn != nil {
		f.observers = append(f.observers, fn)
	}
}

func (f *Figure) changed() {
	for _, fn := range f.observers {
		fn(f)
	}
}

// RootItem returns the root item, or nil.
func (f *Figure) RootItem() *Item {
	it, _ := f.items.Value(f.root)
	return it
}

// Len returns the number of items in the figure.
func (f *Figure) Len() int {
	return f.items.Len()
}

// SetRootItem replaces the figure's item tree with the tree rooted at it.
//
// The previous tree is destroyed first. it must be a detached root;
// an item with a parent or owned by another figure is rejected with
// ErrAttachConflict and nothing changes. Setting the current root again is
// a no-op. Each payload in the new tree that implements Adder has Added
// called once, the root with a nil parent.
func (f *Figure) SetRootItem(it *Item) error {
	if it == nil || it.Released() {
		return fmt.Errorf("%w: nil or released root item", ErrInvalidArgument)
	}
	if f.closed {
		return fmt.Errorf("%w: figure closed", ErrInvalidArgument)
	}
	if it.figure == f && it.id == f.root {
		return nil
	}
	if it.Parent() != nil || it.figure != nil {
		return ErrAttachConflict
	}

	released := f.destroyTree()
	f.root = it.moveTo(f.items)
	f.adopt(it)

	Logger().Debug("root item replaced", "released", released, "items", f.items.Len())
	f.changed()
	return nil
}

// adopt marks the subtree at it as part of f and runs pending Added hooks,
// parents before children.
func (f *Figure) adopt(it *Item) {
	_ = f.items.Walk(it.id, func(_ tree.NodeID, n *Item) error {
		n.figure = f
		if n.added {
			return nil
		}
		n.added = true
		if a, ok := n.payload.(Adder); ok {
			a.Added(n.Parent(), f)
		}
		return nil
	})
}

// destroyTree releases every item and returns how many were released.
func (f *Figure) destroyTree() int {
	n := 0
	f.items.Destroy(f.root, func(it *Item) {
		n++
		it.release()
	})
	f.root = tree.NilNode
	return n
}

// Draw renders the figure onto s as a width x height canvas.
//
// The surface state is saved on entry and restored on every return path.
// The background is drawn first, then every item in preorder, then the
// title centered at the top. The first item error stops the traversal and
// is returned as a *DrawError.
func (f *Figure) Draw(s surface.Surface, width, height int) error {
	if s == nil {
		return fmt.Errorf("%w: nil surface", ErrInvalidArgument)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidArgument, width, height)
	}
	if f.closed {
		return fmt.Errorf("%w: figure closed", ErrInvalidArgument)
	}

	s.Save()
	defer s.Restore()

	f.text.Init(s)
	rect := Rect{Width: float64(width), Height: float64(height)}

	if f.fill.Visible() || f.stroke.Visible() {
		if err := f.drawBackground(s, rect); err != nil {
			return fmt.Errorf("ggchart: background: %w", err)
		}
	}
	if err := f.drawItems(s, rect); err != nil {
		return err
	}
	if f.titleVisible() {
		if err := f.drawTitle(s, rect); err != nil {
			return fmt.Errorf("ggchart: title: %w", err)
		}
	}
	return nil
}

func (f *Figure) drawBackground(s surface.Surface, rect Rect) error {
	s.Save()
	defer s.Restore()

	if f.rounded {
		bg := rect.Shrink(2 * backgroundInset)
		s.Translate(backgroundInset, backgroundInset)
		s.RoundedRectangle(bg.X, bg.Y, bg.Width, bg.Height, backgroundRadius)
	} else {
		s.Rectangle(rect.X, rect.Y, rect.Width, rect.Height)
	}
	return s.StrokeAndFill(f.strokeWidth, f.fill, f.stroke)
}

func (f *Figure) drawItems(s surface.Surface, rect Rect) error {
	index := 0
	return f.items.Walk(f.root, func(_ tree.NodeID, it *Item) error {
		i := index
		index++
		if it.payload == nil {
			return nil
		}
		if err := it.payload.Draw(s, rect); err != nil {
			return &DrawError{Index: i, Err: err}
		}
		return nil
	})
}

// titleVisible compares colors literally: a title in the fill color would
// be invisible against the background.
func (f *Figure) titleVisible() bool {
	return f.title != "" && f.titleColor.Visible() && f.titleColor != f.fill
}

func (f *Figure) drawTitle(s surface.Surface, rect Rect) error {
	f.text.SetText(f.title)
	_, logical := f.text.Extents()
	s.SetColor(f.titleColor)
	s.MoveTo((rect.Width-logical.Width())/2, titleTop)
	return f.text.Show()
}

// Close destroys the item tree and releases the text layout.
// Close is idempotent; a closed figure cannot draw or take a new root.
func (f *Figure) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	n := f.destroyTree()
	Logger().Debug("figure closed", "released", n)
	return f.text.Close()
}
