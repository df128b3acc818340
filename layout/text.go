package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggchart/surface"
)

// Sentinel errors for Show.
var (
	// ErrNotBound is returned when Show is called before Init.
	ErrNotBound = errors.New("layout: no surface bound")

	// ErrNoText is returned when Show is called before SetText.
	ErrNoText = errors.New("layout: no text set")
)

// Option configures a Text.
type Option func(*Text)

// WithShaper measures text with s instead of summing glyph advances.
// Pass text.NewGoTextShaper() for kerning and ligatures. Only Extents
// uses the shaper; Show paints through the surface with plain advances.
func WithShaper(s text.Shaper) Option {
	return func(t *Text) {
		t.shaper = s
	}
}

// Text lays out one line of text with a fixed font.
// A Text is not safe for concurrent use.
type Text struct {
	desc   FontDesc
	source *text.FontSource
	owned  bool
	face   text.Face
	shaper text.Shaper

	// per-pass state
	surface surface.Surface
	str     string
	set     bool
}

// New creates a Text from a font description such as "Monospace 9".
func New(desc string, opts ...Option) (*Text, error) {
	d, err := ParseFontDesc(desc)
	if err != nil {
		return nil, err
	}
	src, err := text.NewFontSource(d.fontData())
	if err != nil {
		return nil, fmt.Errorf("layout: load %s: %w", d, err)
	}
	t := newText(d, src, opts)
	t.owned = true
	return t, nil
}

// NewFromSource creates a Text using a caller-owned font source.
// Close does not close src.
func NewFromSource(src *text.FontSource, size float64, opts ...Option) (*Text, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil font source", ErrInvalidFont)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %v", ErrInvalidFont, size)
	}
	d := FontDesc{Family: src.Name(), Size: size}
	return newText(d, src, opts), nil
}

func newText(d FontDesc, src *text.FontSource, opts []Option) *Text {
	t := &Text{
		desc:   d,
		source: src,
		face:   src.Face(d.Size),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Font returns the font description the Text was created with.
func (t *Text) Font() FontDesc {
	return t.desc
}

// Face returns the font face.
func (t *Text) Face() text.Face {
	return t.face
}

// Init binds t to s for a draw pass and drops the text of any previous
// pass. The font is unchanged.
func (t *Text) Init(s surface.Surface) {
	t.surface = s
	t.str = ""
	t.set = false
}

// SetText sets the string to measure and show.
func (t *Text) SetText(s string) {
	t.str = s
	t.set = true
}

// Text returns the current string.
func (t *Text) Text() string {
	return t.str
}

// Extents returns the ink and logical boxes of the current text, relative
// to the top-left corner of the logical box.
//
// The logical box spans the advance width and the line height. The ink box
// is the union of the glyph outlines; it is empty for blank text.
func (t *Text) Extents() (ink, logical text.Rect) {
	m := t.face.Metrics()
	logical = text.Rect{MaxX: t.advance(), MaxY: m.LineHeight()}
	if t.str == "" {
		return text.Rect{}, logical
	}

	ink = text.Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for g := range t.face.Glyphs(t.str) {
		b := g.Bounds
		if b.Empty() {
			continue
		}
		ink.MinX = math.Min(ink.MinX, g.X+b.MinX)
		ink.MaxX = math.Max(ink.MaxX, g.X+b.MaxX)
		ink.MinY = math.Min(ink.MinY, m.Ascent+b.MinY)
		ink.MaxY = math.Max(ink.MaxY, m.Ascent+b.MaxY)
	}
	if math.IsInf(ink.MinX, 1) {
		ink = text.Rect{}
	}
	return ink, logical
}

func (t *Text) advance() float64 {
	if t.str == "" {
		return 0
	}
	if t.shaper == nil {
		return t.face.Advance(t.str)
	}
	w := 0.0
	for _, g := range t.shaper.Shape(t.str, t.face) {
		w += g.XAdvance
	}
	return w
}

// Show paints the current text at the bound surface's current point.
func (t *Text) Show() error {
	if t.surface == nil {
		return ErrNotBound
	}
	if !t.set {
		return ErrNoText
	}
	return t.surface.ShowText(t.face, t.str)
}

// Close releases the font source if t owns it and unbinds the surface.
func (t *Text) Close() error {
	t.surface = nil
	if !t.owned || t.source == nil {
		return nil
	}
	src := t.source
	t.source = nil
	return src.Close()
}
