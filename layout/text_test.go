package layout

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggchart/surface"
)

func mustNew(t *testing.T, desc string, opts ...Option) *Text {
	t.Helper()
	tx, err := New(desc, opts...)
	if err != nil {
		t.Fatalf("New(%q) = %v", desc, err)
	}
	t.Cleanup(func() { _ = tx.Close() })
	return tx
}

func TestNewKeepsFont(t *testing.T) {
	tx := mustNew(t, "Monospace 9")
	if got := tx.Font(); !got.Mono || got.Size != 9 {
		t.Errorf("Font() = %+v", got)
	}
	if got := tx.Face().Size(); got != 9 {
		t.Errorf("Face().Size() = %v, want 9", got)
	}

	var r surface.Recorder
	tx.Init(&r)
	tx.Init(&r)
	if got := tx.Face().Size(); got != 9 {
		t.Errorf("Init() changed the face size to %v", got)
	}
}

func TestNewInvalid(t *testing.T) {
	if _, err := New("Sans 0"); !errors.Is(err, ErrInvalidFont) {
		t.Errorf("New() = %v, want ErrInvalidFont", err)
	}
	if _, err := NewFromSource(nil, 10); !errors.Is(err, ErrInvalidFont) {
		t.Errorf("NewFromSource(nil) = %v, want ErrInvalidFont", err)
	}
}

func TestExtents(t *testing.T) {
	tx := mustNew(t, "Monospace 12")
	tx.SetText("Hello")

	ink, logical := tx.Extents()
	if logical.MinX != 0 || logical.MinY != 0 {
		t.Errorf("logical origin = (%v, %v), want (0, 0)", logical.MinX, logical.MinY)
	}
	if logical.Width() <= 0 || logical.Height() <= 0 {
		t.Fatalf("logical = %+v, want positive size", logical)
	}
	if ink.Empty() {
		t.Fatal("ink box should not be empty for visible glyphs")
	}
	if ink.MinY < 0 || ink.MaxY > logical.Height() {
		t.Errorf("ink %+v escapes the logical line box %+v", ink, logical)
	}

	// Monospace: every glyph has the same advance.
	tx.SetText("H")
	_, one := tx.Extents()
	if got, want := logical.Width(), 5*one.Width(); got < want-0.01 || got > want+0.01 {
		t.Errorf("advance of 5 glyphs = %v, want %v", got, want)
	}
}

func TestExtentsBlank(t *testing.T) {
	tx := mustNew(t, "Sans 10")

	tx.SetText("")
	ink, logical := tx.Extents()
	if !ink.Empty() || logical.Width() != 0 {
		t.Errorf("empty text: ink=%+v logical=%+v", ink, logical)
	}

	tx.SetText("   ")
	ink, logical = tx.Extents()
	if !ink.Empty() {
		t.Errorf("spaces should have no ink, got %+v", ink)
	}
	if logical.Width() <= 0 {
		t.Error("spaces should still advance")
	}
}

type countingShaper struct{ calls int }

func (s *countingShaper) Shape(str string, face text.Face) []text.ShapedGlyph {
	s.calls++
	return []text.ShapedGlyph{{XAdvance: 7}, {XAdvance: 3}}
}

func TestExtentsWithShaper(t *testing.T) {
	sh := &countingShaper{}
	tx := mustNew(t, "Sans 10", WithShaper(sh))
	tx.SetText("ab")

	_, logical := tx.Extents()
	if logical.Width() != 10 {
		t.Errorf("logical width = %v, want 10 from shaper", logical.Width())
	}
	if sh.calls != 1 {
		t.Errorf("shaper called %d times, want 1", sh.calls)
	}
}

func TestShow(t *testing.T) {
	tx := mustNew(t, "Monospace 9")

	if err := tx.Show(); !errors.Is(err, ErrNotBound) {
		t.Errorf("Show() before Init = %v, want ErrNotBound", err)
	}

	var r surface.Recorder
	tx.Init(&r)
	if err := tx.Show(); !errors.Is(err, ErrNoText) {
		t.Errorf("Show() before SetText = %v, want ErrNoText", err)
	}

	tx.SetText("title")
	r.MoveTo(3, 4)
	if err := tx.Show(); err != nil {
		t.Fatalf("Show() = %v", err)
	}
	want := []surface.Op{surface.OpMoveTo, surface.OpShowText}
	if got := r.Ops(); !slices.Equal(got, want) {
		t.Errorf("ops = %v, want %v", got, want)
	}
	if got := r.Calls()[1].Text; got != "title" {
		t.Errorf("shown text = %q", got)
	}

	// A new pass forgets the previous text.
	tx.Init(&r)
	if err := tx.Show(); !errors.Is(err, ErrNoText) {
		t.Errorf("Show() after rebind = %v, want ErrNoText", err)
	}
}

func TestNewFromSourceNotClosed(t *testing.T) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() = %v", err)
	}
	defer func() { _ = src.Close() }()

	tx, err := NewFromSource(src, 11)
	if err != nil {
		t.Fatalf("NewFromSource() = %v", err)
	}
	if err := tx.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	// The caller's source must still be usable.
	if src.Face(11).Advance("x") <= 0 {
		t.Error("Close() released a caller-owned source")
	}
}
