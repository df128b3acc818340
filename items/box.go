package items

import (
	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/surface"
)

// Box is a filled and/or stroked rectangle in canvas coordinates.
type Box struct {
	Rect        ggchart.Rect
	Fill        ggchart.Color
	Stroke      ggchart.Color
	StrokeWidth float64

	// Radius rounds the corners when positive.
	Radius float64
}

// NewBox returns a box over r with no colors and a 1-unit stroke.
func NewBox(r ggchart.Rect) *Box {
	return &Box{Rect: r, StrokeWidth: 1}
}

// Added gives a colorless box the figure's title color as its stroke.
func (b *Box) Added(_ *ggchart.Item, fig *ggchart.Figure) {
	if !b.Fill.Visible() && !b.Stroke.Visible() {
		b.Stroke = fig.TitleColor()
	}
}

// Draw implements ggchart.Drawable. The clip rectangle is ignored.
func (b *Box) Draw(s surface.Surface, _ ggchart.Rect) error {
	if b.Rect.Empty() || (!b.Fill.Visible() && !b.Stroke.Visible()) {
		return nil
	}

	s.Save()
	defer s.Restore()

	r := b.Rect
	if b.Radius > 0 {
		s.RoundedRectangle(r.X, r.Y, r.Width, r.Height, b.Radius)
	} else {
		s.Rectangle(r.X, r.Y, r.Width, r.Height)
	}
	return s.StrokeAndFill(b.StrokeWidth, b.Fill, b.Stroke)
}
