package items

import (
	"errors"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/layout"
	"github.com/gogpu/ggchart/surface"
)

// ErrDetached is returned when a label draws before joining a figure.
var ErrDetached = errors.New("items: label not added to a figure")

// Label is a line of text centered on a point.
//
// X and Y are relative to the clip rectangle: (0.5, 0.5) is its center,
// (0, 0) its top-left corner.
type Label struct {
	Text  string
	X, Y  float64
	Color ggchart.Color

	text *layout.Text
}

// NewLabel returns a label showing s at (x, y), relative to the canvas.
func NewLabel(s string, x, y float64) *Label {
	return &Label{Text: s, X: x, Y: y}
}

// Added binds the label to the figure's text layout. A label without a
// color takes the figure's title color.
func (l *Label) Added(_ *ggchart.Item, fig *ggchart.Figure) {
	l.text = fig.TextLayout()
	if !l.Color.Visible() {
		l.Color = fig.TitleColor()
	}
}

// Release drops the reference to the figure's text layout.
func (l *Label) Release() {
	l.text = nil
}

// Draw implements ggchart.Drawable.
func (l *Label) Draw(s surface.Surface, clip ggchart.Rect) error {
	if l.text == nil {
		return ErrDetached
	}
	if l.Text == "" || !l.Color.Visible() {
		return nil
	}

	s.Save()
	defer s.Restore()

	l.text.SetText(l.Text)
	_, logical := l.text.Extents()

	x := clip.X + l.X*clip.Width - logical.Width()/2
	y := clip.Y + l.Y*clip.Height - logical.Height()/2
	s.SetColor(l.Color)
	s.MoveTo(x, y)
	return l.text.Show()
}
