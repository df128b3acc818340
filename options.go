package ggchart

import (
	"math"

	"github.com/gogpu/ggchart/layout"
)

// Figure defaults.
const (
	DefaultTitle       = "ggchart"
	DefaultFont        = "Monospace 9"
	DefaultStrokeWidth = 2.0
	MaxStrokeWidth     = 8.0
)

// FigureOption configures a Figure during creation.
//
// Example:
//
//	fig, err := ggchart.NewFigure(
//	    ggchart.WithTitle("Throughput"),
//	    ggchart.WithBackground(ggchart.LightGray, ggchart.Black),
//	    ggchart.WithRoundedRect(false),
//	)
type FigureOption func(*figureOptions)

type figureOptions struct {
	fill        Color
	stroke      Color
	strokeWidth float64
	rounded     bool
	title       string
	titleColor  Color
	font        string
	text        *layout.Text
	shaped      bool
}

func defaultOptions() figureOptions {
	return figureOptions{
		fill:        White,
		stroke:      ColorNull,
		strokeWidth: DefaultStrokeWidth,
		rounded:     true,
		title:       DefaultTitle,
		titleColor:  Black,
		font:        DefaultFont,
	}
}

// WithBackground sets the background fill and stroke colors.
// Either may be ColorNull.
func WithBackground(fill, stroke Color) FigureOption {
	return func(o *figureOptions) {
		o.fill = fill
		o.stroke = stroke
	}
}

// WithStrokeWidth sets the background stroke width, clamped to
// [0, MaxStrokeWidth].
func WithStrokeWidth(w float64) FigureOption {
	return func(o *figureOptions) {
		o.strokeWidth = clampStrokeWidth(w)
	}
}

// WithRoundedRect selects a rounded background inset from the canvas edge
// instead of a full-canvas rectangle.
func WithRoundedRect(on bool) FigureOption {
	return func(o *figureOptions) {
		o.rounded = on
	}
}

// WithTitle sets the title. An empty title draws nothing.
func WithTitle(s string) FigureOption {
	return func(o *figureOptions) {
		o.title = s
	}
}

// WithTitleColor sets the title color.
func WithTitleColor(c Color) FigureOption {
	return func(o *figureOptions) {
		o.titleColor = c
	}
}

// WithFont sets the font description used by the figure's text layout,
// for example "Sans Bold 12".
func WithFont(desc string) FigureOption {
	return func(o *figureOptions) {
		o.font = desc
	}
}

// WithShaping measures text with the HarfBuzz shaper from gg/text.
// Painting still uses glyph advances, so shaped widths used for centering
// can differ from the painted width by the kerning of the string.
func WithShaping(on bool) FigureOption {
	return func(o *figureOptions) {
		o.shaped = on
	}
}

// WithTextLayout installs a ready-made text layout. The figure takes
// ownership and closes it; WithFont and WithShaping are ignored.
func WithTextLayout(t *layout.Text) FigureOption {
	return func(o *figureOptions) {
		o.text = t
	}
}

func clampStrokeWidth(w float64) float64 {
	switch {
	case math.IsNaN(w), w < 0:
		return 0
	case w > MaxStrokeWidth:
		return MaxStrokeWidth
	}
	return w
}
