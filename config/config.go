// Package config reads figure descriptions from TOML files.
//
// A description sets the figure's styling and its item tree:
//
//	title = "Latency"
//	font = "Sans 10"
//
//	[background]
//	fill = "#f0f0f0"
//	stroke = "black"
//	width = 1.5
//
//	[root]
//	kind = "group"
//
//	[[root.children]]
//	kind = "box"
//	x = 20
//	y = 40
//	width = 100
//	height = 30
//	fill = "teal"
//
//	[[root.children]]
//	kind = "label"
//	text = "p99"
//	x = 0.5
//	y = 0.9
//
// Children are built in file order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/items"
)

// Item kinds.
const (
	KindGroup = "group"
	KindBox   = "box"
	KindLabel = "label"
)

var (
	// ErrUnknownKey is returned for keys the description format does not
	// define, which are usually typos.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrUnknownKind is returned for an item kind other than group, box
	// or label.
	ErrUnknownKind = errors.New("config: unknown item kind")
)

// File is a decoded figure description. Nil fields keep the figure
// defaults.
type File struct {
	Title      *string        `toml:"title"`
	TitleColor *ggchart.Color `toml:"title_color"`
	Font       string         `toml:"font"`
	Shaping    bool           `toml:"shaping"`
	Rounded    *bool          `toml:"rounded"`
	Background Background     `toml:"background"`
	Output     Output         `toml:"output"`
	Root       *ItemSpec      `toml:"root"`
}

// Background describes the figure background.
type Background struct {
	Fill   *ggchart.Color `toml:"fill"`
	Stroke *ggchart.Color `toml:"stroke"`
	Width  *float64       `toml:"width"`
}

// Output holds export defaults used by the command line.
type Output struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Format string `toml:"format"`
}

// ItemSpec describes one item and its children.
type ItemSpec struct {
	Kind string `toml:"kind"`

	// Box geometry in canvas units, or the label anchor relative to the
	// canvas (0..1).
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Radius float64 `toml:"radius"`

	Fill        *ggchart.Color `toml:"fill"`
	Stroke      *ggchart.Color `toml:"stroke"`
	StrokeWidth *float64       `toml:"stroke_width"`

	Text  string         `toml:"text"`
	Color *ggchart.Color `toml:"color"`

	Children []ItemSpec `toml:"children"`
}

// Load reads and decodes the description at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode parses a TOML description. Unknown keys are rejected.
func Decode(data []byte) (*File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		var pe toml.ParseError
		if errors.As(err, &pe) {
			return nil, fmt.Errorf("config: %s", pe.ErrorWithPosition())
		}
		return nil, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return &f, nil
}

// Options converts the styling part of f into figure options.
func (f *File) Options() []ggchart.FigureOption {
	var opts []ggchart.FigureOption
	if f.Title != nil {
		opts = append(opts, ggchart.WithTitle(*f.Title))
	}
	if f.TitleColor != nil {
		opts = append(opts, ggchart.WithTitleColor(*f.TitleColor))
	}
	if f.Font != "" {
		opts = append(opts, ggchart.WithFont(f.Font))
	}
	if f.Shaping {
		opts = append(opts, ggchart.WithShaping(true))
	}
	if f.Rounded != nil {
		opts = append(opts, ggchart.WithRoundedRect(*f.Rounded))
	}

	bg := f.Background
	if bg.Fill != nil || bg.Stroke != nil {
		fill, stroke := ggchart.White, ggchart.ColorNull
		if bg.Fill != nil {
			fill = *bg.Fill
		}
		if bg.Stroke != nil {
			stroke = *bg.Stroke
		}
		opts = append(opts, ggchart.WithBackground(fill, stroke))
	}
	if bg.Width != nil {
		opts = append(opts, ggchart.WithStrokeWidth(*bg.Width))
	}
	return opts
}

// Figure builds a figure from f, including its item tree.
// The caller owns the figure and must Close it.
func (f *File) Figure(extra ...ggchart.FigureOption) (*ggchart.Figure, error) {
	fig, err := ggchart.NewFigure(append(f.Options(), extra...)...)
	if err != nil {
		return nil, err
	}
	if f.Root == nil {
		return fig, nil
	}

	root, err := f.Root.Build()
	if err == nil {
		err = fig.SetRootItem(root)
	}
	if err != nil {
		_ = fig.Close()
		return nil, err
	}
	return fig, nil
}

// Build creates the detached item tree described by s.
func (s *ItemSpec) Build() (*ggchart.Item, error) {
	return s.build("root")
}

func (s *ItemSpec) build(path string) (*ggchart.Item, error) {
	payload, err := s.payload()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	it := ggchart.NewItem(payload)

	// Attach prepends, so go backwards to keep file order.
	for i := len(s.Children) - 1; i >= 0; i-- {
		child, err := s.Children[i].build(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		if err := it.Attach(child); err != nil {
			return nil, err
		}
	}
	return it, nil
}

func (s *ItemSpec) payload() (ggchart.Drawable, error) {
	switch strings.ToLower(s.Kind) {
	case "", KindGroup:
		return nil, nil
	case KindBox:
		b := items.NewBox(ggchart.Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height})
		b.Radius = s.Radius
		if s.Fill != nil {
			b.Fill = *s.Fill
		}
		if s.Stroke != nil {
			b.Stroke = *s.Stroke
		}
		if s.StrokeWidth != nil {
			b.StrokeWidth = *s.StrokeWidth
		}
		return b, nil
	case KindLabel:
		l := items.NewLabel(s.Text, s.X, s.Y)
		if s.Color != nil {
			l.Color = *s.Color
		}
		return l, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
}
