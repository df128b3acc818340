package cli

import (
	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/config"
)

// demoFile describes the figure rendered when no file is given: three
// translucent overlapping bars over a frame, each with a label.
func demoFile() *config.File {
	title := "ggchart demo"
	frame := ggchart.LightGray

	bar := func(x, h float64, c ggchart.Color) config.ItemSpec {
		fill := c
		return config.ItemSpec{
			Kind:   config.KindBox,
			X:      x,
			Y:      500 - h,
			Width:  180,
			Height: h,
			Radius: 6,
			Fill:   &fill,
		}
	}
	label := func(text string, x float64) config.ItemSpec {
		return config.ItemSpec{Kind: config.KindLabel, Text: text, X: x, Y: 0.9}
	}

	return &config.File{
		Title: &title,
		Root: &config.ItemSpec{
			Kind:   config.KindBox,
			X:      60,
			Y:      60,
			Width:  680,
			Height: 460,
			Stroke: &frame,
			Children: []config.ItemSpec{
				bar(120, 300, ggchart.RGBA8(255, 77, 77, 204)),
				bar(310, 380, ggchart.RGBA8(77, 255, 77, 204)),
				bar(500, 220, ggchart.RGBA8(77, 77, 255, 204)),
				label("red", 210.0/defaultWidth),
				label("green", 400.0/defaultWidth),
				label("blue", 590.0/defaultWidth),
			},
		},
	}
}
