// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// canvasState is the part of the paint state gg's Push does not save.
type canvasState struct {
	brush    gg.Brush
	stroke   gg.Stroke
	face     text.Face
	x, y     float64
	hasPoint bool
}

// Canvas is a Surface backed by a gg drawing context.
type Canvas struct {
	dc    *gg.Context
	stack []canvasState

	// current point in device space
	x, y     float64
	hasPoint bool
}

var _ Surface = (*Canvas)(nil)

// NewCanvas wraps dc. The canvas does not take ownership of dc.
func NewCanvas(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc, stack: make([]canvasState, 0, 8)}
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.dc.Width()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.dc.Height()
}

// Image returns a copy of the rendered pixels. Pending GPU work is
// flushed first.
func (c *Canvas) Image() image.Image {
	_ = c.dc.FlushGPU()
	return c.dc.Image()
}

// Save implements Surface.
func (c *Canvas) Save() {
	c.stack = append(c.stack, canvasState{
		brush:    c.dc.FillBrush(),
		stroke:   c.dc.GetStroke(),
		face:     c.dc.Font(),
		x:        c.x,
		y:        c.y,
		hasPoint: c.hasPoint,
	})
	c.dc.Push()
}

// Restore implements Surface.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	st := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	c.dc.Pop()
	c.dc.SetFillBrush(st.brush)
	c.dc.SetStroke(st.stroke)
	c.dc.SetFont(st.face)
	c.x, c.y, c.hasPoint = st.x, st.y, st.hasPoint
}

// Translate implements Surface.
func (c *Canvas) Translate(dx, dy float64) {
	c.dc.Translate(dx, dy)
}

// Rectangle implements Surface.
func (c *Canvas) Rectangle(x, y, w, h float64) {
	c.dc.ClearPath()
	c.hasPoint = false
	c.dc.DrawRectangle(x, y, w, h)
}

// RoundedRectangle implements Surface.
func (c *Canvas) RoundedRectangle(x, y, w, h, r float64) {
	c.dc.ClearPath()
	c.hasPoint = false
	c.dc.DrawRoundedRectangle(x, y, w, h, r)
}

// StrokeAndFill implements Surface.
func (c *Canvas) StrokeAndFill(width float64, fill, stroke color.Color) error {
	defer c.dc.ClearPath()

	if Visible(fill) {
		c.dc.SetColor(fill)
		if err := c.dc.FillPreserve(); err != nil {
			return err
		}
	}
	if Visible(stroke) && width > 0 {
		c.dc.SetLineWidth(width)
		c.dc.SetColor(stroke)
		if err := c.dc.StrokePreserve(); err != nil {
			return err
		}
	}
	return nil
}

// MoveTo implements Surface.
func (c *Canvas) MoveTo(x, y float64) {
	c.x, c.y = c.dc.TransformPoint(x, y)
	c.hasPoint = true
}

// SetColor implements Surface.
func (c *Canvas) SetColor(col color.Color) {
	c.dc.SetColor(col)
}

// ShowText implements Surface.
func (c *Canvas) ShowText(face text.Face, s string) error {
	if !c.hasPoint {
		return ErrNoCurrentPoint
	}
	if face == nil || s == "" {
		return nil
	}

	// The current point is already in device space. Draw with an identity
	// matrix so the transform is not applied twice.
	m := c.dc.GetTransform()
	c.dc.Identity()
	defer c.dc.SetTransform(m)

	c.dc.SetFont(face)
	c.dc.DrawString(s, c.x, c.y+face.Metrics().Ascent)
	return nil
}
