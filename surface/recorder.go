// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg/text"
)

// Op names a recorded surface operation.
type Op string

// Recorded operations.
const (
	OpSave             Op = "save"
	OpRestore          Op = "restore"
	OpTranslate        Op = "translate"
	OpRectangle        Op = "rectangle"
	OpRoundedRectangle Op = "rounded_rectangle"
	OpStrokeAndFill    Op = "stroke_and_fill"
	OpMoveTo           Op = "move_to"
	OpSetColor         Op = "set_color"
	OpShowText         Op = "show_text"
)

// Call is one recorded operation.
type Call struct {
	Op Op

	// Args holds the numeric arguments in declaration order.
	// For StrokeAndFill it holds the width.
	Args []float64

	// Fill and Stroke are set for StrokeAndFill; Fill holds the color for
	// SetColor.
	Fill   color.Color
	Stroke color.Color

	// Text is set for ShowText.
	Text string
}

// String formats the call as "op(args)".
func (c Call) String() string {
	var b strings.Builder
	b.WriteString(string(c.Op))
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", a)
	}
	switch c.Op {
	case OpStrokeAndFill:
		fmt.Fprintf(&b, ", fill=%s, stroke=%s", formatColor(c.Fill), formatColor(c.Stroke))
	case OpSetColor:
		b.WriteString(formatColor(c.Fill))
	case OpShowText:
		fmt.Fprintf(&b, "%q", c.Text)
	}
	b.WriteByte(')')
	return b.String()
}

func formatColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// Recorder is a Surface that records calls instead of drawing.
// The zero value is ready to use.
type Recorder struct {
	calls    []Call
	depth    int
	hasPoint bool
	points   []bool

	// FailOn, if set, makes StrokeAndFill and ShowText return the error.
	FailOn error
}

var _ Surface = (*Recorder)(nil)

// Calls returns the recorded calls in order.
func (r *Recorder) Calls() []Call {
	return r.calls
}

// Ops returns the recorded operation names in order.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.calls))
	for i, c := range r.calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many times op was recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Depth returns the current Save nesting depth.
func (r *Recorder) Depth() int {
	return r.depth
}

// Reset drops all recorded calls and state.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
	r.depth = 0
	r.hasPoint = false
	r.points = r.points[:0]
}

// String returns one call per line.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, c := range r.calls {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Recorder) record(c Call) {
	r.calls = append(r.calls, c)
}

// Save implements Surface.
func (r *Recorder) Save() {
	r.depth++
	r.points = append(r.points, r.hasPoint)
	r.record(Call{Op: OpSave})
}

// Restore implements Surface.
func (r *Recorder) Restore() {
	r.record(Call{Op: OpRestore})
	if r.depth == 0 {
		return
	}
	r.depth--
	r.hasPoint = r.points[len(r.points)-1]
	r.points = r.points[:len(r.points)-1]
}

// Translate implements Surface.
func (r *Recorder) Translate(dx, dy float64) {
	r.record(Call{Op: OpTranslate, Args: []float64{dx, dy}})
}

// Rectangle implements Surface.
func (r *Recorder) Rectangle(x, y, w, h float64) {
	r.hasPoint = false
	r.record(Call{Op: OpRectangle, Args: []float64{x, y, w, h}})
}

// RoundedRectangle implements Surface.
func (r *Recorder) RoundedRectangle(x, y, w, h, radius float64) {
	r.hasPoint = false
	r.record(Call{Op: OpRoundedRectangle, Args: []float64{x, y, w, h, radius}})
}

// StrokeAndFill implements Surface.
func (r *Recorder) StrokeAndFill(width float64, fill, stroke color.Color) error {
	r.record(Call{Op: OpStrokeAndFill, Args: []float64{width}, Fill: fill, Stroke: stroke})
	return r.FailOn
}

// MoveTo implements Surface.
func (r *Recorder) MoveTo(x, y float64) {
	r.hasPoint = true
	r.record(Call{Op: OpMoveTo, Args: []float64{x, y}})
}

// SetColor implements Surface.
func (r *Recorder) SetColor(c color.Color) {
	r.record(Call{Op: OpSetColor, Fill: c})
}

// ShowText implements Surface.
func (r *Recorder) ShowText(_ text.Face, s string) error {
	if !r.hasPoint {
		return ErrNoCurrentPoint
	}
	r.record(Call{Op: OpShowText, Text: s})
	return r.FailOn
}
