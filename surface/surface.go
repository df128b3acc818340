// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image/color"

	"github.com/gogpu/gg/text"
)

// ErrNoCurrentPoint is returned by ShowText when MoveTo has not been called
// since the last path operation.
var ErrNoCurrentPoint = errors.New("surface: no current point")

// Surface is a stateful 2D drawing target.
//
// Surfaces are NOT safe for concurrent use. A surface is used by one draw
// at a time.
type Surface interface {
	// Save pushes the transform, paint color, line width, and current
	// point onto the state stack.
	Save()

	// Restore pops the state pushed by the matching Save.
	// Restore without a matching Save is a no-op.
	Restore()

	// Translate moves the origin of the user coordinate space.
	Translate(dx, dy float64)

	// Rectangle replaces the current path with an axis-aligned rectangle.
	Rectangle(x, y, w, h float64)

	// RoundedRectangle replaces the current path with a rectangle whose
	// corners are rounded with radius r.
	RoundedRectangle(x, y, w, h, r float64)

	// StrokeAndFill fills the current path with fill, then strokes it with
	// stroke at the given width, then clears the path. Invisible colors
	// (nil or zero alpha) are skipped.
	StrokeAndFill(width float64, fill, stroke color.Color) error

	// MoveTo sets the current point used by ShowText.
	MoveTo(x, y float64)

	// SetColor sets the paint color for subsequent operations.
	SetColor(c color.Color)

	// ShowText paints s with face, the top-left corner of the text's
	// logical box at the current point.
	ShowText(face text.Face, s string) error
}

// Visible reports whether c would paint anything.
func Visible(c color.Color) bool {
	if c == nil {
		return false
	}
	_, _, _, a := c.RGBA()
	return a != 0
}
