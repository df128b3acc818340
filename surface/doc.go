// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface defines the drawing surface a figure renders onto.
//
// Surface is the small set of operations the scene graph needs from a 2D
// backend. It follows the cairo model of a stateful context with a
// save/restore stack, a current path and a current point.
//
// # Implementations
//
//   - Canvas: renders with a *gg.Context from github.com/gogpu/gg.
//   - Recorder: records every call. Used by tests and by dry runs to
//     inspect what a draw would do without rasterizing anything.
//
// # Usage
//
//	dc := gg.NewContext(800, 600)
//	c := surface.NewCanvas(dc)
//
//	c.Save()
//	c.Translate(10, 10)
//	c.RoundedRectangle(0, 0, 780, 580, 10)
//	_ = c.StrokeAndFill(2, color.White, color.Black)
//	c.Restore()
//
//	_ = dc.SavePNG("out.png")
//
// # Encoders
//
// Raster encoders are kept in a registry keyed by format name. "png" and
// "tiff" are registered by default; others can be added with
// RegisterEncoder.
package surface
