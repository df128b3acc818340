package ggchart

// Rect is an axis-aligned rectangle in surface units.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Shrink returns r with d subtracted from both dimensions.
// The origin is unchanged.
func (r Rect) Shrink(d float64) Rect {
	r.Width -= d
	r.Height -= d
	return r
}

// Inset returns r moved inward by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center returns the center point of r.
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}
