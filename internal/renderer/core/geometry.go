package core

// RectF is an axis-aligned rectangle in fractional pixel coordinates.
// Panels compute mark positions in floating point so sub-line scaling
// survives until the backend rounds to device cells.
type RectF struct {
	X, Y, W, H float64
}

// NewRectF creates a rectangle from origin and size.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// CenterY returns the vertical center of the rectangle.
func (r RectF) CenterY() float64 {
	return r.Y + r.H/2
}

// Bottom returns the y coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Right returns the x coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Contains reports whether the point lies inside the rectangle.
func (r RectF) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether the rectangle has no area.
func (r RectF) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
