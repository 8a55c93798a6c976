package page

// Rect is an axis-aligned rectangle in page or screen pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the midpoint of the rect.
func (r Rect) Center() (float32, float32) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Offset returns the rect shifted by (dx, dy).
func (r Rect) Offset(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}
