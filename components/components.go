// Package components defines ECS components for the pond tags.
package components

// Position represents a tag's top-left corner in pond coordinates.
type Position struct {
	X, Y float32
}

// Velocity represents a tag's velocity in pixels per frame.
type Velocity struct {
	X, Y float32
}

// Tag holds the label and box size of a floating tag.
type Tag struct {
	Label  string
	Index  int
	Width  float32
	Height float32
}

// Contains reports whether a point lies inside the tag box at pos.
func (t *Tag) Contains(pos *Position, x, y float32) bool {
	return x >= pos.X && x <= pos.X+t.Width && y >= pos.Y && y <= pos.Y+t.Height
}
