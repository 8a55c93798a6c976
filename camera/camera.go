// Package camera provides the page viewport: a vertical scroll window over
// a column of content.
package camera

// Camera is a vertical viewport into the page.
type Camera struct {
	// Y is the page coordinate shown at the top of the viewport
	Y float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// ContentH is the full page height
	ContentH float32
}

// New creates a camera at the top of the page.
func New(viewportW, viewportH, contentH float32) *Camera {
	return &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		ContentH:  contentH,
	}
}

// MaxScroll is the largest valid Y.
func (c *Camera) MaxScroll() float32 {
	if c.ContentH <= c.ViewportH {
		return 0
	}
	return c.ContentH - c.ViewportH
}

// ScrollBy moves the viewport by dy page pixels, clamped to the content.
// Returns the distance actually moved.
func (c *Camera) ScrollBy(dy float32) float32 {
	before := c.Y
	c.Y = clamp(c.Y+dy, 0, c.MaxScroll())
	return c.Y - before
}

// ScrollTo places page coordinate y at the top of the viewport.
func (c *Camera) ScrollTo(y float32) {
	c.Y = clamp(y, 0, c.MaxScroll())
}

// SetContentHeight updates the page height and re-clamps the scroll.
func (c *Camera) SetContentHeight(h float32) {
	c.ContentH = h
	c.Y = clamp(c.Y, 0, c.MaxScroll())
}

// Resize updates viewport dimensions and re-clamps the scroll.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.Y = clamp(c.Y, 0, c.MaxScroll())
}

// PageToScreen converts page coordinates to screen coordinates.
func (c *Camera) PageToScreen(px, py float32) (sx, sy float32) {
	return px, py - c.Y
}

// ScreenToPage converts screen coordinates to page coordinates.
func (c *Camera) ScreenToPage(sx, sy float32) (px, py float32) {
	return sx, sy + c.Y
}

// IsVisible returns true if any part of the vertical span [py, py+h]
// is inside the viewport.
func (c *Camera) IsVisible(py, h float32) bool {
	return py+h > c.Y && py < c.Y+c.ViewportH
}

// VisibleBounds returns the page-coordinate span of the viewport.
func (c *Camera) VisibleBounds() (top, bottom float32) {
	return c.Y, c.Y + c.ViewportH
}

// Progress returns how far down the page the viewport is, in [0, 1].
func (c *Camera) Progress() float32 {
	m := c.MaxScroll()
	if m == 0 {
		return 0
	}
	return c.Y / m
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
