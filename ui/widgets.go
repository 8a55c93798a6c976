package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pthm-cable/lagoon/page"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(bounds page.Rect) {
	rl.DrawRectangleRec(Rec(bounds), r.Theme.CardBg)
	rl.DrawRectangleLinesEx(Rec(bounds), 1, r.Theme.CardBorder)
}

// DrawCardFrame draws a card's background and title at its screen rect.
// dy is the page-to-screen offset.
func (r *Renderer) DrawCardFrame(c *page.Card, dy float32) {
	frame := page.Rect{X: c.X, Y: c.Y + dy, W: c.W, H: c.Height()}
	r.DrawPanel(frame)

	h := c.Header().Offset(0, dy)
	rl.DrawText(c.Title, int32(h.X)+r.Theme.Padding, int32(h.Y)+(page.HeaderHeight-r.Theme.TitleFontSize)/2,
		r.Theme.TitleFontSize, r.Theme.Title)
	if !c.Collapsed {
		rl.DrawLine(int32(h.X), int32(h.Y+h.H), int32(h.X+h.W), int32(h.Y+h.H), r.Theme.CardBorder)
	}
}

// DrawChip draws a rounded label and returns its width.
func (r *Renderer) DrawChip(x, y int32, text string) int32 {
	w := rl.MeasureText(text, r.Theme.FontSize) + r.Theme.Padding*2
	h := r.Theme.FontSize + 10
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)},
		0.5, 6, r.Theme.ChipBg)
	rl.DrawText(text, x+r.Theme.Padding, y+5, r.Theme.FontSize, r.Theme.ChipText)
	return w
}

// DrawLabel draws a text label.
func (r *Renderer) DrawLabel(x, y int32, text string) {
	rl.DrawText(text, x, y, r.Theme.FontSize, r.Theme.LabelColor)
}

// DrawWrapped draws text word-wrapped to width and returns the next Y.
func (r *Renderer) DrawWrapped(x, y, width int32, text string, color rl.Color) int32 {
	for _, line := range page.Wrap(text, width, func(s string) int32 { return rl.MeasureText(s, r.Theme.FontSize) }) {
		rl.DrawText(line, x, y, r.Theme.FontSize, color)
		y += r.Theme.LineHeight
	}
	return y
}

// DrawBar draws a labelled progress bar for [0, 1] values and returns the
// next Y. The bar starts labelW pixels after x so stacked bars line up.
func (r *Renderer) DrawBar(x, y int32, label string, value float32, labelW, width int32) int32 {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	barX := x + labelW
	barWidth := width - labelW - 50

	rl.DrawText(label, x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawRectangle(barX, y+3, barWidth, r.Theme.BarHeight, r.Theme.BarBg)
	rl.DrawRectangle(barX, y+3, int32(float32(barWidth)*value), r.Theme.BarHeight, r.Theme.BarFill)
	rl.DrawText(fmt.Sprintf("%.0f%%", value*100), barX+barWidth+6, y, r.Theme.FontSize, r.Theme.ValueColor)

	return y + r.Theme.LineHeight + 2
}
