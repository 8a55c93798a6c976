package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lagoon/systems"
)

// PondRenderer draws floating tags over a still pool.
type PondRenderer struct {
	FontSize int32
}

// NewPondRenderer creates a pond renderer.
func NewPondRenderer() *PondRenderer {
	return &PondRenderer{FontSize: 14}
}

// Draw renders the pool and its tags with the pond origin at dst.
func (r *PondRenderer) Draw(tags []systems.TagView, dst rl.Rectangle) {
	rl.DrawRectangleRounded(dst, 0.08, 8, tint(lagoonTeal, 0.18))
	rl.DrawRectangleRoundedLines(dst, 0.08, 8, tint(mistWhite, 0.25))

	for _, tag := range tags {
		box := rl.Rectangle{X: dst.X + tag.X, Y: dst.Y + tag.Y, Width: tag.W, Height: tag.H}
		fill := tint(mistWhite, 0.16)
		if tag.Dragging {
			fill = tint(mistWhite, 0.30)
		}
		rl.DrawRectangleRounded(box, 0.6, 8, fill)
		rl.DrawRectangleRoundedLines(box, 0.6, 8, tint(mistWhite, 0.45))

		tw := rl.MeasureText(tag.Label, r.FontSize)
		rl.DrawText(tag.Label,
			int32(box.X+(box.Width-float32(tw))/2),
			int32(box.Y+(box.Height-float32(r.FontSize))/2),
			r.FontSize, tint(mistWhite, 0.95))
	}
}
