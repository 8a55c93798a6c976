package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pthm-cable/lagoon/page"
	"github.com/pthm-cable/lagoon/telemetry"
)

// ChipData holds the live values shown in the status chips.
type ChipData struct {
	Tide      float32 // [0, 1]
	Ripples   int
	Direction string // arrow for the pond current
}

// HUD renders the page title band and its chips.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the title and the chips, right-aligned to width.
func (h *HUD) Draw(title string, data ChipData, x, y, width int32) {
	t := h.renderer.Theme
	rl.DrawText(title, x, y, 24, t.Title)

	chips := []string{page.TideChip(data.Tide), page.RippleChip(data.Ripples), page.CurrentChip(data.Direction)}
	cx := x + width
	for i := len(chips) - 1; i >= 0; i-- {
		w := rl.MeasureText(chips[i], t.FontSize) + t.Padding*2
		cx -= w
		h.renderer.DrawChip(cx, y, chips[i])
		cx -= 8
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-22, 12, rl.Fade(h.renderer.Theme.LabelColor, 0.8))
}

// PerfPanel renders the frame timing breakdown.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the step timing breakdown, one bar per phase share.
func (p *PerfPanel) Draw(stats telemetry.StepStats) {
	const width = 250
	x := p.x
	y := p.y
	r := p.renderer
	t := r.Theme

	h := 40 + (t.LineHeight+2)*int32(len(telemetry.Phases))
	r.DrawPanel(page.Rect{X: float32(x - 8), Y: float32(y - 8), W: width + 16, H: float32(h + 16)})

	rl.DrawText("Step timing", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("%s/step  input %s  %.0f fps",
		stats.AvgStep.Round(time.Microsecond), stats.Input.Round(time.Microsecond), stats.FPS),
		x, y, 12, t.Accent)
	y += 18

	for _, ph := range telemetry.Phases {
		y = r.DrawBar(x, y, ph.String(), float32(stats.PhasePct[ph]/100), 86, width)
	}
}
