package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lagoon/page"
	"github.com/pthm-cable/lagoon/ui"
)

// Revealed under the curtain.
var curtainLines = []string{
	"Scroll this card toward the middle",
	"of the window and the sheet lifts.",
	"Scroll away and it falls again.",
}

const controlsLegend = "Drag: stir | Shift: heavy splash | Wheel: scroll + current | R: reset curtain | P: perf | SPACE: pause"

// Draw renders the frame.
func (g *Game) Draw() {
	s := g.scene
	w, h := s.Size()
	theme := g.uiRender.Theme

	rl.BeginDrawing()
	rl.ClearBackground(theme.PageBg)

	cx, cy := s.Drift()
	g.mainWater.DrawMain(s.Main, s.Foam, rl.Rectangle{Width: w, Height: h}, s.Tide(), cx, cy)

	dy := -s.Camera.Y
	g.drawBand(dy, w)

	relayout := g.controls.Toolbar(s.Page, dy)
	for _, c := range s.Page.Cards {
		if !s.Camera.IsVisible(c.Y, c.Height()) {
			continue
		}
		g.uiRender.DrawCardFrame(c, dy)
		if g.controls.Disclosure(s.Page, c, dy) {
			relayout = true
			continue
		}
		if !c.Collapsed {
			g.drawCard(c, dy)
		}
	}
	if relayout {
		s.Relayout()
	}

	g.hud.DrawControls(int32(w), int32(h), controlsLegend)
	if g.showPerf {
		g.perfPanel.Draw(s.Timer().Stats())
	}
	if g.paused {
		rl.DrawText("PAUSED", int32(w)/2-40, int32(h)-48, 20, theme.Accent)
	}

	rl.EndDrawing()
}

// drawBand renders the title band: foam strip, floral overlay, title and chips.
func (g *Game) drawBand(dy, width float32) {
	s := g.scene
	m := float32(g.cfg.Page.Margin)
	band := rl.Rectangle{X: 0, Y: dy, Width: width, Height: m + page.BandHeight}
	g.band.Draw(band, s.Current.FoamStripDrift(s.Clock()), s.Current.OverlayOffset(), s.Tide())

	g.hud.Draw("Lagoon", ui.ChipData{
		Tide:      s.Tide(),
		Ripples:   s.Ripples(),
		Direction: s.Direction(),
	}, int32(m), int32(m+dy), int32(width-2*m))
}

// drawCard renders one expanded card body and its footer actions.
func (g *Game) drawCard(c *page.Card, dy float32) {
	s := g.scene
	body := ui.Rec(c.Body().Offset(0, dy))
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	switch c.ID {
	case page.CardRipple:
		g.miniWater.DrawMini(s.Mini, s.MiniFoam, body, s.Clock())
		if g.controls.FooterButton(c, dy, 0, 120, "Splash centre") {
			s.MiniButton()
		}

	case page.CardCurtain:
		g.curtain.Draw(body, s.Curtain.Shown(), s.Clock(), curtainLines)
		if g.controls.FooterButton(c, dy, 0, 120, "Reset curtain") {
			s.ResetCurtain()
		}

	case page.CardPond:
		if r, ok := s.PondRect(); ok {
			g.pond.Draw(s.Pond.Tags(), ui.Rec(r.Offset(0, dy)))
		}
		g.uiRender.DrawLabel(int32(c.X)+8, int32(c.Footer().Y+dy)+12, "Click the water to turn the current "+s.Direction())

	case page.CardBloom:
		g.bloom.Draw(s.Bloom, body)
		if g.controls.FooterButton(c, dy, 0, 100, "Bloom") {
			s.BloomButton(shift)
		}
		if g.controls.FooterButton(c, dy, 1, 100, "Clear") {
			s.ClearBloom()
		}

	case page.CardSkills:
		g.controls.SkillsPanel(s.Page, c, dy)
	}
}
