package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pthm-cable/lagoon/page"
)

const (
	buttonH   = 26
	buttonGap = 10
	pillW     = 56
)

// Controls draws the interactive widgets of the page with raygui.
// Every method takes the page-to-screen offset dy.
type Controls struct {
	renderer *Renderer
}

// NewControls creates the page controls.
func NewControls() *Controls {
	return &Controls{renderer: NewRenderer()}
}

// DensityLabel is the text for the density toggle.
func DensityLabel(compact bool) string {
	if compact {
		return "Comfortable view"
	}
	return "Compact view"
}

// Toolbar draws the page-level toggles in the page's toolbar rect. Returns
// true when the density changed and the page needs a new layout.
func (c *Controls) Toolbar(p *page.Page, dy float32) bool {
	r := p.ToolbarRect()
	x, y := r.X, r.Y
	relayout := false
	if gui.Button(rl.Rectangle{X: x, Y: y + dy, Width: 150, Height: buttonH}, DensityLabel(p.Compact)) {
		p.ToggleCompact()
		relayout = true
	}
	if gui.Button(rl.Rectangle{X: x + 150 + buttonGap, Y: y + dy, Width: 170, Height: buttonH}, p.HighlightLabel()) {
		p.ToggleHighlight()
	}
	return relayout
}

// Disclosure draws a card's collapse button. Returns true when the card
// was toggled.
func (c *Controls) Disclosure(p *page.Page, card *page.Card, dy float32) bool {
	if card == nil {
		return false
	}
	h := card.Header().Offset(0, dy)
	bounds := rl.Rectangle{X: h.X + h.W - 90 - 8, Y: h.Y + (page.HeaderHeight-buttonH)/2, Width: 90, Height: buttonH}
	if gui.Button(bounds, page.DisclosureLabel(card)) {
		return p.ToggleCard(card.ID)
	}
	return false
}

// FooterButton draws the slot-th button in a card's footer. Collapsed
// cards have no footer and never report a click.
func (c *Controls) FooterButton(card *page.Card, dy float32, slot int, width float32, label string) bool {
	if card == nil || card.Collapsed {
		return false
	}
	f := card.Footer().Offset(0, dy)
	x := f.X + 8 + float32(slot)*(width+buttonGap)
	return gui.Button(rl.Rectangle{X: x, Y: f.Y + (page.FooterHeight-buttonH)/2, Width: width, Height: buttonH}, label)
}

// SkillsPanel draws the pills, the detail line and the emphasized list
// inside the skills card body.
func (c *Controls) SkillsPanel(p *page.Page, card *page.Card, dy float32) {
	if card == nil || card.Collapsed {
		return
	}
	t := c.renderer.Theme
	b := card.Body().Offset(0, dy)
	x := b.X + float32(t.Padding)
	y := b.Y + float32(t.Padding)

	for i, s := range page.Skills {
		bounds := rl.Rectangle{X: x + float32(i)*(pillW+6), Y: y, Width: pillW, Height: buttonH}
		if s.Key == p.ActiveSkill {
			rl.DrawRectangleRounded(bounds, 0.5, 6, t.PillActive)
		}
		if gui.Button(bounds, s.Label) {
			p.SetActiveSkill(s.Key)
		}
		if p.Highlight {
			rl.DrawRectangleLinesEx(bounds, 1, t.Accent)
		}
	}
	y += buttonH + 10

	ny := c.renderer.DrawWrapped(int32(x), int32(y), int32(b.W)-t.Padding*2, page.SkillDetail(p.ActiveSkill), t.ValueColor)
	y = float32(ny) + 8

	for _, item := range page.SkillItems {
		alpha, shift := page.ItemEmphasis(item, p.ActiveSkill)
		col := t.LabelColor
		if p.Highlight && item.Skill == p.ActiveSkill {
			col = t.Accent
		}
		rl.DrawText("- "+item.Text, int32(x+shift), int32(y), t.FontSize, rl.Fade(col, alpha))
		y += float32(t.LineHeight)
	}
}
