// Package page holds the card layout and toggle state of the portfolio
// page, independent of any drawing backend.
package page

import "github.com/pthm-cable/lagoon/config"

// Fixed chrome heights in page pixels.
const (
	HeaderHeight = 36
	FooterHeight = 40
	BandHeight   = 64 // title and chips above the first row
)

// CardID identifies a card on the page.
type CardID int

const (
	CardRipple CardID = iota
	CardCurtain
	CardPond
	CardBloom
	CardSkills
)

// Card is one project panel in page coordinates.
type Card struct {
	ID        CardID
	Title     string
	X, Y      float32
	W, BodyH  float32
	Collapsed bool
}

// Height is the card's current laid-out height.
func (c *Card) Height() float32 {
	if c.Collapsed {
		return HeaderHeight
	}
	return HeaderHeight + c.BodyH + FooterHeight
}

// Header is the title strip with the disclosure button.
func (c *Card) Header() Rect {
	return Rect{X: c.X, Y: c.Y, W: c.W, H: HeaderHeight}
}

// Body is the interactive canvas area. Empty when collapsed.
func (c *Card) Body() Rect {
	if c.Collapsed {
		return Rect{X: c.X, Y: c.Y + HeaderHeight, W: c.W}
	}
	return Rect{X: c.X, Y: c.Y + HeaderHeight, W: c.W, H: c.BodyH}
}

// Footer holds the card's buttons. Empty when collapsed.
func (c *Card) Footer() Rect {
	if c.Collapsed {
		return Rect{X: c.X, Y: c.Y + HeaderHeight, W: c.W}
	}
	return Rect{X: c.X, Y: c.Y + HeaderHeight + c.BodyH, W: c.W, H: FooterHeight}
}

// Page holds the card column and the page-level toggles.
type Page struct {
	Cards       []*Card
	Compact     bool
	Highlight   bool
	ActiveSkill string
	ContentH    float32

	cfg config.PageConfig
}

// NewPage creates the default set of cards.
func NewPage(cfg config.PageConfig) *Page {
	w := float32(cfg.CardWidth)
	h := float32(cfg.CardHeight)
	return &Page{
		cfg: cfg,
		Cards: []*Card{
			{ID: CardRipple, Title: "Ripple", W: w, BodyH: h},
			{ID: CardCurtain, Title: "Curtain", W: w, BodyH: h},
			{ID: CardPond, Title: "Current pond", W: w, BodyH: h},
			{ID: CardBloom, Title: "Bloom", W: w, BodyH: h},
			{ID: CardSkills, Title: "Skills", W: w, BodyH: h},
		},
	}
}

// Card returns the card with the given id, or nil.
func (p *Page) Card(id CardID) *Card {
	for _, c := range p.Cards {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Gap returns the spacing between cards for the current density.
func (p *Page) Gap() float32 {
	if p.Compact {
		return float32(p.cfg.CompactGap)
	}
	return float32(p.cfg.Gap)
}

// Layout places cards in as many columns as fit the viewport width and
// returns the resulting content height.
func (p *Page) Layout(viewportW float32) float32 {
	gap := p.Gap()
	margin := float32(p.cfg.Margin)
	cardW := float32(p.cfg.CardWidth)

	cols := int((viewportW - 2*margin + gap) / (cardW + gap))
	if cols < 1 {
		cols = 1
	}

	y := margin + BandHeight
	var rowH float32
	for i, c := range p.Cards {
		col := i % cols
		if col == 0 && i > 0 {
			y += rowH + gap
			rowH = 0
		}
		c.X = margin + float32(col)*(cardW+gap)
		c.Y = y
		c.W = cardW
		if h := c.Height(); h > rowH {
			rowH = h
		}
	}

	p.ContentH = y + rowH + margin
	return p.ContentH
}

// ToolbarRect is where the page-level toggles sit, beside the title.
func (p *Page) ToolbarRect() Rect {
	m := float32(p.cfg.Margin)
	return Rect{X: m + 160, Y: m, W: 330, H: 26}
}

// CardAt returns the card whose rect contains the page point, or nil.
func (p *Page) CardAt(x, y float32) *Card {
	for _, c := range p.Cards {
		r := Rect{X: c.X, Y: c.Y, W: c.W, H: c.Height()}
		if r.Contains(x, y) {
			return c
		}
	}
	return nil
}

// ToggleCompact flips the page density.
func (p *Page) ToggleCompact() {
	p.Compact = !p.Compact
}

// ToggleHighlight flips skill highlighting.
func (p *Page) ToggleHighlight() {
	p.Highlight = !p.Highlight
}

// HighlightLabel is the text for the highlight toggle button.
func (p *Page) HighlightLabel() string {
	if p.Highlight {
		return "Unhighlight skills"
	}
	return "Highlight skills"
}

// ToggleCard collapses or expands a card. Returns false if the page has
// no such card.
func (p *Page) ToggleCard(id CardID) bool {
	c := p.Card(id)
	if c == nil {
		return false
	}
	c.Collapsed = !c.Collapsed
	return true
}

// DisclosureLabel is the text for a card's disclosure button.
func DisclosureLabel(c *Card) string {
	if c.Collapsed {
		return "Expand"
	}
	return "Collapse"
}

// SetActiveSkill selects the emphasized skill.
func (p *Page) SetActiveSkill(skill string) {
	p.ActiveSkill = skill
}
