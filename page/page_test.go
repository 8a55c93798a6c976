package page

import (
	"testing"

	"github.com/pthm-cable/lagoon/config"
)

func init() {
	config.MustInit("")
}

func TestLayoutColumns(t *testing.T) {
	cfg := config.Cfg().Page

	tests := []struct {
		name      string
		viewportW float32
		wantCols  int
	}{
		{"narrow", 400, 1},
		{"one card", 480, 1},
		{"two cards", 2*420 + 24 + 2*24, 2},
		{"wide", 1920, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPage(cfg)
			p.Layout(tc.viewportW)

			cols := 0
			for _, c := range p.Cards {
				if c.Y == p.Cards[0].Y {
					cols++
				}
			}
			if cols != tc.wantCols {
				t.Errorf("expected %d columns, got %d", tc.wantCols, cols)
			}
		})
	}
}

func TestLayoutContentHeight(t *testing.T) {
	cfg := config.Cfg().Page
	p := NewPage(cfg)

	h := p.Layout(400)
	card := float32(HeaderHeight + cfg.CardHeight + FooterHeight)
	n := float32(len(p.Cards))
	want := float32(cfg.Margin) + BandHeight + n*card + (n-1)*float32(cfg.Gap) + float32(cfg.Margin)
	if h != want {
		t.Errorf("expected content height %f, got %f", want, h)
	}

	p.ToggleCompact()
	if compact := p.Layout(400); compact >= h {
		t.Errorf("expected compact layout to be shorter, %f >= %f", compact, h)
	}
}

func TestCollapseShrinksCard(t *testing.T) {
	p := NewPage(config.Cfg().Page)
	before := p.Layout(400)

	if !p.ToggleCard(CardCurtain) {
		t.Fatal("expected curtain card to exist")
	}
	c := p.Card(CardCurtain)
	if c.Height() != HeaderHeight {
		t.Errorf("expected collapsed height %d, got %f", HeaderHeight, c.Height())
	}
	if DisclosureLabel(c) != "Expand" {
		t.Errorf("expected Expand label, got %q", DisclosureLabel(c))
	}
	if c.Body().H != 0 || c.Body().Contains(c.X+1, c.Y+HeaderHeight) {
		t.Error("expected empty body when collapsed")
	}

	after := p.Layout(400)
	if before-after != float32(config.Cfg().Page.CardHeight)+FooterHeight {
		t.Errorf("expected page to shrink by the body and footer, %f -> %f", before, after)
	}

	p.ToggleCard(CardCurtain)
	if DisclosureLabel(c) != "Collapse" {
		t.Errorf("expected Collapse label, got %q", DisclosureLabel(c))
	}
}

func TestToggleMissingCard(t *testing.T) {
	p := NewPage(config.Cfg().Page)
	p.Cards = p.Cards[:2]
	if p.ToggleCard(CardSkills) {
		t.Error("expected toggle of a missing card to report false")
	}
	if p.Card(CardSkills) != nil {
		t.Error("expected nil for a missing card")
	}
}

func TestCardAt(t *testing.T) {
	p := NewPage(config.Cfg().Page)
	p.Layout(400)

	pond := p.Card(CardPond)
	cx, cy := pond.Body().Center()
	if got := p.CardAt(cx, cy); got != pond {
		t.Errorf("expected pond card at its body centre, got %v", got)
	}
	if got := p.CardAt(1, 1); got != nil {
		t.Errorf("expected no card in the margin, got %v", got.Title)
	}
}

func TestHighlightLabel(t *testing.T) {
	p := NewPage(config.Cfg().Page)
	if p.HighlightLabel() != "Highlight skills" {
		t.Errorf("unexpected label %q", p.HighlightLabel())
	}
	p.ToggleHighlight()
	if p.HighlightLabel() != "Unhighlight skills" {
		t.Errorf("unexpected label %q", p.HighlightLabel())
	}
}

func TestSkillDetail(t *testing.T) {
	for _, s := range Skills {
		if d := SkillDetail(s.Key); d == NoSkillDetail || d == "" {
			t.Errorf("expected a description for %q", s.Key)
		}
	}
	if d := SkillDetail("cobol"); d != NoSkillDetail {
		t.Errorf("expected fallback for unknown skill, got %q", d)
	}
	if d := SkillDetail(""); d != NoSkillDetail {
		t.Errorf("expected fallback for no skill, got %q", d)
	}
}

func TestItemEmphasis(t *testing.T) {
	item := SkillItem{Skill: "css"}

	if a, s := ItemEmphasis(item, ""); a != 1 || s != 0 {
		t.Errorf("expected plain item with no selection, got (%f,%f)", a, s)
	}
	if a, s := ItemEmphasis(item, "css"); a != 1 || s != 2 {
		t.Errorf("expected emphasized item, got (%f,%f)", a, s)
	}
	if a, s := ItemEmphasis(item, "js"); a != 0.65 || s != 0 {
		t.Errorf("expected dimmed item, got (%f,%f)", a, s)
	}
}

func TestChipText(t *testing.T) {
	if got := TideChip(0.426); got != "Tide: 43%" {
		t.Errorf("unexpected tide chip %q", got)
	}
	if got := RippleChip(12); got != "Ripples: 12" {
		t.Errorf("unexpected ripple chip %q", got)
	}
	if got := CurrentChip("→"); got != "Current: →" {
		t.Errorf("unexpected current chip %q", got)
	}
}

func TestWrap(t *testing.T) {
	measure := func(s string) int32 { return int32(len(s)) }
	lines := Wrap("one two three four", 9, measure)
	want := []string{"one two", "three", "four"}
	if len(lines) != len(want) {
		t.Fatalf("expected %v, got %v", want, lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}
