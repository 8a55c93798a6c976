// Package ui draws the page chrome around the water effects: chips, cards,
// toggles and skill pills.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pthm-cable/lagoon/page"
)

// Rec converts a page rect to a raylib rectangle.
func Rec(r page.Rect) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
}

// Theme holds UI styling constants.
type Theme struct {
	PageBg        rl.Color
	CardBg        rl.Color
	CardBorder    rl.Color
	Title         rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	Accent        rl.Color
	ChipBg        rl.Color
	ChipText      rl.Color
	PillBg        rl.Color
	PillActive    rl.Color
	BarBg         rl.Color
	BarFill       rl.Color
	Padding       int32
	LineHeight    int32
	BarHeight     int32
	FontSize      int32
	TitleFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PageBg:        rl.Color{R: 8, G: 24, B: 36, A: 255},
		CardBg:        rl.Color{R: 12, G: 34, B: 48, A: 225},
		CardBorder:    rl.Color{R: 70, G: 120, B: 140, A: 255},
		Title:         rl.Color{R: 230, G: 244, B: 248, A: 255},
		LabelColor:    rl.Color{R: 170, G: 200, B: 210, A: 255},
		ValueColor:    rl.Color{R: 220, G: 236, B: 240, A: 255},
		Accent:        rl.Color{R: 255, G: 140, B: 180, A: 255},
		ChipBg:        rl.Color{R: 16, G: 48, B: 64, A: 210},
		ChipText:      rl.Color{R: 210, G: 236, B: 244, A: 255},
		PillBg:        rl.Color{R: 24, G: 60, B: 78, A: 255},
		PillActive:    rl.Color{R: 90, G: 170, B: 190, A: 255},
		BarBg:         rl.Color{R: 30, G: 50, B: 60, A: 255},
		BarFill:       rl.Color{R: 100, G: 190, B: 210, A: 255},
		Padding:       10,
		LineHeight:    18,
		BarHeight:     10,
		FontSize:      14,
		TitleFontSize: 18,
	}
}
