package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// rgba builds a colour from 8-bit channels and a [0, 1] alpha.
func rgba(r, g, b uint8, a float32) rl.Color {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return rl.Color{R: r, G: g, B: b, A: uint8(a * 255)}
}

// Palette shared by the water surfaces.
var (
	lagoonTeal = [3]uint8{14, 165, 167}
	lagoonMint = [3]uint8{45, 212, 191}
	mistWhite  = [3]uint8{231, 251, 255}
	foamWhite  = [3]uint8{234, 246, 244}
)

func tint(c [3]uint8, a float32) rl.Color {
	return rgba(c[0], c[1], c[2], a)
}

// PixelRatio clamps the monitor scale to the supported range.
func PixelRatio(scale, lo, hi float32) float32 {
	if scale < lo {
		return lo
	}
	if scale > hi {
		return hi
	}
	return scale
}
