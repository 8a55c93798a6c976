package systems

import "github.com/pthm-cable/lagoon/config"

// FoamParams sets how field slope and amplitude turn into tile opacity.
type FoamParams struct {
	SlopeWeight float32
	AmpWeight   float32
	Threshold   float32
	AlphaScale  float32
	TideAlpha   float32
	MaxAlpha    float32
}

// FoamParamsFromConfig converts a foam config section.
func FoamParamsFromConfig(c config.FoamConfig) FoamParams {
	return FoamParams{
		SlopeWeight: float32(c.SlopeWeight),
		AmpWeight:   float32(c.AmpWeight),
		Threshold:   float32(c.Threshold),
		AlphaScale:  float32(c.AlphaScale),
		TideAlpha:   float32(c.TideAlpha),
		MaxAlpha:    float32(c.MaxAlpha),
	}
}

// Foam returns the foam intensity of an interior cell (0 when below threshold).
func (g *WaveGrid) Foam(x, y int, p FoamParams) float32 {
	if !g.interior(x, y) {
		return 0
	}
	i := g.idx(x, y)
	a := g.Cur
	slope := absf(a[i+1]-a[i-1]) + absf(a[i+g.W]-a[i-g.W])
	foam := slope*p.SlopeWeight + a[i]*p.AmpWeight - p.Threshold
	if foam < 0 {
		return 0
	}
	return foam
}

// FoamAlpha maps foam intensity to tile opacity.
func FoamAlpha(foam, tide float32, p FoamParams) float32 {
	return clampFloat(foam*p.AlphaScale+tide*p.TideAlpha, 0, p.MaxAlpha)
}

// ForEachFoam calls fn for every interior cell with foam above threshold
// and returns how many cells were visited.
func (g *WaveGrid) ForEachFoam(p FoamParams, tide float32, fn func(x, y int, alpha float32)) int {
	n := 0
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			foam := g.Foam(x, y, p)
			if foam <= 0 {
				continue
			}
			n++
			if fn != nil {
				fn(x, y, FoamAlpha(foam, tide, p))
			}
		}
	}
	return n
}
