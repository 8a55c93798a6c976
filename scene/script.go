package scene

import (
	"math/rand"

	"github.com/pthm-cable/lagoon/page"
)

// Script generates pointer and wheel input for headless runs. A visitor
// wanders the page: scrolling, stirring the background, poking cards and
// occasionally throwing a pond tag.
type Script struct {
	rng *rand.Rand

	// Gesture in progress
	gesture  gesture
	left     int
	x, y     float32
	vx, vy   float32
	wheel    float32
	shift    bool
	released bool
}

type gesture int

const (
	gestureIdle gesture = iota
	gestureStir
	gestureMini
	gestureThrow
	gestureScroll
)

// NewScript creates a deterministic input script.
func NewScript(seed int64) *Script {
	return &Script{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the input for the coming frame.
func (sc *Script) Next(s *Scene) Input {
	if sc.released {
		sc.released = false
		return Input{Pointer: Pointer{X: sc.x, Y: sc.y, Released: true}}
	}
	if sc.left <= 0 {
		return sc.begin(s)
	}

	sc.left--
	sc.x += sc.vx
	sc.y += sc.vy
	in := Input{Pointer: Pointer{X: sc.x, Y: sc.y, Shift: sc.shift}}

	switch sc.gesture {
	case gestureScroll:
		in.Wheel = sc.wheel
	case gestureIdle:
	default:
		in.Down = true
	}
	if sc.left == 0 && in.Down {
		sc.released = true
	}
	return in
}

func (sc *Script) begin(s *Scene) Input {
	w, h := s.Size()
	sc.shift = sc.rng.Float64() < 0.2

	switch r := sc.rng.Float64(); {
	case r < 0.35:
		sc.gesture = gestureStir
		sc.x = float32(sc.rng.Float64()) * w
		sc.y = float32(sc.rng.Float64()) * h
		sc.vx = float32(sc.rng.NormFloat64() * 6)
		sc.vy = float32(sc.rng.NormFloat64() * 4)
		sc.left = 10 + sc.rng.Intn(30)
	case r < 0.55:
		if !sc.aimAt(s, page.CardRipple) {
			return sc.idle()
		}
		sc.gesture = gestureMini
		sc.vx, sc.vy = float32(sc.rng.NormFloat64()*3), float32(sc.rng.NormFloat64()*2)
		sc.left = 5 + sc.rng.Intn(20)
	case r < 0.65:
		pond, ok := s.PondRect()
		if !ok {
			return sc.idle()
		}
		tags := s.Pond.Tags()
		if len(tags) == 0 {
			return sc.idle()
		}
		tag := tags[sc.rng.Intn(len(tags))]
		sx, sy := s.Camera.PageToScreen(pond.X+tag.X+tag.W/2, pond.Y+tag.Y+tag.H/2)
		sc.gesture = gestureThrow
		sc.x, sc.y = sx, sy
		sc.vx, sc.vy = float32(sc.rng.NormFloat64()*4), float32(sc.rng.NormFloat64()*2)
		sc.left = 4 + sc.rng.Intn(8)
	case r < 0.72:
		if !sc.aimAt(s, page.CardBloom) {
			return sc.idle()
		}
		sc.gesture = gestureIdle
		sc.left = 0
		sc.released = true
		return Input{Pointer: Pointer{X: sc.x, Y: sc.y, Down: true, Pressed: true, Shift: sc.shift}}
	case r < 0.85:
		sc.gesture = gestureScroll
		sc.x, sc.y = w/2, h/2
		sc.vx, sc.vy = 0, 0
		sc.wheel = 1
		if sc.rng.Float64() < 0.5 {
			sc.wheel = -1
		}
		sc.left = 5 + sc.rng.Intn(15)
		return Input{Pointer: Pointer{X: sc.x, Y: sc.y}}
	default:
		return sc.idle()
	}

	return Input{Pointer: Pointer{X: sc.x, Y: sc.y, Down: true, Pressed: true, Shift: sc.shift}}
}

func (sc *Script) idle() Input {
	sc.gesture = gestureIdle
	sc.vx, sc.vy = 0, 0
	sc.left = 20 + sc.rng.Intn(60)
	return Input{Pointer: Pointer{X: sc.x, Y: sc.y}}
}

// aimAt moves the pointer to a random spot on a visible card body.
func (sc *Script) aimAt(s *Scene, id page.CardID) bool {
	c := s.Page.Card(id)
	if c == nil || c.Collapsed {
		return false
	}
	b := c.Body()
	if !s.Camera.IsVisible(b.Y, b.H) {
		return false
	}
	px := b.X + float32(sc.rng.Float64())*b.W
	py := b.Y + float32(sc.rng.Float64())*b.H
	sc.x, sc.y = s.Camera.PageToScreen(px, py)
	return true
}
