package scene

import (
	"time"

	"github.com/pthm-cable/lagoon/page"
)

// Pointer is the pointer state for one frame, in screen pixels.
type Pointer struct {
	X, Y     float32
	Down     bool // Primary button held
	Pressed  bool // Went down this frame
	Released bool // Went up this frame
	Shift    bool // Modifier held
}

// Input is everything the scene reads from the host each frame.
type Input struct {
	Pointer
	Wheel float32 // Wheel notches, positive away from the user
}

// HandleInput routes one frame of input. Presses go to the card under the
// pointer, or to the background field when no card body is hit; the
// receiving surface keeps the pointer until release. Drags and hovers
// only fire on frames where the pointer actually moved.
func (s *Scene) HandleInput(in Input) {
	start := time.Now()
	defer func() { s.timer.ObserveInput(time.Since(start)) }()

	s.shift = in.Shift
	moved := s.pointerSeen && (in.X != s.lastX || in.Y != s.lastY)
	s.lastX, s.lastY = in.X, in.Y
	s.pointerSeen = true

	if in.Wheel != 0 {
		dy := -in.Wheel * float32(s.cfg.Page.WheelScale)
		s.Camera.ScrollBy(dy)
		s.Current.Wheel(float64(dy))
	}

	px, py := s.Camera.ScreenToPage(in.X, in.Y)

	switch {
	case in.Pressed:
		s.press(in.Pointer, px, py)
	case !moved:
		// Held still: nothing to stir
	case in.Down:
		s.drag(in.Pointer, px, py)
	default:
		s.hover(px, py)
	}

	if in.Released {
		s.release()
	}
}

func (s *Scene) press(ptr Pointer, px, py float32) {
	if s.Page.ToolbarRect().Contains(px, py) {
		s.captured = captureNone
		return
	}

	c := s.Page.CardAt(px, py)
	if c == nil {
		power := s.cfg.Ripple.PressPower
		if ptr.Shift {
			power = s.cfg.Ripple.PressPowerFast
		}
		s.Main.Splash(float64(ptr.X), float64(ptr.Y), power)
		s.captured = captureMain
		return
	}

	s.captured = captureNone
	body := c.Body()
	if !body.Contains(px, py) {
		// Header and footer hold controls only
		return
	}
	lx, ly := px-body.X, py-body.Y

	switch c.ID {
	case page.CardRipple:
		s.splashMini(lx, ly, s.cfg.MiniRipple.PressPower, s.cfg.MiniRipple.PressPowerFast, ptr.Shift)
		s.captured = captureMini
	case page.CardPond:
		r, ok := s.PondRect()
		if ok && r.Contains(px, py) {
			s.Pond.PointerDown(px-r.X, py-r.Y, s.clock)
			s.captured = capturePond
		}
	case page.CardBloom:
		n := s.Bloom.Spawn(lx, ly, ptr.Shift)
		s.collector.RecordBloom(n)
	}
}

func (s *Scene) drag(ptr Pointer, px, py float32) {
	switch s.captured {
	case captureMain:
		power := s.cfg.Ripple.DragPower
		if ptr.Shift {
			power = s.cfg.Ripple.DragPowerFast
		}
		s.Main.Splash(float64(ptr.X), float64(ptr.Y), power)
	case captureMini:
		c := s.Page.Card(page.CardRipple)
		if c == nil || c.Collapsed {
			return
		}
		b := c.Body()
		if b.Contains(px, py) {
			s.splashMini(px-b.X, py-b.Y, s.cfg.MiniRipple.DragPower, s.cfg.MiniRipple.DragPowerFast, ptr.Shift)
		}
	case capturePond:
		if r, ok := s.PondRect(); ok {
			s.Pond.PointerMove(px-r.X, py-r.Y, s.clock)
		}
	}
}

// hover disturbs the mini field when the pointer crosses it with no button held.
func (s *Scene) hover(px, py float32) {
	power := s.cfg.MiniRipple.HoverPower
	if power <= 0 {
		return
	}
	c := s.Page.Card(page.CardRipple)
	if c == nil || c.Collapsed {
		return
	}
	b := c.Body()
	if b.Contains(px, py) {
		s.Mini.Splash(float64(px-b.X), float64(py-b.Y), power)
	}
}

func (s *Scene) release() {
	if s.captured == capturePond && s.Pond.Dragging() {
		s.Pond.PointerUp()
		s.collector.RecordPondThrow()
	}
	s.captured = captureNone
}

func (s *Scene) splashMini(x, y float32, power, fast float64, shift bool) {
	if shift {
		power = fast
	}
	s.Mini.Splash(float64(x), float64(y), power)
}

// ResetCurtain snaps the curtain back to its start.
func (s *Scene) ResetCurtain() {
	s.Curtain.Reset()
	s.collector.RecordCurtainReset()
}

// BloomButton bursts petals from the lower middle of the bloom card.
func (s *Scene) BloomButton(dense bool) int {
	w, h := s.bloomSize()
	n := s.Bloom.Spawn(w*0.5, h*0.58, dense)
	s.collector.RecordBloom(n)
	return n
}

// MiniButton drops a splash in the centre of the mini field.
func (s *Scene) MiniButton() {
	w, h := s.Mini.PixelSize()
	s.Mini.Splash(w/2, h/2, s.cfg.MiniRipple.ButtonPower)
}

// ClearBloom removes every petal.
func (s *Scene) ClearBloom() {
	s.Bloom.Clear()
}

// ToggleCard collapses or expands a card and reflows the page.
func (s *Scene) ToggleCard(id page.CardID) {
	if s.Page.ToggleCard(id) {
		s.Relayout()
	}
}

// ToggleCompact switches the page density and reflows.
func (s *Scene) ToggleCompact() {
	s.Page.ToggleCompact()
	s.Relayout()
}
