package scene

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/lagoon/config"
	"github.com/pthm-cable/lagoon/page"
	"github.com/pthm-cable/lagoon/telemetry"
)

func init() {
	config.MustInit("")
}

func newTestScene(t *testing.T, opts Options) *Scene {
	t.Helper()
	s, err := New(config.Cfg(), 1280, 760, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// bodyPoint returns the screen position of a point inside a card body.
func bodyPoint(s *Scene, id page.CardID, fx, fy float32) (float32, float32) {
	b := s.Page.Card(id).Body()
	return s.Camera.PageToScreen(b.X+b.W*fx, b.Y+b.H*fy)
}

func press(x, y float32) Input {
	return Input{Pointer: Pointer{X: x, Y: y, Down: true, Pressed: true}}
}

func TestNewSeedsScene(t *testing.T) {
	cfg := config.Cfg()
	s := newTestScene(t, Options{Seed: 1})

	if s.Ripples() != cfg.Ripple.MistSplashes {
		t.Errorf("expected %d mist splashes, got %d", cfg.Ripple.MistSplashes, s.Ripples())
	}
	if s.Main.Energy() == 0 {
		t.Error("expected mist energy on the background")
	}
	if s.Bloom.Count() != cfg.Bloom.Count {
		t.Errorf("expected an initial burst of %d petals, got %d", cfg.Bloom.Count, s.Bloom.Count())
	}
	if s.Camera.ContentH != s.Page.ContentH {
		t.Errorf("camera content %f does not match page %f", s.Camera.ContentH, s.Page.ContentH)
	}
	if s.Mini.W != 70 || s.Mini.H != 34 {
		t.Errorf("expected 70x34 mini field, got %dx%d", s.Mini.W, s.Mini.H)
	}
}

func TestBackgroundPressAndDrag(t *testing.T) {
	s := newTestScene(t, Options{Seed: 2})
	if s.Page.CardAt(s.Camera.ScreenToPage(100, 60)) != nil {
		t.Fatal("test point should be on the page background")
	}

	before := s.Main.Splashes
	s.HandleInput(press(100, 60))
	if s.Main.Splashes != before+1 {
		t.Fatalf("expected press to splash the background, splashes %d -> %d", before, s.Main.Splashes)
	}

	// Dragging keeps splashing even across a card
	x, y := bodyPoint(s, page.CardCurtain, 0.5, 0.5)
	s.HandleInput(Input{Pointer: Pointer{X: x, Y: y, Down: true}})
	if s.Main.Splashes != before+2 {
		t.Errorf("expected drag splash, got %d splashes", s.Main.Splashes-before)
	}

	s.HandleInput(Input{Pointer: Pointer{X: x, Y: y, Released: true}})
	s.HandleInput(Input{Pointer: Pointer{X: x + 10, Y: y}})
	if s.Main.Splashes != before+2 {
		t.Error("expected no splashes after release")
	}
}

func TestToolbarPressIgnored(t *testing.T) {
	s := newTestScene(t, Options{Seed: 3})
	x, y := s.Page.ToolbarRect().Center()
	sx, sy := s.Camera.PageToScreen(x, y)

	before := s.Main.Splashes
	s.HandleInput(press(sx, sy))
	s.HandleInput(Input{Pointer: Pointer{X: sx + 20, Y: sy, Down: true}})
	if s.Main.Splashes != before {
		t.Errorf("expected toolbar press to leave the water alone, got %d splashes", s.Main.Splashes-before)
	}
}

func TestCardPressesRouteToCards(t *testing.T) {
	s := newTestScene(t, Options{Seed: 4})
	mainBefore := s.Main.Splashes

	x, y := bodyPoint(s, page.CardRipple, 0.5, 0.5)
	s.HandleInput(press(x, y))
	if s.Mini.Splashes != 1 {
		t.Errorf("expected mini splash, got %d", s.Mini.Splashes)
	}
	s.HandleInput(Input{Pointer: Pointer{X: x + 14, Y: y, Down: true}})
	if s.Mini.Splashes != 2 {
		t.Errorf("expected mini drag splash, got %d", s.Mini.Splashes)
	}
	s.HandleInput(Input{Pointer: Pointer{X: x + 14, Y: y, Released: true}})

	petals := s.Bloom.Count()
	x, y = bodyPoint(s, page.CardBloom, 0.3, 0.3)
	s.HandleInput(press(x, y))
	if s.Bloom.Count() != petals+config.Cfg().Bloom.Count {
		t.Errorf("expected a bloom burst, count %d -> %d", petals, s.Bloom.Count())
	}
	s.HandleInput(Input{Pointer: Pointer{X: x, Y: y, Released: true}})

	// Headers only hold buttons
	c := s.Page.Card(page.CardCurtain)
	hx, hy := s.Camera.PageToScreen(c.Header().Center())
	s.HandleInput(press(hx, hy))

	if s.Main.Splashes != mainBefore {
		t.Errorf("expected card presses to leave the background alone, got %d splashes", s.Main.Splashes-mainBefore)
	}
}

func TestMiniHover(t *testing.T) {
	s := newTestScene(t, Options{Seed: 5})
	x, y := bodyPoint(s, page.CardRipple, 0.25, 0.5)

	s.HandleInput(Input{Pointer: Pointer{X: 100, Y: 60}})
	for i := 0; i < 3; i++ {
		s.HandleInput(Input{Pointer: Pointer{X: x + float32(i)*10, Y: y}})
	}
	if s.Mini.Splashes != 3 {
		t.Errorf("expected 3 hover splashes, got %d", s.Mini.Splashes)
	}

	// Hover outside the card does nothing
	s.HandleInput(Input{Pointer: Pointer{X: 100, Y: 60}})
	if s.Mini.Splashes != 3 {
		t.Errorf("expected hover off the card to be ignored, got %d", s.Mini.Splashes)
	}
}

func TestStillPointerDoesNotStir(t *testing.T) {
	t.Run("hover", func(t *testing.T) {
		s := newTestScene(t, Options{Seed: 5})
		x, y := bodyPoint(s, page.CardRipple, 0.5, 0.5)

		s.HandleInput(Input{Pointer: Pointer{X: 100, Y: 60}})
		s.Update(Input{Pointer: Pointer{X: x, Y: y}})
		arrived := s.Mini.Splashes
		if arrived != 1 {
			t.Fatalf("expected one splash when the pointer arrives, got %d", arrived)
		}

		for i := 0; i < 120; i++ {
			s.Update(Input{Pointer: Pointer{X: x, Y: y}})
		}
		if s.Mini.Splashes != arrived {
			t.Errorf("expected no splashes from a resting pointer, got %d", s.Mini.Splashes-arrived)
		}
	})

	t.Run("held press", func(t *testing.T) {
		s := newTestScene(t, Options{Seed: 2})
		before := s.Main.Splashes

		s.HandleInput(press(100, 60))
		for i := 0; i < 120; i++ {
			s.HandleInput(Input{Pointer: Pointer{X: 100, Y: 60, Down: true}})
		}
		if s.Main.Splashes != before+1 {
			t.Errorf("expected only the press to splash, got %d splashes", s.Main.Splashes-before)
		}

		s.HandleInput(Input{Pointer: Pointer{X: 110, Y: 60, Down: true}})
		if s.Main.Splashes != before+2 {
			t.Errorf("expected a drag splash once the pointer moves, got %d", s.Main.Splashes-before)
		}
	})

	t.Run("held tag keeps its throw", func(t *testing.T) {
		s := newTestScene(t, Options{Seed: 6})
		r, _ := s.PondRect()
		tag := s.Pond.Tags()[0]
		x, y := s.Camera.PageToScreen(r.X+tag.X+2, r.Y+tag.Y+2)

		// Throw toward the side with more room
		dx := float32(30)
		if tag.X > r.W/2 {
			dx = -30
		}

		s.HandleInput(press(x, y))
		s.Step()
		s.HandleInput(Input{Pointer: Pointer{X: x + dx, Y: y, Down: true}})
		for i := 0; i < 5; i++ {
			s.HandleInput(Input{Pointer: Pointer{X: x + dx, Y: y, Down: true}})
		}
		held := s.Pond.Tags()[0]
		s.HandleInput(Input{Pointer: Pointer{X: x + dx, Y: y, Released: true}})
		s.Pond.Tick()

		if d := s.Pond.Tags()[0].X - held.X; d*dx <= 0 || absf(d) < 10 {
			t.Errorf("expected the release to throw the tag along %v, moved %v", dx, d)
		}
	})
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestPondThrowRouting(t *testing.T) {
	s := newTestScene(t, Options{Seed: 6})
	r, ok := s.PondRect()
	if !ok {
		t.Fatal("expected a pond area")
	}

	tag := s.Pond.Tags()[0]
	x, y := s.Camera.PageToScreen(r.X+tag.X+2, r.Y+tag.Y+2)
	s.HandleInput(press(x, y))
	if !s.Pond.Dragging() {
		t.Fatal("expected press on a tag to grab it")
	}

	s.HandleInput(Input{Pointer: Pointer{X: x + 30, Y: y + 10, Down: true}})
	if moved := s.Pond.Tags()[0]; moved.X == tag.X {
		t.Error("expected dragged tag to follow the pointer")
	}

	s.HandleInput(Input{Pointer: Pointer{X: x + 30, Y: y + 10, Released: true}})
	if s.Pond.Dragging() {
		t.Error("expected release to drop the tag")
	}
	if got := s.collector.Flush(1).PondThrows; got != 1 {
		t.Errorf("expected 1 recorded throw, got %d", got)
	}
}

func TestPondBackgroundRotatesCurrent(t *testing.T) {
	s := newTestScene(t, Options{Seed: 7})
	r, _ := s.PondRect()
	x, y := s.Camera.PageToScreen(r.X+r.W-2, r.Y+r.H-2)

	before := s.Direction()
	s.HandleInput(press(x, y))
	if s.Direction() == before {
		t.Errorf("expected current to turn from %s", before)
	}
	if s.Pond.Dragging() {
		t.Error("expected no drag on the pond background")
	}
}

func TestWheelScrollsAndStirs(t *testing.T) {
	s := newTestScene(t, Options{Seed: 8})
	scale := float32(config.Cfg().Page.WheelScale)

	s.HandleInput(Input{Wheel: -1})
	if s.Camera.Y != scale {
		t.Errorf("expected scroll to %f, got %f", scale, s.Camera.Y)
	}
	if s.Current.Scroll != float64(scale) {
		t.Errorf("expected current scroll %f, got %f", scale, s.Current.Scroll)
	}

	// Page scroll clamps at the top, the current still feels the wheel
	s.HandleInput(Input{Wheel: 3})
	if s.Camera.Y != 0 {
		t.Errorf("expected scroll clamped at 0, got %f", s.Camera.Y)
	}
	if want := float64(scale) - 3*float64(scale); s.Current.Scroll != want {
		t.Errorf("expected current scroll %f, got %f", want, s.Current.Scroll)
	}
}

func TestStepAdvancesClock(t *testing.T) {
	s := newTestScene(t, Options{Seed: 9})
	frameMS := config.Cfg().Derived.FrameMS

	for i := 0; i < 10; i++ {
		s.Step()
	}
	if s.Frame() != 10 {
		t.Errorf("expected frame 10, got %d", s.Frame())
	}
	if math.Abs(s.Clock()-10*frameMS) > 1e-9 {
		t.Errorf("expected clock %f, got %f", 10*frameMS, s.Clock())
	}
	if tide := s.Tide(); tide < 0 || tide > 1 {
		t.Errorf("tide %f outside [0,1]", tide)
	}
}

func TestUpdateStepsPerUpdate(t *testing.T) {
	s := newTestScene(t, Options{Seed: 10, StepsPerUpdate: 4})
	s.Update(Input{})
	s.Update(Input{})
	if s.Frame() != 8 {
		t.Errorf("expected 8 frames, got %d", s.Frame())
	}
}

func TestCurtainResponds(t *testing.T) {
	s := newTestScene(t, Options{Seed: 11})
	for i := 0; i < 30; i++ {
		s.Step()
	}
	if s.Curtain.State <= 0 {
		t.Fatalf("expected the visible curtain card to raise the state, got %f", s.Curtain.State)
	}

	s.ResetCurtain()
	if s.Curtain.State != 0 {
		t.Errorf("expected reset state 0, got %f", s.Curtain.State)
	}

	s.ToggleCard(page.CardCurtain)
	s.Step()
	if s.Curtain.State != 0 {
		t.Errorf("expected a collapsed curtain to stay at rest, got %f", s.Curtain.State)
	}
}

func TestCurtainUsesFallbackViewport(t *testing.T) {
	cfg := *config.Cfg()
	cfg.Page.FallbackVH = 640
	s, err := New(&cfg, 1280, 760, Options{Seed: 11})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	// A window that has not reported its height yet
	s.Camera.ViewportH = 0
	b := s.Page.Card(page.CardCurtain).Body()
	_, mid := s.Camera.PageToScreen(b.X, b.Y+b.H/2)

	want := s.Curtain.Influence(float64(mid), 640, 640)
	if got := s.curtainInfluence(); got != want {
		t.Errorf("expected influence %f against the configured 640px fallback, got %f", want, got)
	}
}

func TestToggleReflows(t *testing.T) {
	s := newTestScene(t, Options{Seed: 12})
	full := s.Camera.ContentH

	s.ToggleCard(page.CardSkills)
	if s.Camera.ContentH >= full {
		t.Errorf("expected collapsing the last card to shorten the page, %f -> %f", full, s.Camera.ContentH)
	}
	s.ToggleCard(page.CardSkills)
	s.ToggleCompact()
	if s.Camera.ContentH >= full {
		t.Errorf("expected compact layout to shorten the page, %f -> %f", full, s.Camera.ContentH)
	}
}

func TestButtons(t *testing.T) {
	cfg := config.Cfg()
	s := newTestScene(t, Options{Seed: 13})
	s.Bloom.Clear()

	if n := s.BloomButton(true); n != cfg.Bloom.DenseCount {
		t.Errorf("expected %d dense petals, got %d", cfg.Bloom.DenseCount, n)
	}
	s.MiniButton()
	if s.Mini.Splashes != 1 || s.Mini.Energy() == 0 {
		t.Errorf("expected a centre splash on the mini field")
	}
}

func TestResize(t *testing.T) {
	s := newTestScene(t, Options{Seed: 14})
	s.Resize(800, 600)
	if s.Main.W != 100 || s.Main.H != 75 {
		t.Errorf("expected 100x75 background field, got %dx%d", s.Main.W, s.Main.H)
	}
	if s.Camera.ViewportW != 800 || s.Camera.ViewportH != 600 {
		t.Errorf("expected camera viewport 800x600, got %fx%f", s.Camera.ViewportW, s.Camera.ViewportH)
	}
	if s.Main.Energy() == 0 {
		t.Error("expected fresh mist after resize")
	}
}

func TestScriptIsDeterministic(t *testing.T) {
	run := func() (float64, int, int) {
		s := newTestScene(t, Options{Seed: 15})
		sc := NewScript(15)
		for i := 0; i < 600; i++ {
			s.Update(sc.Next(s))
		}
		return s.Main.Energy(), s.Ripples(), s.Bloom.Count()
	}

	e1, r1, b1 := run()
	e2, r2, b2 := run()
	if e1 != e2 || r1 != r2 || b1 != b2 {
		t.Errorf("runs diverged: (%f,%d,%d) vs (%f,%d,%d)", e1, r1, b1, e2, r2, b2)
	}
	if r1 <= config.Cfg().Ripple.MistSplashes {
		t.Errorf("expected scripted input and streams to add splashes, got %d", r1)
	}
}

func TestTelemetryOutput(t *testing.T) {
	dir := t.TempDir()
	s, err := New(config.Cfg(), 1280, 760, Options{Seed: 16, OutputDir: dir, StatsWindowSec: 0.1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var windows []telemetry.WindowStats
	s.SetStatsCallback(func(w telemetry.WindowStats) { windows = append(windows, w) })

	per := s.collector.WindowDurationFrames()
	for i := int32(0); i < per*3; i++ {
		s.Update(Input{})
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if len(windows) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(windows))
	}
	if windows[0].Splashes < config.Cfg().Ripple.MistSplashes {
		t.Errorf("expected the first window to count the mist, got %d", windows[0].Splashes)
	}
	if windows[2].WindowEndFrame != per*3 {
		t.Errorf("expected last window to end at %d, got %d", per*3, windows[2].WindowEndFrame)
	}

	for _, name := range []string{"telemetry.csv", "perf.csv", "config.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Errorf("expected header and 3 rows, got %d lines", len(lines))
	}
}
