package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/lagoon/config"
)

func TestCurtainInfluence(t *testing.T) {
	c := NewCurtain(config.Cfg().Curtain, 60)

	if got := c.Influence(0.52*1000, 1000, 800); math.Abs(float64(got)-1) > 1e-6 {
		t.Errorf("expected full influence at the anchor, got %f", got)
	}
	if got := c.Influence(5000, 1000, 800); got != 0 {
		t.Errorf("expected no influence far away, got %f", got)
	}
	// Fallback viewport height
	if got := c.Influence(0.52*640, 0, 640); math.Abs(float64(got)-1) > 1e-6 {
		t.Errorf("expected fallback viewport of 640, got influence %f", got)
	}
	if got := c.Influence(0.52*800, 0, 640); got >= 1 {
		t.Errorf("expected the fallback, not a fixed 800, got influence %f", got)
	}

	near := c.Influence(600, 1000, 800)
	far := c.Influence(800, 1000, 800)
	if near <= far {
		t.Errorf("expected influence to fall with distance, near=%f far=%f", near, far)
	}
}

func TestCurtainRelaxesMonotonically(t *testing.T) {
	c := NewCurtain(config.Cfg().Curtain, 60)
	c.Update(1)
	if c.State <= 0 {
		t.Fatalf("expected state to rise, got %f", c.State)
	}

	prev := c.State
	for i := 0; i < 600; i++ {
		c.Update(0)
		if c.State > prev {
			t.Fatalf("frame %d: state rose from %f to %f", i, prev, c.State)
		}
		prev = c.State
	}
	if prev >= 0.05 {
		t.Errorf("expected state to relax toward 0, got %f", prev)
	}
}

func TestCurtainResetImmediate(t *testing.T) {
	c := NewCurtain(config.Cfg().Curtain, 60)
	for i := 0; i < 30; i++ {
		c.Update(1)
	}
	c.Reset()
	if c.State != 0 {
		t.Errorf("expected state 0 after reset, got %f", c.State)
	}
	if got, want := c.Offset(), config.Cfg().Curtain.OffsetStart; got != want {
		t.Errorf("expected offset %f after reset, got %f", want, got)
	}
}

func TestCurtainShownFollowsOffset(t *testing.T) {
	c := NewCurtain(config.Cfg().Curtain, 60)
	for i := 0; i < 240; i++ {
		c.Update(1)
	}
	if diff := math.Abs(c.Shown() - c.Offset()); diff > 1 {
		t.Errorf("expected displayed offset to settle near %f, got %f", c.Offset(), c.Shown())
	}

	// Without a spring the displayed offset tracks exactly
	still := NewCurtain(config.Cfg().Curtain, 0)
	still.Update(0.5)
	if still.Shown() != still.Offset() {
		t.Errorf("expected unsmoothed offset %f, got %f", still.Offset(), still.Shown())
	}
}
