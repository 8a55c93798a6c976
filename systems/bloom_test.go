package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/lagoon/config"
)

func newTestBloom(seed int64) *BloomEmitter {
	return NewBloomEmitter(config.Cfg().Bloom, rand.New(rand.NewSource(seed)))
}

func TestBloomSpawnCounts(t *testing.T) {
	cfg := config.Cfg().Bloom
	e := newTestBloom(1)

	if n := e.Spawn(100, 100, false); n != cfg.Count {
		t.Errorf("expected %d petals, got %d", cfg.Count, n)
	}
	if n := e.Spawn(100, 100, true); n != cfg.DenseCount {
		t.Errorf("expected %d dense petals, got %d", cfg.DenseCount, n)
	}
	if e.Count() != cfg.Count+cfg.DenseCount {
		t.Errorf("expected %d live petals, got %d", cfg.Count+cfg.DenseCount, e.Count())
	}

	for i := range e.Particles {
		p := &e.Particles[i]
		if p.X != 100 || p.Y != 100 {
			t.Fatalf("petal %d spawned at (%f,%f)", i, p.X, p.Y)
		}
		if p.Life != 1 {
			t.Errorf("petal %d life %f, want 1", i, p.Life)
		}
		if p.Hue < float32(cfg.HueMin) || p.Hue >= float32(cfg.HueMin+cfg.HueRange) {
			t.Errorf("petal %d hue %f outside band", i, p.Hue)
		}
		if p.Radius < float32(cfg.RadiusMin) || p.Radius >= float32(cfg.RadiusMin+cfg.RadiusRange) {
			t.Errorf("petal %d radius %f outside range", i, p.Radius)
		}
		if p.Drift < -float32(cfg.DriftRange) || p.Drift > float32(cfg.DriftRange) {
			t.Errorf("petal %d drift %f outside range", i, p.Drift)
		}
	}
}

func TestBloomSpawnCapacity(t *testing.T) {
	cfg := config.Cfg().Bloom
	cfg.MaxParticles = 50
	e := NewBloomEmitter(cfg, rand.New(rand.NewSource(2)))

	e.Spawn(0, 0, true)
	if e.Count() != 50 {
		t.Errorf("expected burst truncated at 50, got %d", e.Count())
	}
	if n := e.Spawn(0, 0, false); n != 0 {
		t.Errorf("expected no room for more petals, added %d", n)
	}
}

func TestBloomLifeDecaysToRemoval(t *testing.T) {
	e := newTestBloom(3)
	e.Spawn(200, 100, false)

	const w, h = 400, 100000 // tall area so only life removes petals
	prev := e.Particles[0].Life
	steps := 0
	for e.Count() > 0 && steps < 500 {
		e.Advance(float64(steps)*16.7, w, h)
		steps++
		if e.Count() > 0 {
			life := e.Particles[0].Life
			if life >= prev {
				t.Fatalf("step %d: life did not decrease (%f -> %f)", steps, prev, life)
			}
			prev = life
		}
	}
	if e.Count() != 0 {
		t.Errorf("expected all petals gone within 500 steps, %d remain", e.Count())
	}
}

func TestBloomRemovesBelowFloor(t *testing.T) {
	e := newTestBloom(4)
	e.Spawn(50, 50, false)

	const w, h = 300, 200
	e.Particles[0].Y = h + 31
	e.Particles[0].VY = 0

	n := e.Count()
	e.Advance(0, w, h)
	if e.Count() != n-1 {
		t.Errorf("expected one petal removed, count %d -> %d", n, e.Count())
	}
	for i := range e.Particles {
		if e.Particles[i].Y > h+30 {
			t.Errorf("petal %d survived below the floor at y=%f", i, e.Particles[i].Y)
		}
	}
}

func TestBloomWrapsHorizontally(t *testing.T) {
	e := newTestBloom(5)
	e.Spawn(0, 50, false)
	e.Particles = e.Particles[:2]

	const w, h = 200, 200
	e.Particles[0].X, e.Particles[0].VX = -25, 0
	e.Particles[1].X, e.Particles[1].VX = w+25, 0

	e.Advance(0, w, h)
	if got := e.Particles[0].X; got != w+20 {
		t.Errorf("expected left petal to teleport to %d, got %f", w+20, got)
	}
	if got := e.Particles[1].X; got != -20 {
		t.Errorf("expected right petal to teleport to -20, got %f", got)
	}
}

func TestBloomAlphaCapped(t *testing.T) {
	e := newTestBloom(6)
	ceiling := float32(config.Cfg().Bloom.MaxAlpha)

	for _, life := range []float32{0, 0.3, 1, 5} {
		p := BloomParticle{Life: life}
		a := e.Alpha(&p)
		if a < 0 || a > ceiling {
			t.Errorf("alpha %f for life %f outside [0, %f]", a, life, ceiling)
		}
	}
}
