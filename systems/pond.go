package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/lagoon/components"
	"github.com/pthm-cable/lagoon/config"
)

// TagView is a read-only snapshot of one tag for rendering.
type TagView struct {
	Label    string
	X, Y     float32
	W, H     float32
	Dragging bool
}

// Pond floats tags on a rotating current. Tags bounce off the pond edges and
// one tag at a time can be dragged and thrown with the pointer.
type Pond struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Tag]
	filter *ecs.Filter3[components.Position, components.Velocity, components.Tag]
	posMap *ecs.Map1[components.Position]
	velMap *ecs.Map1[components.Velocity]
	tagMap *ecs.Map1[components.Tag]

	W, H float32

	// CurX, CurY is the shared current vector
	CurX, CurY float32

	cfg config.PondConfig

	dragging   bool
	dragged    ecs.Entity
	offX, offY float32
	lastX      float32
	lastY      float32
	lastT      float64
	count      int
}

// NewPond creates a pond of w x h pixels and seeds one tag per label.
func NewPond(cfg config.PondConfig, w, h float32, rng *rand.Rand) *Pond {
	world := ecs.NewWorld()
	p := &Pond{
		world:  world,
		mapper: ecs.NewMap3[components.Position, components.Velocity, components.Tag](world),
		filter: ecs.NewFilter3[components.Position, components.Velocity, components.Tag](world),
		posMap: ecs.NewMap1[components.Position](world),
		velMap: ecs.NewMap1[components.Velocity](world),
		tagMap: ecs.NewMap1[components.Tag](world),
		W:      w,
		H:      h,
		CurX:   float32(cfg.CurrentX),
		CurY:   float32(cfg.CurrentY),
		cfg:    cfg,
	}

	for i, label := range cfg.Tags {
		pos := components.Position{
			X: 18 + float32(i%3)*90,
			Y: 18 + float32(i/3)*46,
		}
		vel := components.Velocity{
			X: float32((rng.Float64()*0.8 - 0.4) * 2),
			Y: float32((rng.Float64()*0.8 - 0.4) * 2),
		}
		tag := components.Tag{
			Label:  label,
			Index:  i,
			Width:  float32(cfg.TagPadding + cfg.CharWidth*float64(len(label))),
			Height: float32(cfg.TagHeight),
		}
		p.mapper.NewEntity(&pos, &vel, &tag)
		p.count++
	}
	return p
}

// Len returns the number of tags.
func (p *Pond) Len() int { return p.count }

// limits returns the allowed top-left range for a tag.
func (p *Pond) limits(tag *components.Tag) (minX, minY, maxX, maxY float32) {
	m := float32(p.cfg.Margin)
	return m, m, p.W - m - tag.Width, p.H - m - tag.Height
}

// Tick advances every free tag one frame.
func (p *Pond) Tick() {
	pull := float32(p.cfg.CurrentPull)
	friction := float32(p.cfg.Friction)
	bounce := -float32(p.cfg.Restitution)

	query := p.filter.Query()
	for query.Next() {
		if p.dragging && query.Entity() == p.dragged {
			continue
		}
		pos, vel, tag := query.Get()

		vel.X += p.CurX * pull
		vel.Y += p.CurY * pull

		vel.X *= friction
		vel.Y *= friction

		pos.X += vel.X
		pos.Y += vel.Y

		minX, minY, maxX, maxY := p.limits(tag)
		if pos.X < minX {
			pos.X = minX
			vel.X *= bounce
		}
		if pos.Y < minY {
			pos.Y = minY
			vel.Y *= bounce
		}
		if pos.X > maxX {
			pos.X = maxX
			vel.X *= bounce
		}
		if pos.Y > maxY {
			pos.Y = maxY
			vel.Y *= bounce
		}
	}
}

// PointerDown grabs the tag under (x, y), or rotates the current a quarter turn
// clockwise when the pond background was hit. now is in ms.
func (p *Pond) PointerDown(x, y float32, now float64) {
	var hit ecs.Entity
	found := false

	// Topmost tag wins; later entities draw on top
	query := p.filter.Query()
	for query.Next() {
		pos, _, tag := query.Get()
		if tag.Contains(pos, x, y) {
			hit = query.Entity()
			found = true
		}
	}

	if !found {
		p.CurX, p.CurY = -p.CurY, p.CurX
		return
	}

	pos := p.posMap.Get(hit)
	p.dragging = true
	p.dragged = hit
	p.offX = x - pos.X
	p.offY = y - pos.Y
	p.lastX = x
	p.lastY = y
	p.lastT = now
}

// PointerMove drags the held tag and records its throw velocity.
func (p *Pond) PointerMove(x, y float32, now float64) {
	if !p.dragging || !p.world.Alive(p.dragged) {
		return
	}
	pos := p.posMap.Get(p.dragged)
	vel := p.velMap.Get(p.dragged)
	tag := p.tagMap.Get(p.dragged)

	minX, minY, maxX, maxY := p.limits(tag)
	pos.X = clampFloat(x-p.offX, minX, maxX)
	pos.Y = clampFloat(y-p.offY, minY, maxY)

	dt := float32(now - p.lastT)
	if dt < 1 {
		dt = 1
	}
	throw := float32(p.cfg.ThrowScale)
	vel.X = (x - p.lastX) / dt * throw
	vel.Y = (y - p.lastY) / dt * throw

	p.lastX = x
	p.lastY = y
	p.lastT = now
}

// PointerUp releases the held tag.
func (p *Pond) PointerUp() {
	p.dragging = false
}

// Dragging reports whether a tag is held.
func (p *Pond) Dragging() bool { return p.dragging }

// Direction returns an arrow for the dominant axis of the current.
func (p *Pond) Direction() string {
	if absf(p.CurX) > absf(p.CurY) {
		if p.CurX >= 0 {
			return "→"
		}
		return "←"
	}
	if p.CurY >= 0 {
		return "↓"
	}
	return "↑"
}

// Tags returns a snapshot of all tags in creation order.
func (p *Pond) Tags() []TagView {
	views := make([]TagView, p.count)
	query := p.filter.Query()
	for query.Next() {
		pos, _, tag := query.Get()
		if tag.Index < 0 || tag.Index >= len(views) {
			continue
		}
		views[tag.Index] = TagView{
			Label:    tag.Label,
			X:        pos.X,
			Y:        pos.Y,
			W:        tag.Width,
			H:        tag.Height,
			Dragging: p.dragging && query.Entity() == p.dragged,
		}
	}
	return views
}
