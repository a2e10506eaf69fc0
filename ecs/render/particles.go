package render

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/milk9111/proteinrun/ecs"
)

const (
	particleLife  = 24
	particleBurst = 8
	maxParticles  = 256
)

type particle struct {
	x, y   float64
	vx, vy float64
	life   int
	color  color.NRGBA
}

// Particles is a small burst emitter driven by simulation events.
type Particles struct {
	rng   *rand.Rand
	items []particle
}

func NewParticles(seed uint64) *Particles {
	return &Particles{rng: rand.New(rand.NewPCG(seed, seed+1))}
}

// Apply starts a burst for every event that has a visible effect.
func (p *Particles) Apply(events []ecs.Event) {
	for _, evt := range events {
		c, ok := burstColor(evt)
		if !ok {
			continue
		}
		for i := 0; i < particleBurst && len(p.items) < maxParticles; i++ {
			angle := p.rng.Float64() * 2 * math.Pi
			speed := 1 + p.rng.Float64()*3
			p.items = append(p.items, particle{
				x:     evt.X,
				y:     evt.Y,
				vx:    math.Cos(angle) * speed,
				vy:    math.Sin(angle) * speed,
				life:  particleLife,
				color: c,
			})
		}
	}
}

func burstColor(evt ecs.Event) (color.NRGBA, bool) {
	switch evt.Type {
	case ecs.EventCollected:
		return color.NRGBA{R: 0x00, G: 0xf0, B: 0xff, A: 0xff}, true
	case ecs.EventHazard:
		return color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, true
	case ecs.EventPowerUp:
		return color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}, true
	case ecs.EventInfo:
		return color.NRGBA{R: 0xff, G: 0x00, B: 0x99, A: 0xff}, true
	default:
		return color.NRGBA{}, false
	}
}

// Update ages every particle by one frame and drops the dead ones.
func (p *Particles) Update() {
	alive := p.items[:0]
	for _, it := range p.items {
		it.life--
		if it.life <= 0 {
			continue
		}
		it.x += it.vx
		it.y += it.vy
		it.vy += 0.1
		alive = append(alive, it)
	}
	p.items = alive
}

func (p *Particles) Len() int {
	return len(p.items)
}

func (p *Particles) Clear() {
	p.items = p.items[:0]
}
