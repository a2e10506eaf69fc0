package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/proteinrun/ecs"
	"github.com/milk9111/proteinrun/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	trailColor = color.NRGBA{R: 10, G: 14, B: 23, A: 77}
	floorColor = color.NRGBA{R: 0x00, G: 0xf0, B: 0xff, A: 0xff}
	toastBg    = color.NRGBA{R: 0x00, G: 0xf0, B: 0xff, A: 0x33}
	boostGlow  = color.NRGBA{R: 0xff, G: 0xcc, B: 0x00, A: 0x66}
	lockOnGlow = color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0x66}
)

// Renderer projects a view onto the screen. It never touches the world.
type Renderer struct {
	face      text.Face
	particles *Particles
}

func NewRenderer() *Renderer {
	return &Renderer{
		face:      text.NewGoXFace(basicfont.Face7x13),
		particles: NewParticles(7),
	}
}

// Effects feeds drained simulation events to the particle emitter.
func (r *Renderer) Effects(events []ecs.Event) {
	r.particles.Apply(events)
}

// Update advances effects by one frame. Effects keep playing while paused.
func (r *Renderer) Update() {
	r.particles.Update()
}

func (r *Renderer) Reset() {
	r.particles.Clear()
}

// Draw paints one frame. The screen is not cleared between frames; a
// translucent fill leaves motion trails.
func (r *Renderer) Draw(screen *ebiten.Image, v ecs.View) {
	w := float32(v.WorldWidth)
	h := float32(v.WorldHeight)
	vector.DrawFilledRect(screen, 0, 0, w, h, trailColor, false)

	r.drawPlayer(screen, v)
	for _, e := range v.Entities {
		r.drawEntity(screen, e)
	}
	for _, p := range r.particles.items {
		c := p.color
		c.A = uint8(int(c.A) * p.life / particleLife)
		vector.DrawFilledRect(screen, float32(p.x)-1, float32(p.y)-1, 3, 3, c, false)
	}

	floor := float32(v.Floor)
	vector.StrokeLine(screen, 0, floor-1, w, floor-1, 2, floorColor, false)

	r.drawHUD(screen, v)
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, v ecs.View) {
	p := v.Player
	x, y := float32(p.X), float32(p.Y)
	pw, ph := float32(p.Width), float32(p.Height)

	switch v.PowerUp {
	case component.PowerUpMultiplier:
		vector.DrawFilledRect(screen, x-4, y-4, pw+8, ph+8, boostGlow, false)
	case component.PowerUpAttractor:
		vector.DrawFilledRect(screen, x-4, y-4, pw+8, ph+8, lockOnGlow, false)
	}
	vector.DrawFilledRect(screen, x, y, pw, ph, v.PlayerColor, false)
}

// drawEntity paints hazards as squares and everything else as circles.
func (r *Renderer) drawEntity(screen *ebiten.Image, e ecs.EntityView) {
	rect := e.Rect
	if e.Class == component.ClassHazard {
		vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), e.Color, false)
		return
	}
	cx := float32(rect.X + rect.Width/2)
	cy := float32(rect.Y + rect.Height/2)
	vector.DrawFilledCircle(screen, cx, cy, float32(rect.Width/2), e.Color, true)
	if e.Class == component.ClassInfo {
		r.label(screen, "i", float64(cx), float64(cy)-6, colornames.White, text.AlignCenter)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, v ecs.View) {
	r.label(screen, fmt.Sprintf("SCORE: %d", v.Score), 16, 14, colornames.White, text.AlignStart)
	r.label(screen, fmt.Sprintf("PROTEINS: %d", v.Collected), 16, 32, floorColor, text.AlignStart)

	secs := 0
	if v.TPS > 0 {
		secs = (v.Remaining() + v.TPS - 1) / v.TPS
	}
	r.label(screen, fmt.Sprintf("TIME: %d", secs), v.WorldWidth-16, 14, colornames.White, text.AlignEnd)

	if banner := PowerUpBanner(v.PowerUp); banner != "" {
		c := boostGlow
		if v.PowerUp == component.PowerUpAttractor {
			c = lockOnGlow
		}
		c.A = 0xff
		r.label(screen, banner, v.WorldWidth/2, 40, c, text.AlignCenter)
	}

	if v.Toast != "" {
		tw, _ := text.Measure(v.Toast, r.face, 0)
		x := float32(v.WorldWidth/2 - tw/2 - 12)
		y := float32(v.WorldHeight - 70)
		vector.DrawFilledRect(screen, x, y, float32(tw)+24, 26, toastBg, false)
		r.label(screen, v.Toast, v.WorldWidth/2, float64(y)+7, colornames.White, text.AlignCenter)
	}
}

func (r *Renderer) label(screen *ebiten.Image, s string, x, y float64, c color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(screen, s, r.face, op)
}

// PowerUpBanner is the HUD text for an active power-up.
func PowerUpBanner(kind component.PowerUpKind) string {
	switch kind {
	case component.PowerUpMultiplier:
		return "DOUBLE POINTS"
	case component.PowerUpAttractor:
		return "MAGNET ACTIVE"
	default:
		return ""
	}
}
