package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/proteinrun/common"
)

// PlayerBody is the runner. Position and velocity are stored in a Chipmunk2D
// body that never joins a space; the physics system integrates it directly.
type PlayerBody struct {
	Body     *cp.Body
	Width    float64
	Height   float64
	Grounded bool
}

func NewPlayerBody(x, y, width, height float64) *PlayerBody {
	body := cp.NewBody(1, cp.INFINITY)
	body.SetPosition(cp.Vector{X: x, Y: y})
	return &PlayerBody{Body: body, Width: width, Height: height}
}

func (p *PlayerBody) X() float64 {
	return p.Body.Position().X
}

func (p *PlayerBody) Y() float64 {
	return p.Body.Position().Y
}

func (p *PlayerBody) VelocityY() float64 {
	return p.Body.Velocity().Y
}

func (p *PlayerBody) Rect() common.Rect {
	pos := p.Body.Position()
	return common.Rect{X: pos.X, Y: pos.Y, Width: p.Width, Height: p.Height}
}

// Jump launches the body when it rests on the floor. A jump while airborne
// changes nothing.
func (p *PlayerBody) Jump(velocity float64) bool {
	if !p.Grounded {
		return false
	}
	p.Body.SetVelocity(0, velocity)
	p.Grounded = false
	return true
}

// Land snaps the body onto the floor and stops its vertical motion.
func (p *PlayerBody) Land(floor float64) {
	p.Body.SetPosition(cp.Vector{X: p.X(), Y: floor - p.Height})
	p.Body.SetVelocity(0, 0)
	p.Grounded = true
}
