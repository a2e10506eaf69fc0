package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/proteinrun/ecs"
)

// PhysicsSystem integrates the runner one step: gravity into velocity,
// velocity into position, then the floor clamp.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil || w.Player == nil {
		return
	}

	p := w.Player
	p.Body.UpdateVelocity(cp.Vector{X: 0, Y: w.Config.Gravity}, 1, 1)
	cp.BodyUpdatePosition(p.Body, 1)

	if p.Y()+p.Height >= w.Config.Floor {
		p.Land(w.Config.Floor)
		return
	}
	p.Grounded = false
}
