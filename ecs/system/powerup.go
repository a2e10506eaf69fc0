package system

import (
	"github.com/milk9111/proteinrun/ecs"
)

// PowerUpSystem counts the active power-up down. It runs before anything
// that reads the modifier so an expired effect never applies.
type PowerUpSystem struct{}

func NewPowerUpSystem() *PowerUpSystem {
	return &PowerUpSystem{}
}

func (s *PowerUpSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	kind := w.PowerUp.Kind
	if w.PowerUp.Tick() {
		w.Emit(ecs.Event{Type: ecs.EventPowerUpExpired, Text: kind.String()})
	}
}
